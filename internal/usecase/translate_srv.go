package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"she-fix/internal/dto/request"
	"she-fix/internal/dto/response"
	"she-fix/pkg/cache"
	"she-fix/pkg/translator"
	"she-fix/pkg/utils"
)

type TranslateService interface {
	// Translate never fails because of the upstream: on any upstream error the
	// input text is returned unchanged. Only invalid requests produce an error.
	Translate(ctx context.Context, req *request.TranslateRequest) (*response.TranslateResponse, error)
}

type translateService struct {
	translator translator.Translator
	cache      cache.Cache
	cacheTTL   time.Duration
	log        *zap.Logger
}

func NewTranslateService(tr translator.Translator, c cache.Cache, cacheTTL time.Duration, log *zap.Logger) TranslateService {
	if c == nil {
		c = cache.NopCache{}
	}
	return &translateService{
		translator: tr,
		cache:      c,
		cacheTTL:   cacheTTL,
		log:        log.With(zap.String("service", "translate")),
	}
}

func (s *translateService) Translate(ctx context.Context, req *request.TranslateRequest) (*response.TranslateResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Translate validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if strings.EqualFold(req.SourceLang, req.TargetLang) {
		return &response.TranslateResponse{TranslatedText: req.Text}, nil
	}

	key := translationCacheKey(req.SourceLang, req.TargetLang, req.Text)

	var cached string
	found, err := s.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		s.log.Warn("Translation cache read failed", zap.Error(err))
	}
	if found {
		return &response.TranslateResponse{TranslatedText: cached}, nil
	}

	translated, err := s.translator.Translate(ctx, req.Text, req.SourceLang, req.TargetLang)
	if err != nil || translated == "" {
		s.log.Warn("Translation failed, returning original text",
			zap.Error(err),
			zap.String("source_lang", req.SourceLang),
			zap.String("target_lang", req.TargetLang))
		return &response.TranslateResponse{TranslatedText: req.Text}, nil
	}

	if err := s.cache.SetJSON(ctx, key, translated, s.cacheTTL); err != nil {
		s.log.Warn("Translation cache write failed", zap.Error(err))
	}

	return &response.TranslateResponse{TranslatedText: translated}, nil
}

func translationCacheKey(source, target, text string) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf("translate:%s:%s:%s",
		strings.ToLower(source), strings.ToLower(target), hex.EncodeToString(sum[:]))
}
