package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"she-fix/internal/dto/request"
	"she-fix/pkg/translator"
)

type fakeTranslator struct {
	out   string
	err   error
	calls int
}

func (f *fakeTranslator) Translate(_ context.Context, text, _, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if f.out == "" {
		return text, nil
	}
	return f.out, nil
}

type mapCache struct {
	values map[string]any
	err    error
}

func newMapCache() *mapCache {
	return &mapCache{values: make(map[string]any)}
}

func (c *mapCache) GetJSON(_ context.Context, key string, dest any) (bool, error) {
	if c.err != nil {
		return false, c.err
	}
	v, ok := c.values[key]
	if !ok {
		return false, nil
	}
	*(dest.(*string)) = v.(string)
	return true, nil
}

func (c *mapCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	if c.err != nil {
		return c.err
	}
	c.values[key] = value
	return nil
}

func hindiRequest() *request.TranslateRequest {
	return &request.TranslateRequest{
		Text:       "Mujhe plumbing ka kaam chahiye",
		SourceLang: "hi",
		TargetLang: "en",
	}
}

func TestTranslateService_Success(t *testing.T) {
	tr := &fakeTranslator{out: "I need plumbing work"}
	cache := newMapCache()
	svc := NewTranslateService(tr, cache, time.Hour, zap.NewNop())

	res, err := svc.Translate(context.Background(), hindiRequest())
	require.NoError(t, err)
	assert.Equal(t, "I need plumbing work", res.TranslatedText)

	// second call is served from the cache
	res, err = svc.Translate(context.Background(), hindiRequest())
	require.NoError(t, err)
	assert.Equal(t, "I need plumbing work", res.TranslatedText)
	assert.Equal(t, 1, tr.calls)
}

func TestTranslateService_FallsBackToInput(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"not configured", translator.ErrNotConfigured},
		{"upstream failure", errors.New("translation api returned 503")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &fakeTranslator{err: tt.err}
			cache := newMapCache()
			svc := NewTranslateService(tr, cache, time.Hour, zap.NewNop())

			res, err := svc.Translate(context.Background(), hindiRequest())
			require.NoError(t, err)
			assert.Equal(t, "Mujhe plumbing ka kaam chahiye", res.TranslatedText)
			assert.Empty(t, cache.values, "failures are not cached")
		})
	}
}

func TestTranslateService_SameLanguageSkipsUpstream(t *testing.T) {
	tr := &fakeTranslator{out: "should not be used"}
	svc := NewTranslateService(tr, nil, time.Hour, zap.NewNop())

	res, err := svc.Translate(context.Background(), &request.TranslateRequest{
		Text: "Show me electrical jobs", SourceLang: "en", TargetLang: "EN",
	})
	require.NoError(t, err)
	assert.Equal(t, "Show me electrical jobs", res.TranslatedText)
	assert.Zero(t, tr.calls)
}

func TestTranslateService_CacheErrorsIgnored(t *testing.T) {
	tr := &fakeTranslator{out: "I need work tomorrow"}
	cache := &mapCache{values: map[string]any{}, err: errors.New("connection refused")}
	svc := NewTranslateService(tr, cache, time.Hour, zap.NewNop())

	res, err := svc.Translate(context.Background(), &request.TranslateRequest{
		Text: "Mala udya kaam pahije", SourceLang: "mr", TargetLang: "en",
	})
	require.NoError(t, err)
	assert.Equal(t, "I need work tomorrow", res.TranslatedText)
}

func TestTranslateService_Validation(t *testing.T) {
	svc := NewTranslateService(&fakeTranslator{}, nil, time.Hour, zap.NewNop())

	_, err := svc.Translate(context.Background(), &request.TranslateRequest{SourceLang: "hi", TargetLang: "en"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed: text")
}

func TestTranslationCacheKey(t *testing.T) {
	a := translationCacheKey("HI", "en", "namaste")
	b := translationCacheKey("hi", "EN", "namaste")
	c := translationCacheKey("hi", "en", "namaste ji")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Regexp(t, `^translate:hi:en:[0-9a-f]{64}$`, a)
}
