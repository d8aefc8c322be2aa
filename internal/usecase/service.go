package usecase

import (
	"go.uber.org/zap"

	"she-fix/internal/data/repository"
	"she-fix/pkg/cache"
	"she-fix/pkg/translator"
	"she-fix/pkg/utils"
)

type Service struct {
	Auth      AuthService
	User      UserService
	Job       JobService
	KYC       KYCService
	Translate TranslateService
	Academy   AcademyService
}

func NewService(
	repo *repository.Repository,
	tr translator.Translator,
	c cache.Cache,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:      NewAuthService(repo.User, log),
		User:      NewUserService(repo.User, log),
		Job:       NewJobService(repo, log),
		KYC:       NewKYCService(repo.User, log),
		Translate: NewTranslateService(tr, c, config.Translate.CacheTTL, log),
		Academy:   NewAcademyService(),
	}
}
