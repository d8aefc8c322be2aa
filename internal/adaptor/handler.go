package adaptor

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"she-fix/internal/usecase"
	"she-fix/pkg/utils"
)

type Handler struct {
	Auth      *AuthHandler
	User      *UserHandler
	Job       *JobHandler
	Translate *TranslateHandler
	Academy   *AcademyHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		User:      NewUserHandler(service.User, service.KYC, log),
		Job:       NewJobHandler(service.Job, log),
		Translate: NewTranslateHandler(service.Translate, log),
		Academy:   NewAcademyHandler(service.Academy, log),
	}
}

// handleServiceError maps service error messages to HTTP status codes
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "already registered"):
		log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid credentials"):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.HasPrefix(errMsg, "forbidden"):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid status transition"),
		strings.Contains(errMsg, "invalid job ID"):
		log.Warn(operation+" failed - bad request", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, errMsg)
	}
}
