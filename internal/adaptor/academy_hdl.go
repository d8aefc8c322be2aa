package adaptor

import (
	"net/http"

	"go.uber.org/zap"

	"she-fix/internal/usecase"
	"she-fix/pkg/utils"
)

type AcademyHandler struct {
	service usecase.AcademyService
	log     *zap.Logger
}

func NewAcademyHandler(service usecase.AcademyService, log *zap.Logger) *AcademyHandler {
	return &AcademyHandler{
		service: service,
		log:     log,
	}
}

// GetModules handles GET /api/academy/modules
func (h *AcademyHandler) GetModules(w http.ResponseWriter, r *http.Request) {
	utils.ResponseOK(w, h.service.ListModules(r.Context()))
}
