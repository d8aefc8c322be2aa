package adaptor

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"she-fix/internal/dto/request"
	"she-fix/internal/usecase"
	"she-fix/pkg/utils"
)

type TranslateHandler struct {
	service usecase.TranslateService
	log     *zap.Logger
}

func NewTranslateHandler(service usecase.TranslateService, log *zap.Logger) *TranslateHandler {
	return &TranslateHandler{
		service: service,
		log:     log,
	}
}

// Translate handles POST /api/users/translate
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req request.TranslateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.Translate(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "translate")
		return
	}

	utils.ResponseOK(w, result)
}
