package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"she-fix/internal/dto/request"
	"she-fix/internal/usecase"
	"she-fix/pkg/utils"
)

type UserHandler struct {
	service usecase.UserService
	kyc     usecase.KYCService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, kyc usecase.KYCService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		kyc:     kyc,
		log:     log,
	}
}

// GetWorkers handles GET /api/users/workers?q=
func (h *UserHandler) GetWorkers(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	workers, err := h.service.GetWorkers(r.Context(), query)
	if err != nil {
		handleServiceError(w, h.log, err, "get workers")
		return
	}

	utils.ResponseOK(w, workers)
}

// VerifyKYC handles POST /api/users/kyc. The liveness stub accepts any body,
// including a malformed one.
func (h *UserHandler) VerifyKYC(w http.ResponseWriter, r *http.Request) {
	var req request.KYCRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Debug("KYC body ignored", zap.Error(err))
	}

	utils.ResponseOK(w, h.kyc.Verify(r.Context(), &req))
}
