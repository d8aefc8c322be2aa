package wire

import (
	"github.com/go-chi/chi/v5"

	"she-fix/internal/adaptor"
)

// wireUser registers flat paths; a mounted /api/users subrouter would shadow the
// registration route on /api/users.
func wireUser(r chi.Router, userHandler *adaptor.UserHandler, translateHandler *adaptor.TranslateHandler) {
	r.Get("/api/users/workers", userHandler.GetWorkers)
	r.Post("/api/users/kyc", userHandler.VerifyKYC)
	r.Post("/api/users/translate", translateHandler.Translate)
}
