package wire

import (
	"github.com/go-chi/chi/v5"

	"she-fix/internal/adaptor"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// POST /api/users and /register both register
	r.Post("/api/users", authHandler.Register)
	r.Post("/api/users/register", authHandler.Register)
	r.Post("/api/users/login", authHandler.Login)
}
