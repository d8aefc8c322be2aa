package wire

import (
	"github.com/go-chi/chi/v5"

	"she-fix/internal/adaptor"
)

func wireAcademy(r chi.Router, academyHandler *adaptor.AcademyHandler) {
	r.Get("/api/academy/modules", academyHandler.GetModules)
}
