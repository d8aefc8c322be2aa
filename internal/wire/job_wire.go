package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"she-fix/internal/adaptor"
	"she-fix/internal/data/entity"
	"she-fix/internal/data/repository"
	"she-fix/pkg/middleware"
)

func wireJob(
	r chi.Router,
	jobHandler *adaptor.JobHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/api/jobs", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/", jobHandler.GetJobs)
		r.Get("/{id}", jobHandler.GetJobByID)

		// ==================== ACTING USER ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.ActingUser(repo.User, log))

			r.With(middleware.RequireRole(entity.RoleSeeker, log)).Post("/", jobHandler.CreateJob)
			r.With(middleware.RequireRole(entity.RoleWorker, log)).Post("/{id}/accept", jobHandler.AcceptJob)
			r.Post("/{id}/complete", jobHandler.CompleteJob)
		})
	})
}
