package wire

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"she-fix/internal/adaptor"
	"she-fix/internal/data/repository"
	"she-fix/internal/usecase"
	"she-fix/pkg/cache"
	"she-fix/pkg/middleware"
	"she-fix/pkg/translator"
	"she-fix/pkg/utils"
)

// App holds the wired router
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes from the storage and upstream clients
func Wiring(
	repo *repository.Repository,
	tr translator.Translator,
	c cache.Cache,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, tr, c, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   config.App.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.UserIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, handler.Translate)
	wireJob(r, handler.Job, repo, logger)
	wireAcademy(r, handler.Academy)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseOK(w, map[string]string{"status": "ok"})
	})

	return r
}
