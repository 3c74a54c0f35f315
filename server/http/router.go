package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"scorecard-service/internal/config"
	"scorecard-service/internal/middleware"
	"scorecard-service/internal/questionnaire/cache"
	qHnd "scorecard-service/internal/questionnaire/handler"
	"scorecard-service/server/http/handlers"
)

func NewRouter(cfg config.Config, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	// upload and template share one last-write-wins slot
	store := cache.NewStore()

	r.Get("/health", handlers.Health)
	r.Get("/api/health", handlers.APIHealth)

	r.Post("/api/upload-excel", qHnd.Upload(cfg, logger, store))
	r.Get("/api/questionnaire/template", qHnd.Template(cfg, logger, store))
	r.Post("/api/questionnaire/calculate", qHnd.Calculate(logger))

	return r
}
