package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"gopaired/app"
	"gopaired/internal"
)

// Config holds API settings
type Config struct {
	MaxUploadBytes int64
}

// NewRouter builds the JSON API
func NewRouter(service *app.AnalysisService, config Config, logger *internal.Logger) http.Handler {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	h := &Handler{service: service, config: config, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/healthz", h.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/ttest", h.handleTTest)
	})
	return r
}
