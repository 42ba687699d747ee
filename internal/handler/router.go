package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/passform/passform-go/internal/middleware"
)

// RouterConfig wires handlers and middleware settings into a router.
type RouterConfig struct {
	Generator      *GeneratorHandler
	Form           *FormHandler
	FormSecret     string
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter builds the API routes.
func NewRouter(rc RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	limit := middleware.RateLimit(rc.RateLimitRPS, rc.RateLimitBurst)

	r.With(limit).Post("/api/v1/generate", rc.Generator.HandleGenerate)

	r.Post("/api/v1/form", rc.Form.HandleOpen)
	r.Group(func(r chi.Router) {
		r.Use(middleware.FormToken(rc.FormSecret))
		r.Get("/api/v1/form", rc.Form.HandleShow)
		r.Put("/api/v1/form/length", rc.Form.HandleSetLength)
		r.Post("/api/v1/form/toggle/{class}", rc.Form.HandleToggle)
		r.With(limit).Post("/api/v1/form/submit", rc.Form.HandleSubmit)
		r.Post("/api/v1/form/reset", rc.Form.HandleReset)
	})

	return r
}
