package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"shapes-api/internal/handlers"
	"shapes-api/internal/observability"
	"shapes-api/internal/shapes"
	"shapes-api/internal/web"
)

// NewRouter builds the full route table once at startup; nothing mutates it
// afterwards.
func NewRouter() http.Handler {

	r := chi.NewRouter()

	// The frontend may be hosted separately from the API, so any origin may
	// call the calculation endpoints.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))
	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/health", handlers.Health)
	r.Handle("/metrics", observability.PrometheusHandler())

	shapes.RegisterRoutes(r)
	web.RegisterRoutes(r)

	return r
}
