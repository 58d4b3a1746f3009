// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up the HTTP routes and middleware chain of the
// WebCraft JSON API.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"webcraft/internal/handlers"
	"webcraft/internal/middleware"
)

// Deps carries the handler groups and cross-cutting pieces the router
// wires together. Metrics may be nil.
type Deps struct {
	Websites    *handlers.Websites
	Catalog     *handlers.Catalog
	RateLimiter *middleware.RateLimiter
	Metrics     MetricsExporter
}

// MetricsExporter instruments requests and serves the /metrics endpoint.
// Implemented by *metrics.Metrics.
type MetricsExporter interface {
	Middleware(next http.Handler) http.Handler
	Handler() http.Handler
}

// New creates and returns the configured Chi router.
func New(d Deps) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware)
	}

	r.Get("/health", healthHandler)
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.SecureHeaders)

		r.Get("/templates", d.Catalog.Templates)
		r.Get("/options", d.Catalog.Options)
		r.Get("/ai/status", d.Catalog.AIStatus)

		r.Route("/websites", func(r chi.Router) {
			r.Get("/", d.Websites.List)
			r.Get("/{id}", d.Websites.Get)
			r.Get("/{id}/download", d.Websites.Download)

			// Generation endpoints call AI providers and are rate limited.
			r.Group(func(r chi.Router) {
				if d.RateLimiter != nil {
					r.Use(d.RateLimiter.Middleware)
				}
				r.Post("/", d.Websites.Create)
				r.Post("/{id}/regenerate", d.Websites.Regenerate)
			})
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
