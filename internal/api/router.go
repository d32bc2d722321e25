// Package api wires the HTTP surface of the analytics service.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/pysugar/usage-insight/internal/analytics"
	"github.com/pysugar/usage-insight/internal/api/handlers"
	"github.com/pysugar/usage-insight/internal/api/middleware"
	"github.com/pysugar/usage-insight/internal/metrics"
)

// NewRouter builds the chi router serving the analytics endpoints.
func NewRouter(svc *analytics.Service, pinger handlers.Pinger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	// ============================================
	// Public Routes (No API Key)
	// ============================================

	r.Get("/healthz", handlers.HealthHandler(pinger))
	r.Get("/api/version", handlers.VersionHandler())
	r.Handle("/metrics", metrics.Handler())

	// ============================================
	// Analytics Routes (API Key Required)
	// ============================================

	r.Group(func(r chi.Router) {
		r.Use(middleware.APIKeyAuth)
		r.Get("/api/logs", handlers.LogsHandler(svc))
		r.Route("/api/stats", func(r chi.Router) {
			r.Get("/channels", handlers.ChannelStatsHandler(svc))
			r.Get("/models", handlers.ModelStatsHandler(svc))
			r.Get("/overview", handlers.OverviewHandler(svc))
		})
	})

	return r
}
