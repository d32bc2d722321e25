package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/pysugar/usage-insight/internal/api/respond"
	"github.com/pysugar/usage-insight/internal/version"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// VersionHandler returns version information as JSON
// GET /api/version
func VersionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, version.Current())
	}
}

// HealthHandler pings the database
// GET /healthz
func HealthHandler(p Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := p.Ping(ctx); err != nil {
			log.Printf("[Health] Database ping failed: %v", err)
			respond.JSON(w, http.StatusServiceUnavailable, map[string]interface{}{
				"status": "unavailable",
				"error":  err.Error(),
			})
			return
		}
		respond.JSON(w, http.StatusOK, map[string]interface{}{"status": "ok"})
	}
}
