package handlers

import (
	"net/http"

	"github.com/pysugar/usage-insight/internal/analytics"
	"github.com/pysugar/usage-insight/internal/api/middleware"
	"github.com/pysugar/usage-insight/internal/api/respond"
)

// LogsHandler handles GET /api/logs
func LogsHandler(svc *analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := analytics.ParseLogFilter(middleware.APIKey(r.Context()), middleware.Query(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}

		page, err := svc.Logs(r.Context(), filter)
		if err != nil {
			writeError(w, err)
			return
		}

		respond.JSON(w, http.StatusOK, page)
	}
}
