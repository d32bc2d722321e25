package handlers

import (
	"net/http"

	"github.com/pysugar/usage-insight/internal/analytics"
	"github.com/pysugar/usage-insight/internal/api/middleware"
	"github.com/pysugar/usage-insight/internal/api/respond"
)

// ChannelStatsHandler handles GET /api/stats/channels
func ChannelStatsHandler(svc *analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.ChannelStats(r.Context(), middleware.APIKey(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, stats)
	}
}

// ModelStatsHandler handles GET /api/stats/models
func ModelStatsHandler(svc *analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.ModelStats(r.Context(), middleware.APIKey(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, stats)
	}
}

// OverviewHandler handles GET /api/stats/overview
func OverviewHandler(svc *analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overview, err := svc.Overview(r.Context(), middleware.APIKey(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, overview)
	}
}
