// Package metrics exposes Prometheus collectors for the HTTP layer and the
// analytics queries.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "insight_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"status", "route"})
	HTTPRequestDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "insight_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
	QueryDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "insight_query_duration_seconds",
		Help:    "Duration of analytics queries in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"op"})
	QueryErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "insight_query_errors_total",
		Help: "Total number of failed analytics queries",
	}, []string{"op"})
)

// ObserveQuery records the outcome of one analytics query.
func ObserveQuery(op string, elapsed time.Duration, err error) {
	QueryDurationSeconds.WithLabelValues(op).Observe(elapsed.Seconds())
	if err != nil {
		QueryErrorsTotal.WithLabelValues(op).Inc()
	}
}

// Middleware counts requests per matched chi route pattern.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		HTTPRequestsTotal.WithLabelValues(strconv.Itoa(status), route).Inc()
		HTTPRequestDurationSeconds.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
