package middleware

import (
	"net/http"

	"github.com/pysugar/usage-insight/internal/logging"
)

// RequestID stores the request's X-Request-ID (or a generated one) in the
// context and echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := logging.RequestIDFromHeader(r)
		w.Header().Set(logging.HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(logging.WithRequestID(r.Context(), id)))
	})
}
