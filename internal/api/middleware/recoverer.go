package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/pysugar/usage-insight/internal/api/respond"
	"github.com/pysugar/usage-insight/internal/logging"
)

// Recoverer turns a panic in a handler into a 500 JSON error body.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			log.Printf("[HTTP] panic serving %s %s (req=%s): %v\n%s",
				r.Method, r.URL.Path, logging.GetRequestID(r.Context()), rec, debug.Stack())

			var details string
			switch v := rec.(type) {
			case error:
				details = v.Error()
			case string:
				details = v
			}
			respond.Error(w, http.StatusInternalServerError, respond.MsgInternalServer, details)
		}()

		next.ServeHTTP(w, r)
	})
}
