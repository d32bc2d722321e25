package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/pysugar/usage-insight/internal/api/respond"
)

type contextKey string

const (
	apiKeyCtxKey contextKey = "apiKey"
	queryCtxKey  contextKey = "query"
)

// APIKeyAuth requires an API key on every request it wraps. The key is taken
// from the apiKey query parameter, falling back to the X-API-Key header and
// then to an Authorization bearer token. Requests without one are rejected
// with 400 before any handler (and thus any query) runs.
//
// Only presence is checked; the key scopes the data, it does not grant access.
func APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		values, err := url.ParseQuery(r.URL.RawQuery)
		if err != nil {
			respond.Error(w, http.StatusInternalServerError, respond.MsgInternalServer, err.Error())
			return
		}

		apiKey := values.Get("apiKey")
		if apiKey == "" {
			apiKey = r.Header.Get("X-API-Key")
		}
		if apiKey == "" {
			if authHeader := r.Header.Get("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
				apiKey = strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
			}
		}

		if apiKey == "" {
			respond.Error(w, http.StatusBadRequest, respond.MsgMissingAPIKey, "")
			return
		}

		ctx := context.WithValue(r.Context(), apiKeyCtxKey, apiKey)
		ctx = context.WithValue(ctx, queryCtxKey, values)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// APIKey returns the key stored by APIKeyAuth, or "" outside of it.
func APIKey(ctx context.Context) string {
	key, _ := ctx.Value(apiKeyCtxKey).(string)
	return key
}

// Query returns the query parameters parsed by APIKeyAuth, or nil outside of it.
func Query(ctx context.Context) url.Values {
	values, _ := ctx.Value(queryCtxKey).(url.Values)
	return values
}
