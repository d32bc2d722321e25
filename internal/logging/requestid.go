// Package logging carries a request ID through contexts so that the log lines
// of one HTTP request can be correlated.
package logging

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// HeaderRequestID is honored on incoming requests and echoed on responses.
const HeaderRequestID = "X-Request-ID"

type contextKey string

const requestIDKey contextKey = "requestId"

// GenerateRequestID creates a new random request ID.
func GenerateRequestID() string {
	return uuid.NewString()
}

// RequestIDFromHeader returns the client supplied X-Request-ID, or a freshly
// generated one.
func RequestIDFromHeader(r *http.Request) string {
	if id := r.Header.Get(HeaderRequestID); id != "" {
		return id
	}
	return GenerateRequestID()
}

// WithRequestID injects a request ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID retrieves the request ID from the context.
// Returns "-" if not found, so log lines keep a stable shape.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok && id != "" {
		return id
	}
	return "-"
}
