// Package respond writes JSON success and error bodies.
package respond

import (
	"encoding/json"
	"log"
	"net/http"
)

const (
	MsgMissingAPIKey  = "API Key is required"
	MsgQueryFailed    = "Database query failed"
	MsgInternalServer = "Internal server error"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[HTTP] Failed to encode response: %v", err)
	}
}

// Error writes an error body. details is omitted when empty.
func Error(w http.ResponseWriter, status int, msg, details string) {
	if msg == "" {
		msg = http.StatusText(status)
	}
	JSON(w, status, ErrorBody{Error: msg, Details: details})
}
