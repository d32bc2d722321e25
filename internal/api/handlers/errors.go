package handlers

import (
	"errors"
	"net/http"

	"github.com/pysugar/usage-insight/internal/analytics"
	"github.com/pysugar/usage-insight/internal/api/respond"
)

// writeError maps an analytics error onto its HTTP status and body:
// missing key is 400, a failed query is 500 with the driver message,
// anything else is a generic 500.
func writeError(w http.ResponseWriter, err error) {
	var qe *analytics.QueryError
	switch {
	case errors.Is(err, analytics.ErrMissingAPIKey):
		respond.Error(w, http.StatusBadRequest, respond.MsgMissingAPIKey, "")
	case errors.As(err, &qe):
		respond.Error(w, http.StatusInternalServerError, respond.MsgQueryFailed, qe.Err.Error())
	default:
		respond.Error(w, http.StatusInternalServerError, respond.MsgInternalServer, err.Error())
	}
}
