package analytics

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned before any query runs when no API key was given.
var ErrMissingAPIKey = errors.New("API Key is required")

// QueryError wraps a failure raised while executing a built query.
type QueryError struct {
	Op  string // logs, channel_stats, model_stats, overview
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s query: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// IsQueryError reports whether err came from the data layer.
func IsQueryError(err error) bool {
	var qe *QueryError
	return errors.As(err, &qe)
}
