package analytics

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 30
	MaxLimit     = 100
)

// LogFilter is the validated filter set of a logs request.
type LogFilter struct {
	APIKey   string
	Page     int
	Limit    int
	Model    string
	Provider string
	Status   *bool // nil means no status filter
}

// Offset is the number of rows skipped before the requested page.
func (f LogFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// ParseLogFilter validates the query parameters of a logs request.
// Unparsable page and limit values fall back to their defaults.
func ParseLogFilter(apiKey string, values url.Values) (LogFilter, error) {
	if apiKey == "" {
		return LogFilter{}, ErrMissingAPIKey
	}

	return LogFilter{
		APIKey:   apiKey,
		Page:     ParsePage(values.Get("page")),
		Limit:    ParseLimit(values.Get("limit")),
		Model:    values.Get("model"),
		Provider: values.Get("provider"),
		Status:   ParseTriState(values.Get("status")),
	}, nil
}

// ParsePage returns the 1-based page number. Pages below 1 become 1 so the
// offset can never go negative.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return DefaultPage
	}
	return page
}

// ParseLimit returns the page size clamped into [1, MaxLimit].
func ParseLimit(raw string) int {
	limit, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		limit = DefaultLimit
	}
	return min(max(limit, 1), MaxLimit)
}

// ParseTriState maps "true"/"false" (any case) to a boolean and anything else
// to nil.
func ParseTriState(raw string) *bool {
	var v bool
	switch strings.ToLower(raw) {
	case "true":
		v = true
	case "false":
		v = false
	default:
		return nil
	}
	return &v
}
