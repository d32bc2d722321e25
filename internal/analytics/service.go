// Package analytics answers the read-only usage queries: request logs,
// per-channel and per-model breakdowns, and the overview totals of an API key.
package analytics

import (
	"context"
	"log"
	"time"

	"github.com/pysugar/usage-insight/internal/db"
	"github.com/pysugar/usage-insight/internal/logging"
	"github.com/pysugar/usage-insight/internal/metrics"
	"github.com/pysugar/usage-insight/internal/util"
)

const (
	OpLogs         = "logs"
	OpChannelStats = "channel_stats"
	OpModelStats   = "model_stats"
	OpOverview     = "overview"
)

// Service builds and runs the analytics queries. It holds no per-request
// state and is safe for concurrent use.
type Service struct {
	querier db.Querier
	dialect Dialect
}

// NewService creates a Service reading through querier.
func NewService(querier db.Querier) *Service {
	return &Service{
		querier: querier,
		dialect: ParseDialect(querier.Dialect()),
	}
}

// Logs returns one page of request logs matching f.
func (s *Service) Logs(ctx context.Context, f LogFilter) (*LogPage, error) {
	if f.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	var rows []LogRow
	if err := s.run(ctx, OpLogs, BuildLogsQuery(s.dialect, f), &rows); err != nil {
		return nil, err
	}

	logs, hasNext := paginate(rows, f.Limit)
	if logs == nil {
		logs = []LogRow{}
	}
	return &LogPage{Logs: logs, HasNextPage: hasNext}, nil
}

// ChannelStats returns usage grouped by provider, busiest first.
func (s *Service) ChannelStats(ctx context.Context, apiKey string) ([]ChannelStat, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	stats := []ChannelStat{}
	if err := s.run(ctx, OpChannelStats, BuildChannelStatsQuery(apiKey), &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// ModelStats returns usage grouped by model, busiest first.
func (s *Service) ModelStats(ctx context.Context, apiKey string) ([]ModelStat, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	stats := []ModelStat{}
	if err := s.run(ctx, OpModelStats, BuildModelStatsQuery(apiKey), &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// Overview returns the totals for apiKey. A key without any requests gets a
// zero-valued record.
func (s *Service) Overview(ctx context.Context, apiKey string) (*OverviewStat, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	var rows []OverviewStat
	if err := s.run(ctx, OpOverview, BuildOverviewQuery(apiKey), &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &OverviewStat{}, nil
	}
	return &rows[0], nil
}

func (s *Service) run(ctx context.Context, op string, q Query, dest interface{}) error {
	start := time.Now()
	err := s.querier.Query(ctx, dest, q.SQL, q.Args...)
	metrics.ObserveQuery(op, time.Since(start), err)

	if err != nil {
		log.Printf("[Analytics] %s query failed (req=%s): %s",
			op, logging.GetRequestID(ctx), util.TruncateLog(err.Error(), util.DefaultLogMaxLen))
		return &QueryError{Op: op, Err: err}
	}
	return nil
}
