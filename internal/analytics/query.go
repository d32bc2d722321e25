package analytics

import (
	"fmt"
	"strings"

	"github.com/pysugar/usage-insight/internal/config"
	"github.com/pysugar/usage-insight/internal/db/models"
)

// Query is a parameterized SQL statement. Placeholders are "?" and Args holds
// one value per placeholder, in the order they appear in SQL.
type Query struct {
	SQL  string
	Args []interface{}
}

// Dialect selects the SQL flavor for the few expressions that are not portable.
type Dialect string

const (
	DialectPostgres Dialect = config.DriverPostgres
	DialectSQLite   Dialect = config.DriverSQLite
)

// ParseDialect maps a gorm dialector name onto a Dialect. Unknown names use
// the Postgres flavor.
func ParseDialect(name string) Dialect {
	if strings.EqualFold(name, string(DialectSQLite)) {
		return DialectSQLite
	}
	return DialectPostgres
}

// anySucceeded is the per-request OR over all outcome rows, with a missing
// outcome counting as false.
func (d Dialect) anySucceeded() string {
	if d == DialectSQLite {
		return "MAX(COALESCE(c.success, 0))"
	}
	return "BOOL_OR(COALESCE(c.success, false))"
}

// clauseList accumulates predicates together with their arguments so the
// placeholder order and the argument order cannot drift apart.
type clauseList struct {
	clauses []string
	args    []interface{}
}

func (l *clauseList) add(clause string, args ...interface{}) {
	l.clauses = append(l.clauses, clause)
	l.args = append(l.args, args...)
}

func (l *clauseList) empty() bool { return len(l.clauses) == 0 }

func (l *clauseList) join() string {
	return strings.Join(l.clauses, " AND ")
}

// scope returns the predicates every endpoint applies.
func scope(apiKey string) *clauseList {
	where := &clauseList{}
	where.add("r.api_key = ?", apiKey)
	where.add("r.endpoint = ?", models.ChatCompletionsEndpoint)
	return where
}

const logColumns = `r.timestamp, r.model, r.provider, r.process_time, r.first_response_time,
		r.prompt_tokens, r.completion_tokens, r.total_tokens, r.text`

// BuildLogsQuery selects one page of requests, newest first. It asks for
// Limit+1 rows so the caller can tell whether another page exists.
func BuildLogsQuery(d Dialect, f LogFilter) Query {
	where := scope(f.APIKey)
	if f.Model != "" {
		where.add("r.model = ?", f.Model)
	}
	if f.Provider != "" {
		where.add("r.provider = ?", f.Provider)
	}

	having := &clauseList{}
	if f.Status != nil {
		having.add(d.anySucceeded()+" = ?", *f.Status)
	}

	var sb strings.Builder
	sb.WriteString(`
		SELECT
			r.timestamp,
			` + d.anySucceeded() + ` AS success,
			r.model,
			r.provider,
			r.process_time,
			r.first_response_time,
			r.prompt_tokens,
			r.completion_tokens,
			r.total_tokens,
			r.text
		FROM request_stats r
		LEFT JOIN channel_stats c ON r.request_id = c.request_id
		WHERE `)
	sb.WriteString(where.join())
	sb.WriteString(`
		GROUP BY r.request_id, ` + logColumns)
	if !having.empty() {
		sb.WriteString(`
		HAVING `)
		sb.WriteString(having.join())
	}
	sb.WriteString(`
		ORDER BY r.timestamp DESC
		LIMIT ? OFFSET ?`)

	args := make([]interface{}, 0, len(where.args)+len(having.args)+2)
	args = append(args, where.args...)
	args = append(args, having.args...)
	args = append(args, f.Limit+1, f.Offset())

	return Query{SQL: sb.String(), Args: args}
}

// usageAggregates is the projection shared by the channel and model
// breakdowns. Both verbs take the request counting expression.
const usageAggregates = `
			%s AS requests,
			COALESCE(SUM(CASE WHEN c.success = true THEN 1 ELSE 0 END), 0) AS successes,
			COALESCE(SUM(CASE WHEN c.success = true THEN 0 ELSE 1 END), 0) AS failures,
			COALESCE(
				CAST(SUM(CASE WHEN c.success = true THEN 1 ELSE 0 END) AS FLOAT) / NULLIF(%s, 0),
				0
			) AS success_rate,
			COALESCE(SUM(r.total_tokens), 0) AS total_tokens,
			COALESCE(SUM(r.prompt_tokens), 0) AS prompt_tokens,
			COALESCE(SUM(r.completion_tokens), 0) AS completion_tokens,
			COALESCE(AVG(r.process_time), 0) AS avg_process_time,
			COALESCE(AVG(r.first_response_time), 0) AS avg_first_response_time`

func buildBreakdownQuery(groupColumn, countExpr, apiKey string) Query {
	where := scope(apiKey)
	projection := fmt.Sprintf(usageAggregates, countExpr, countExpr)

	sql := `
		SELECT
			r.` + groupColumn + `,` + projection + `
		FROM request_stats r
		LEFT JOIN channel_stats c ON r.request_id = c.request_id
		WHERE ` + where.join() + `
		GROUP BY r.` + groupColumn + `
		ORDER BY requests DESC`

	return Query{SQL: sql, Args: where.args}
}

// BuildChannelStatsQuery aggregates usage per provider. Every joined outcome
// row counts as a request; a request without an outcome counts as a failure.
func BuildChannelStatsQuery(apiKey string) Query {
	return buildBreakdownQuery("provider", "COUNT(*)", apiKey)
}

// BuildModelStatsQuery aggregates usage per model, counting each request once
// no matter how many outcome rows it joined.
func BuildModelStatsQuery(apiKey string) Query {
	return buildBreakdownQuery("model", "COUNT(DISTINCT r.request_id)", apiKey)
}

// BuildOverviewQuery aggregates all requests of the key into a single row.
func BuildOverviewQuery(apiKey string) Query {
	where := scope(apiKey)
	sql := `
		SELECT
			COUNT(DISTINCT r.request_id) AS requests,
			COALESCE(SUM(r.total_tokens), 0) AS total_tokens,
			COALESCE(SUM(r.prompt_tokens), 0) AS prompt_tokens,
			COALESCE(SUM(r.completion_tokens), 0) AS completion_tokens,
			COALESCE(AVG(r.process_time), 0) AS avg_process_time,
			COALESCE(AVG(r.first_response_time), 0) AS avg_first_response_time
		FROM request_stats r
		WHERE ` + where.join()

	return Query{SQL: sql, Args: where.args}
}
