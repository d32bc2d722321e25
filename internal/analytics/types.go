package analytics

import "time"

// LogRow is one request in the logs listing. Success is true when any
// recorded outcome of the request succeeded.
type LogRow struct {
	Timestamp         time.Time `gorm:"column:timestamp" json:"timestamp"`
	Success           bool      `gorm:"column:success" json:"success"`
	Model             string    `gorm:"column:model" json:"model"`
	Provider          string    `gorm:"column:provider" json:"provider"`
	ProcessTime       float64   `gorm:"column:process_time" json:"processTime"`
	FirstResponseTime float64   `gorm:"column:first_response_time" json:"firstResponseTime"`
	PromptTokens      int64     `gorm:"column:prompt_tokens" json:"promptTokens"`
	CompletionTokens  int64     `gorm:"column:completion_tokens" json:"completionTokens"`
	TotalTokens       int64     `gorm:"column:total_tokens" json:"totalTokens"`
	Text              string    `gorm:"column:text" json:"text"`
}

// LogPage is the body of GET /api/logs.
type LogPage struct {
	Logs        []LogRow `json:"logs"`
	HasNextPage bool     `json:"hasNextPage"`
}

// UsageAggregate holds the metrics shared by the per-channel and per-model
// breakdowns.
type UsageAggregate struct {
	Requests             int64   `gorm:"column:requests" json:"requests"`
	Successes            int64   `gorm:"column:successes" json:"successes"`
	Failures             int64   `gorm:"column:failures" json:"failures"`
	SuccessRate          float64 `gorm:"column:success_rate" json:"successRate"`
	TotalTokens          int64   `gorm:"column:total_tokens" json:"totalTokens"`
	PromptTokens         int64   `gorm:"column:prompt_tokens" json:"promptTokens"`
	CompletionTokens     int64   `gorm:"column:completion_tokens" json:"completionTokens"`
	AvgProcessTime       float64 `gorm:"column:avg_process_time" json:"avgProcessTime"`
	AvgFirstResponseTime float64 `gorm:"column:avg_first_response_time" json:"avgFirstResponseTime"`
}

// ChannelStat is one row of GET /api/stats/channels.
type ChannelStat struct {
	Provider       string `gorm:"column:provider" json:"provider"`
	UsageAggregate `gorm:"embedded"`
}

// ModelStat is one row of GET /api/stats/models.
type ModelStat struct {
	Model          string `gorm:"column:model" json:"model"`
	UsageAggregate `gorm:"embedded"`
}

// OverviewStat is the body of GET /api/stats/overview.
type OverviewStat struct {
	Requests             int64   `gorm:"column:requests" json:"requests"`
	TotalTokens          int64   `gorm:"column:total_tokens" json:"totalTokens"`
	PromptTokens         int64   `gorm:"column:prompt_tokens" json:"promptTokens"`
	CompletionTokens     int64   `gorm:"column:completion_tokens" json:"completionTokens"`
	AvgProcessTime       float64 `gorm:"column:avg_process_time" json:"avgProcessTime"`
	AvgFirstResponseTime float64 `gorm:"column:avg_first_response_time" json:"avgFirstResponseTime"`
}
