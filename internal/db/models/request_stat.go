package models

import "time"

// ChatCompletionsEndpoint is the only endpoint value the analytics queries read.
const ChatCompletionsEndpoint = "POST /v1/chat/completions"

// RequestStat is one ingested API request. Rows are written by the ingestion
// pipeline and never modified here.
type RequestStat struct {
	RequestID         string    `gorm:"column:request_id;primaryKey" json:"request_id"`
	APIKey            string    `gorm:"column:api_key;index:idx_request_stats_key_endpoint" json:"api_key"`
	Endpoint          string    `gorm:"column:endpoint;index:idx_request_stats_key_endpoint" json:"endpoint"`
	Timestamp         time.Time `gorm:"column:timestamp;index" json:"timestamp"`
	Model             string    `gorm:"column:model;index" json:"model"`
	Provider          string    `gorm:"column:provider;index" json:"provider"`
	ProcessTime       float64   `gorm:"column:process_time" json:"process_time"`               // milliseconds
	FirstResponseTime float64   `gorm:"column:first_response_time" json:"first_response_time"` // milliseconds
	PromptTokens      int64     `gorm:"column:prompt_tokens" json:"prompt_tokens"`
	CompletionTokens  int64     `gorm:"column:completion_tokens" json:"completion_tokens"`
	TotalTokens       int64     `gorm:"column:total_tokens" json:"total_tokens"`
	Text              string    `gorm:"column:text;type:text" json:"text"`
}

func (RequestStat) TableName() string { return "request_stats" }
