package models

// ChannelStat records one upstream attempt for a request. A request may have
// none (treated as failed) or several (successful if any attempt succeeded).
type ChannelStat struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	RequestID string `gorm:"column:request_id;index" json:"request_id"`
	Success   bool   `gorm:"column:success" json:"success"`
	Provider  string `gorm:"column:provider" json:"provider"`
}

func (ChannelStat) TableName() string { return "channel_stats" }
