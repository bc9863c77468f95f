package models

import "time"

// Visit is one append-only analytics record. PostID is nil for page views
// that are not tied to a specific post. Rows are never mutated or deleted.
type Visit struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    *uint     `gorm:"index" json:"post_id"`
	VisitorIP string    `gorm:"size:45" json:"visitor_ip"`
	UserAgent string    `gorm:"size:512" json:"user_agent"`
	Referrer  string    `gorm:"size:512" json:"referrer"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the historical table name used by the analytics queries.
func (Visit) TableName() string { return "analytics" }
