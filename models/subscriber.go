package models

import "time"

// Subscriber statuses.
const (
	SubscriberActive       = "active"
	SubscriberUnsubscribed = "unsubscribed"
)

// Subscriber is a newsletter signup. Email is unique; re-subscribing an
// existing address is an expected, recoverable condition.
type Subscriber struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Status    string    `gorm:"size:16;not null;default:'active'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
