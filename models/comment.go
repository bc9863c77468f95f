package models

import "time"

// Comment statuses. Only approved comments are publicly visible.
const (
	CommentPending  = "pending"
	CommentApproved = "approved"
)

// Comment represents a reader reply to a post. UserID is set only when a
// registered user authored the comment; anonymous readers supply a name.
type Comment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PostID     uint      `gorm:"index;not null" json:"post_id"`
	UserID     *uint     `gorm:"index" json:"user_id"`
	AuthorName string    `gorm:"size:64;not null;default:'Anonymous'" json:"author_name"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Status     string    `gorm:"size:16;not null;default:'approved'" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
