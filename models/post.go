package models

import "time"

// Post statuses. Only published posts are visible on the public site.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusScheduled = "scheduled"
)

// Post represents a blog post. Content is stored as markdown source and
// rendered at the presentation boundary.
type Post struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	Slug          string    `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	Excerpt       string    `gorm:"type:text" json:"excerpt"`
	CategoryID    *uint     `gorm:"index" json:"category_id"`
	AuthorID      *uint     `gorm:"index" json:"author_id"`
	Status        string    `gorm:"size:16;not null;default:'draft';index" json:"status"`
	FeaturedImage string    `gorm:"size:512" json:"featured_image"`
	Views         int64     `gorm:"not null;default:0" json:"views"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
