// Package analytics records visit events and computes all-time summary
// counts. Visit rows are append-only; view counters only ever grow.
package analytics

import (
	"gorm.io/gorm"

	"github.com/modernblog/modernblog/models"
)

// Aggregator writes visit records and view counters against the store.
type Aggregator struct {
	db *gorm.DB
}

// NewAggregator creates an Aggregator bound to the given handle.
func NewAggregator(db *gorm.DB) *Aggregator {
	return &Aggregator{db: db}
}

// RecordVisit appends one visit record. Nothing is deduplicated or
// rate-limited here; every request counts, bots included.
func (a *Aggregator) RecordVisit(postID *uint, ip, userAgent, referrer string) error {
	visit := models.Visit{
		PostID:    postID,
		VisitorIP: ip,
		UserAgent: userAgent,
		Referrer:  referrer,
	}
	return a.db.Create(&visit).Error
}

// IncrementViews adds one to a post's view counter. The update is relative
// (views = views + 1) so concurrent increments compose without lost
// updates.
func (a *Aggregator) IncrementViews(postID uint) error {
	return a.db.Model(&models.Post{}).
		Where("id = ?", postID).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

// Summary holds the three all-time totals shown on the admin dashboard.
type Summary struct {
	TotalVisits      int64 `json:"total_visits"`
	TotalPosts       int64 `json:"total_posts"`
	TotalSubscribers int64 `json:"total_subscribers"`
}

// Summarize runs three independent aggregate queries: all visits, published
// posts, and active subscribers. No time windowing.
func (a *Aggregator) Summarize() (Summary, error) {
	var s Summary
	if err := a.db.Model(&models.Visit{}).Count(&s.TotalVisits).Error; err != nil {
		return Summary{}, err
	}
	if err := a.db.Model(&models.Post{}).
		Where("status = ?", models.StatusPublished).
		Count(&s.TotalPosts).Error; err != nil {
		return Summary{}, err
	}
	if err := a.db.Model(&models.Subscriber{}).
		Where("status = ?", models.SubscriberActive).
		Count(&s.TotalSubscribers).Error; err != nil {
		return Summary{}, err
	}
	return s, nil
}
