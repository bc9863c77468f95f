package repository

import (
	"gorm.io/gorm"

	"github.com/modernblog/modernblog/models"
)

// SubscriberRepository manages newsletter signups.
type SubscriberRepository struct {
	db *gorm.DB
}

// NewSubscriberRepository creates a SubscriberRepository bound to the handle.
func NewSubscriberRepository(db *gorm.DB) *SubscriberRepository {
	return &SubscriberRepository{db: db}
}

// Add inserts a subscriber. A duplicate email is an expected condition and
// returns (false, nil). Storage errors propagate.
func (r *SubscriberRepository) Add(email string) (bool, error) {
	sub := models.Subscriber{Email: email, Status: models.SubscriberActive}
	if err := r.db.Create(&sub).Error; err != nil {
		if isDuplicateKey(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Unsubscribe marks the subscriber with the given email as unsubscribed.
// Unknown emails are a no-op.
func (r *SubscriberRepository) Unsubscribe(email string) error {
	return r.db.Model(&models.Subscriber{}).
		Where("email = ?", email).
		Update("status", models.SubscriberUnsubscribed).Error
}

// ActiveCount returns the number of active subscribers.
func (r *SubscriberRepository) ActiveCount() (int64, error) {
	var count int64
	err := r.db.Model(&models.Subscriber{}).
		Where("status = ?", models.SubscriberActive).
		Count(&count).Error
	return count, err
}
