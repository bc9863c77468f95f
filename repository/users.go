package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/modernblog/modernblog/models"
	"github.com/modernblog/modernblog/utils"
)

// UserRepository looks up authors for login verification and profile pages.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a UserRepository bound to the handle.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByUsername returns the user with the given username, or (nil, nil).
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID returns the user with the given id, or (nil, nil).
func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Take(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// VerifyPassword checks username/password against the stored hash and
// returns the user on success. Unknown users and wrong passwords both
// return (nil, nil); only storage faults are errors.
func (r *UserRepository) VerifyPassword(username, password string) (*models.User, error) {
	user, err := r.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if !utils.CheckPassword(user.PasswordHash, password) {
		return nil, nil
	}
	return user, nil
}
