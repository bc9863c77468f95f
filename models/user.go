package models

import "time"

// User is the blog author/admin. Passwords are stored as unsalted SHA-256
// hex digests for compatibility with the existing database; this is a known
// weakness of the schema, not something the login path may silently change.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:64;not null" json:"-"`
	Bio          string    `gorm:"size:512" json:"bio"`
	Role         string    `gorm:"size:16;not null;default:'admin'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
