package models

import (
	"time"
)

type User struct {
	ID            string `gorm:"primaryKey"`
	Name          string `gorm:"not null"`
	Email         string `gorm:"uniqueIndex;not null"` // stored lower-cased
	EmailVerified bool
	PasswordHash  string // Google-only users have empty password
	Image         string // avatar URL, empty when absent

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPassword reports whether the user can sign in with email and password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}
