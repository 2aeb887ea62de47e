package models

import (
	"time"
)

// Session is a signed-in browser. Only the SHA-256 of the cookie token is
// stored.
type Session struct {
	ID        string `gorm:"primaryKey"`
	TokenHash string `gorm:"uniqueIndex;not null"`
	UserID    string `gorm:"index;not null"`
	ExpiresAt time.Time
	IPAddress string
	UserAgent string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsExpired returns true if the session lifetime has elapsed
func (s *Session) IsExpired() bool {
	return !time.Now().Before(s.ExpiresAt)
}
