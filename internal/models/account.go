package models

import (
	"time"
)

// Account links a user to an external identity such as a Google account.
type Account struct {
	ID             string `gorm:"primaryKey"`
	UserID         string `gorm:"not null;uniqueIndex:idx_account_user_provider,priority:1"`
	Provider       string `gorm:"not null;uniqueIndex:idx_account_provider_user,priority:1;uniqueIndex:idx_account_user_provider,priority:2"` // "google"
	ProviderUserID string `gorm:"not null;uniqueIndex:idx_account_provider_user,priority:2"`

	// Snapshot of the provider profile at last sign-in
	ProviderEmail string
	AvatarURL     string

	// Token storage (should be encrypted in production)
	AccessToken  string `gorm:"type:text"`
	RefreshToken string `gorm:"type:text"`
	TokenExpiry  time.Time

	LastUsedAt time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Account) TableName() string {
	return "accounts"
}
