package models

import (
	"testing"
	"time"
)

func TestSession_IsExpired(t *testing.T) {
	tests := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{
			name:      "not expired",
			expiresAt: time.Now().Add(1 * time.Hour),
			want:      false,
		},
		{
			name:      "already expired",
			expiresAt: time.Now().Add(-1 * time.Second),
			want:      true,
		},
		{
			name:      "zero time is expired",
			expiresAt: time.Time{},
			want:      true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Session{ExpiresAt: tt.expiresAt}
			if got := s.IsExpired(); got != tt.want {
				t.Errorf("IsExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUser_HasPassword(t *testing.T) {
	if (&User{}).HasPassword() {
		t.Error("user without hash should not have a password")
	}
	if !(&User{PasswordHash: "$2a$10$abc"}).HasPassword() {
		t.Error("user with hash should have a password")
	}
}

func TestAccount_TableName(t *testing.T) {
	if got := (Account{}).TableName(); got != "accounts" {
		t.Errorf("TableName() = %q, want %q", got, "accounts")
	}
}
