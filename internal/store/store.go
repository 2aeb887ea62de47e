package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/devFelipeMarcos/login-vittaSystem/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Store struct {
	db *gorm.DB
}

// New opens the database, runs migrations and returns a ready Store.
func New(ctx context.Context, driver, dsn string) (*Store, error) {
	dialector, err := GetDialector(driver, dsn)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if driver == "sqlite" {
		// SQLite serializes writers; a single connection also keeps
		// ":memory:" databases consistent across queries.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Account{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Store{db: db}, nil
}

// NormalizeEmail is the canonical form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ensureID(id *string) {
	if *id == "" {
		*id = uuid.New().String()
	}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecordNotFound
	}
	return err
}

// User operations

func (s *Store) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// GetUserByEmail finds a user by email address
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("email = ?", NormalizeEmail(email)).
		First(&user).
		Error
	if err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// CreateUser inserts a user, returning ErrEmailTaken on a duplicate email.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	ensureID(&user.ID)
	user.Email = NormalizeEmail(user.Email)
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

// UpdateUser updates an existing user
func (s *Store) UpdateUser(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Save(user).Error
}

// Session operations

func (s *Store) CreateSession(ctx context.Context, session *models.Session) error {
	ensureID(&session.ID)
	return s.db.WithContext(ctx).Create(session).Error
}

// GetSessionByTokenHash returns the session together with its user.
func (s *Store) GetSessionByTokenHash(
	ctx context.Context,
	tokenHash string,
) (*models.Session, *models.User, error) {
	var session models.Session
	err := s.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		First(&session).
		Error
	if err != nil {
		return nil, nil, notFound(err)
	}

	user, err := s.GetUserByID(ctx, session.UserID)
	if err != nil {
		return nil, nil, err
	}
	return &session, user, nil
}

func (s *Store) DeleteSessionByTokenHash(ctx context.Context, tokenHash string) error {
	return s.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		Delete(&models.Session{}).
		Error
}

// DeleteExpiredSessions removes sessions past their expiry and returns how
// many were deleted.
func (s *Store) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&models.Session{})
	return result.RowsAffected, result.Error
}

// CountActiveSessions counts sessions that have not yet expired.
func (s *Store) CountActiveSessions(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("expires_at > ?", time.Now()).
		Count(&count).
		Error
	return count, err
}

// Account operations

// GetAccount finds a linked account by provider and provider user ID
func (s *Store) GetAccount(
	ctx context.Context,
	provider, providerUserID string,
) (*models.Account, error) {
	var account models.Account
	err := s.db.WithContext(ctx).
		Where("provider = ? AND provider_user_id = ?", provider, providerUserID).
		First(&account).
		Error
	if err != nil {
		return nil, notFound(err)
	}
	return &account, nil
}

func (s *Store) CreateAccount(ctx context.Context, account *models.Account) error {
	ensureID(&account.ID)
	return s.db.WithContext(ctx).Create(account).Error
}

func (s *Store) UpdateAccount(ctx context.Context, account *models.Account) error {
	return s.db.WithContext(ctx).Save(account).Error
}

// CreateUserWithAccount creates a user and its first linked account atomically.
func (s *Store) CreateUserWithAccount(
	ctx context.Context,
	user *models.User,
	account *models.Account,
) error {
	ensureID(&user.ID)
	ensureID(&account.ID)
	user.Email = NormalizeEmail(user.Email)
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrEmailTaken
			}
			return err
		}
		account.UserID = user.ID
		return tx.Create(account).Error
	})
}

// Health checks the database connection
func (s *Store) Health(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
