package auth

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/devFelipeMarcos/login-vittaSystem/internal/core"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/models"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/store"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/util"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
)

const sessionTokenBytes = 32

var _ core.AuthProvider = (*LocalProvider)(nil)

// passwordDigest feeds bcrypt a fixed-length input. bcrypt rejects
// passwords over 72 bytes.
func passwordDigest(password string) []byte {
	return []byte(util.SHA256Hex(password))
}

// LocalProvider keeps users and sessions in the application database.
type LocalProvider struct {
	store      *store.Store
	cookieName string
	sessionTTL time.Duration

	google *GoogleOAuth

	sessionCache    core.Cache[core.Session]
	sessionCacheTTL time.Duration
}

// LocalOption configures optional LocalProvider features.
type LocalOption func(*LocalProvider)

// WithGoogle enables Google sign-in.
func WithGoogle(g *GoogleOAuth) LocalOption {
	return func(p *LocalProvider) {
		p.google = g
	}
}

// WithSessionCache caches session lookups by token hash for ttl.
func WithSessionCache(c core.Cache[core.Session], ttl time.Duration) LocalOption {
	return func(p *LocalProvider) {
		p.sessionCache = c
		p.sessionCacheTTL = ttl
	}
}

// NewLocalProvider creates a provider backed by s. Sessions live for
// sessionTTL and are read from the cookieName cookie.
func NewLocalProvider(
	s *store.Store,
	cookieName string,
	sessionTTL time.Duration,
	opts ...LocalOption,
) *LocalProvider {
	p := &LocalProvider{
		store:      s,
		cookieName: cookieName,
		sessionTTL: sessionTTL,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns provider name for logging
func (p *LocalProvider) Name() string {
	return "local"
}

// SignInEmail verifies the password and opens a new session.
// Unknown email and wrong password produce the same error.
func (p *LocalProvider) SignInEmail(
	ctx context.Context,
	req core.SignInRequest,
) (*core.Session, error) {
	user, err := p.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if !errors.Is(err, store.ErrRecordNotFound) {
			return nil, core.NewAuthError(core.CodeProviderUnavailable, "", err)
		}
		return nil, core.NewAuthError(core.CodeInvalidEmailOrPassword, "Invalid email or password", nil)
	}

	if !user.HasPassword() {
		return nil, core.NewAuthError(core.CodeInvalidEmailOrPassword, "Invalid email or password", nil)
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		passwordDigest(req.Password),
	); err != nil {
		return nil, core.NewAuthError(core.CodeInvalidEmailOrPassword, "Invalid email or password", nil)
	}

	return p.createSession(ctx, user)
}

// SignUpEmail creates the account and signs it in.
func (p *LocalProvider) SignUpEmail(
	ctx context.Context,
	req core.SignUpRequest,
) (*core.Session, error) {
	hash, err := bcrypt.GenerateFromPassword(passwordDigest(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, core.NewAuthError(core.CodeFailedToCreateUser, "", err)
	}

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := p.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return nil, core.NewAuthError(core.CodeUserAlreadyExists, "User already exists", err)
		}
		return nil, core.NewAuthError(core.CodeFailedToCreateUser, "", err)
	}

	log.Printf("[Auth] New account created: user_id=%s", user.ID)
	return p.createSession(ctx, user)
}

// SignOut deletes the session named by the request cookie. A request
// without a session cookie is a no-op.
func (p *LocalProvider) SignOut(ctx context.Context, headers http.Header) error {
	token := SessionTokenFromHeader(headers, p.cookieName)
	if token == "" {
		return nil
	}

	hash := util.SHA256Hex(token)
	if err := p.store.DeleteSessionByTokenHash(ctx, hash); err != nil {
		return core.NewAuthError(core.CodeProviderUnavailable, "", err)
	}
	p.invalidateCache(ctx, hash)
	return nil
}

// GetSession resolves the request cookie to a live session. Missing,
// unknown and expired tokens all yield (nil, nil).
func (p *LocalProvider) GetSession(ctx context.Context, headers http.Header) (*core.Session, error) {
	token := SessionTokenFromHeader(headers, p.cookieName)
	if token == "" {
		return nil, nil
	}

	hash := util.SHA256Hex(token)
	session, err := p.lookupSession(ctx, hash)
	if err != nil {
		if errors.Is(err, errSessionNotFound) {
			return nil, nil
		}
		return nil, core.NewAuthError(core.CodeProviderUnavailable, "", err)
	}

	if !time.Now().Before(session.ExpiresAt) {
		if err := p.store.DeleteSessionByTokenHash(ctx, hash); err != nil {
			log.Printf("[Auth] Failed to delete expired session: %v", err)
		}
		p.invalidateCache(ctx, hash)
		return nil, nil
	}

	session.Token = token
	return &session, nil
}

func (p *LocalProvider) lookupSession(ctx context.Context, hash string) (core.Session, error) {
	fetch := func(ctx context.Context, hash string) (core.Session, error) {
		s, user, err := p.store.GetSessionByTokenHash(ctx, hash)
		if err != nil {
			if errors.Is(err, store.ErrRecordNotFound) {
				return core.Session{}, errSessionNotFound
			}
			return core.Session{}, err
		}
		if s.IsExpired() {
			// Never cache a dead session.
			if err := p.store.DeleteSessionByTokenHash(ctx, hash); err != nil {
				log.Printf("[Auth] Failed to delete expired session: %v", err)
			}
			return core.Session{}, errSessionNotFound
		}
		// The token itself is never cached.
		return core.Session{ExpiresAt: s.ExpiresAt, User: toCoreUser(user)}, nil
	}

	if p.sessionCache == nil {
		return fetch(ctx, hash)
	}
	return p.sessionCache.GetWithFetch(ctx, hash, p.sessionCacheTTL, fetch)
}

func (p *LocalProvider) invalidateCache(ctx context.Context, hash string) {
	if p.sessionCache == nil {
		return
	}
	if err := p.sessionCache.Delete(ctx, hash); err != nil {
		log.Printf("[Auth] Failed to invalidate cached session: %v", err)
	}
}

// SocialSignInURL returns the Google consent URL.
func (p *LocalProvider) SocialSignInURL(_ context.Context, provider, state string) (string, error) {
	if provider != ProviderGoogle {
		return "", core.NewAuthError(core.CodeProviderNotFound, "Provider not found", nil)
	}
	if p.google == nil {
		return "", core.NewAuthError(core.CodeSocialSignInUnsupported, "Google sign-in is disabled", nil)
	}
	return p.google.AuthCodeURL(state), nil
}

// SocialCallback completes the Google flow, linking the Google account to
// an existing user with the same email or creating a new user.
func (p *LocalProvider) SocialCallback(
	ctx context.Context,
	provider, code string,
) (*core.Session, error) {
	if provider != ProviderGoogle {
		return nil, core.NewAuthError(core.CodeProviderNotFound, "Provider not found", nil)
	}
	if p.google == nil {
		return nil, core.NewAuthError(core.CodeSocialSignInUnsupported, "Google sign-in is disabled", nil)
	}

	token, err := p.google.Exchange(ctx, code)
	if err != nil {
		return nil, core.NewAuthError(core.CodeInvalidOAuthCode, "", err)
	}

	info, err := p.google.UserInfo(ctx, token)
	if err != nil {
		return nil, core.NewAuthError(core.CodeFailedToGetUserInfo, "", err)
	}

	user, err := p.resolveOAuthUser(ctx, provider, info, token)
	if err != nil {
		return nil, err
	}
	return p.createSession(ctx, user)
}

func (p *LocalProvider) resolveOAuthUser(
	ctx context.Context,
	provider string,
	info *OAuthUserInfo,
	token *oauth2.Token,
) (*models.User, error) {
	// 1. Known account
	account, err := p.store.GetAccount(ctx, provider, info.ProviderUserID)
	switch {
	case err == nil:
		account.AccessToken = token.AccessToken
		account.RefreshToken = token.RefreshToken
		account.TokenExpiry = token.Expiry
		account.ProviderEmail = info.Email
		account.AvatarURL = info.AvatarURL
		account.LastUsedAt = time.Now()
		if err := p.store.UpdateAccount(ctx, account); err != nil {
			log.Printf("[Auth] Failed to refresh linked account: %v", err)
		}
		user, err := p.store.GetUserByID(ctx, account.UserID)
		if err != nil {
			return nil, core.NewAuthError(core.CodeFailedToGetUserInfo, "", err)
		}
		if user.Image == "" && info.AvatarURL != "" {
			user.Image = info.AvatarURL
			if err := p.store.UpdateUser(ctx, user); err != nil {
				log.Printf("[Auth] Failed to update user image: %v", err)
			}
		}
		return user, nil
	case !errors.Is(err, store.ErrRecordNotFound):
		return nil, core.NewAuthError(core.CodeProviderUnavailable, "", err)
	}

	newAccount := &models.Account{
		Provider:       provider,
		ProviderUserID: info.ProviderUserID,
		ProviderEmail:  info.Email,
		AvatarURL:      info.AvatarURL,
		AccessToken:    token.AccessToken,
		RefreshToken:   token.RefreshToken,
		TokenExpiry:    token.Expiry,
		LastUsedAt:     time.Now(),
	}

	// 2. Existing user with the same verified email
	existing, err := p.store.GetUserByEmail(ctx, info.Email)
	switch {
	case err == nil:
		if !info.EmailVerified {
			return nil, core.NewAuthError(
				core.CodeUserAlreadyExists,
				"Email not verified by provider",
				nil,
			)
		}
		newAccount.UserID = existing.ID
		if err := p.store.CreateAccount(ctx, newAccount); err != nil {
			return nil, core.NewAuthError(core.CodeFailedToCreateUser, "", err)
		}
		log.Printf("[Auth] Linked %s account to user_id=%s", provider, existing.ID)
		return existing, nil
	case !errors.Is(err, store.ErrRecordNotFound):
		return nil, core.NewAuthError(core.CodeProviderUnavailable, "", err)
	}

	// 3. New user
	name := info.Name
	if name == "" {
		name = strings.SplitN(info.Email, "@", 2)[0]
	}
	user := &models.User{
		Name:          name,
		Email:         info.Email,
		EmailVerified: info.EmailVerified,
		Image:         info.AvatarURL,
	}
	if err := p.store.CreateUserWithAccount(ctx, user, newAccount); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return nil, core.NewAuthError(core.CodeUserAlreadyExists, "User already exists", err)
		}
		return nil, core.NewAuthError(core.CodeFailedToCreateUser, "", err)
	}
	log.Printf("[Auth] New account created via %s: user_id=%s", provider, user.ID)
	return user, nil
}

func (p *LocalProvider) createSession(ctx context.Context, user *models.User) (*core.Session, error) {
	token, err := util.RandomToken(sessionTokenBytes)
	if err != nil {
		return nil, core.NewAuthError(core.CodeProviderUnavailable, "", err)
	}

	client := util.ClientInfoFromContext(ctx)
	record := &models.Session{
		TokenHash: util.SHA256Hex(token),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(p.sessionTTL),
		IPAddress: client.IP,
		UserAgent: client.UserAgent,
	}
	if err := p.store.CreateSession(ctx, record); err != nil {
		return nil, core.NewAuthError(core.CodeProviderUnavailable, "", err)
	}

	return &core.Session{
		Token:     token,
		ExpiresAt: record.ExpiresAt,
		User:      toCoreUser(user),
	}, nil
}

// CleanupExpiredSessions deletes sessions past their expiry.
func (p *LocalProvider) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	return p.store.DeleteExpiredSessions(ctx)
}

// Health checks the backing database.
func (p *LocalProvider) Health(ctx context.Context) error {
	return p.store.Health(ctx)
}

func toCoreUser(u *models.User) core.User {
	return core.User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Image: u.Image,
	}
}
