package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/devFelipeMarcos/login-vittaSystem/internal/cache"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/core"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/models"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/store"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New(context.Background(), "sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newTestLocalProvider(t *testing.T, opts ...LocalOption) (*LocalProvider, *store.Store) {
	t.Helper()
	s := newTestStore(t)
	return NewLocalProvider(s, testCookieName, time.Hour, opts...), s
}

func signUp(t *testing.T, p *LocalProvider, email string) *core.Session {
	t.Helper()
	session, err := p.SignUpEmail(context.Background(), core.SignUpRequest{
		Name:     "Maria Souza",
		Email:    email,
		Password: "secret123",
	})
	require.NoError(t, err)
	return session
}

func TestLocalProvider_SignUpAndSignIn(t *testing.T) {
	p, _ := newTestLocalProvider(t)
	ctx := context.Background()

	session := signUp(t, p, "maria@example.com")
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "Maria Souza", session.User.Name)
	assert.Equal(t, "maria@example.com", session.User.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, 5*time.Second)

	signedIn, err := p.SignInEmail(ctx, core.SignInRequest{
		Email:    "MARIA@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, signedIn.User.ID)
	assert.NotEqual(t, session.Token, signedIn.Token, "every sign-in opens a new session")
}

func TestLocalProvider_LongPassword(t *testing.T) {
	p, _ := newTestLocalProvider(t)
	ctx := context.Background()
	password := strings.Repeat("a", 99) + "b"
	require.Len(t, password, 100)

	_, err := p.SignUpEmail(ctx, core.SignUpRequest{
		Name:     "Maria Souza",
		Email:    "long@example.com",
		Password: password,
	})
	require.NoError(t, err)

	_, err = p.SignInEmail(ctx, core.SignInRequest{Email: "long@example.com", Password: password})
	require.NoError(t, err)

	// Differs only past byte 72.
	_, err = p.SignInEmail(ctx, core.SignInRequest{
		Email:    "long@example.com",
		Password: strings.Repeat("a", 100),
	})
	assert.Equal(t, core.CodeInvalidEmailOrPassword, core.ErrorCode(err))
}

func TestLocalProvider_SignUp_Duplicate(t *testing.T) {
	p, _ := newTestLocalProvider(t)
	signUp(t, p, "dup@example.com")

	_, err := p.SignUpEmail(context.Background(), core.SignUpRequest{
		Name:     "Other",
		Email:    "Dup@Example.com",
		Password: "secret123",
	})
	assert.Equal(t, core.CodeUserAlreadyExists, core.ErrorCode(err))
}

func TestLocalProvider_SignIn_Failures(t *testing.T) {
	p, s := newTestLocalProvider(t)
	signUp(t, p, "maria@example.com")

	// Google-only account without a password
	require.NoError(t, s.CreateUser(context.Background(), &models.User{
		Name:  "Google Only",
		Email: "google-only@example.com",
	}))

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "nobody@example.com", "secret123"},
		{"wrong password", "maria@example.com", "wrong-password"},
		{"account without password", "google-only@example.com", "secret123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.SignInEmail(context.Background(), core.SignInRequest{
				Email:    tt.email,
				Password: tt.password,
			})
			assert.Equal(t, core.CodeInvalidEmailOrPassword, core.ErrorCode(err))
		})
	}
}

func TestLocalProvider_GetSession(t *testing.T) {
	p, _ := newTestLocalProvider(t)
	ctx := context.Background()
	session := signUp(t, p, "maria@example.com")

	got, err := p.GetSession(ctx, cookieHeader(session.Token))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, session.Token, got.Token)
	assert.Equal(t, session.User, got.User)

	got, err = p.GetSession(ctx, cookieHeader("not-a-real-token"))
	assert.NoError(t, err)
	assert.Nil(t, got)

	got, err = p.GetSession(ctx, http.Header{})
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestLocalProvider_GetSession_Expired(t *testing.T) {
	s := newTestStore(t)
	p := NewLocalProvider(s, testCookieName, time.Hour)
	ctx := context.Background()

	user := &models.User{Name: "Exp", Email: "exp@example.com"}
	require.NoError(t, s.CreateUser(ctx, user))
	require.NoError(t, s.CreateSession(ctx, &models.Session{
		TokenHash: util.SHA256Hex("expired-token"),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	got, err := p.GetSession(ctx, cookieHeader("expired-token"))
	assert.NoError(t, err)
	assert.Nil(t, got)

	// Expired sessions are removed on lookup.
	_, _, err = s.GetSessionByTokenHash(ctx, util.SHA256Hex("expired-token"))
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestLocalProvider_GetSession_ExpiredNotCached(t *testing.T) {
	sessionCache := cache.NewMemoryCache[core.Session]()
	p, s := newTestLocalProvider(t, WithSessionCache(sessionCache, time.Minute))
	ctx := context.Background()

	user := &models.User{Name: "Exp", Email: "exp@example.com"}
	require.NoError(t, s.CreateUser(ctx, user))
	require.NoError(t, s.CreateSession(ctx, &models.Session{
		TokenHash: util.SHA256Hex("expired-token"),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	got, err := p.GetSession(ctx, cookieHeader("expired-token"))
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 0, sessionCache.Len())

	_, _, err = s.GetSessionByTokenHash(ctx, util.SHA256Hex("expired-token"))
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestLocalProvider_SignOut(t *testing.T) {
	sessionCache := cache.NewMemoryCache[core.Session]()
	p, _ := newTestLocalProvider(t, WithSessionCache(sessionCache, time.Minute))
	ctx := context.Background()
	session := signUp(t, p, "maria@example.com")

	// Warm the cache.
	got, err := p.GetSession(ctx, cookieHeader(session.Token))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1, sessionCache.Len())

	require.NoError(t, p.SignOut(ctx, cookieHeader(session.Token)))

	got, err = p.GetSession(ctx, cookieHeader(session.Token))
	assert.NoError(t, err)
	assert.Nil(t, got, "signed out session must not be served from cache")

	assert.NoError(t, p.SignOut(ctx, http.Header{}))
}

func TestLocalProvider_RecordsClientInfo(t *testing.T) {
	p, s := newTestLocalProvider(t)
	ctx := util.WithClientInfo(context.Background(), util.ClientInfo{
		IP:        "10.1.2.3",
		UserAgent: "test-agent",
	})

	session, err := p.SignUpEmail(ctx, core.SignUpRequest{
		Name: "Info", Email: "info@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	record, _, err := s.GetSessionByTokenHash(ctx, util.SHA256Hex(session.Token))
	require.NoError(t, err)
	assert.Equal(t, "10.1.2.3", record.IPAddress)
	assert.Equal(t, "test-agent", record.UserAgent)
}

func TestLocalProvider_CleanupExpiredSessions(t *testing.T) {
	p, s := newTestLocalProvider(t)
	ctx := context.Background()

	user := &models.User{Name: "C", Email: "cleanup@example.com"}
	require.NoError(t, s.CreateUser(ctx, user))
	require.NoError(t, s.CreateSession(ctx, &models.Session{
		TokenHash: "old",
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(-time.Hour),
	}))

	n, err := p.CleanupExpiredSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, p.Health(ctx))
}

func TestLocalProvider_SocialWithoutGoogle(t *testing.T) {
	p, _ := newTestLocalProvider(t)
	ctx := context.Background()

	_, err := p.SocialSignInURL(ctx, "google", "state")
	assert.Equal(t, core.CodeSocialSignInUnsupported, core.ErrorCode(err))

	_, err = p.SocialSignInURL(ctx, "github", "state")
	assert.Equal(t, core.CodeProviderNotFound, core.ErrorCode(err))

	_, err = p.SocialCallback(ctx, "google", "code")
	assert.Equal(t, core.CodeSocialSignInUnsupported, core.ErrorCode(err))
}

// newFakeGoogle serves the token and userinfo endpoints.
func newFakeGoogle(t *testing.T, profile map[string]any) *GoogleOAuth {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.PostForm.Get("code") != "good-code" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at-1","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer at-1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(profile)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	g := NewGoogleOAuth(OAuthProviderConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "http://localhost:8080/api/auth/callback/google",
		Scopes:       []string{"openid", "email", "profile"},
	}, server.Client())
	g.config.Endpoint = oauth2.Endpoint{
		AuthURL:   server.URL + "/auth",
		TokenURL:  server.URL + "/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}
	g.userInfoURL = server.URL + "/userinfo"
	return g
}

func googleProfile(email string, verified bool) map[string]any {
	return map[string]any{
		"sub":            "google-sub-1",
		"email":          email,
		"email_verified": verified,
		"name":           "Google User",
		"picture":        "https://example.com/g.png",
	}
}

func TestLocalProvider_SocialCallback_NewUser(t *testing.T) {
	g := newFakeGoogle(t, googleProfile("new@example.com", true))
	p, s := newTestLocalProvider(t, WithGoogle(g))
	ctx := context.Background()

	url, err := p.SocialSignInURL(ctx, "google", "state-xyz")
	require.NoError(t, err)
	assert.Contains(t, url, "state=state-xyz")

	session, err := p.SocialCallback(ctx, "google", "good-code")
	require.NoError(t, err)
	assert.Equal(t, "Google User", session.User.Name)
	assert.Equal(t, "https://example.com/g.png", session.User.Image)

	account, err := s.GetAccount(ctx, "google", "google-sub-1")
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, account.UserID)
	assert.Equal(t, "at-1", account.AccessToken)

	// Second sign-in reuses the linked account.
	again, err := p.SocialCallback(ctx, "google", "good-code")
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, again.User.ID)
}

func TestLocalProvider_SocialCallback_LinksExistingUser(t *testing.T) {
	g := newFakeGoogle(t, googleProfile("maria@example.com", true))
	p, _ := newTestLocalProvider(t, WithGoogle(g))
	existing := signUp(t, p, "maria@example.com")

	session, err := p.SocialCallback(context.Background(), "google", "good-code")
	require.NoError(t, err)
	assert.Equal(t, existing.User.ID, session.User.ID)
	assert.Equal(t, "Maria Souza", session.User.Name)
}

func TestLocalProvider_SocialCallback_FillsMissingImage(t *testing.T) {
	g := newFakeGoogle(t, googleProfile("maria@example.com", true))
	p, s := newTestLocalProvider(t, WithGoogle(g))
	ctx := context.Background()
	existing := signUp(t, p, "maria@example.com")
	assert.Empty(t, existing.User.Image)

	// First callback links, the next one goes through the known account.
	_, err := p.SocialCallback(ctx, "google", "good-code")
	require.NoError(t, err)
	session, err := p.SocialCallback(ctx, "google", "good-code")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/g.png", session.User.Image)

	user, err := s.GetUserByID(ctx, existing.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/g.png", user.Image)
}

func TestLocalProvider_SocialCallback_UnverifiedEmailCollision(t *testing.T) {
	g := newFakeGoogle(t, googleProfile("maria@example.com", false))
	p, _ := newTestLocalProvider(t, WithGoogle(g))
	signUp(t, p, "maria@example.com")

	_, err := p.SocialCallback(context.Background(), "google", "good-code")
	assert.Equal(t, core.CodeUserAlreadyExists, core.ErrorCode(err))
}

func TestLocalProvider_SocialCallback_BadCode(t *testing.T) {
	g := newFakeGoogle(t, googleProfile("x@example.com", true))
	p, _ := newTestLocalProvider(t, WithGoogle(g))

	_, err := p.SocialCallback(context.Background(), "google", "bad-code")
	assert.Equal(t, core.CodeInvalidOAuthCode, core.ErrorCode(err))
}

func TestLocalProvider_SocialCallback_NoEmail(t *testing.T) {
	g := newFakeGoogle(t, map[string]any{"sub": "s"})
	p, _ := newTestLocalProvider(t, WithGoogle(g))

	_, err := p.SocialCallback(context.Background(), "google", "good-code")
	assert.Equal(t, core.CodeFailedToGetUserInfo, core.ErrorCode(err))
	assert.ErrorIs(t, err, ErrOAuthNoEmail)
}

func TestGoogleOAuth_AuthCodeURL(t *testing.T) {
	g := NewGoogleOAuth(OAuthProviderConfig{
		ClientID:    "cid",
		RedirectURL: "http://localhost:8080/api/auth/callback/google",
		Scopes:      []string{"openid", "email"},
	}, nil)

	url := g.AuthCodeURL("s1")
	assert.Contains(t, url, "accounts.google.com")
	assert.Contains(t, url, "client_id=cid")
	assert.Contains(t, url, "state=s1")
}
