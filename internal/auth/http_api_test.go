package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/devFelipeMarcos/login-vittaSystem/internal/client"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCookieName = "vitta.session_token"

// createTestHTTPAPIProvider returns a provider with retries disabled on both
// clients for predictable test behavior.
func createTestHTTPAPIProvider(t *testing.T, url string) *HTTPAPIProvider {
	t.Helper()
	opts := client.RetryOptions{
		Timeout:    5 * time.Second,
		AuthHeader: "X-API-Secret",
	}
	retryClient, err := client.CreateRetryClient(opts)
	require.NoError(t, err)
	onceClient, err := client.CreateSingleAttemptClient(opts)
	require.NoError(t, err)

	return NewHTTPAPIProvider(HTTPAPIConfig{
		BaseURL:     url,
		CookieName:  testCookieName,
		SessionTTL:  time.Hour,
		CallbackURL: "http://localhost:8080/api/auth/callback/google",
	}, retryClient, onceClient)
}

// createRetryingHTTPAPIProvider enables retries on the idempotent client.
func createRetryingHTTPAPIProvider(t *testing.T, url string) *HTTPAPIProvider {
	t.Helper()
	opts := client.RetryOptions{
		Timeout:       5 * time.Second,
		AuthHeader:    "X-API-Secret",
		MaxRetries:    3,
		RetryDelay:    time.Millisecond,
		MaxRetryDelay: 5 * time.Millisecond,
	}
	retryClient, err := client.CreateRetryClient(opts)
	require.NoError(t, err)
	onceClient, err := client.CreateSingleAttemptClient(opts)
	require.NoError(t, err)

	return NewHTTPAPIProvider(HTTPAPIConfig{
		BaseURL:     url,
		CookieName:  testCookieName,
		SessionTTL:  time.Hour,
		CallbackURL: "http://localhost:8080/api/auth/callback/google",
	}, retryClient, onceClient)
}

// unavailableOnce answers 503 to the first request and then reply.
func unavailableOnce(calls *atomic.Int32, reply func(w http.ResponseWriter)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("upstream unavailable"))
			return
		}
		reply(w)
	}
}

func cookieHeader(token string) http.Header {
	h := http.Header{}
	h.Set("Cookie", testCookieName+"="+token)
	return h
}

func TestHTTPAPIProvider_SignInEmail_Success(t *testing.T) {
	expires := time.Now().Add(2 * time.Hour).UTC().Truncate(time.Second)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sign-in/email", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "maria@example.com", req["email"])
		assert.Equal(t, "password123", req["password"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token":     "tok-123",
			"expiresAt": expires,
			"user": map[string]string{
				"id":    "u1",
				"name":  "Maria",
				"email": "maria@example.com",
				"image": "https://example.com/m.png",
			},
		})
	}))
	defer server.Close()

	p := createTestHTTPAPIProvider(t, server.URL)
	session, err := p.SignInEmail(context.Background(), core.SignInRequest{
		Email:    "maria@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "tok-123", session.Token)
	assert.True(t, expires.Equal(session.ExpiresAt))
	assert.Equal(t, core.User{
		ID:    "u1",
		Name:  "Maria",
		Email: "maria@example.com",
		Image: "https://example.com/m.png",
	}, session.User)
}

func TestHTTPAPIProvider_SignInEmail_InvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"code":    core.CodeInvalidEmailOrPassword,
			"message": "Invalid email or password",
		})
	}))
	defer server.Close()

	p := createTestHTTPAPIProvider(t, server.URL)
	_, err := p.SignInEmail(context.Background(), core.SignInRequest{
		Email:    "maria@example.com",
		Password: "wrong-password",
	})
	require.Error(t, err)
	assert.Equal(t, core.CodeInvalidEmailOrPassword, core.ErrorCode(err))
}

func TestHTTPAPIProvider_SignUpEmail_AlreadyExists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sign-up/email", r.URL.Path)
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Maria", req["name"])

		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"code":"USER_ALREADY_EXISTS","message":"User already exists"}`))
	}))
	defer server.Close()

	p := createTestHTTPAPIProvider(t, server.URL)
	_, err := p.SignUpEmail(context.Background(), core.SignUpRequest{
		Name:     "Maria",
		Email:    "maria@example.com",
		Password: "secret1",
	})
	assert.Equal(t, core.CodeUserAlreadyExists, core.ErrorCode(err))
}

func TestHTTPAPIProvider_SignUpEmail_DefaultExpiry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token":"t","user":{"id":"u","name":"N","email":"n@example.com"}}`))
	}))
	defer server.Close()

	p := createTestHTTPAPIProvider(t, server.URL)
	session, err := p.SignUpEmail(context.Background(), core.SignUpRequest{
		Name: "N", Email: "n@example.com", Password: "secret1",
	})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, 5*time.Second)
	assert.Empty(t, session.User.Image)
}

func TestHTTPAPIProvider_InvalidResponse(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"non-JSON error", http.StatusInternalServerError, "Internal Server Error"},
		{"malformed success body", http.StatusOK, "not json"},
		{"missing token", http.StatusOK, `{"user":{"id":"u"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			p := createTestHTTPAPIProvider(t, server.URL)
			_, err := p.SignInEmail(context.Background(), core.SignInRequest{
				Email: "a@example.com", Password: "password123",
			})
			require.Error(t, err)
			assert.Equal(t, core.CodeProviderUnavailable, core.ErrorCode(err))
			assert.ErrorIs(t, err, ErrHTTPAPIInvalidResp)
		})
	}
}

func TestHTTPAPIProvider_ConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	p := createTestHTTPAPIProvider(t, url)
	_, err := p.SignInEmail(context.Background(), core.SignInRequest{
		Email: "a@example.com", Password: "password123",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHTTPAPIConnection)
}

func TestHTTPAPIProvider_GetSession(t *testing.T) {
	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get-session", r.URL.Path)
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		switch req["token"] {
		case "good":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"session": map[string]any{"expiresAt": expires},
				"user":    map[string]string{"id": "u1", "name": "Maria", "email": "maria@example.com"},
			})
		case "expired":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"session": map[string]any{"expiresAt": time.Now().Add(-time.Minute)},
				"user":    map[string]string{"id": "u1"},
			})
		case "gone":
			w.WriteHeader(http.StatusUnauthorized)
		default:
			_, _ = w.Write([]byte("null"))
		}
	}))
	defer server.Close()

	p := createTestHTTPAPIProvider(t, server.URL)
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		session, err := p.GetSession(ctx, cookieHeader("good"))
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, "good", session.Token)
		assert.Equal(t, "Maria", session.User.Name)
	})

	for _, token := range []string{"expired", "gone", "unknown"} {
		t.Run(token, func(t *testing.T) {
			session, err := p.GetSession(ctx, cookieHeader(token))
			assert.NoError(t, err)
			assert.Nil(t, session)
		})
	}

	t.Run("no cookie", func(t *testing.T) {
		session, err := p.GetSession(ctx, http.Header{})
		assert.NoError(t, err)
		assert.Nil(t, session)
	})
}

func TestHTTPAPIProvider_SignOut(t *testing.T) {
	var gotToken string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sign-out", r.URL.Path)
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotToken = req["token"]
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	p := createTestHTTPAPIProvider(t, server.URL)
	require.NoError(t, p.SignOut(context.Background(), cookieHeader("tok-1")))
	assert.Equal(t, "tok-1", gotToken)

	// Without a cookie nothing is sent.
	gotToken = ""
	require.NoError(t, p.SignOut(context.Background(), http.Header{}))
	assert.Empty(t, gotToken)
}

func TestHTTPAPIProvider_Social(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "google", req["provider"])
		assert.Equal(t, "http://localhost:8080/api/auth/callback/google", req["callbackURL"])

		switch r.URL.Path {
		case "/sign-in/social":
			assert.Equal(t, "state-1", req["state"])
			_, _ = w.Write([]byte(`{"url":"https://accounts.google.com/o/oauth2/auth?state=state-1"}`))
		case "/callback/social":
			assert.Equal(t, "code-1", req["code"])
			_, _ = w.Write([]byte(`{"token":"t","user":{"id":"u","name":"G","email":"g@example.com"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	p := createTestHTTPAPIProvider(t, server.URL)
	ctx := context.Background()

	url, err := p.SocialSignInURL(ctx, "google", "state-1")
	require.NoError(t, err)
	assert.Contains(t, url, "state=state-1")

	session, err := p.SocialCallback(ctx, "google", "code-1")
	require.NoError(t, err)
	assert.Equal(t, "g@example.com", session.User.Email)
}

func TestHTTPAPIProvider_SignUpEmail_NotReplayed(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(unavailableOnce(&calls, func(w http.ResponseWriter) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"code":"USER_ALREADY_EXISTS","message":"User already exists"}`))
	}))
	defer server.Close()

	p := createRetryingHTTPAPIProvider(t, server.URL)
	_, err := p.SignUpEmail(context.Background(), core.SignUpRequest{
		Name:     "Maria",
		Email:    "maria@example.com",
		Password: "secret1",
	})
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, core.CodeProviderUnavailable, core.ErrorCode(err))
	assert.ErrorIs(t, err, ErrHTTPAPIInvalidResp)
	var authErr *core.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Contains(t, authErr.Err.Error(), "HTTP 503")
}

func TestHTTPAPIProvider_SignInAndSocial_NotReplayed(t *testing.T) {
	ok := func(w http.ResponseWriter) {
		_, _ = w.Write([]byte(`{"url":"https://accounts.google.com/","token":"t","user":{"id":"u","name":"G","email":"g@example.com"}}`))
	}

	tests := []struct {
		name string
		call func(p *HTTPAPIProvider) error
	}{
		{"sign in", func(p *HTTPAPIProvider) error {
			_, err := p.SignInEmail(context.Background(), core.SignInRequest{
				Email:    "maria@example.com",
				Password: "password123",
			})
			return err
		}},
		{"social url", func(p *HTTPAPIProvider) error {
			_, err := p.SocialSignInURL(context.Background(), "google", "state-1")
			return err
		}},
		{"social callback", func(p *HTTPAPIProvider) error {
			_, err := p.SocialCallback(context.Background(), "google", "code-1")
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(unavailableOnce(&calls, ok))
			defer server.Close()

			err := tt.call(createRetryingHTTPAPIProvider(t, server.URL))
			require.Error(t, err)
			assert.Equal(t, int32(1), calls.Load())
			assert.Equal(t, core.CodeProviderUnavailable, core.ErrorCode(err))
		})
	}
}

func TestHTTPAPIProvider_GetSession_Retried(t *testing.T) {
	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	var calls atomic.Int32
	server := httptest.NewServer(unavailableOnce(&calls, func(w http.ResponseWriter) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"session": map[string]any{"expiresAt": expires},
			"user":    map[string]string{"id": "u", "name": "Maria", "email": "maria@example.com"},
		})
	}))
	defer server.Close()

	p := createRetryingHTTPAPIProvider(t, server.URL)
	session, err := p.GetSession(context.Background(), cookieHeader("tok-1"))
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, "maria@example.com", session.User.Email)
}

func TestHTTPAPIProvider_Name(t *testing.T) {
	assert.Equal(t, "http_api", (&HTTPAPIProvider{}).Name())
}
