package bootstrap

import (
	"fmt"
	"log"

	"github.com/devFelipeMarcos/login-vittaSystem/internal/auth"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/client"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/config"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/core"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/store"
)

// initializeAuthProvider selects the AuthProvider for AUTH_MODE.
// The concrete local provider is returned as well for the cleanup job.
func initializeAuthProvider(
	cfg *config.Config,
	db *store.Store,
	sessionCache core.Cache[core.Session],
	google *auth.GoogleOAuth,
) (core.AuthProvider, *auth.LocalProvider, error) {
	switch cfg.AuthMode {
	case config.AuthModeHTTPAPI:
		p, err := initializeHTTPAPIProvider(cfg)
		if err != nil {
			return nil, nil, err
		}
		return p, nil, nil
	default:
		p := initializeLocalProvider(cfg, db, sessionCache, google)
		return p, p, nil
	}
}

// initializeLocalProvider creates the database backed provider
func initializeLocalProvider(
	cfg *config.Config,
	db *store.Store,
	sessionCache core.Cache[core.Session],
	google *auth.GoogleOAuth,
) *auth.LocalProvider {
	var opts []auth.LocalOption
	if google != nil {
		opts = append(opts, auth.WithGoogle(google))
	}
	if sessionCache != nil {
		opts = append(opts, auth.WithSessionCache(sessionCache, cfg.SessionCacheTTL))
	}

	log.Printf("Auth provider: local (session lifetime: %s)", cfg.AuthSessionExpiration)
	return auth.NewLocalProvider(db, cfg.AuthCookieName, cfg.AuthSessionExpiration, opts...)
}

// initializeHTTPAPIProvider creates the provider that talks to a remote auth API
func initializeHTTPAPIProvider(cfg *config.Config) (*auth.HTTPAPIProvider, error) {
	opts := client.RetryOptions{
		AuthMode:           cfg.HTTPAPIAuthMode,
		AuthSecret:         cfg.HTTPAPIAuthSecret,
		AuthHeader:         cfg.HTTPAPIAuthHeader,
		Timeout:            cfg.HTTPAPITimeout,
		InsecureSkipVerify: cfg.HTTPAPIInsecureSkipVerify,
		MaxRetries:         cfg.HTTPAPIMaxRetries,
		RetryDelay:         cfg.HTTPAPIRetryDelay,
		MaxRetryDelay:      cfg.HTTPAPIMaxRetryDelay,
	}
	retryClient, err := client.CreateRetryClient(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP API client: %w", err)
	}
	onceClient, err := client.CreateSingleAttemptClient(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP API client: %w", err)
	}

	if cfg.HTTPAPIInsecureSkipVerify {
		log.Printf("WARNING: TLS verification disabled for HTTP API (HTTP_API_INSECURE_SKIP_VERIFY=true)")
	}
	log.Printf("Auth provider: http_api (url: %s, auth mode: %s)", cfg.HTTPAPIURL, cfg.HTTPAPIAuthMode)

	return auth.NewHTTPAPIProvider(auth.HTTPAPIConfig{
		BaseURL:     cfg.HTTPAPIURL,
		CookieName:  cfg.AuthCookieName,
		SessionTTL:  cfg.AuthSessionExpiration,
		CallbackURL: cfg.GoogleOAuthRedirectURL,
	}, retryClient, onceClient), nil
}
