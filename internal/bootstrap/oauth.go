package bootstrap

import (
	"log"

	"github.com/devFelipeMarcos/login-vittaSystem/internal/auth"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/client"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/config"
)

// initializeGoogleOAuth creates the Google OAuth client for the local provider.
// Returns nil when Google sign-in is disabled or handled by the remote API.
func initializeGoogleOAuth(cfg *config.Config) (*auth.GoogleOAuth, error) {
	if !cfg.GoogleOAuthEnabled || cfg.AuthMode != config.AuthModeLocal {
		return nil, nil
	}

	httpClient, err := client.NewOAuthHTTPClient(cfg.OAuthTimeout, cfg.OAuthInsecureSkipVerify)
	if err != nil {
		return nil, err
	}

	if cfg.OAuthInsecureSkipVerify {
		log.Printf("WARNING: OAuth TLS verification disabled (OAUTH_INSECURE_SKIP_VERIFY=true)")
	}
	log.Printf("Google OAuth configured: redirect_uri=%s", cfg.GoogleOAuthRedirectURL)

	return auth.NewGoogleOAuth(auth.OAuthProviderConfig{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleOAuthRedirectURL,
		Scopes:       cfg.GoogleOAuthScopes,
	}, httpClient), nil
}
