package bootstrap

import (
	"errors"
	"fmt"
	"log"

	"github.com/devFelipeMarcos/login-vittaSystem/internal/config"
)

// validateAllConfiguration validates all configuration settings
func validateAllConfiguration(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := validateAuthConfig(cfg); err != nil {
		return fmt.Errorf("invalid authentication configuration: %w", err)
	}
	if err := validateGoogleConfig(cfg); err != nil {
		return fmt.Errorf("invalid Google OAuth configuration: %w", err)
	}
	if cfg.IsProduction && cfg.SessionSecret == "session-secret-change-in-production" {
		log.Println("WARNING: SESSION_SECRET is the default value; set a random secret in production")
	}
	return nil
}

// validateAuthConfig checks that required config is present for selected auth mode
func validateAuthConfig(cfg *config.Config) error {
	switch cfg.AuthMode {
	case config.AuthModeHTTPAPI:
		if cfg.HTTPAPIURL == "" {
			return errors.New("HTTP_API_URL is required when AUTH_MODE=http_api")
		}
	case config.AuthModeLocal:
		if cfg.DatabaseDSN == "" {
			return errors.New("DATABASE_DSN is required when AUTH_MODE=local")
		}
	default:
		return fmt.Errorf("invalid AUTH_MODE: %s (must be: local, http_api)", cfg.AuthMode)
	}
	return nil
}

// validateGoogleConfig checks client credentials for local Google sign-in.
// In http_api mode the remote service owns the credentials.
func validateGoogleConfig(cfg *config.Config) error {
	if !cfg.GoogleOAuthEnabled || cfg.AuthMode != config.AuthModeLocal {
		return nil
	}
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" {
		return errors.New("GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET are required when GOOGLE_OAUTH_ENABLED=true")
	}
	return nil
}
