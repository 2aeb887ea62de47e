package bootstrap

import (
	"github.com/devFelipeMarcos/login-vittaSystem/internal/config"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/core"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/handlers"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/services"
)

// handlerSet holds all HTTP handlers
type handlerSet struct {
	auth  *handlers.AuthHandler
	oauth *handlers.OAuthHandler
}

// initializeHandlers creates all HTTP handlers
func initializeHandlers(
	cfg *config.Config,
	authService *services.AuthService,
	recorder core.Recorder,
) handlerSet {
	cookie := handlers.CookieOptions{
		Name:   cfg.AuthCookieName,
		Secure: cfg.IsProduction,
	}
	return handlerSet{
		auth:  handlers.NewAuthHandler(authService, cookie, cfg.GoogleOAuthEnabled, recorder),
		oauth: handlers.NewOAuthHandler(authService, cookie),
	}
}
