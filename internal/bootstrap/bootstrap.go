package bootstrap

import (
	"context"
	"embed"
	"net/http"

	"github.com/devFelipeMarcos/login-vittaSystem/internal/auth"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/config"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/core"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/services"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/store"

	"github.com/appleboy/graceful"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Application holds all initialized components
type Application struct {
	Config *config.Config

	// Core infrastructure
	DB                   *store.Store // nil unless AUTH_MODE=local
	MetricsRecorder      core.Recorder
	MetricsCache         core.Cache[int64]
	SessionCache         core.Cache[core.Session]
	RateLimitRedisClient *redis.Client

	// Authentication
	Provider      core.AuthProvider
	LocalProvider *auth.LocalProvider // nil unless AUTH_MODE=local
	AuthService   *services.AuthService

	// HTTP
	HandlerSet  handlerSet
	Router      *gin.Engine
	Server      *http.Server
	TemplatesFS embed.FS
}

// Run initializes and starts the application
func Run(cfg *config.Config, templatesFS embed.FS) error {
	app := &Application{
		Config:      cfg,
		TemplatesFS: templatesFS,
	}
	ctx := context.Background()

	// Phase 1: Validate configuration
	if err := validateAllConfiguration(cfg); err != nil {
		return err
	}

	// Phase 2: Initialize infrastructure
	if err := app.initializeInfrastructure(ctx); err != nil {
		return err
	}

	// Phase 3: Initialize business layer
	if err := app.initializeBusinessLayer(); err != nil {
		return err
	}

	// Phase 4: Initialize HTTP layer
	if err := app.initializeHTTPLayer(); err != nil {
		return err
	}

	// Phase 5: Start server with graceful shutdown
	app.startWithGracefulShutdown()

	return nil
}

// initializeInfrastructure sets up database, metrics, caches, and Redis
func (app *Application) initializeInfrastructure(ctx context.Context) error {
	var err error

	// Database (local provider only)
	if app.Config.AuthMode == config.AuthModeLocal {
		app.DB, err = initializeDatabase(ctx, app.Config)
		if err != nil {
			return err
		}
	}

	// Metrics
	app.MetricsRecorder = initializeMetrics(app.Config)
	if app.DB != nil {
		app.MetricsCache, err = initializeMetricsCache(ctx, app.Config)
		if err != nil {
			return err
		}
	}

	// Session lookup cache (local provider only)
	if app.DB != nil {
		app.SessionCache, err = initializeSessionCache(ctx, app.Config)
		if err != nil {
			return err
		}
	}

	// Redis (for rate limiting)
	app.RateLimitRedisClient, err = initializeRateLimitRedisClient(ctx, app.Config)
	if err != nil {
		return err
	}

	return nil
}

// initializeBusinessLayer sets up the provider and services
func (app *Application) initializeBusinessLayer() error {
	google, err := initializeGoogleOAuth(app.Config)
	if err != nil {
		return err
	}

	app.Provider, app.LocalProvider, err = initializeAuthProvider(
		app.Config,
		app.DB,
		app.SessionCache,
		google,
	)
	if err != nil {
		return err
	}

	app.AuthService = services.NewAuthService(app.Provider, app.MetricsRecorder)
	return nil
}

// initializeHTTPLayer sets up handlers, router, and server
func (app *Application) initializeHTTPLayer() error {
	app.HandlerSet = initializeHandlers(app.Config, app.AuthService, app.MetricsRecorder)

	router, err := setupRouter(
		app.Config,
		app.Provider,
		app.HandlerSet,
		app.MetricsRecorder,
		app.RateLimitRedisClient,
		app.TemplatesFS,
	)
	if err != nil {
		return err
	}
	app.Router = router

	app.Server = createHTTPServer(app.Config, app.Router)
	return nil
}

// startWithGracefulShutdown starts the server and handles graceful shutdown
func (app *Application) startWithGracefulShutdown() {
	m := graceful.NewManager()

	// Add jobs
	addServerRunningJob(m, app.Server)
	addServerShutdownJob(m, app.Server, app.Config.ServerShutdownTimeout)
	addSessionCleanupJob(m, app.Config, app.LocalProvider, app.SessionCache)
	addMetricsGaugeUpdateJob(m, app.Config, app.DB, app.MetricsRecorder, app.MetricsCache)
	addRedisClientShutdownJob(m, app.RateLimitRedisClient)
	addCacheCloseJob(m, "session", app.SessionCache)
	addCacheCloseJob(m, "metrics", app.MetricsCache)
	addDatabaseShutdownJob(m, app.DB)

	// Wait for graceful shutdown
	<-m.Done()
}
