package bootstrap

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/devFelipeMarcos/login-vittaSystem/internal/config"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/core"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/handlers"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/metrics"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/middleware"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/util"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/version"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

const healthCheckTimeout = 2 * time.Second

// healthChecker is implemented by providers that own a backing store.
type healthChecker interface {
	Health(ctx context.Context) error
}

// setupRouter configures the Gin router with all routes and middleware
func setupRouter(
	cfg *config.Config,
	provider core.AuthProvider,
	h handlerSet,
	recorder core.Recorder,
	rateLimitRedisClient *redis.Client,
	templatesFS embed.FS,
) (*gin.Engine, error) {
	// Setup Gin mode
	setupGinMode(cfg)
	r := gin.New()

	// Setup middleware
	r.Use(metrics.HTTPMetricsMiddleware(recorder))
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(util.ClientInfoMiddleware())

	// Setup session middleware
	setupSessionMiddleware(r, cfg)

	// Serve embedded static files
	if err := serveStaticFiles(r, templatesFS); err != nil {
		return nil, err
	}

	// Health check endpoint
	r.GET("/health", createHealthCheckHandler(provider))

	// Setup metrics endpoint
	setupMetricsEndpoint(r, cfg)

	// Setup rate limiting
	rateLimiters, err := setupRateLimiting(cfg, rateLimitRedisClient)
	if err != nil {
		return nil, err
	}

	// Setup all routes
	setupAllRoutes(r, provider, h, recorder, rateLimiters)

	// Log server startup info
	logServerStartup(cfg, provider)

	return r, nil
}

// setupSessionMiddleware configures the browser session that carries
// flash toasts, the CSRF token and OAuth state
func setupSessionMiddleware(r *gin.Engine, cfg *config.Config) {
	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.SessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.IsProduction,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("vitta_session", sessionStore))
}

// serveStaticFiles configures static file serving
func serveStaticFiles(r *gin.Engine, templatesFS embed.FS) error {
	staticSubFS, err := fs.Sub(templatesFS, "internal/templates/static")
	if err != nil {
		return fmt.Errorf("failed to create static sub filesystem: %w", err)
	}
	r.StaticFS("/static", http.FS(staticSubFS))
	return nil
}

// setupMetricsEndpoint configures the Prometheus metrics endpoint
func setupMetricsEndpoint(r *gin.Engine, cfg *config.Config) {
	switch {
	case !cfg.MetricsEnabled:
		log.Printf("Prometheus metrics disabled")
	case cfg.MetricsToken != "":
		log.Printf("Prometheus metrics enabled at /metrics with Bearer token authentication")
		r.GET(
			"/metrics",
			middleware.MetricsAuthMiddleware(cfg.MetricsToken),
			gin.WrapH(promhttp.Handler()),
		)
	default:
		log.Printf("Prometheus metrics enabled at /metrics (no authentication)")
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
}

// setupAllRoutes configures all application routes
func setupAllRoutes(
	r *gin.Engine,
	provider core.AuthProvider,
	h handlerSet,
	recorder core.Recorder,
	rateLimiters rateLimitMiddlewares,
) {
	pages := r.Group("")
	pages.Use(middleware.CSRFMiddleware())

	// Guarded pages; each request resolves its own session
	guarded := pages.Group("")
	guarded.Use(middleware.RequireSession(provider, recorder))
	{
		guarded.GET("/", handlers.Home)
		guarded.GET("/dashboard", handlers.Dashboard)
	}

	// Sign-in and sign-up
	authentication := pages.Group("/authentication")
	{
		authentication.GET("", h.auth.SignInPage)
		authentication.POST("", rateLimiters.signIn, h.auth.SignIn)
		authentication.GET("/signup", h.auth.SignUpPage)
		authentication.POST("/signup", rateLimiters.signUp, h.auth.SignUp)
	}
	pages.POST("/sign-out", h.auth.SignOut)

	// Google sign-in
	google := pages.Group("/api/auth")
	{
		google.GET("/sign-in/google", h.oauth.GoogleSignIn)
		google.GET("/callback/google", h.oauth.GoogleCallback)
	}
}

// createHealthCheckHandler creates health check endpoint handler
func createHealthCheckHandler(provider core.AuthProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		checker, ok := provider.(healthChecker)
		if !ok {
			c.JSON(http.StatusOK, gin.H{
				"status":   "healthy",
				"provider": provider.Name(),
			})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()

		switch err := checker.Health(ctx); err {
		case nil:
			c.JSON(http.StatusOK, gin.H{
				"status":   "healthy",
				"provider": provider.Name(),
				"database": "connected",
			})
		default:
			log.Printf("[Health] %s provider unhealthy: %v", provider.Name(), err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"provider": provider.Name(),
				"database": "disconnected",
			})
		}
	}
}

// setupGinMode sets Gin mode based on environment configuration
func setupGinMode(cfg *config.Config) {
	mode := ginModeMap[cfg.IsProduction]
	gin.SetMode(mode)
	log.Printf("Gin mode: %s", ginModeLogMessage[cfg.IsProduction])
}

var ginModeMap = map[bool]string{
	true:  gin.ReleaseMode,
	false: gin.DebugMode,
}

var ginModeLogMessage = map[bool]string{
	true:  "Release (production)",
	false: "Debug (development)",
}

// logServerStartup logs server startup information
func logServerStartup(cfg *config.Config, provider core.AuthProvider) {
	log.Printf("Authentication mode: %s (provider: %s)", cfg.AuthMode, provider.Name())
	log.Printf("%s starting on %s", version.String(), cfg.ServerAddr)
	log.Printf("Sign-in URL: %s%s", cfg.BaseURL, middleware.SignInPath)
	if cfg.GoogleOAuthEnabled {
		log.Printf("Google sign-in callback: %s", cfg.GoogleOAuthRedirectURL)
	}
}
