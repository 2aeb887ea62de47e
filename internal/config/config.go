package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Authentication mode constants
const (
	AuthModeLocal   = "local"
	AuthModeHTTPAPI = "http_api"
)

// Rate limit store constants
const (
	RateLimitStoreMemory = "memory"
	RateLimitStoreRedis  = "redis"
)

// Session cache type constants
const (
	SessionCacheTypeNone       = "none"
	SessionCacheTypeMemory     = "memory"
	SessionCacheTypeRedis      = "redis"
	SessionCacheTypeRedisAside = "redis-aside"
)

const (
	defaultAuthCookieName       = "vitta.session_token"
	defaultGoogleCallbackPath   = "/api/auth/callback/google"
	defaultAuthSessionLifetime  = 7 * 24 * time.Hour
	defaultBrowserSessionMaxAge = 86400 // seconds
)

type Config struct {
	// Server settings
	ServerAddr   string
	BaseURL      string
	IsProduction bool

	// Browser session (flash messages, CSRF token, OAuth state)
	SessionSecret string
	SessionMaxAge int // seconds

	// Authentication session issued by the provider
	AuthCookieName        string
	AuthSessionExpiration time.Duration

	// Database (local provider only)
	DatabaseDriver string // "sqlite" or "postgres"
	DatabaseDSN    string
	DBInitTimeout  time.Duration

	// Authentication provider
	AuthMode string // "local" or "http_api"

	// HTTP API provider
	HTTPAPIURL                string
	HTTPAPITimeout            time.Duration
	HTTPAPIInsecureSkipVerify bool
	HTTPAPIAuthMode           string // "none", "simple", or "hmac"
	HTTPAPIAuthSecret         string
	HTTPAPIAuthHeader         string
	HTTPAPIMaxRetries         int
	HTTPAPIRetryDelay         time.Duration
	HTTPAPIMaxRetryDelay      time.Duration

	// Google OAuth
	GoogleOAuthEnabled     bool
	GoogleClientID         string
	GoogleClientSecret     string
	GoogleOAuthRedirectURL string
	GoogleOAuthScopes      []string

	// OAuth HTTP client
	OAuthTimeout            time.Duration
	OAuthInsecureSkipVerify bool

	// Rate limiting
	EnableRateLimit          bool
	RateLimitStore           string // "memory" or "redis"
	RateLimitCleanupInterval time.Duration
	SignInRateLimit          int // requests per minute
	SignUpRateLimit          int // requests per minute

	// Redis (rate limiting and session cache)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Session lookup cache (local provider)
	SessionCacheType      string
	SessionCacheTTL       time.Duration
	SessionCacheClientTTL time.Duration

	// Expired session cleanup (local provider)
	SessionCleanupInterval time.Duration

	// Prometheus metrics
	MetricsEnabled             bool
	MetricsToken               string
	MetricsGaugeUpdateEnabled  bool
	MetricsGaugeUpdateInterval time.Duration
	MetricsCacheType           string // "memory", "redis" or "redis-aside"
	MetricsCacheClientTTL      time.Duration

	// Timeouts
	RedisConnTimeout      time.Duration
	CacheInitTimeout      time.Duration
	CacheCloseTimeout     time.Duration
	ServerShutdownTimeout time.Duration
}

func Load() *Config {
	// Load .env file if exists (ignore error if not found)
	_ = godotenv.Load()

	driver := getEnv("DATABASE_DRIVER", "sqlite")
	var dsn string
	if driver == "sqlite" {
		dsn = getEnv("DATABASE_DSN", getEnv("DATABASE_PATH", "vitta.db"))
	} else {
		dsn = getEnv("DATABASE_DSN", "")
	}

	baseURL := strings.TrimRight(getEnv("BASE_URL", "http://localhost:8080"), "/")

	return &Config{
		ServerAddr:   getEnv("SERVER_ADDR", ":8080"),
		BaseURL:      baseURL,
		IsProduction: getEnv("ENVIRONMENT", "development") == "production",

		SessionSecret: getEnv("SESSION_SECRET", "session-secret-change-in-production"),
		SessionMaxAge: getEnvInt("SESSION_MAX_AGE", defaultBrowserSessionMaxAge),

		AuthCookieName: getEnv("AUTH_COOKIE_NAME", defaultAuthCookieName),
		AuthSessionExpiration: getEnvDuration(
			"AUTH_SESSION_EXPIRATION",
			defaultAuthSessionLifetime,
		),

		DatabaseDriver: driver,
		DatabaseDSN:    dsn,
		DBInitTimeout:  getEnvDuration("DB_INIT_TIMEOUT", 30*time.Second),

		AuthMode: getEnv("AUTH_MODE", AuthModeLocal),

		HTTPAPIURL:                strings.TrimRight(getEnv("HTTP_API_URL", ""), "/"),
		HTTPAPITimeout:            getEnvDuration("HTTP_API_TIMEOUT", 10*time.Second),
		HTTPAPIInsecureSkipVerify: getEnvBool("HTTP_API_INSECURE_SKIP_VERIFY", false),
		HTTPAPIAuthMode:           getEnv("HTTP_API_AUTH_MODE", "none"),
		HTTPAPIAuthSecret:         getEnv("HTTP_API_AUTH_SECRET", ""),
		HTTPAPIAuthHeader:         getEnv("HTTP_API_AUTH_HEADER", "X-API-Secret"),
		HTTPAPIMaxRetries:         getEnvInt("HTTP_API_MAX_RETRIES", 3),
		HTTPAPIRetryDelay:         getEnvDuration("HTTP_API_RETRY_DELAY", 1*time.Second),
		HTTPAPIMaxRetryDelay:      getEnvDuration("HTTP_API_MAX_RETRY_DELAY", 10*time.Second),

		GoogleOAuthEnabled: getEnvBool("GOOGLE_OAUTH_ENABLED", false),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleOAuthRedirectURL: getEnv(
			"GOOGLE_REDIRECT_URL",
			baseURL+defaultGoogleCallbackPath,
		),
		GoogleOAuthScopes: getEnvSlice(
			"GOOGLE_SCOPES",
			[]string{"openid", "email", "profile"},
		),

		OAuthTimeout:            getEnvDuration("OAUTH_TIMEOUT", 15*time.Second),
		OAuthInsecureSkipVerify: getEnvBool("OAUTH_INSECURE_SKIP_VERIFY", false),

		EnableRateLimit:          getEnvBool("ENABLE_RATE_LIMIT", true),
		RateLimitStore:           getEnv("RATE_LIMIT_STORE", RateLimitStoreMemory),
		RateLimitCleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		SignInRateLimit:          getEnvInt("SIGN_IN_RATE_LIMIT", 10),
		SignUpRateLimit:          getEnvInt("SIGN_UP_RATE_LIMIT", 5),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		SessionCacheType:      getEnv("SESSION_CACHE_TYPE", SessionCacheTypeNone),
		SessionCacheTTL:       getEnvDuration("SESSION_CACHE_TTL", 30*time.Second),
		SessionCacheClientTTL: getEnvDuration("SESSION_CACHE_CLIENT_TTL", 10*time.Second),

		SessionCleanupInterval: getEnvDuration("SESSION_CLEANUP_INTERVAL", time.Hour),

		MetricsEnabled:             getEnvBool("METRICS_ENABLED", false),
		MetricsToken:               getEnv("METRICS_TOKEN", ""),
		MetricsGaugeUpdateEnabled:  getEnvBool("METRICS_GAUGE_UPDATE_ENABLED", true),
		MetricsGaugeUpdateInterval: getEnvDuration("METRICS_GAUGE_UPDATE_INTERVAL", 30*time.Second),
		MetricsCacheType:           getEnv("METRICS_CACHE_TYPE", SessionCacheTypeMemory),
		MetricsCacheClientTTL:      getEnvDuration("METRICS_CACHE_CLIENT_TTL", 10*time.Second),

		RedisConnTimeout:      getEnvDuration("REDIS_CONN_TIMEOUT", 5*time.Second),
		CacheInitTimeout:      getEnvDuration("CACHE_INIT_TIMEOUT", 5*time.Second),
		CacheCloseTimeout:     getEnvDuration("CACHE_CLOSE_TIMEOUT", 5*time.Second),
		ServerShutdownTimeout: getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 5*time.Second),
	}
}

// Validate checks enumerated settings that would otherwise fail silently.
func (c *Config) Validate() error {
	switch c.RateLimitStore {
	case RateLimitStoreMemory:
	case RateLimitStoreRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("RATE_LIMIT_STORE=%q requires REDIS_ADDR", c.RateLimitStore)
		}
	default:
		return fmt.Errorf(
			"invalid RATE_LIMIT_STORE value: %q (must be %q or %q)",
			c.RateLimitStore, RateLimitStoreMemory, RateLimitStoreRedis,
		)
	}

	switch c.SessionCacheType {
	case SessionCacheTypeNone:
	case SessionCacheTypeMemory, SessionCacheTypeRedis, SessionCacheTypeRedisAside:
		if c.SessionCacheType != SessionCacheTypeMemory && c.RedisAddr == "" {
			return fmt.Errorf("SESSION_CACHE_TYPE=%q requires REDIS_ADDR", c.SessionCacheType)
		}
		if c.SessionCacheTTL <= 0 {
			return fmt.Errorf("SESSION_CACHE_TTL must be positive, got %s", c.SessionCacheTTL)
		}
	default:
		return fmt.Errorf(
			"invalid SESSION_CACHE_TYPE value: %q (must be none, memory, redis or redis-aside)",
			c.SessionCacheType,
		)
	}

	switch c.MetricsCacheType {
	case SessionCacheTypeMemory:
	case SessionCacheTypeRedis, SessionCacheTypeRedisAside:
		if c.MetricsEnabled && c.RedisAddr == "" {
			return fmt.Errorf("METRICS_CACHE_TYPE=%q requires REDIS_ADDR", c.MetricsCacheType)
		}
	default:
		return fmt.Errorf(
			"invalid METRICS_CACHE_TYPE value: %q (must be memory, redis or redis-aside)",
			c.MetricsCacheType,
		)
	}

	if c.MetricsEnabled && c.MetricsGaugeUpdateEnabled && c.MetricsGaugeUpdateInterval <= 0 {
		return fmt.Errorf(
			"METRICS_GAUGE_UPDATE_INTERVAL must be positive, got %s",
			c.MetricsGaugeUpdateInterval,
		)
	}

	if c.AuthCookieName == "" {
		return errors.New("AUTH_COOKIE_NAME must not be empty")
	}

	if c.AuthSessionExpiration <= 0 {
		return fmt.Errorf(
			"AUTH_SESSION_EXPIRATION must be positive, got %s",
			c.AuthSessionExpiration,
		)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1"
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var i int
		if _, err := fmt.Sscanf(value, "%d", &i); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := splitAndTrim(value, ",")
		if len(parts) > 0 {
			return parts
		}
	}
	return defaultValue
}

func splitAndTrim(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
