package bootstrap

import (
	"fmt"
	"log"

	"github.com/devFelipeMarcos/login-vittaSystem/internal/config"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// rateLimitMiddlewares holds rate limiting middlewares for different endpoints
type rateLimitMiddlewares struct {
	signIn gin.HandlerFunc
	signUp gin.HandlerFunc
}

// setupRateLimiting configures rate limiting middlewares based on configuration
func setupRateLimiting(cfg *config.Config, redisClient *redis.Client) (rateLimitMiddlewares, error) {
	if !cfg.EnableRateLimit {
		noOp := func(c *gin.Context) { c.Next() }
		log.Println("Rate limiting disabled")
		return rateLimitMiddlewares{signIn: noOp, signUp: noOp}, nil
	}

	log.Printf("Rate limiting enabled (store: %s)", cfg.RateLimitStore)
	if cfg.RateLimitStore == config.RateLimitStoreMemory {
		log.Printf("In-memory rate limiting configured (single instance only)")
	}

	createLimiter := func(name string, requestsPerMinute int) (gin.HandlerFunc, error) {
		limiter, err := middleware.NewRateLimiter(middleware.RateLimitConfig{
			Name:              name,
			RequestsPerMinute: requestsPerMinute,
			CleanupInterval:   cfg.RateLimitCleanupInterval,
			StoreType:         cfg.RateLimitStore,
			RedisClient:       redisClient, // nil for memory store
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create rate limiter for %s: %w", name, err)
		}
		return limiter, nil
	}

	signIn, err := createLimiter("sign-in", cfg.SignInRateLimit)
	if err != nil {
		return rateLimitMiddlewares{}, err
	}
	signUp, err := createLimiter("sign-up", cfg.SignUpRateLimit)
	if err != nil {
		return rateLimitMiddlewares{}, err
	}
	return rateLimitMiddlewares{signIn: signIn, signUp: signUp}, nil
}
