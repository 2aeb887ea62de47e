package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/devFelipeMarcos/login-vittaSystem/internal/cache"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/config"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/core"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/metrics"
)

const (
	metricsCachePrefix = "vitta:metrics:"
	sessionCachePrefix = "vitta:sessions:"
)

// initializeMetrics initializes Prometheus metrics
func initializeMetrics(cfg *config.Config) core.Recorder {
	recorder := metrics.Init(cfg.MetricsEnabled)
	if cfg.MetricsEnabled {
		log.Println("Prometheus metrics initialized")
	} else {
		log.Println("Metrics disabled (using noop implementation)")
	}
	return recorder
}

// initializeMetricsCache initializes the cache in front of the active session count
func initializeMetricsCache(ctx context.Context, cfg *config.Config) (core.Cache[int64], error) {
	if !cfg.MetricsEnabled || !cfg.MetricsGaugeUpdateEnabled {
		return nil, nil
	}

	c, err := newCache[int64](ctx, cfg, cfg.MetricsCacheType, metricsCachePrefix, cfg.MetricsCacheClientTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize metrics cache: %w", err)
	}
	log.Printf("Metrics cache: %s", cfg.MetricsCacheType)
	return c, nil
}

// initializeSessionCache initializes the session lookup cache used by the guard
func initializeSessionCache(ctx context.Context, cfg *config.Config) (core.Cache[core.Session], error) {
	if cfg.SessionCacheType == config.SessionCacheTypeNone {
		log.Println("Session cache: disabled")
		return nil, nil
	}

	c, err := newCache[core.Session](
		ctx,
		cfg,
		cfg.SessionCacheType,
		sessionCachePrefix,
		cfg.SessionCacheClientTTL,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session cache: %w", err)
	}
	log.Printf("Session cache: %s (ttl=%s)", cfg.SessionCacheType, cfg.SessionCacheTTL)
	return c, nil
}

func newCache[T any](
	ctx context.Context,
	cfg *config.Config,
	cacheType, prefix string,
	clientTTL time.Duration,
) (core.Cache[T], error) {
	// Create timeout context for cache initialization
	ctx, cancel := context.WithTimeout(ctx, cfg.CacheInitTimeout)
	defer cancel()

	switch cacheType {
	case config.SessionCacheTypeRedisAside:
		c, err := cache.NewRueidisAsideCache[T](
			cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB,
			prefix,
			clientTTL,
		)
		if err != nil {
			return nil, err
		}
		if err := c.Health(ctx); err != nil {
			_ = c.Close()
			return nil, err
		}
		return c, nil

	case config.SessionCacheTypeRedis:
		c, err := cache.NewRueidisCache[T](
			ctx,
			cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB,
			prefix,
		)
		if err != nil {
			return nil, err
		}
		return c, nil

	default: // memory
		return cache.NewMemoryCache[T](), nil
	}
}
