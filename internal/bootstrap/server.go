package bootstrap

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/devFelipeMarcos/login-vittaSystem/internal/auth"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/cache"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/config"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/core"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/metrics"
	"github.com/devFelipeMarcos/login-vittaSystem/internal/store"

	"github.com/appleboy/graceful"
	"github.com/redis/go-redis/v9"
)

// createHTTPServer creates the HTTP server instance
func createHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// addServerRunningJob adds the HTTP server running job
func addServerRunningJob(m *graceful.Manager, srv *http.Server) {
	m.AddRunningJob(func(ctx context.Context) error {
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("Failed to start server: %v", err)
			}
		}()
		<-ctx.Done()
		return nil
	})
}

// addServerShutdownJob adds HTTP server shutdown handler
func addServerShutdownJob(m *graceful.Manager, srv *http.Server, timeout time.Duration) {
	m.AddShutdownJob(func() error {
		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Server forced to shutdown: %v", err)
			return err
		}

		log.Println("Server exited")
		return nil
	})
}

// addRedisClientShutdownJob adds Redis client shutdown handler
func addRedisClientShutdownJob(m *graceful.Manager, redisClient *redis.Client) {
	if redisClient == nil {
		return
	}

	m.AddShutdownJob(func() error {
		log.Println("Closing Redis connection...")
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis client: %v", err)
			return err
		}
		log.Println("Redis connection closed")
		return nil
	})
}

// addDatabaseShutdownJob closes the database pool on shutdown
func addDatabaseShutdownJob(m *graceful.Manager, db *store.Store) {
	if db == nil {
		return
	}

	m.AddShutdownJob(func() error {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
			return err
		}
		log.Println("Database connection closed")
		return nil
	})
}

// addSessionCleanupJob periodically deletes expired sessions (local provider only)
func addSessionCleanupJob(
	m *graceful.Manager,
	cfg *config.Config,
	p *auth.LocalProvider,
	sessionCache core.Cache[core.Session],
) {
	if p == nil || cfg.SessionCleanupInterval <= 0 {
		return
	}

	m.AddRunningJob(func(ctx context.Context) error {
		ticker := time.NewTicker(cfg.SessionCleanupInterval)
		defer ticker.Stop()

		// Run cleanup immediately on startup
		cleanupExpiredSessions(ctx, p)

		for {
			select {
			case <-ticker.C:
				cleanupExpiredSessions(ctx, p)
				pruneMemoryCache(sessionCache)
			case <-ctx.Done():
				return nil
			}
		}
	})
}

func cleanupExpiredSessions(ctx context.Context, p *auth.LocalProvider) {
	if deleted, err := p.CleanupExpiredSessions(ctx); err != nil {
		log.Printf("Failed to cleanup expired sessions: %v", err)
	} else if deleted > 0 {
		log.Printf("Cleaned up %d expired sessions", deleted)
	}
}

// addMetricsGaugeUpdateJob adds periodic metrics gauge update job
func addMetricsGaugeUpdateJob(
	m *graceful.Manager,
	cfg *config.Config,
	db *store.Store,
	recorder core.Recorder,
	metricsCache core.Cache[int64],
) {
	if db == nil || metricsCache == nil {
		return
	}

	m.AddRunningJob(func(ctx context.Context) error {
		ticker := time.NewTicker(cfg.MetricsGaugeUpdateInterval)
		defer ticker.Stop()

		cacheWrapper := metrics.NewCacheWrapper(db, metricsCache)

		// Update immediately on startup
		cacheWrapper.UpdateGauges(ctx, recorder, cfg.MetricsGaugeUpdateInterval)

		for {
			select {
			case <-ticker.C:
				cacheWrapper.UpdateGauges(ctx, recorder, cfg.MetricsGaugeUpdateInterval)
				pruneMemoryCache(metricsCache)
			case <-ctx.Done():
				return nil
			}
		}
	})
}

// pruneMemoryCache drops expired entries from in-process caches.
// Redis backed caches expire keys on their own.
func pruneMemoryCache[T any](c core.Cache[T]) {
	if mc, ok := c.(*cache.MemoryCache[T]); ok {
		if n := mc.Prune(); n > 0 {
			log.Printf("Pruned %d expired cache entries", n)
		}
	}
}

// addCacheCloseJob closes a cache on shutdown
func addCacheCloseJob[T any](m *graceful.Manager, name string, c core.Cache[T]) {
	if c == nil {
		return
	}

	m.AddShutdownJob(func() error {
		if err := c.Close(); err != nil {
			log.Printf("Error closing %s cache: %v", name, err)
		} else {
			log.Printf("%s cache closed", name)
		}
		return nil
	})
}
