package metrics

import (
	"context"
	"log"
	"time"

	"github.com/devFelipeMarcos/login-vittaSystem/internal/core"
)

// sessionCounter is the store query CacheWrapper needs.
type sessionCounter interface {
	CountActiveSessions(ctx context.Context) (int64, error)
}

// CacheWrapper provides a read-through cache for gauge values so that
// several replicas do not all count sessions in the database.
type CacheWrapper struct {
	store sessionCounter
	cache core.Cache[int64]
}

func NewCacheWrapper(store sessionCounter, cache core.Cache[int64]) *CacheWrapper {
	return &CacheWrapper{
		store: store,
		cache: cache,
	}
}

// GetActiveSessionsCount returns the number of unexpired sessions.
func (m *CacheWrapper) GetActiveSessionsCount(ctx context.Context, ttl time.Duration) (int64, error) {
	return m.cache.GetWithFetch(
		ctx,
		"sessions:active",
		ttl,
		func(ctx context.Context, _ string) (int64, error) {
			return m.store.CountActiveSessions(ctx)
		},
	)
}

// UpdateGauges refreshes the session gauge on r.
func (m *CacheWrapper) UpdateGauges(ctx context.Context, r Recorder, ttl time.Duration) {
	count, err := m.GetActiveSessionsCount(ctx, ttl)
	if err != nil {
		log.Printf("[Metrics] Failed to count active sessions: %v", err)
		r.RecordDatabaseQueryError("count_active_sessions")
		return
	}
	r.SetActiveSessionsCount(count)
}
