package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestDefaultTimeoutValues verifies that timeout configurations have sensible defaults
func TestDefaultTimeoutValues(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 30*time.Second, cfg.DBInitTimeout, "DB init timeout should be 30s")
	assert.Equal(t, 5*time.Second, cfg.RedisConnTimeout, "Redis connection timeout should be 5s")
	assert.Equal(t, 5*time.Second, cfg.CacheInitTimeout, "Cache init timeout should be 5s")
	assert.Equal(t, 5*time.Second, cfg.CacheCloseTimeout, "Cache close timeout should be 5s")
	assert.Equal(t, 15*time.Second, cfg.OAuthTimeout, "OAuth timeout should be 15s")
	assert.Equal(t, 10*time.Second, cfg.HTTPAPITimeout, "HTTP API timeout should be 10s")
	assert.Equal(
		t,
		5*time.Second,
		cfg.ServerShutdownTimeout,
		"Server shutdown timeout should be 5s",
	)
}

func TestCustomTimeoutValues(t *testing.T) {
	t.Setenv("DB_INIT_TIMEOUT", "1m")
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "20s")
	t.Setenv("OAUTH_TIMEOUT", "bogus")

	cfg := Load()

	assert.Equal(t, time.Minute, cfg.DBInitTimeout)
	assert.Equal(t, 20*time.Second, cfg.ServerShutdownTimeout)
	assert.Equal(t, 15*time.Second, cfg.OAuthTimeout, "unparsable durations keep the default")
}
