package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedSession struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

func TestMemoryCache_GetSet(t *testing.T) {
	c := NewMemoryCache[cachedSession]()
	ctx := context.Background()

	want := cachedSession{Token: "abc", UserID: "u1"}
	require.NoError(t, c.Set(ctx, "k", want, time.Minute))

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMemoryCache_GetMiss(t *testing.T) {
	c := NewMemoryCache[cachedSession]()

	_, err := c.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCache_Expiration(t *testing.T) {
	c := NewMemoryCache[int]()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "short", 1, 20*time.Millisecond))
	_, err := c.Get(ctx, "short")
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	_, err = c.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCache_Delete(t *testing.T) {
	c := NewMemoryCache[int]()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", 1, time.Minute))
	require.NoError(t, c.Delete(ctx, "k"))

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCache_Prune(t *testing.T) {
	c := NewMemoryCache[int]()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "expired", 1, -time.Second))
	require.NoError(t, c.Set(ctx, "live", 2, time.Minute))
	assert.Equal(t, 2, c.Len())

	assert.Equal(t, 1, c.Prune())
	assert.Equal(t, 1, c.Len())

	v, err := c.Get(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestMemoryCache_CloseClears(t *testing.T) {
	c := NewMemoryCache[int]()
	ctx := context.Background()

	_ = c.Set(ctx, "a", 1, time.Minute)
	require.NoError(t, c.Close())

	_, err := c.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.NoError(t, c.Health(ctx))
}

func TestMemoryCache_GetWithFetch(t *testing.T) {
	c := NewMemoryCache[cachedSession]()
	ctx := context.Background()

	calls := 0
	fetch := func(ctx context.Context, key string) (cachedSession, error) {
		calls++
		return cachedSession{Token: key}, nil
	}

	v, err := c.GetWithFetch(ctx, "tok", time.Minute, fetch)
	require.NoError(t, err)
	assert.Equal(t, "tok", v.Token)

	v, err = c.GetWithFetch(ctx, "tok", time.Minute, fetch)
	require.NoError(t, err)
	assert.Equal(t, "tok", v.Token)
	assert.Equal(t, 1, calls, "second call should be served from cache")
}

func TestMemoryCache_GetWithFetch_FetchError(t *testing.T) {
	c := NewMemoryCache[int]()
	ctx := context.Background()
	fetchErr := errors.New("fetch failed")

	_, err := c.GetWithFetch(ctx, "k", time.Minute, func(context.Context, string) (int, error) {
		return 0, fetchErr
	})
	assert.ErrorIs(t, err, fetchErr)

	_, err = c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss, "failed fetch must not populate the cache")
}

func TestMemoryCache_Concurrent(t *testing.T) {
	c := NewMemoryCache[int64]()
	ctx := context.Background()

	var fetches atomic.Int64
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = c.Set(ctx, "shared", int64(n), time.Minute)
			_, _ = c.Get(ctx, "shared")
			_, _ = c.GetWithFetch(ctx, "other", time.Minute, func(context.Context, string) (int64, error) {
				fetches.Add(1)
				return 7, nil
			})
		}(i)
	}
	wg.Wait()

	_, err := c.Get(ctx, "shared")
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, fetches.Load(), int64(1))
}

func TestCodec(t *testing.T) {
	s, err := encode(cachedSession{Token: "t", UserID: "u"})
	require.NoError(t, err)

	got, err := decode[cachedSession](s)
	require.NoError(t, err)
	assert.Equal(t, "u", got.UserID)

	_, err = decode[cachedSession]("{not json")
	assert.ErrorIs(t, err, ErrInvalidValue)
}
