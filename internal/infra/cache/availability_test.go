//go:build unit

package cache_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"almaaz-api/internal/infra/cache"
	"almaaz-api/internal/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCacheFixture(t *testing.T, ttl time.Duration) (*cache.AvailabilityCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return cache.NewAvailabilityCache(client, ttl, logger), mr
}

func sampleSnapshot() []usecase.TableAvailability {
	return []usecase.TableAvailability{
		{TableNumber: 1, Seats: 2, Available: true},
		{TableNumber: 5, Seats: 4, Available: false},
	}
}

func TestAvailabilityCacheRoundTrip(t *testing.T) {
	c, _ := newCacheFixture(t, 30*time.Second)
	ctx := context.Background()

	_, ok := c.Get(ctx, "2026-03-17", "19:00")
	require.False(t, ok, "cold cache misses")

	c.Set(ctx, "2026-03-17", "19:00", sampleSnapshot())

	got, ok := c.Get(ctx, "2026-03-17", "19:00")
	require.True(t, ok)
	assert.Equal(t, sampleSnapshot(), got)

	// A different slot stays a miss.
	_, ok = c.Get(ctx, "2026-03-17", "20:00")
	assert.False(t, ok)
}

func TestAvailabilityCacheExpiry(t *testing.T) {
	c, mr := newCacheFixture(t, 30*time.Second)
	ctx := context.Background()

	c.Set(ctx, "2026-03-17", "19:00", sampleSnapshot())
	mr.FastForward(31 * time.Second)

	_, ok := c.Get(ctx, "2026-03-17", "19:00")
	assert.False(t, ok, "entries expire with the configured TTL")
}

func TestAvailabilityCacheInvalidate(t *testing.T) {
	c, _ := newCacheFixture(t, 30*time.Second)
	ctx := context.Background()

	c.Set(ctx, "2026-03-17", "19:00", sampleSnapshot())
	c.Invalidate(ctx, "2026-03-17", "19:00")

	_, ok := c.Get(ctx, "2026-03-17", "19:00")
	assert.False(t, ok)
}

func TestAvailabilityCacheCorruptEntry(t *testing.T) {
	c, mr := newCacheFixture(t, 30*time.Second)
	ctx := context.Background()

	require.NoError(t, mr.Set("avail:2026-03-17:19:00", "{not json"))

	_, ok := c.Get(ctx, "2026-03-17", "19:00")
	assert.False(t, ok, "corrupt entries degrade to a miss")
}

func TestAvailabilityCacheRedisDown(t *testing.T) {
	c, mr := newCacheFixture(t, 30*time.Second)
	ctx := context.Background()

	mr.Close()

	// All operations degrade silently when redis is unreachable.
	c.Set(ctx, "2026-03-17", "19:00", sampleSnapshot())
	_, ok := c.Get(ctx, "2026-03-17", "19:00")
	assert.False(t, ok)
	c.Invalidate(ctx, "2026-03-17", "19:00")
}

func TestNoopCache(t *testing.T) {
	var c cache.NoopCache
	ctx := context.Background()

	c.Set(ctx, "2026-03-17", "19:00", sampleSnapshot())
	_, ok := c.Get(ctx, "2026-03-17", "19:00")
	assert.False(t, ok)
}
