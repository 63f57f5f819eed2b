package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"almaaz-api/internal/pkg/config"
	"almaaz-api/internal/pkg/metrics"
	"almaaz-api/internal/usecase"

	"github.com/redis/go-redis/v9"
)

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// AvailabilityCache keeps short-lived availability snapshots in redis.
// It is never authoritative: misses and redis failures fall through to the
// store, and the snapshot is invalidated after every successful table claim.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewAvailabilityCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *AvailabilityCache {
	return &AvailabilityCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func snapshotKey(date, timeOfDay string) string {
	return fmt.Sprintf("avail:%s:%s", date, timeOfDay)
}

func (c *AvailabilityCache) Get(ctx context.Context, date, timeOfDay string) ([]usecase.TableAvailability, bool) {
	val, err := c.client.Get(ctx, snapshotKey(date, timeOfDay)).Result()
	if err == redis.Nil {
		metrics.IncAvailabilityCache("miss")
		return nil, false
	}
	if err != nil {
		c.logger.Warn("availability cache read failed", "error", err)
		metrics.IncAvailabilityCache("miss")
		return nil, false
	}

	var snapshot []usecase.TableAvailability
	if err := json.Unmarshal([]byte(val), &snapshot); err != nil {
		c.logger.Warn("availability cache entry corrupt", "error", err)
		metrics.IncAvailabilityCache("miss")
		return nil, false
	}

	metrics.IncAvailabilityCache("hit")
	return snapshot, true
}

func (c *AvailabilityCache) Set(ctx context.Context, date, timeOfDay string, snapshot []usecase.TableAvailability) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		c.logger.Warn("failed to encode availability snapshot", "error", err)
		return
	}
	if err := c.client.Set(ctx, snapshotKey(date, timeOfDay), data, c.ttl).Err(); err != nil {
		c.logger.Warn("availability cache write failed", "error", err)
	}
}

func (c *AvailabilityCache) Invalidate(ctx context.Context, date, timeOfDay string) {
	if err := c.client.Del(ctx, snapshotKey(date, timeOfDay)).Err(); err != nil {
		c.logger.Warn("availability cache invalidation failed", "error", err)
	}
}

// NoopCache satisfies the cache port when redis is disabled.
type NoopCache struct{}

func (NoopCache) Get(context.Context, string, string) ([]usecase.TableAvailability, bool) {
	return nil, false
}
func (NoopCache) Set(context.Context, string, string, []usecase.TableAvailability) {}
func (NoopCache) Invalidate(context.Context, string, string)                       {}
