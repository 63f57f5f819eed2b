package bootstrap

import (
	"context"
	"log/slog"

	"almaaz-api/internal/infra/cache"
	"almaaz-api/internal/pkg/config"
	"almaaz-api/internal/usecase"

	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewAvailabilityCache,
	),
)

// NewAvailabilityCache wires the Redis-backed snapshot cache, or a no-op
// cache when caching is disabled. Redis being down never fails startup; the
// cache degrades to misses.
func NewAvailabilityCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) usecase.AvailabilityCache {
	if cfg.Redis.DisableCache {
		return cache.NoopCache{}
	}

	client := cache.NewRedisClient(cfg.Redis)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("redis unreachable, availability cache degraded", "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.NewAvailabilityCache(client, cfg.Redis.AvailabilityTTL, logger)
}
