// Package cache holds the Redis client and the read-through caches built on it.
package cache

import (
	"context"
	"log/slog"

	"carewatch/config"
	"carewatch/internal/domain/lifecycle"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RedisParams defines the dependencies of the Redis client.
type RedisParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient returns a client bound to the fx lifecycle, or nil when Redis is disabled.
func NewRedisClient(params RedisParams) *redis.Client {
	cfg := params.Config.Redis
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Redis not configured, guardian lookups are not cached")

		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}
