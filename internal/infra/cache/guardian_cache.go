package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"carewatch/config"
	"carewatch/internal/domain/entity"
	"carewatch/internal/domain/repository"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	guardianKeyPrefix  = "carewatch:guardians:"
	defaultGuardianTTL = 5 * time.Minute
)

// cachedGuardianDirectory is a read-through cache in front of the guardian directory.
// Redis failures degrade to the underlying directory.
type cachedGuardianDirectory struct {
	next   repository.GuardianDirectory
	client redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

// GuardianDirectoryParams defines the dependencies of the cached guardian directory.
type GuardianDirectoryParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Source repository.GuardianDirectory `name:"guardianSource"`
	Client *redis.Client                `optional:"true"`
}

// NewCachedGuardianDirectory wraps the source directory with Redis when a client is available.
func NewCachedGuardianDirectory(params GuardianDirectoryParams) repository.GuardianDirectory {
	if params.Client == nil {
		return params.Source
	}

	ttl := defaultGuardianTTL
	if params.Config.Redis != nil && params.Config.Redis.CacheTTL > 0 {
		ttl = params.Config.Redis.CacheTTL
	}

	return newCachedGuardianDirectory(params.Source, params.Client, ttl, params.Logger)
}

func newCachedGuardianDirectory(next repository.GuardianDirectory, client redis.Cmdable, ttl time.Duration, logger *slog.Logger) *cachedGuardianDirectory {
	return &cachedGuardianDirectory{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func guardianKey(userID uuid.UUID) string {
	return guardianKeyPrefix + userID.String()
}

// ListActiveGuardians serves from Redis when possible and fills the cache on a miss.
func (c *cachedGuardianDirectory) ListActiveGuardians(ctx context.Context, userID uuid.UUID) ([]*entity.Guardian, error) {
	key := guardianKey(userID)

	cached, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var guardians []*entity.Guardian
		if jsonErr := json.Unmarshal(cached, &guardians); jsonErr == nil {
			return guardians, nil
		}
		c.logger.WarnContext(ctx, "Discarding malformed guardian cache entry", slog.String("key", key))
	case err != redis.Nil:
		c.logger.WarnContext(ctx, "Guardian cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	guardians, err := c.next.ListActiveGuardians(ctx, userID)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(guardians)
	if err != nil {
		return guardians, nil
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "Guardian cache write failed", slog.String("key", key), slog.Any("error", err))
	}

	return guardians, nil
}

// Invalidate drops the cached guardian list of a user.
func (c *cachedGuardianDirectory) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return c.client.Del(ctx, guardianKey(userID)).Err()
}
