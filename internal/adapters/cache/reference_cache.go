// Package cache holds Redis-backed decorators for slow-changing lookups.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/travel_desk_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/travel_desk_backend/internal/core/ports/repositories"
	"github.com/SscSPs/travel_desk_backend/internal/middleware"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "travel_desk:ref:"

// NewRedisClient builds a client from a redis:// URL and verifies it answers.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

// ReferenceCache answers reference existence checks from Redis and falls
// back to the wrapped lookup on a miss. Only positive answers are cached, so
// a newly created currency or supplier is usable immediately. Redis errors
// degrade to the wrapped lookup.
type ReferenceCache struct {
	client *redis.Client
	next   portsrepo.ReferenceLookup
	ttl    time.Duration
}

// NewReferenceCache wraps next with a Redis cache holding entries for ttl.
func NewReferenceCache(client *redis.Client, next portsrepo.ReferenceLookup, ttl time.Duration) *ReferenceCache {
	return &ReferenceCache{client: client, next: next, ttl: ttl}
}

var _ portsrepo.ReferenceLookup = (*ReferenceCache)(nil)

// Exists implements portsrepo.ReferenceLookup.
func (c *ReferenceCache) Exists(ctx context.Context, kind domain.ReferenceKind, id int64) (bool, error) {
	key := cacheKey(kind, id)
	logger := middleware.GetLoggerFromCtx(ctx)

	err := c.client.Get(ctx, key).Err()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, redis.Nil):
		// miss
	default:
		logger.Warn("Reference cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	exists, err := c.next.Exists(ctx, kind, id)
	if err != nil || !exists {
		return exists, err
	}
	if err := c.client.Set(ctx, key, "1", c.ttl).Err(); err != nil {
		logger.Warn("Reference cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	return true, nil
}

// Invalidate drops a cached entry, e.g. after a supplier is deactivated.
func (c *ReferenceCache) Invalidate(ctx context.Context, kind domain.ReferenceKind, id int64) error {
	return c.client.Del(ctx, cacheKey(kind, id)).Err()
}

func cacheKey(kind domain.ReferenceKind, id int64) string {
	return fmt.Sprintf("%s%s:%d", keyPrefix, kind, id)
}
