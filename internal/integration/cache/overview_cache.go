// Package cache implements Redis-backed caches for the integration layer.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/business-manager/backend/internal/application/adapter"
)

// Redis key prefix for cached billing overviews.
const overviewKeyPrefix = "overview:"

// redisOverviewCache is a Redis-backed implementation of adapter.OverviewCache.
// Overviews are cached per user and period so concurrent dashboard loads
// don't repeat the aggregation, and dropped wholesale on any billing write.
type redisOverviewCache struct {
	client *redis.Client
}

// NewOverviewCache creates a Redis-backed overview cache.
func NewOverviewCache(client *redis.Client) adapter.OverviewCache {
	return &redisOverviewCache{
		client: client,
	}
}

func overviewKey(userID uuid.UUID, month time.Month, year int) string {
	return fmt.Sprintf("%s%s:%04d-%02d", overviewKeyPrefix, userID, year, int(month))
}

// Get returns the cached payload for a user and period, or "" on a miss.
func (c *redisOverviewCache) Get(ctx context.Context, userID uuid.UUID, month time.Month, year int) (string, error) {
	payload, err := c.client.Get(ctx, overviewKey(userID, month, year)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read overview cache: %w", err)
	}
	return payload, nil
}

// Set stores the payload for a user and period with a TTL.
func (c *redisOverviewCache) Set(ctx context.Context, userID uuid.UUID, month time.Month, year int, payload string, ttl time.Duration) error {
	if err := c.client.Set(ctx, overviewKey(userID, month, year), payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write overview cache: %w", err)
	}
	return nil
}

// InvalidateUser drops every cached overview of a user.
func (c *redisOverviewCache) InvalidateUser(ctx context.Context, userID uuid.UUID) error {
	pattern := overviewKeyPrefix + userID.String() + ":*"
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan overview cache keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to drop overview cache keys: %w", err)
	}
	return nil
}
