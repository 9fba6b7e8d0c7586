package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache key prefixes and TTLs.
const (
	userKeyPrefix     = "user:"
	negCacheKeySuffix = ":neg"

	// DefaultUserTTL is the fallback TTL for cached usernames.
	DefaultUserTTL = time.Hour

	// NegativeCacheTTL is the TTL for negative cache entries.
	NegativeCacheTTL = 5 * time.Minute
)

// Common cache errors.
var (
	ErrCacheMiss = errors.New("cache miss")
)

// userKey builds the cache key for a user ID.
func userKey(id string) string {
	return userKeyPrefix + id
}

// GetUsername retrieves a cached username by user ID.
// Returns ErrCacheMiss if not found.
func (c *Cache) GetUsername(ctx context.Context, id string) (string, error) {
	username, err := c.client.Get(ctx, userKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCacheMiss
		}
		return "", fmt.Errorf("redis get failed: %w", err)
	}

	return username, nil
}

// SetUsername stores a username in cache and clears any negative entry.
func (c *Cache) SetUsername(ctx context.Context, id, username string) error {
	key := userKey(id)

	pipe := c.client.Pipeline()
	pipe.SetEx(ctx, key, username, c.userTTL)
	pipe.Del(ctx, key+negCacheKeySuffix)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to cache username: %w", err)
	}

	return nil
}

// IsNegativelyCached checks if a user ID is in negative cache.
func (c *Cache) IsNegativelyCached(ctx context.Context, id string) (bool, error) {
	exists, err := c.client.Exists(ctx, userKey(id)+negCacheKeySuffix).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check negative cache: %w", err)
	}

	return exists > 0, nil
}

// SetNegativeCache marks a user ID as not found.
// User IDs are never reused, so a short TTL is safe.
func (c *Cache) SetNegativeCache(ctx context.Context, id string) error {
	key := userKey(id) + negCacheKeySuffix

	if err := c.client.SetEx(ctx, key, "", NegativeCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set negative cache: %w", err)
	}

	return nil
}
