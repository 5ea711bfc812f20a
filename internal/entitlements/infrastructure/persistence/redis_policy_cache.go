package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/creatorhub/creatorhub/internal/entitlements/domain"
	"github.com/redis/go-redis/v9"
)

// policyCacheTTL bounds how stale a cached policy may be.
const policyCacheTTL = 5 * time.Minute

// negativeEntry marks "no policy exists" so absence is also cached.
const negativeEntry = "null"

// RedisPolicyCache is a read-through cache in front of a policy
// repository. Cache failures fall through to the inner repository.
type RedisPolicyCache struct {
	client *redis.Client
	inner  domain.PolicyRepository
	logger *slog.Logger
}

// NewRedisPolicyCache wraps the repository with a Redis cache.
func NewRedisPolicyCache(client *redis.Client, inner domain.PolicyRepository, logger *slog.Logger) *RedisPolicyCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisPolicyCache{client: client, inner: inner, logger: logger}
}

// Get returns the cached policy when present, otherwise reads through.
func (c *RedisPolicyCache) Get(ctx context.Context, itemType domain.ItemType, itemID string) (*domain.ContentPolicy, error) {
	key := c.key(itemType, itemID)

	cached, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		if cached == negativeEntry {
			return nil, nil
		}
		var policy domain.ContentPolicy
		if err := json.Unmarshal([]byte(cached), &policy); err == nil {
			return &policy, nil
		}
		// Corrupt entry: drop it and read through.
		c.client.Del(ctx, key)
	case err != redis.Nil:
		c.logger.Warn("policy cache read failed", "key", key, "error", err)
	}

	policy, err := c.inner.Get(ctx, itemType, itemID)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, policy)
	return policy, nil
}

func (c *RedisPolicyCache) store(ctx context.Context, key string, policy *domain.ContentPolicy) {
	value := negativeEntry
	if policy != nil {
		data, err := json.Marshal(policy)
		if err != nil {
			return
		}
		value = string(data)
	}
	if err := c.client.Set(ctx, key, value, policyCacheTTL).Err(); err != nil {
		c.logger.Warn("policy cache write failed", "key", key, "error", err)
	}
}

func (c *RedisPolicyCache) key(itemType domain.ItemType, itemID string) string {
	return fmt.Sprintf("creatorhub:policy:%s:%s", itemType, itemID)
}

var _ domain.PolicyRepository = (*RedisPolicyCache)(nil)
