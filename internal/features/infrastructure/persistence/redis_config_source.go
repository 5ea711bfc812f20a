package persistence

import (
	"context"
	"strconv"

	"github.com/creatorhub/creatorhub/internal/features/application"
	"github.com/redis/go-redis/v9"
)

// FeatureConfigKey is the Redis hash holding feature overrides.
// Fields are feature ids, values are "0"/"1" or "true"/"false".
const FeatureConfigKey = "creatorhub:features"

// RedisConfigSource reads feature overrides from a Redis hash,
// letting operators flip flags without touching the database.
type RedisConfigSource struct {
	client *redis.Client
}

// NewRedisConfigSource creates a new source.
func NewRedisConfigSource(client *redis.Client) *RedisConfigSource {
	return &RedisConfigSource{client: client}
}

// Fetch returns all fields of the override hash. A missing key yields
// an empty map, not an error. Unparseable values are skipped.
func (s *RedisConfigSource) Fetch(ctx context.Context) (map[string]bool, error) {
	fields, err := s.client.HGetAll(ctx, FeatureConfigKey).Result()
	if err != nil {
		return nil, err
	}

	overrides := make(map[string]bool, len(fields))
	for id, raw := range fields {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			continue
		}
		overrides[id] = enabled
	}
	return overrides, nil
}

var _ application.ConfigSource = (*RedisConfigSource)(nil)
