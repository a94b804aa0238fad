package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vivahsetu/matrimony-backend/internal/usecase/match"
)

// redisMatchCache backs the match listing cache with Redis. TTL-based expiry
// keeps listings fresh without explicit invalidation.
type redisMatchCache struct {
	client *redis.Client
}

func NewMatchCache(client *redis.Client) match.Cache {
	return &redisMatchCache{client: client}
}

func (c *redisMatchCache) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return raw, nil
}

func (c *redisMatchCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}
