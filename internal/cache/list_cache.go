package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// ListCache caches one resource's full list result in Redis under a fixed
// key. Writers invalidate; readers treat any Redis error as a miss upstream.
type ListCache[T any] struct {
	rdb *redis.Client
	key string
	ttl time.Duration
}

// NewListCache returns a ListCache storing JSON under key with the given TTL.
func NewListCache[T any](rdb *redis.Client, key string, ttl time.Duration) *ListCache[T] {
	return &ListCache[T]{rdb: rdb, key: key, ttl: ttl}
}

// Get returns the cached list, or nil on miss.
func (c *ListCache[T]) Get(ctx context.Context) ([]T, error) {
	b, err := c.rdb.Get(ctx, c.key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []T
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Set stores the list.
func (c *ListCache[T]) Set(ctx context.Context, list []T) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.key, b, c.ttl).Err()
}

// Invalidate drops the cached list (called on every write).
func (c *ListCache[T]) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, c.key).Err()
}
