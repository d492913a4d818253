package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const statsKey = "dashboard:stats"

// Cache stores the computed stats in Redis for a short TTL. A nil *Cache is
// valid and caches nothing.
type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCache(addr string, ttl time.Duration) *Cache {
	return NewCacheWithClient(redis.NewClient(&redis.Options{Addr: addr}), ttl)
}

func NewCacheWithClient(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{redis: rdb, ttl: ttl}
}

// Get returns the cached stats, or nil on a miss.
func (c *Cache) Get(ctx context.Context) (*Stats, error) {
	if c == nil {
		return nil, nil
	}
	data, err := c.redis.Get(ctx, statsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var s Stats
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Cache) Set(ctx context.Context, s *Stats) error {
	if c == nil {
		return nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, statsKey, data, c.ttl).Err()
}

// Invalidate drops the cached stats so the next read sees fresh presence
// counts.
func (c *Cache) Invalidate(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.redis.Del(ctx, statsKey).Err()
}

func (c *Cache) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.redis.Ping(ctx).Err()
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.redis.Close()
}
