package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

const defaultTTL = 60 * time.Second

// Cache is a read-through JSON cache for the public listings. A nil
// *Cache is valid and disables caching, so handlers never branch on
// whether Redis is configured.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(redisURL string) *Cache {
	if redisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("invalid REDIS_URL, cache disabled: %v", err)
		return nil
	}

	return &Cache{
		rdb: redis.NewClient(opts),
		ttl: defaultTTL,
	}
}

func NewWithClient(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}

	return json.Unmarshal(raw, dest) == nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, val any) {
	if c == nil {
		return
	}

	b, err := json.Marshal(val)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
		log.Printf("cache set %s: %v", key, err)
	}
}

func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Printf("cache invalidate: %v", err)
	}
}
