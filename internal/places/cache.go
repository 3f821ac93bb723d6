package places

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultCacheTTL bounds how long provider responses are reused.
const DefaultCacheTTL = 5 * time.Minute

// Cache is a best-effort cache-aside layer over Redis for provider
// responses. Redis errors are swallowed: a cache miss just means another
// provider round trip.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCache wraps a Redis client. A zero ttl uses DefaultCacheTTL.
func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{rdb: rdb, ttl: ttl}
}

// get reports whether the key existed and decoded cleanly. Safe on a nil
// receiver so the client can treat "no cache" and "cache miss" the same way.
func (c *Cache) get(ctx context.Context, key string, out any) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

func (c *Cache) set(ctx context.Context, key string, v any) {
	if c == nil || c.rdb == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key, data, c.ttl)
}
