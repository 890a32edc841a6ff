// pkg/brands/cache.go
package brands

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// cachedStore wraps a Store with a redis cache. Cache keys are the normalized
// lookup key, so a cached entry can never be served for a mismatched builder.
// Only found brands are cached; misses and faults always re-consult the inner
// store so a recovering backend is picked up immediately.
type cachedStore struct {
	inner Store
	rdb   *redis.Client
	ttl   time.Duration
}

// NewCachedStore returns inner unchanged when rdb is nil.
func NewCachedStore(inner Store, rdb *redis.Client, ttl time.Duration) Store {
	if rdb == nil {
		return inner
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &cachedStore{inner: inner, rdb: rdb, ttl: ttl}
}

func (c *cachedStore) Lookup(ctx context.Context, key string) Lookup {
	ck := "brand:" + key
	if raw, err := c.rdb.Get(ctx, ck).Bytes(); err == nil {
		var b Brand
		if json.Unmarshal(raw, &b) == nil && b.Subdomain != "" {
			return Found(b)
		}
	}
	res := c.inner.Lookup(ctx, key)
	if res.Outcome == OutcomeFound {
		if raw, err := json.Marshal(res.Brand); err == nil {
			_ = c.rdb.Set(ctx, ck, raw, c.ttl).Err()
		}
	}
	return res
}
