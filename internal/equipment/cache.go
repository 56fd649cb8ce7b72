package equipment

import (
	"context"
	"encoding/json"
	"time"

	"campusbook/pkg/cache"
)

const catalogCacheKey = "equipment:catalog"

// Cache is a nil-safe cache-aside layer over the full available-equipment
// catalog. Only the unfiltered catalog is cached; category and search
// filtering stay cheap in memory. Any admin write invalidates.
type Cache struct {
	rdb *cache.Redis
	ttl time.Duration
}

func NewCache(rdb *cache.Redis, ttl time.Duration) *Cache {
	if rdb == nil || ttl <= 0 {
		return nil
	}
	return &Cache{rdb: rdb, ttl: ttl}
}

func (c *Cache) GetCatalog(ctx context.Context) ([]Equipment, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.rdb.Client.Get(ctx, catalogCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var items []Equipment
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	return items, true
}

func (c *Cache) SetCatalog(ctx context.Context, items []Equipment) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	_ = c.rdb.Client.Set(ctx, catalogCacheKey, raw, c.ttl).Err()
}

func (c *Cache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	_ = c.rdb.Client.Del(ctx, catalogCacheKey).Err()
}
