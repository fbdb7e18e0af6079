// Package cache provides caching decorators for the external stock-data
// sources.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"stockinfo/internal/feature/stock/domain/entity"
	"stockinfo/internal/feature/stock/usecase"
)

// CachingPriceSource decorates a PriceSource with Redis caching. The daily
// open/close API is paid and rate limited, so a response is reused for a
// short TTL instead of hitting the API on every resolution attempt. Negative
// results (symbol unknown) are not cached.
type CachingPriceSource struct {
	inner     usecase.PriceSource
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingPriceSource decorates a PriceSource with Redis caching.
// If ttl is 0, it defaults to one minute. If namespace is empty, it uses
// "price".
func NewCachingPriceSource(rdb *redis.Client, ttl time.Duration, inner usecase.PriceSource, namespace string) *CachingPriceSource {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if namespace == "" {
		namespace = "price"
	}
	return &CachingPriceSource{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// DailyOpenClose returns the quote for a symbol/date, checking the cache
// first and falling back to the wrapped source.
func (c *CachingPriceSource) DailyOpenClose(ctx context.Context, symbol, date string) (entity.PriceQuote, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.DailyOpenClose(ctx, symbol, date)
	}

	key := c.cacheKey(symbol, date)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.PriceQuote
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the wrapped source
	out, err := c.inner.DailyOpenClose(ctx, symbol, date)
	if err != nil {
		return entity.PriceQuote{}, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates a cache key for a specific symbol/date query.
func (c *CachingPriceSource) cacheKey(symbol, date string) string {
	return fmt.Sprintf("%s:%s:%s", c.namespace, safe(symbol), safe(date))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
