// Package di provides dependency injection factories for creating
// application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	"stockinfo/internal/feature/stock/usecase"
	"stockinfo/internal/platform/cache"
	"stockinfo/internal/platform/externalapi/polygon"
	infrahttp "stockinfo/internal/platform/http"
	"stockinfo/internal/platform/scraper/marketwatch"
	"stockinfo/internal/shared/ratelimiter"
)

// priceCacheTTL keeps daily open/close responses hot for a minute; the API
// is rate limited and a resolution burst for one symbol should cost one call.
const priceCacheTTL = time.Minute

// NewPriceSource creates the Polygon client, rate limited and wrapped in the
// Redis cache decorator. rdb may be nil, in which case the cache is bypassed.
func NewPriceSource(rdb *redis.Client) usecase.PriceSource {
	cfg := polygon.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	limiter := ratelimiter.NewRateLimiter(5, time.Minute)
	client := polygon.NewClient(cfg, httpClient, limiter)
	return cache.NewCachingPriceSource(rdb, priceCacheTTL, client, "price")
}

// NewNarrativeSource creates the MarketWatch scraper wrapped in the
// process-lifetime memo.
func NewNarrativeSource() usecase.NarrativeSource {
	return cache.NewMemoNarrativeSource(marketwatch.NewScraper(marketwatch.LoadConfig()))
}
