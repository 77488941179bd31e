package feed

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/polymix/polymix/pkg/cache"
	"github.com/polymix/polymix/pkg/types"
)

// CachedFeed wraps a Feed with a TTL cache keyed by category. A cached
// entry is served without touching the upstream, so polling faster than
// the TTL never amplifies request volume.
type CachedFeed struct {
	inner  Feed
	cache  cache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedFeed creates a caching wrapper around inner.
func NewCachedFeed(inner Feed, c cache.Cache, ttl time.Duration, logger *zap.Logger) *CachedFeed {
	return &CachedFeed{
		inner:  inner,
		cache:  c,
		ttl:    ttl,
		logger: logger,
	}
}

// Fetch returns the cached records for category while fresh, fetching
// from the upstream otherwise. Upstream failures are never cached.
func (f *CachedFeed) Fetch(ctx context.Context, category string) ([]types.MarketPairRecord, error) {
	if value, found := f.cache.Get(category); found {
		if records, ok := value.([]types.MarketPairRecord); ok {
			CacheServedTotal.WithLabelValues(category).Inc()
			f.logger.Debug("feed-cache-hit", zap.String("category", category))
			return records, nil
		}
		f.cache.Delete(category)
	}

	records, err := f.inner.Fetch(ctx, category)
	if err != nil {
		return nil, err
	}

	f.cache.Set(category, records, f.ttl)
	return records, nil
}
