package query

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/hammerbid/ordertrack/internal/backend"
	"github.com/hammerbid/ordertrack/internal/metrics"
)

type OrderFetcher interface {
	GetProductOrder(ctx context.Context, productID string) (*backend.OrderView, error)
}

// OrderCache is the single source of truth the tracking handlers read. It
// holds one order view per product id and carries no TTL: an entry only
// leaves the cache through explicit invalidation, which every successful
// action performs. Concurrent reads of a missing key collapse into one
// backend fetch.
type OrderCache struct {
	mu      sync.RWMutex
	cache   map[string]*backend.OrderView
	fetcher OrderFetcher
	group   singleflight.Group
}

func NewOrderCache(fetcher OrderFetcher) *OrderCache {
	return &OrderCache{
		cache:   make(map[string]*backend.OrderView),
		fetcher: fetcher,
	}
}

// orderKey builds the (entity-type, productId) cache key.
func orderKey(productID string) string {
	return "order:" + productID
}

// Get returns the cached order view for the product, fetching it from the
// backend on a miss. Callers receive their own copy; mutating it never
// touches the cached entry.
func (c *OrderCache) Get(ctx context.Context, productID string) (*backend.OrderView, error) {
	key := orderKey(productID)

	c.mu.RLock()
	view, found := c.cache[key]
	c.mu.RUnlock()
	if found {
		metrics.OrderCacheHitsTotal.Inc()
		viewCopy := *view
		return &viewCopy, nil
	}

	metrics.OrderCacheMissesTotal.Inc()

	result, err, _ := c.group.Do(key, func() (interface{}, error) {
		fetched, err := c.fetcher.GetProductOrder(ctx, productID)
		if err != nil {
			return nil, err
		}
		c.store(key, fetched)
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}

	viewCopy := *result.(*backend.OrderView)
	return &viewCopy, nil
}

// Invalidate drops exactly one product's entry so the next read re-fetches.
func (c *OrderCache) Invalidate(productID string) {
	key := orderKey(productID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, found := c.cache[key]; found {
		delete(c.cache, key)
		metrics.OrderCacheItems.Set(float64(len(c.cache)))
		zap.L().Debug("order cache invalidated", zap.String("product_id", productID))
	}
}

func (c *OrderCache) store(key string, view *backend.OrderView) {
	c.mu.Lock()
	defer c.mu.Unlock()
	viewCopy := *view
	c.cache[key] = &viewCopy
	metrics.OrderCacheItems.Set(float64(len(c.cache)))
}
