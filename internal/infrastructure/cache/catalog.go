package cache

import (
	"context"
	"fmt"
	"log"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/dermalens/backend/internal/domain"
)

// CatalogCache memoizes the fully fetched product catalog for the life of
// the process. The catalog is written at most once and becomes visible
// atomically: readers see the complete catalog or none of it.
//
// Concurrent first callers share a single upstream fetch via singleflight
// rather than each issuing their own pagination cycle. A failed fetch is not
// memoized, so a later call retries; a legitimately empty catalog is cached
// like any other result since upstream reported it definitively.
type CatalogCache struct {
	source domain.CatalogSource

	mutex     sync.RWMutex
	catalog   []domain.Product
	populated bool

	flight singleflight.Group
}

// NewCatalogCache creates a cache over the given catalog source
func NewCatalogCache(source domain.CatalogSource) *CatalogCache {
	return &CatalogCache{source: source}
}

// Catalog returns the cached catalog, fetching it on first use
func (c *CatalogCache) Catalog(ctx context.Context) ([]domain.Product, error) {
	c.mutex.RLock()
	if c.populated {
		catalog := c.catalog
		c.mutex.RUnlock()
		return catalog, nil
	}
	c.mutex.RUnlock()

	result, err, shared := c.flight.Do("catalog", func() (interface{}, error) {
		// A concurrent populate may have won between the read check and here
		c.mutex.RLock()
		if c.populated {
			catalog := c.catalog
			c.mutex.RUnlock()
			return catalog, nil
		}
		c.mutex.RUnlock()

		products, err := c.source.FetchAll(ctx)
		if err != nil {
			log.Printf("[CATALOG] fetch failed, not caching: %v", err)
			return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
		}

		c.mutex.Lock()
		c.catalog = products
		c.populated = true
		c.mutex.Unlock()

		log.Printf("[CATALOG] cached %d products", len(products))
		return products, nil
	})
	if err != nil {
		return nil, err
	}

	if shared {
		log.Printf("[CATALOG] concurrent callers shared one fetch")
	}
	return result.([]domain.Product), nil
}

// Invalidate discards the cached catalog; the next Catalog call refetches
func (c *CatalogCache) Invalidate() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.catalog = nil
	c.populated = false
}

// Size returns the number of cached products (for debugging/monitoring)
func (c *CatalogCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.catalog)
}
