package cache

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/pickmate/fulfillment-api/internal/metrics"
	"github.com/pickmate/fulfillment-api/internal/repository"
)

type BagRepository interface {
	GetActiveBags(ctx context.Context) ([]*repository.Bag, error)
}

// BagCache keeps active bags in memory so repeated scans of the same
// bag during a pick run avoid a round trip. Values are copied on the
// way in and out; callers never share a pointer with the cache.
type BagCache struct {
	mu    sync.RWMutex
	cache map[string]*repository.Bag
	repo  BagRepository
}

func NewBagCache(repo BagRepository) *BagCache {
	return &BagCache{
		cache: make(map[string]*repository.Bag),
		repo:  repo,
	}
}

func (c *BagCache) LoadInitialData(ctx context.Context) error {
	bags, err := c.repo.GetActiveBags(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, bag := range bags {
		bagCopy := *bag
		c.cache[bag.BagID] = &bagCopy
	}
	metrics.BagCacheItems.Set(float64(len(c.cache)))
	zap.L().Info("loaded active bags into cache", zap.Int("count", len(c.cache)))
	return nil
}

func (c *BagCache) Get(bagID string) (*repository.Bag, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	bag, found := c.cache[bagID]
	if !found {
		return nil, false
	}
	bagCopy := *bag
	return &bagCopy, true
}

func (c *BagCache) Set(bag *repository.Bag) {
	if !isActiveStatus(bag.Status) {
		c.Delete(bag.BagID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	bagCopy := *bag
	c.cache[bag.BagID] = &bagCopy
	metrics.BagCacheItems.Set(float64(len(c.cache)))
}

func (c *BagCache) Delete(bagID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, found := c.cache[bagID]; found {
		delete(c.cache, bagID)
		metrics.BagCacheItems.Set(float64(len(c.cache)))
	}
}

// Dispatched bags never come back; everything else may be scanned again.
func isActiveStatus(status string) bool {
	return status != "dispatched"
}
