package cache

import (
	"context"
	"sync"

	"github.com/packhouse/backend/internal/infrastructure/assets"
)

// InMemoryAssetCache keeps scaled image payloads in process memory with a
// bounded entry count. Suitable for single-instance deployments and tests.
type InMemoryAssetCache struct {
	mu         sync.RWMutex
	entries    map[string][]byte
	order      []string
	maxEntries int
}

const defaultMaxEntries = 512

// NewInMemoryAssetCache creates an in-memory asset cache. maxEntries <= 0
// uses the default bound.
func NewInMemoryAssetCache(maxEntries int) *InMemoryAssetCache {
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	return &InMemoryAssetCache{
		entries:    make(map[string][]byte),
		maxEntries: maxEntries,
	}
}

// Get returns a cached payload.
func (c *InMemoryAssetCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	data, ok := c.entries[key]
	return data, ok
}

// Set stores a payload, evicting the oldest entry once the bound is hit.
func (c *InMemoryAssetCache) Set(_ context.Context, key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		if len(c.order) >= c.maxEntries {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.order = append(c.order, key)
	}
	c.entries[key] = data
}

// Len reports the number of cached entries.
func (c *InMemoryAssetCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

var _ assets.Cache = (*InMemoryAssetCache)(nil)
