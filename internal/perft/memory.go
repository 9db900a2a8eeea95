package perft

import "sync"

type cacheKey struct {
	hash  uint64
	depth int
}

// MemoryCache is an in-process Cache, safe for concurrent use.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[cacheKey]int64
}

// NewMemoryCache creates an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[cacheKey]int64)}
}

// Lookup implements Cache.
func (c *MemoryCache) Lookup(hash uint64, depth int) (int64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	nodes, ok := c.entries[cacheKey{hash, depth}]
	return nodes, ok
}

// Store implements Cache.
func (c *MemoryCache) Store(hash uint64, depth int, nodes int64) {
	c.mu.Lock()
	c.entries[cacheKey{hash, depth}] = nodes
	c.mu.Unlock()
}

// Len returns the number of cached entries.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
