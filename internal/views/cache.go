package views

import (
	"strings"
	"sync"
)

// Cache memoizes view results. Views are pure functions of (snapshot slice,
// parameters), so callers key entries by snapshot fingerprint plus the
// effective parameters.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]any
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]any)}
}

// Get returns a memoized result.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

// Put stores a result.
func (c *Cache) Put(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// Key builds a cache key from its parts.
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}
