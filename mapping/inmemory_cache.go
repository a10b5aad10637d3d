package mapping

import (
	"sync"
	"time"
)

// InMemoryConfigsCache is a simple in-memory ConfigsCache. Thread-safe.
type InMemoryConfigsCache struct {
	configs  []*StoredConfiguration
	cachedAt time.Time
	config   CacheConfig
	mu       sync.RWMutex
	isValid  bool
}

// NewInMemoryConfigsCache creates an invalid (empty) cache.
func NewInMemoryConfigsCache(config CacheConfig) *InMemoryConfigsCache {
	return &InMemoryConfigsCache{config: config}
}

// Get returns the cached listing, or nil when invalid or expired.
func (c *InMemoryConfigsCache) Get() []*StoredConfiguration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.isValid {
		return nil
	}
	if c.config.TTL > 0 && time.Since(c.cachedAt) > c.config.TTL {
		return nil
	}

	// Return a copy so callers cannot mutate the cached slice.
	out := make([]*StoredConfiguration, len(c.configs))
	copy(out, c.configs)
	return out
}

// Set stores a copy of the listing.
func (c *InMemoryConfigsCache) Set(configs []*StoredConfiguration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.configs = make([]*StoredConfiguration, len(configs))
	copy(c.configs, configs)
	c.cachedAt = time.Now()
	c.isValid = true
}

// Invalidate clears the cache.
func (c *InMemoryConfigsCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.isValid = false
	c.configs = nil
}

// IsValid reports whether the cache holds fresh data.
func (c *InMemoryConfigsCache) IsValid() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.isValid {
		return false
	}
	if c.config.TTL > 0 {
		return time.Since(c.cachedAt) <= c.config.TTL
	}
	return true
}
