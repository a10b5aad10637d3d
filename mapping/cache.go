package mapping

import "time"

// ConfigsCache caches the stored-configuration listing so read-heavy callers
// (the list endpoint) don't hit the database on every request.
type ConfigsCache interface {
	// Get retrieves cached configurations, nil on miss or expiry
	Get() []*StoredConfiguration

	// Set stores configurations in cache
	Set(configs []*StoredConfiguration)

	// Invalidate clears the cache, forcing a refresh on next Get
	Invalidate()

	// IsValid returns true if cache has valid data
	IsValid() bool
}

// CacheConfig holds configuration for cache behavior.
type CacheConfig struct {
	// TTL is the time-to-live for cached entries.
	// Zero means no expiration (manual invalidation only).
	TTL time.Duration
}

// DefaultCacheConfig invalidates only on mutation.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{TTL: 0}
}
