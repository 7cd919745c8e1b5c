// Package cache provides a generic, thread-safe LRU cache with optional
// per-entry expiry.
//
// Capacity bounds memory: once full, the least recently used entry is
// evicted. A default TTL (WithTTL) or a per-entry TTL (PutWithTTL) makes
// entries expire; expired entries are dropped lazily on Get or in bulk with
// Purge.
//
// # Usage
//
//	c := cache.NewLRUCache[string, bool](1024, cache.WithTTL(5*time.Minute))
//
//	c.Put("example.com|MX", true)
//	found, ok := c.Get("example.com|MX")
//
// Negative lookups can be kept for a shorter time:
//
//	c.PutWithTTL("missing.test|MX", false, time.Minute)
//
// An eviction callback observes every removal:
//
//	c.SetEvictCallback(func(key string, _ bool) {
//	    log.Debug("dns cache entry dropped", "key", key)
//	})
//
// All operations are O(1) except Purge and Clear, and every method is safe
// for concurrent use.
package cache
