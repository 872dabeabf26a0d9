// Package cache provides bounded in-memory LRU memoization with per-concern hit and miss accounting.
//
// Instances are intentionally unlocked: the rendering pipeline is synchronous
// end-to-end, so reads and writes never interleave within a process. Hosts that
// introduce real parallelism must give each worker its own instance.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/samber/lo"
)

// Stats is a point-in-time snapshot of a cache's effectiveness counters.
type Stats struct {
	Hits     uint64 `json:"hits"`
	Misses   uint64 `json:"misses"`
	Size     int    `json:"size"`
	Capacity int    `json:"capacity"`
}

// Cache is a bounded string-keyed LRU store.
// A Get promotes the entry to most-recently-used; a Set at capacity evicts the
// least-recently-used entry before inserting.
type Cache[V any] struct {
	store    *lru.Cache[string, V]
	capacity int
	hits     uint64
	misses   uint64
}

// New returns a Cache bounded to the given capacity. Capacities below one are
// raised to one so the store is always usable.
func New[V any](capacity int) *Cache[V] {
	if capacity < 1 {
		capacity = 1
	}
	return &Cache[V]{
		store:    lo.Must(lru.New[string, V](capacity)),
		capacity: capacity,
	}
}

// Get retrieves the value stored under key, recording a hit or a miss.
func (c *Cache[V]) Get(key string) (V, bool) {
	value, ok := c.store.Get(key)
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return value, ok
}

// Set stores value under key, evicting the least-recently-used entry first when at capacity.
func (c *Cache[V]) Set(key string, value V) {
	c.store.Add(key, value)
}

// Contains reports whether key is present without affecting recency or counters.
func (c *Cache[V]) Contains(key string) bool {
	return c.store.Contains(key)
}

// Len returns the current number of stored entries.
func (c *Cache[V]) Len() int {
	return c.store.Len()
}

// Clear resets both the storage and the hit/miss counters.
func (c *Cache[V]) Clear() {
	c.store.Purge()
	c.hits = 0
	c.misses = 0
}

// Stats returns the current counters and occupancy of the cache.
func (c *Cache[V]) Stats() Stats {
	return Stats{
		Hits:     c.hits,
		Misses:   c.misses,
		Size:     c.store.Len(),
		Capacity: c.capacity,
	}
}
