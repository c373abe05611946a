package engine

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// DefaultCacheTTL is how long a computed forecast stays valid.
const DefaultCacheTTL = 24 * time.Hour

// cacheEntry pairs a computed forecast with its creation time.
type cacheEntry struct {
	result    *ForecastResult
	createdAt time.Time
}

// PredictionCache is a process-wide TTL cache of computed forecasts,
// keyed by (user, model type, horizon). Entries expire lazily on read or
// explicitly when a user's transactions change. Construct one at
// application start and hand it to the engine; there is no global
// instance.
type PredictionCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

// NewPredictionCache creates a cache with the given TTL; ttl <= 0 uses
// DefaultCacheTTL.
func NewPredictionCache(ttl time.Duration) *PredictionCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &PredictionCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// cacheKey builds the composite key. The user ID leads so a user's whole
// key space can be invalidated by prefix.
func cacheKey(userID, modelType string, horizon int) string {
	return fmt.Sprintf("%s:%s:%d", userID, modelType, horizon)
}

// Get returns the cached forecast for the key, expiring it lazily when
// past TTL.
func (c *PredictionCache) Get(userID, modelType string, horizon int) (*ForecastResult, bool) {
	key := cacheKey(userID, modelType, horizon)

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if c.now().Sub(entry.createdAt) > c.ttl {
		c.mu.Lock()
		// Re-check under the write lock; another goroutine may have
		// refreshed the entry.
		if e, still := c.entries[key]; still && c.now().Sub(e.createdAt) > c.ttl {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return entry.result, true
}

// Set stores a forecast under the key, stamping it with the current time.
func (c *PredictionCache) Set(userID, modelType string, horizon int, result *ForecastResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey(userID, modelType, horizon)] = cacheEntry{
		result:    result,
		createdAt: c.now(),
	}
}

// InvalidateUser drops every cache entry belonging to the user. Called
// whenever one of their transactions is created, updated or deleted.
func (c *PredictionCache) InvalidateUser(userID string) {
	prefix := userID + ":"

	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

// Len returns the number of live entries, counting expired ones not yet
// evicted.
func (c *PredictionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
