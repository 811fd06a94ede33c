// Package evalcache memoizes execute() results by run digest, grounded
// on the teacher's ResultCache (cache.go): a mutex-guarded map keyed by
// string, read/written under RWMutex.
package evalcache

import "sync"

// Cache memoizes a []complex128 expectation-value sequence by run
// digest, so repeating an identical (circuit, observable, layers,
// threshold, decay) execute() call skips re-simulating.
type Cache struct {
	mu    sync.RWMutex
	store map[string][]complex128
}

// New constructs an empty Cache.
func New() *Cache {
	return &Cache{store: make(map[string][]complex128)}
}

// Get returns the cached trace for key, if present.
func (c *Cache) Get(key string) ([]complex128, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	val, ok := c.store[key]
	return val, ok
}

// Set stores trace under key.
func (c *Cache) Set(key string, trace []complex128) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = trace
}
