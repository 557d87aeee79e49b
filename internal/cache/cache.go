// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cache

import (
	"slices"
	"sync"
)

// Cache is a thread-safe cache with a soft limit and least-recently-used
// eviction.
//
// Cache must not be copied after creation (has mutex).
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[V]
	limit   int
	clock   uint64
	hits    uint64
	misses  uint64
}

type entry[V any] struct {
	value V
	used  uint64
}

// New creates a cache holding about limit entries. A limit of 0 means unlimited.
func New[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]*entry[V]),
		limit:   max(limit, 0),
	}
}

// Get returns the value stored under key.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.clock++
	e.used = c.clock
	return e.value, true
}

// Set stores value under key, evicting old entries past the limit.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.storeLocked(key, value)
}

// GetOrCreate returns the cached value for key, calling create on a miss.
// create runs under the cache lock so concurrent callers never build the
// same value twice.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		c.hits++
		c.clock++
		e.used = c.clock
		return e.value, nil
	}
	c.misses++
	v, err := create()
	if err != nil {
		return v, err
	}
	c.storeLocked(key, v)
	return v, nil
}

func (c *Cache[K, V]) storeLocked(key K, value V) {
	c.clock++
	c.entries[key] = &entry[V]{value: value, used: c.clock}
	if c.limit > 0 && len(c.entries) > c.limit {
		c.evictLocked()
	}
}

// evictLocked drops the least recently used entries until the cache is at
// three quarters of its limit. Caller must hold c.mu.
func (c *Cache[K, V]) evictLocked() {
	keep := max(c.limit*3/4, 1)
	drop := len(c.entries) - keep
	if drop <= 0 {
		return
	}
	type aged struct {
		key  K
		used uint64
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{k, e.used})
	}
	slices.SortFunc(all, func(a, b aged) int {
		switch {
		case a.used < b.used:
			return -1
		case a.used > b.used:
			return 1
		}
		return 0
	})
	for _, a := range all[:drop] {
		delete(c.entries, a.key)
	}
}

// Delete removes key and reports whether it was present.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	delete(c.entries, key)
	return ok
}

// Clear removes every entry and resets the statistics.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]*entry[V])
	c.clock, c.hits, c.misses = 0, 0, 0
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats reports cache occupancy and hit counters.
type Stats struct {
	Len    int
	Limit  int
	Hits   uint64
	Misses uint64
}

// Stats returns a snapshot of the cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Len: len(c.entries), Limit: c.limit, Hits: c.hits, Misses: c.misses}
}
