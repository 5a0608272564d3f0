// SPDX-License-Identifier: MIT
package loader

import (
	"context"
	"sync"

	"github.com/katalvlaran/spmat/sparse"
	"golang.org/x/sync/singleflight"
)

// LoadFunc produces a freshly parsed matrix and the digest of its source bytes.
type LoadFunc func(ctx context.Context) (*sparse.Sparse, uint64, error)

// Stats is a point-in-time snapshot of cache counters.
type Stats struct {
	Hits     uint64 // lookups served from memory
	Misses   uint64 // lookups that found nothing
	Loads    uint64 // matrices parsed and stored
	Stale    uint64 // stored matrices replaced because their source changed
	Resident int    // identifiers currently held
}

// Cache memoizes parsed matrices by source identifier.
//
// Reads are copy-on-read: every returned matrix is a private clone, so a
// caller mutating its copy never affects the cache or other callers. The
// matrices held inside are never mutated after insertion.
//
// Entries are never evicted on their own; use Forget or Purge in long-running
// processes. A Cache is safe for concurrent use.
type Cache struct {
	mu    sync.Mutex
	items map[string]cacheItem
	stats Stats
	group singleflight.Group
}

type cacheItem struct {
	m      *sparse.Sparse
	digest uint64
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{items: make(map[string]cacheItem)}
}

// Get returns a private copy of the matrix cached under id.
func (c *Cache) Get(id string) (*sparse.Sparse, bool) {
	c.mu.Lock()
	it, ok := c.items[id]
	if ok {
		c.stats.Hits++
	} else {
		c.stats.Misses++
	}
	c.mu.Unlock()

	if !ok {
		return nil, false
	}
	return it.m.Clone(), true
}

// Digest returns the source digest recorded for id.
func (c *Cache) Digest(id string) (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	it, ok := c.items[id]
	return it.digest, ok
}

// Put stores a copy of m under id, replacing any previous entry.
func (c *Cache) Put(id string, m *sparse.Sparse, digest uint64) {
	c.store(id, m.Clone(), digest)
}

// store takes ownership of m.
func (c *Cache) store(id string, m *sparse.Sparse, digest uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, ok := c.items[id]; ok && prev.digest != digest {
		c.stats.Stale++
	}
	c.items[id] = cacheItem{m: m, digest: digest}
	c.stats.Loads++
}

// GetOrLoad returns a copy of the matrix cached under id, calling load on a
// miss. Concurrent misses for the same id share one load, so the
// check-parse-insert sequence runs at most once per identifier.
//
// The shared load runs on a context detached from any single caller's
// cancellation, so one caller giving up does not fail the others. Each caller
// still stops waiting when its own ctx is done.
func (c *Cache) GetOrLoad(ctx context.Context, id string, load LoadFunc) (*sparse.Sparse, error) {
	if m, ok := c.Get(id); ok {
		return m, nil
	}

	flightCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(id, func() (any, error) {
		// A flight that finished after our miss may already have stored it.
		c.mu.Lock()
		it, ok := c.items[id]
		c.mu.Unlock()
		if ok {
			return it.m, nil
		}

		m, digest, err := load(flightCtx)
		if err != nil {
			return nil, err
		}
		c.store(id, m, digest)
		return m, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*sparse.Sparse).Clone(), nil
	}
}

// Forget drops the entry for id and reports whether it existed.
func (c *Cache) Forget(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.items[id]
	delete(c.items, id)
	return ok
}

// Purge drops every entry and returns how many were held.
func (c *Cache) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.items)
	c.items = make(map[string]cacheItem)
	return n
}

// Len returns the number of cached identifiers.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Stats returns a snapshot of the counters.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.stats
	s.Resident = len(c.items)
	return s
}
