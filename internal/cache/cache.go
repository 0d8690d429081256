// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

// Package cache is a TTL cache for shaped analytics responses.
//
// Keys embed the snapshot version (see GenerateKey), so entries computed
// against an old snapshot are never served after a reload. The dataset
// manager still calls Clear on reload to drop them early.
package cache

import (
	"container/list"
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/roadlens/internal/metrics"
)

const (
	// DefaultCleanupInterval is how often expired entries are swept.
	DefaultCleanupInterval = time.Minute
	// DefaultMaxEntries caps a cache built by New.
	DefaultMaxEntries = 1000
)

type entry struct {
	key       string
	data      any
	expiresAt time.Time
}

// Stats is a point-in-time copy of the cache counters.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Keys      int
}

// HitRate is hits over lookups as a percentage.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// Cache is safe for concurrent use. It holds at most maxEntries keys; a new
// key at the cap evicts the oldest inserted one.
type Cache struct {
	mu         sync.RWMutex
	entries    map[string]*list.Element
	order      *list.List // front is oldest
	maxEntries int
	ttl        time.Duration
	now        func() time.Time

	hits, misses, evictions int64

	stop     chan struct{}
	stopOnce sync.Once
}

// New returns a cache with the given default TTL and DefaultMaxEntries, and
// starts its sweeper. Call Close to stop the sweeper.
func New(ttl time.Duration) *Cache {
	return NewWithCapacity(ttl, DefaultMaxEntries)
}

// NewWithCapacity is New with an explicit entry cap. A non-positive
// maxEntries means DefaultMaxEntries.
func NewWithCapacity(ttl time.Duration, maxEntries int) *Cache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	c := &Cache{
		entries:    make(map[string]*list.Element),
		order:      list.New(),
		maxEntries: maxEntries,
		ttl:        ttl,
		now:        time.Now,
		stop:       make(chan struct{}),
	}
	go c.sweepLoop(DefaultCleanupInterval)
	return c
}

// Get returns the cached value for key if present and unexpired.
func (c *Cache) Get(key string) (any, bool) {
	var (
		data      any
		expiresAt time.Time
	)
	c.mu.RLock()
	el, ok := c.entries[key]
	if ok {
		e := el.Value.(*entry)
		data, expiresAt = e.data, e.expiresAt
	}
	c.mu.RUnlock()

	if ok && c.now().After(expiresAt) {
		c.mu.Lock()
		// re-check under the write lock; Set may have refreshed it
		if cur, still := c.entries[key]; still && c.now().After(cur.Value.(*entry).expiresAt) {
			c.remove(cur)
			c.evictions++
		}
		c.mu.Unlock()
		ok = false
	}

	c.mu.Lock()
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	c.mu.Unlock()
	metrics.RecordCache(ok)

	if !ok {
		return nil, false
	}
	return data, true
}

// Set stores value under key with the default TTL.
func (c *Cache) Set(key string, value any) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores value under key with a specific TTL. Overwriting a key
// makes it the newest entry.
func (c *Cache) SetWithTTL(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := &entry{key: key, data: value, expiresAt: c.now().Add(ttl)}
	if el, ok := c.entries[key]; ok {
		el.Value = e
		c.order.MoveToBack(el)
		return
	}
	for len(c.entries) >= c.maxEntries {
		c.remove(c.order.Front())
		c.evictions++
	}
	c.entries[key] = c.order.PushBack(e)
}

// remove must be called with mu held.
func (c *Cache) remove(el *list.Element) {
	c.order.Remove(el)
	delete(c.entries, el.Value.(*entry).key)
}

// Delete removes key.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	if el, ok := c.entries[key]; ok {
		c.remove(el)
		c.evictions++
	}
	c.mu.Unlock()
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.evictions += int64(len(c.entries))
	c.entries = make(map[string]*list.Element)
	c.order.Init()
	c.mu.Unlock()
}

// Len is the number of stored entries, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns the current counters.
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Stats{Hits: c.hits, Misses: c.misses, Evictions: c.evictions, Keys: len(c.entries)}
}

// Close stops the sweeper. The cache stays usable.
func (c *Cache) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *Cache) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.sweep()
		}
	}
}

func (c *Cache) sweep() {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for el := c.order.Front(); el != nil; {
		next := el.Next()
		if now.After(el.Value.(*entry).expiresAt) {
			c.remove(el)
			c.evictions++
		}
		el = next
	}
}

// GenerateKey builds a compact key from the snapshot version, the endpoint
// and its parameters.
func GenerateKey(version uint64, method string, params any) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("v%d:%s:%v", version, method, params)
	}
	sum := sha256.Sum256(data)
	return fmt.Sprintf("v%d:%s:%x", version, method, sum[:16])
}
