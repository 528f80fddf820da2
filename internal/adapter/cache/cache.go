package cache

import (
	"sync"

	"github.com/couchcryptid/feregion-service/internal/feregion"
	"github.com/couchcryptid/feregion-service/internal/observability"
)

// ExtentProvider computes the latitude/longitude extent of a region.
type ExtentProvider interface {
	LatitudeLongitudeMap(fenum int) feregion.Extent
}

// CachedExtents wraps an ExtentProvider with an in-memory LRU cache. Reverse
// mapping walks every entry of every quadrant, so repeated requests for the
// same region are served from memory.
type CachedExtents struct {
	inner   ExtentProvider
	cache   *lruCache
	metrics *observability.Metrics
}

// NewCachedExtents creates a cache decorator around an extent provider.
// metrics may be nil.
func NewCachedExtents(inner ExtentProvider, maxEntries int, metrics *observability.Metrics) *CachedExtents {
	return &CachedExtents{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		metrics: metrics,
	}
}

// LatitudeLongitudeMap returns a copy of the cached extent, computing it on a miss.
func (c *CachedExtents) LatitudeLongitudeMap(fenum int) feregion.Extent {
	if ext, ok := c.cache.get(fenum); ok {
		c.record("hit")
		return clone(ext)
	}
	c.record("miss")

	ext := c.inner.LatitudeLongitudeMap(fenum)
	// Unknown region numbers yield an empty extent; don't let them evict real entries.
	if len(ext) > 0 {
		c.cache.put(fenum, clone(ext))
	}
	return ext
}

// Len reports the number of cached regions.
func (c *CachedExtents) Len() int {
	c.cache.mu.Lock()
	defer c.cache.mu.Unlock()
	return len(c.cache.entries)
}

func (c *CachedExtents) record(result string) {
	if c.metrics != nil {
		c.metrics.ExtentCache.WithLabelValues(result).Inc()
	}
}

func clone(ext feregion.Extent) feregion.Extent {
	out := make(feregion.Extent, len(ext))
	for band, ranges := range ext {
		out[band] = append([]feregion.LongitudeRange(nil), ranges...)
	}
	return out
}

// lruCache is a simple thread-safe LRU cache of extents keyed by region number.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[int]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   int
	value feregion.Extent
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[int]*entry),
	}
}

func (c *lruCache) get(key int) (feregion.Extent, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key int, value feregion.Extent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
