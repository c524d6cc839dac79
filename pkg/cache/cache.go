// Package cache provides a bounded LRU map from template key to its per-locale
// templates. Entries age out after a TTL and evict least-recently-used when
// the cache is full. It fronts the remote template store inside the loader.
package cache

import (
	"container/list"
	"sync"
	"time"
)

const (
	// DefaultMaxEntries bounds the cache when no size is configured.
	DefaultMaxEntries = 500
	// DefaultMaxAge bounds entry lifetime when no TTL is configured.
	DefaultMaxAge = time.Hour
)

// Cache is a fixed-capacity, TTL-bound, least-recently-used template cache
// safe for concurrent use. Construct with New; the zero value is not ready.
type Cache struct {
	mu         sync.Mutex
	maxEntries int
	maxAge     time.Duration
	evictList  *list.List
	items      map[string]*list.Element
	now        func() time.Time
}

type entry struct {
	key       string
	templates map[string]string
	expires   time.Time
}

// New creates a cache bounded by maxEntries and maxAge. Non-positive values
// fall back to the defaults.
func New(maxEntries int, maxAge time.Duration) *Cache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	return &Cache{
		maxEntries: maxEntries,
		maxAge:     maxAge,
		evictList:  list.New(),
		items:      make(map[string]*list.Element),
		now:        time.Now,
	}
}

// Get returns the cached locale → template map for key, filtered to the given
// locales. An empty filter returns every known locale. A miss or an expired
// entry returns nil. Hits refresh recency.
func (c *Cache) Get(key string, locales ...string) map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return nil
	}
	ent := elem.Value.(*entry)
	if c.now().After(ent.expires) {
		c.removeElement(elem)
		return nil
	}
	c.evictList.MoveToFront(elem)

	if len(locales) == 0 {
		out := make(map[string]string, len(ent.templates))
		for locale, template := range ent.templates {
			out[locale] = template
		}
		return out
	}

	out := make(map[string]string, len(locales))
	for _, locale := range locales {
		if template, ok := ent.templates[locale]; ok {
			out[locale] = template
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Set merges templates into the entry for key: new locales add, existing
// locales overwrite. The entry's recency and TTL reset; the least recently
// used entry evicts when the cache is over capacity.
func (c *Cache) Set(key string, templates map[string]string) {
	if key == "" || len(templates) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	expires := c.now().Add(c.maxAge)
	if elem, ok := c.items[key]; ok {
		ent := elem.Value.(*entry)
		for locale, template := range templates {
			ent.templates[locale] = template
		}
		ent.expires = expires
		c.evictList.MoveToFront(elem)
		return
	}

	merged := make(map[string]string, len(templates))
	for locale, template := range templates {
		merged[locale] = template
	}
	c.items[key] = c.evictList.PushFront(&entry{key: key, templates: merged, expires: expires})

	if c.evictList.Len() > c.maxEntries {
		if oldest := c.evictList.Back(); oldest != nil {
			c.removeElement(oldest)
		}
	}
}

// Remove deletes the entry for key, reporting whether it existed.
func (c *Cache) Remove(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	elem, ok := c.items[key]
	if ok {
		c.removeElement(elem)
	}
	return ok
}

// Len returns the current entry count.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evictList.Len()
}

// Keys lists cached keys from oldest to newest recency.
func (c *Cache) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := make([]string, 0, len(c.items))
	for elem := c.evictList.Back(); elem != nil; elem = elem.Prev() {
		keys = append(keys, elem.Value.(*entry).key)
	}
	return keys
}

func (c *Cache) removeElement(elem *list.Element) {
	c.evictList.Remove(elem)
	delete(c.items, elem.Value.(*entry).key)
}
