// Package catalog stores translation templates keyed by (locale, dotted key).
// Nested template trees flatten on write so "hello.world" resolves the same
// whether it was added flat or nested. Reads are concurrent; writes serialize.
package catalog

import (
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/goliatone/go-translate/pkg/culture"
)

// Catalog is a concurrency-safe template store.
type Catalog struct {
	mu      sync.RWMutex
	locales map[string]map[string]string
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{locales: make(map[string]map[string]string)}
}

// Add deep-merges a possibly nested template mapping for one locale. String
// leaves become templates; nested mappings extend the dotted path; other
// scalar leaves are stringified.
func (c *Catalog) Add(locale string, templates map[string]any) {
	if locale == "" || len(templates) == 0 {
		return
	}
	flat := make(map[string]string)
	flatten("", templates, flat)

	c.mu.Lock()
	defer c.mu.Unlock()
	entries, ok := c.locales[locale]
	if !ok {
		entries = make(map[string]string, len(flat))
		c.locales[locale] = entries
	}
	for key, template := range flat {
		entries[key] = template
	}
}

// AddFlat stores a single template under a dotted key.
func (c *Catalog) AddFlat(locale, key, template string) {
	if locale == "" || key == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	entries, ok := c.locales[locale]
	if !ok {
		entries = make(map[string]string)
		c.locales[locale] = entries
	}
	entries[key] = template
}

// Exists reports whether locale holds a template for the dotted key.
func (c *Catalog) Exists(locale, key string) bool {
	_, ok := c.Lookup(locale, key)
	return ok
}

// Lookup returns the template stored for (locale, key).
func (c *Catalog) Lookup(locale, key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entries, ok := c.locales[locale]
	if !ok {
		return "", false
	}
	template, ok := entries[key]
	return template, ok
}

// LookupPlural resolves key under locale for a plural category: first the
// category-name suffix (key_few), then the legacy numeric suffix (key_3), then
// the legacy key_plural variant (skipped for singular counts), then the bare
// key.
func (c *Catalog) LookupPlural(locale, key string, cat culture.PluralCategory) (string, bool) {
	candidates := []string{
		key + "_" + cat.Name,
		key + "_" + strconv.Itoa(cat.Index),
	}
	if !cat.Singular() {
		candidates = append(candidates, key+"_plural")
	}
	candidates = append(candidates, key)

	c.mu.RLock()
	defer c.mu.RUnlock()
	entries, ok := c.locales[locale]
	if !ok {
		return "", false
	}
	for _, candidate := range candidates {
		if template, ok := entries[candidate]; ok {
			return template, true
		}
	}
	return "", false
}

// Locales lists the locales with at least one template, sorted.
func (c *Catalog) Locales() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.locales))
	for locale := range c.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Len returns the template count for one locale.
func (c *Catalog) Len(locale string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.locales[locale])
}

func flatten(prefix string, src map[string]any, out map[string]string) {
	for key, value := range src {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]any:
			flatten(path, v, out)
		case string:
			out[path] = v
		default:
			out[path] = fmt.Sprint(v)
		}
	}
}
