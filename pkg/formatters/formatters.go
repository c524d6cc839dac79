// Package formatters renders typed placeholder values (dates, times,
// durations, currency) under a request locale and timezone. Formatters sit in
// a registry keyed by the name used in {{placeholder, name}} markers.
package formatters

import (
	"sort"
	"sync"
	"time"

	"github.com/goliatone/go-translate/pkg/culture"
)

// Context carries the per-request rendering state a formatter needs.
type Context struct {
	Locale   string
	Timezone *time.Location
	Cultures *culture.Provider
}

// cultures returns the context provider, falling back to a shared default so
// a zero Context still renders.
func (c Context) cultures() *culture.Provider {
	if c.Cultures != nil {
		return c.Cultures
	}
	return defaultCultures
}

var defaultCultures = culture.New()

// Func renders one placeholder value. Errors propagate to the engine, which
// marks the node instead of aborting the tree.
type Func func(ctx Context, value any) (string, error)

// Registry maps formatter names to implementations.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]Func
}

// NewRegistry returns a registry pre-seeded with the built-in formatters:
// date, time, datetime, duration, currency.
func NewRegistry() *Registry {
	r := &Registry{funcs: make(map[string]Func)}
	r.Register("date", FormatDate)
	r.Register("time", FormatTime)
	r.Register("datetime", FormatDateTime)
	r.Register("duration", FormatDuration)
	r.Register("currency", FormatCurrency)
	return r
}

// Register adds or replaces a named formatter.
func (r *Registry) Register(name string, fn Func) {
	if name == "" || fn == nil {
		return
	}
	r.mu.Lock()
	r.funcs[name] = fn
	r.mu.Unlock()
}

// Get returns the named formatter. Callers treat a miss as a no-op format.
func (r *Registry) Get(name string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.funcs[name]
	return fn, ok
}

// Names lists registered formatter names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
