// Package engine resolves single translation nodes: catalog lookup across the
// locale chain, plural selection, inline fallback, and placeholder
// interpolation. Engines clone per request so locale/timezone mutations never
// leak across concurrent translations.
package engine

import (
	"time"

	"github.com/goliatone/go-translate/pkg/catalog"
	"github.com/goliatone/go-translate/pkg/culture"
	"github.com/goliatone/go-translate/pkg/formatters"
	"github.com/goliatone/go-translate/pkg/interfaces/logger"
	"github.com/goliatone/go-translate/pkg/node"
)

// Engine binds a shared catalog to per-request locale state.
type Engine struct {
	catalog    *catalog.Catalog
	cultures   *culture.Provider
	formatters *formatters.Registry
	logger     logger.Logger

	locale        string
	defaultLocale string
	timezone      *time.Location

	interpolation Interpolation
	placeholderRe *regexpPair
}

// Interpolation configures the placeholder delimiters. The zero value means
// the canonical {{ ... }} markers.
type Interpolation struct {
	Prefix string
	Suffix string
}

// Option configures a new engine.
type Option func(*Engine)

// WithLocale sets the active request locale.
func WithLocale(locale string) Option {
	return func(e *Engine) { e.locale = locale }
}

// WithDefaultLocale overrides the locale consulted after the request locale.
func WithDefaultLocale(locale string) Option {
	return func(e *Engine) { e.defaultLocale = locale }
}

// WithTimezone sets the zone date-like placeholders render in when their
// payload does not carry one.
func WithTimezone(zone *time.Location) Option {
	return func(e *Engine) { e.timezone = zone }
}

// WithLogger wires the logger capability.
func WithLogger(log logger.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.logger = log
		}
	}
}

// WithCatalog shares an existing catalog instead of an empty one.
func WithCatalog(c *catalog.Catalog) Option {
	return func(e *Engine) {
		if c != nil {
			e.catalog = c
		}
	}
}

// WithCultures shares a locale data provider.
func WithCultures(p *culture.Provider) Option {
	return func(e *Engine) {
		if p != nil {
			e.cultures = p
		}
	}
}

// WithFormatters shares a formatter registry.
func WithFormatters(r *formatters.Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.formatters = r
		}
	}
}

// WithInterpolation overrides the placeholder delimiters.
func WithInterpolation(cfg Interpolation) Option {
	return func(e *Engine) { e.interpolation = cfg }
}

// WithTranslations seeds the catalog with locale → template mappings.
func WithTranslations(translations map[string]map[string]any) Option {
	return func(e *Engine) {
		for locale, templates := range translations {
			e.catalog.Add(locale, templates)
		}
	}
}

// New builds an engine with an empty catalog, the curated culture set, the
// built-in formatter registry, and a no-op logger.
func New(opts ...Option) *Engine {
	e := &Engine{
		catalog:       catalog.New(),
		cultures:      culture.New(),
		formatters:    formatters.NewRegistry(),
		logger:        &logger.Nop{},
		locale:        culture.DefaultLocale,
		defaultLocale: culture.DefaultLocale,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.locale == "" {
		e.locale = e.defaultLocale
	}
	e.placeholderRe = compileDelimiters(e.interpolation)
	return e
}

// Clone returns a request-scoped engine sharing the catalog, cultures, and
// formatter registry while copying the mutable locale/timezone/logger state.
func (e *Engine) Clone() *Engine {
	clone := *e
	return &clone
}

// SetLocale mutates the active locale. Call on request clones only.
func (e *Engine) SetLocale(locale string) {
	if locale != "" {
		e.locale = locale
	}
}

// SetTimezone mutates the active zone. Call on request clones only.
func (e *Engine) SetTimezone(zone *time.Location) { e.timezone = zone }

// SetLogger swaps the logger capability.
func (e *Engine) SetLogger(log logger.Logger) {
	if log != nil {
		e.logger = log
	}
}

// Locale returns the active request locale.
func (e *Engine) Locale() string { return e.locale }

// DefaultLocale returns the locale consulted after the request locale.
func (e *Engine) DefaultLocale() string { return e.defaultLocale }

// Timezone returns the active zone, nil when unset.
func (e *Engine) Timezone() *time.Location { return e.timezone }

// Catalog exposes the shared template store.
func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// Formatters exposes the shared formatter registry.
func (e *Engine) Formatters() *formatters.Registry { return e.formatters }

// Cultures exposes the locale data provider.
func (e *Engine) Cultures() *culture.Provider { return e.cultures }

// Logger exposes the configured logger.
func (e *Engine) Logger() logger.Logger { return e.logger }

// AddTranslations deep-merges a nested or flat template mapping for locale.
func (e *Engine) AddTranslations(locale string, templates map[string]any) *Engine {
	e.catalog.Add(locale, templates)
	return e
}

// Locales returns the consulted locale chain: the request locale, its base
// language, the default locale, and its base, deduplicated in that order.
// Templates stored under "en" serve "en-GB"; templates stored only under
// "en-GB" are never consulted for "en-US".
func (e *Engine) Locales() []string {
	chain := make([]string, 0, 4)
	seen := make(map[string]struct{}, 4)
	push := func(locale string) {
		if locale == "" {
			return
		}
		if _, ok := seen[locale]; ok {
			return
		}
		seen[locale] = struct{}{}
		chain = append(chain, locale)
	}
	push(e.locale)
	push(culture.Base(e.locale))
	push(e.defaultLocale)
	push(culture.Base(e.defaultLocale))
	return chain
}

// Translate resolves one node to a string. Missing keys fall back to the
// inline fallback template, then to the key itself. A formatter failure logs
// the error and yields the original node augmented with an error property.
func (e *Engine) Translate(n node.Node) any {
	placeholders := make(map[string]any, len(n.Placeholders)+1)
	for name, value := range n.Placeholders {
		placeholders[name] = value
	}
	if n.Quantity != nil {
		placeholders["count"] = *n.Quantity
	}

	template, found := e.lookupTemplate(n)
	if !found {
		if !n.HasFallback() {
			return n.Key
		}
		template = *n.Fallback
	}

	out, err := e.interpolate(template, placeholders)
	if err != nil {
		e.logger.Error("engine: placeholder formatting failed",
			logger.Field{Key: "key", Value: n.Key},
			logger.Field{Key: "locale", Value: e.locale},
			logger.Err(err),
		)
		return n.ErrorNode(err)
	}
	return out
}

func (e *Engine) lookupTemplate(n node.Node) (string, bool) {
	for _, locale := range e.Locales() {
		if n.Quantity != nil {
			cat := e.cultures.CardinalCategory(locale, *n.Quantity)
			if template, ok := e.catalog.LookupPlural(locale, n.Key, cat); ok {
				return template, true
			}
			continue
		}
		if template, ok := e.catalog.Lookup(locale, n.Key); ok {
			return template, true
		}
	}
	return "", false
}
