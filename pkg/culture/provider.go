// Package culture resolves locale tags to CLDR-backed rendering rules: plural
// categories, long-form dates, short times, grouped numbers, and currency.
// It fronts go-playground/locales with a registry that falls back from the
// exact tag (fr-FR) to the base language (fr) to the default locale.
package culture

import (
	"strings"
	"sync"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/ar"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/es_MX"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/fr_FR"
	"github.com/go-playground/locales/it"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/nl"
	"github.com/go-playground/locales/pt"
	"github.com/go-playground/locales/pt_BR"
	"github.com/go-playground/locales/ru"
	"github.com/go-playground/locales/zh"
	"golang.org/x/text/language"
)

// DefaultLocale anchors every fallback chain.
const DefaultLocale = "en"

// Provider maps locale tags to locales.Translator instances.
type Provider struct {
	mu          sync.RWMutex
	translators map[string]locales.Translator
}

// New returns a provider seeded with the curated locale set. Additional
// locales register through Register.
func New() *Provider {
	p := &Provider{translators: make(map[string]locales.Translator)}
	for _, t := range []locales.Translator{
		ar.New(),
		de.New(),
		en.New(),
		en_GB.New(),
		en_US.New(),
		es.New(),
		es_MX.New(),
		fr.New(),
		fr_FR.New(),
		it.New(),
		ja.New(),
		nl.New(),
		pt.New(),
		pt_BR.New(),
		ru.New(),
		zh.New(),
	} {
		p.Register(t)
	}
	return p
}

// Register adds or replaces a locale translator, keyed by its own tag.
func (p *Provider) Register(t locales.Translator) {
	if t == nil {
		return
	}
	p.mu.Lock()
	p.translators[normalize(t.Locale())] = t
	p.mu.Unlock()
}

// Has reports whether the exact tag (after normalization) is registered.
func (p *Provider) Has(locale string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.translators[normalize(locale)]
	return ok
}

// Resolve returns the best translator for locale: exact tag, base language,
// then DefaultLocale.
func (p *Provider) Resolve(locale string) locales.Translator {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if t, ok := p.translators[normalize(locale)]; ok {
		return t
	}
	if t, ok := p.translators[Base(locale)]; ok {
		return t
	}
	return p.translators[DefaultLocale]
}

// Base extracts the language subtag of a locale ("en-GB" -> "en"). Unparseable
// tags fall back to a naive split so degenerate inputs still resolve.
func Base(locale string) string {
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err == nil {
		base, _ := tag.Base()
		return strings.ToLower(base.String())
	}
	if idx := strings.IndexAny(locale, "-_"); idx > 0 {
		return strings.ToLower(locale[:idx])
	}
	return strings.ToLower(locale)
}

// normalize maps "fr-fr" / "fr-FR" / "fr_fr" to the go-playground key "fr_FR".
func normalize(locale string) string {
	locale = strings.ReplaceAll(strings.TrimSpace(locale), "-", "_")
	parts := strings.SplitN(locale, "_", 2)
	if len(parts) == 1 {
		return strings.ToLower(parts[0])
	}
	return strings.ToLower(parts[0]) + "_" + strings.ToUpper(parts[1])
}
