package culture

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/locales"
)

// PluralCategory is a CLDR cardinal category paired with its legacy numeric
// suffix index (zero=0 .. other=5), the scheme catalogs use for plural keys.
type PluralCategory struct {
	Index int
	Name  string
}

var (
	CategoryZero  = PluralCategory{Index: 0, Name: "zero"}
	CategoryOne   = PluralCategory{Index: 1, Name: "one"}
	CategoryTwo   = PluralCategory{Index: 2, Name: "two"}
	CategoryFew   = PluralCategory{Index: 3, Name: "few"}
	CategoryMany  = PluralCategory{Index: 4, Name: "many"}
	CategoryOther = PluralCategory{Index: 5, Name: "other"}
)

// Singular reports whether the category is "one"; the legacy _plural suffix is
// never consulted for singular counts.
func (c PluralCategory) Singular() bool { return c.Index == CategoryOne.Index }

// CardinalCategory selects the plural category for count under locale's
// cardinal rules. Unknown rules collapse to "other".
func (p *Provider) CardinalCategory(locale string, count float64) PluralCategory {
	rule := p.Resolve(locale).CardinalPluralRule(count, visibleDecimals(count))
	switch rule {
	case locales.PluralRuleZero:
		return CategoryZero
	case locales.PluralRuleOne:
		return CategoryOne
	case locales.PluralRuleTwo:
		return CategoryTwo
	case locales.PluralRuleFew:
		return CategoryFew
	case locales.PluralRuleMany:
		return CategoryMany
	default:
		return CategoryOther
	}
}

// visibleDecimals counts the fraction digits a count renders with, the "v"
// operand of CLDR plural rules.
func visibleDecimals(count float64) uint64 {
	if count == math.Trunc(count) {
		return 0
	}
	text := strconv.FormatFloat(count, 'f', -1, 64)
	if idx := strings.IndexByte(text, '.'); idx >= 0 {
		return uint64(len(text) - idx - 1)
	}
	return 0
}
