package culture

import (
	"time"
)

// FormatDate renders a long-form date ("3 February 2016", "30 octobre 2016")
// under locale. Callers convert t to the effective zone beforehand.
func (p *Provider) FormatDate(locale string, t time.Time) string {
	return p.Resolve(locale).FmtDateLong(t)
}

// FormatTime renders a short clock time ("4:05 pm", "04:05") under locale.
func (p *Provider) FormatTime(locale string, t time.Time) string {
	return p.Resolve(locale).FmtTimeShort(t)
}

// FormatDateTime renders the full weekday + date followed by the short time
// ("mercredi 3 février 2016 04:05").
func (p *Provider) FormatDateTime(locale string, t time.Time) string {
	translator := p.Resolve(locale)
	return translator.FmtDateFull(t) + " " + translator.FmtTimeShort(t)
}

// FormatNumber renders v with locale grouping and decimal separators.
// decimals < 0 keeps the value's natural precision.
func (p *Provider) FormatNumber(locale string, v float64, decimals int) string {
	if decimals < 0 {
		decimals = int(visibleDecimals(v))
	}
	return p.Resolve(locale).FmtNumber(v, uint64(decimals))
}

// DecimalSeparator returns the decimal separator character for locale,
// derived from the locale's own number rendering.
func (p *Provider) DecimalSeparator(locale string) string {
	rendered := p.Resolve(locale).FmtNumber(1.1, 1)
	runes := []rune(rendered)
	if len(runes) == 3 {
		return string(runes[1])
	}
	return "."
}
