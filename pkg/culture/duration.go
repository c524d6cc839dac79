package culture

import (
	"math"
	"strconv"
	"strings"
)

// DurationOptions controls how a millisecond count humanizes.
type DurationOptions struct {
	// Precision caps the number of emitted units, largest first. Zero emits
	// every non-zero unit.
	Precision int
	// Units restricts output to the named units. Canonical singular names and
	// their English plurals are accepted; an empty list means unrestricted.
	Units []string
	// Round rounds the smallest emitted unit to a whole number. When false the
	// smallest unit may carry a fraction rendered with the locale's decimal
	// separator.
	Round bool
}

type durationUnit struct {
	name string
	ms   float64
}

// Unit sizes follow the astronomical-year convention (365.25 days) so month
// and year counts stay stable across leap years.
var durationUnits = []durationUnit{
	{name: "year", ms: 31557600000},
	{name: "month", ms: 2629800000},
	{name: "week", ms: 604800000},
	{name: "day", ms: 86400000},
	{name: "hour", ms: 3600000},
	{name: "minute", ms: 60000},
	{name: "second", ms: 1000},
	{name: "millisecond", ms: 1},
}

// durationNames holds [singular, plural] unit names per language. The locale's
// region suffix is ignored for durations: en-US and en-GB read the same.
var durationNames = map[string]map[string][2]string{
	"en": {
		"year":        {"year", "years"},
		"month":       {"month", "months"},
		"week":        {"week", "weeks"},
		"day":         {"day", "days"},
		"hour":        {"hour", "hours"},
		"minute":      {"minute", "minutes"},
		"second":      {"second", "seconds"},
		"millisecond": {"millisecond", "milliseconds"},
	},
	"fr": {
		"year":        {"an", "ans"},
		"month":       {"mois", "mois"},
		"week":        {"semaine", "semaines"},
		"day":         {"jour", "jours"},
		"hour":        {"heure", "heures"},
		"minute":      {"minute", "minutes"},
		"second":      {"seconde", "secondes"},
		"millisecond": {"milliseconde", "millisecondes"},
	},
	"es": {
		"year":        {"año", "años"},
		"month":       {"mes", "meses"},
		"week":        {"semana", "semanas"},
		"day":         {"día", "días"},
		"hour":        {"hora", "horas"},
		"minute":      {"minuto", "minutos"},
		"second":      {"segundo", "segundos"},
		"millisecond": {"milisegundo", "milisegundos"},
	},
	"de": {
		"year":        {"Jahr", "Jahre"},
		"month":       {"Monat", "Monate"},
		"week":        {"Woche", "Wochen"},
		"day":         {"Tag", "Tage"},
		"hour":        {"Stunde", "Stunden"},
		"minute":      {"Minute", "Minuten"},
		"second":      {"Sekunde", "Sekunden"},
		"millisecond": {"Millisekunde", "Millisekunden"},
	},
	"pt": {
		"year":        {"ano", "anos"},
		"month":       {"mês", "meses"},
		"week":        {"semana", "semanas"},
		"day":         {"dia", "dias"},
		"hour":        {"hora", "horas"},
		"minute":      {"minuto", "minutos"},
		"second":      {"segundo", "segundos"},
		"millisecond": {"milissegundo", "milissegundos"},
	},
}

// FormatDuration humanizes an elapsed millisecond count ("2 hours, 5 seconds",
// "120 minutes, 5 secondes") under the language of locale.
func (p *Provider) FormatDuration(locale string, ms float64, opts DurationOptions) string {
	names, ok := durationNames[Base(locale)]
	if !ok {
		names = durationNames["en"]
	}

	negative := ms < 0
	remaining := math.Abs(ms)

	units := selectUnits(opts.Units)

	type piece struct {
		unit  string
		count float64
	}
	pieces := make([]piece, 0, len(units))
	for i, unit := range units {
		var count float64
		if i == len(units)-1 {
			count = remaining / unit.ms
		} else {
			count = math.Floor(remaining / unit.ms)
			remaining -= count * unit.ms
		}
		if count > 0 {
			pieces = append(pieces, piece{unit: unit.name, count: count})
		}
	}
	if len(pieces) == 0 {
		smallest := units[len(units)-1]
		pieces = append(pieces, piece{unit: smallest.name, count: 0})
	}
	if opts.Precision > 0 && len(pieces) > opts.Precision {
		pieces = pieces[:opts.Precision]
	}

	last := len(pieces) - 1
	if opts.Round {
		pieces[last].count = math.Round(pieces[last].count)
	}

	separator := p.DecimalSeparator(locale)
	parts := make([]string, len(pieces))
	for i, pc := range pieces {
		rendered := strconv.FormatFloat(pc.count, 'f', -1, 64)
		if separator != "." {
			rendered = strings.Replace(rendered, ".", separator, 1)
		}
		name := names[pc.unit][1]
		if pc.count == 1 {
			name = names[pc.unit][0]
		}
		parts[i] = rendered + " " + name
	}

	out := strings.Join(parts, ", ")
	if negative {
		out = "-" + out
	}
	return out
}

// selectUnits filters the canonical unit list down to the requested subset,
// preserving largest-first ordering. Unknown names are ignored; an empty or
// fully-unknown request keeps every unit.
func selectUnits(requested []string) []durationUnit {
	if len(requested) == 0 {
		return durationUnits
	}
	wanted := make(map[string]struct{}, len(requested))
	for _, name := range requested {
		wanted[canonicalUnit(name)] = struct{}{}
	}
	selected := make([]durationUnit, 0, len(wanted))
	for _, unit := range durationUnits {
		if _, ok := wanted[unit.name]; ok {
			selected = append(selected, unit)
		}
	}
	if len(selected) == 0 {
		return durationUnits
	}
	return selected
}

func canonicalUnit(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimSuffix(name, "s")
	switch name {
	case "millisecond", "ms":
		return "millisecond"
	case "second", "sec":
		return "second"
	case "minute", "min":
		return "minute"
	case "hour", "hr", "h":
		return "hour"
	case "day", "d":
		return "day"
	case "week", "w":
		return "week"
	case "month", "mo":
		return "month"
	case "year", "y", "yr":
		return "year"
	default:
		return name
	}
}
