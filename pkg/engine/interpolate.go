package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-translate/pkg/formatters"
)

// referenceRe matches $t(other-key) template references.
var referenceRe = regexp.MustCompile(`\$t\(\s*([^)]+?)\s*\)`)

type regexpPair struct {
	placeholder *regexp.Regexp
}

// compileDelimiters builds the placeholder matcher for the configured
// delimiters. The capture holds everything between prefix and suffix; name
// and format split on the first comma afterwards.
func compileDelimiters(cfg Interpolation) *regexpPair {
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "{{"
	}
	suffix := cfg.Suffix
	if suffix == "" {
		suffix = "}}"
	}
	pattern := regexp.QuoteMeta(prefix) + `\s*(.+?)\s*` + regexp.QuoteMeta(suffix)
	return &regexpPair{placeholder: regexp.MustCompile(pattern)}
}

// interpolate substitutes placeholders into template. $t(key) references
// expand first against the same locale chain, then a single placeholder pass
// runs over the expanded body. Output is literal text: no HTML escaping.
func (e *Engine) interpolate(template string, placeholders map[string]any) (string, error) {
	expanded := referenceRe.ReplaceAllStringFunc(template, func(match string) string {
		key := strings.TrimSpace(referenceRe.FindStringSubmatch(match)[1])
		for _, locale := range e.Locales() {
			if body, ok := e.catalog.Lookup(locale, key); ok {
				return body
			}
		}
		return key
	})

	var out strings.Builder
	last := 0
	for _, match := range e.placeholderRe.placeholder.FindAllStringSubmatchIndex(expanded, -1) {
		out.WriteString(expanded[last:match[0]])
		last = match[1]

		name, format := splitMarker(expanded[match[2]:match[3]])
		value, known := placeholders[name]

		switch {
		case format == "":
			if known {
				out.WriteString(stringify(value))
			}
		default:
			fn, ok := e.formatters.Get(format)
			if !ok {
				// Unknown formatter names are a no-op: emit the raw value.
				out.WriteString(stringify(value))
				break
			}
			rendered, err := fn(formatters.Context{
				Locale:   e.locale,
				Timezone: e.timezone,
				Cultures: e.cultures,
			}, value)
			if err != nil {
				return "", err
			}
			out.WriteString(rendered)
		}
	}
	out.WriteString(expanded[last:])
	return out.String(), nil
}

// splitMarker separates "name, format" on the first comma.
func splitMarker(marker string) (name, format string) {
	if idx := strings.IndexByte(marker, ','); idx >= 0 {
		return strings.TrimSpace(marker[:idx]), strings.TrimSpace(marker[idx+1:])
	}
	return strings.TrimSpace(marker), ""
}

// stringify renders a placeholder value as plain text. Typed payload mappings
// collapse to their value property; nil and missing values become empty.
func stringify(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(value), 'f', -1, 32)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case map[string]any:
		if inner, ok := value["value"]; ok {
			return stringify(inner)
		}
		return fmt.Sprint(value)
	default:
		return fmt.Sprint(value)
	}
}
