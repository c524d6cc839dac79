package formatters

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors surfaced on nodes via the engine's error marker.
var (
	ErrDateValueRequired     = errors.New("formatters: date value is required")
	ErrDurationValueRequired = errors.New("formatters: duration value must be a number")
	ErrCurrencyCodeRequired  = errors.New("formatters: Currency code is required")
	ErrCurrencyValueRequired = errors.New("formatters: currency value must be a number")
)

// dateLayouts are the ISO 8601 shapes accepted for string date values.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// dateInput extracts a moment plus an optional per-value zone override from a
// placeholder. Accepted shapes: time.Time, ISO 8601 string, epoch
// milliseconds, or {value: ..., timezone: IANA}.
func dateInput(v any) (time.Time, *time.Location, error) {
	payload, ok := v.(map[string]any)
	if !ok {
		t, err := parseMoment(v)
		return t, nil, err
	}

	raw, ok := payload["value"]
	if !ok {
		return time.Time{}, nil, ErrDateValueRequired
	}
	t, err := parseMoment(raw)
	if err != nil {
		return time.Time{}, nil, err
	}

	var zone *time.Location
	if name, ok := payload["timezone"].(string); ok && name != "" {
		zone, err = time.LoadLocation(name)
		if err != nil {
			return time.Time{}, nil, fmt.Errorf("formatters: invalid timezone %q: %w", name, err)
		}
	}
	return t, zone, nil
}

func parseMoment(v any) (time.Time, error) {
	switch value := v.(type) {
	case time.Time:
		return value, nil
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, value); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("formatters: unparseable date %q", value)
	default:
		// Epoch values travel as milliseconds, matching the wire format of
		// serialized Date payloads.
		if ms, ok := asFloat(v); ok {
			return time.UnixMilli(int64(ms)).UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("formatters: unsupported date value %T", v)
}

// effectiveZone picks the zone a date-like value renders in: the value's own
// payload zone, then the request zone, then the moment's attached location.
func effectiveZone(valueZone *time.Location, ctx Context) *time.Location {
	if valueZone != nil {
		return valueZone
	}
	return ctx.Timezone
}

func asFloat(v any) (float64, bool) {
	switch value := v.(type) {
	case float64:
		return value, true
	case float32:
		return float64(value), true
	case int:
		return float64(value), true
	case int32:
		return float64(value), true
	case int64:
		return float64(value), true
	case uint:
		return float64(value), true
	case uint32:
		return float64(value), true
	case uint64:
		return float64(value), true
	default:
		return 0, false
	}
}

func asInt(v any) (int, bool) {
	f, ok := asFloat(v)
	if !ok {
		return 0, false
	}
	return int(f), true
}

func asStrings(v any) []string {
	switch value := v.(type) {
	case []string:
		return value
	case []any:
		out := make([]string, 0, len(value))
		for _, item := range value {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
