package node

import (
	"encoding/json"
	"strconv"
)

// Marker is the single top-level key identifying a translation node.
const Marker = "@translate"

// Node is the typed view of a valid translation node payload.
type Node struct {
	Key          string
	Quantity     *float64
	Placeholders map[string]any
	Fallback     *string

	raw map[string]any
}

// HasFallback reports whether the node carries an inline fallback template.
func (n Node) HasFallback() bool { return n.Fallback != nil }

// ErrorNode rebuilds the canonical wire form of the node augmented with an
// error property. The walker emits this marker when a formatter fails so the
// rest of the tree still translates.
func (n Node) ErrorNode(err error) map[string]any {
	return map[string]any{
		Marker:  cloneMap(n.raw),
		"error": err,
	}
}

// Is reports whether v has the canonical translation node shape: a plain
// mapping with exactly one key, Marker, whose value is a mapping holding a
// non-empty string key plus only the optional quantity (number), placeholders
// (mapping), and fallback (string) properties.
func Is(v any) bool {
	_, ok := Parse(v)
	return ok
}

// Parse validates v and returns its typed view. Invalid nodes report false and
// are treated by callers as ordinary mappings.
func Parse(v any) (Node, bool) {
	outer, ok := v.(map[string]any)
	if !ok || len(outer) != 1 {
		return Node{}, false
	}
	payload, ok := outer[Marker]
	if !ok {
		return Node{}, false
	}
	inner, ok := payload.(map[string]any)
	if !ok {
		return Node{}, false
	}

	key, ok := inner["key"].(string)
	if !ok || key == "" {
		return Node{}, false
	}

	n := Node{Key: key, raw: inner}
	for prop, value := range inner {
		switch prop {
		case "key":
		case "quantity":
			quantity, ok := asNumber(value)
			if !ok {
				return Node{}, false
			}
			n.Quantity = &quantity
		case "placeholders":
			placeholders, ok := value.(map[string]any)
			if !ok {
				return Node{}, false
			}
			n.Placeholders = placeholders
		case "fallback":
			fallback, ok := value.(string)
			if !ok {
				return Node{}, false
			}
			n.Fallback = &fallback
		default:
			return Node{}, false
		}
	}
	return n, true
}

// BuildOption customizes the node produced by Build.
type BuildOption func(map[string]any)

// WithFallback attaches an inline fallback template.
func WithFallback(template string) BuildOption {
	return func(payload map[string]any) {
		payload["fallback"] = template
	}
}

// WithQuantity attaches a plural quantity, also bound as the count placeholder.
func WithQuantity(quantity float64) BuildOption {
	return func(payload map[string]any) {
		payload["quantity"] = quantity
	}
}

// Build assembles the canonical wire form of a translation node.
func Build(key string, placeholders map[string]any, opts ...BuildOption) map[string]any {
	payload := map[string]any{"key": key}
	if len(placeholders) > 0 {
		payload["placeholders"] = placeholders
	}
	for _, opt := range opts {
		opt(payload)
	}
	return map[string]any{Marker: payload}
}

// asNumber coerces the numeric kinds a decoded document may carry. Strings are
// rejected: a string quantity invalidates the node.
func asNumber(v any) (float64, bool) {
	switch value := v.(type) {
	case float64:
		return value, true
	case float32:
		return float64(value), true
	case int:
		return float64(value), true
	case int8:
		return float64(value), true
	case int16:
		return float64(value), true
	case int32:
		return float64(value), true
	case int64:
		return float64(value), true
	case uint:
		return float64(value), true
	case uint8:
		return float64(value), true
	case uint16:
		return float64(value), true
	case uint32:
		return float64(value), true
	case uint64:
		return float64(value), true
	case json.Number:
		parsed, err := strconv.ParseFloat(value.String(), 64)
		return parsed, err == nil
	default:
		return 0, false
	}
}

func cloneMap(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src))
	for k, v := range src {
		switch value := v.(type) {
		case map[string]any:
			dst[k] = cloneMap(value)
		case []any:
			items := make([]any, len(value))
			for i, item := range value {
				if m, ok := item.(map[string]any); ok {
					items[i] = cloneMap(m)
				} else {
					items[i] = item
				}
			}
			dst[k] = items
		default:
			dst[k] = v
		}
	}
	return dst
}
