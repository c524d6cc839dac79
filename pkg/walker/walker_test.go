package walker

import (
	"reflect"
	"strings"
	"testing"

	"github.com/goliatone/go-translate/pkg/node"
)

func upper(n node.Node) any { return strings.ToUpper(n.Key) }

func TestWalkScalarsPassThrough(t *testing.T) {
	for _, v := range []any{nil, "hello", 42, 3.14, true} {
		r := Walk(v)
		if len(r.Keys()) != 0 {
			t.Errorf("scalar %v collected keys %v", v, r.Keys())
		}
		if got := r.Resolve(upper); got != v {
			t.Errorf("Resolve(%v) = %v", v, got)
		}
	}
}

func TestWalkReplacesNodes(t *testing.T) {
	input := map[string]any{
		"title": node.Build("greeting", nil),
		"meta": map[string]any{
			"subtitle": node.Build("farewell", nil),
			"count":    7,
		},
		"tags": []any{"a", node.Build("label", nil), 3},
	}

	r := Walk(input)

	keys := r.Keys()
	if len(keys) != 3 {
		t.Fatalf("Keys = %v", keys)
	}

	got := r.Resolve(upper)
	want := map[string]any{
		"title": "GREETING",
		"meta": map[string]any{
			"subtitle": "FAREWELL",
			"count":    7,
		},
		"tags": []any{"a", "LABEL", 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve = %v, want %v", got, want)
	}
}

func TestWalkDoesNotMutateInput(t *testing.T) {
	built := node.Build("greeting", nil)
	input := map[string]any{
		"title": built,
		"list":  []any{map[string]any{"inner": built}},
	}

	Walk(input).Resolve(upper)

	if !node.Is(input["title"]) {
		t.Fatal("input node was replaced in place")
	}
	inner := input["list"].([]any)[0].(map[string]any)["inner"]
	if !node.Is(inner) {
		t.Fatal("nested input node was replaced in place")
	}
}

func TestWalkInvalidNodesStayPlainMappings(t *testing.T) {
	invalid := map[string]any{
		node.Marker: map[string]any{"key": "x", "bogus": true},
	}
	nested := map[string]any{
		node.Marker: map[string]any{
			"key":  "y",
			"deep": node.Build("inner", nil),
		},
	}

	r := Walk(map[string]any{"a": invalid, "b": nested})

	// Only the node embedded inside the invalid wrapper is collected.
	keys := r.Keys()
	if len(keys) != 1 || keys[0] != "inner" {
		t.Fatalf("Keys = %v", keys)
	}

	got := r.Resolve(upper).(map[string]any)
	a := got["a"].(map[string]any)[node.Marker].(map[string]any)
	if a["bogus"] != true || a["key"] != "x" {
		t.Errorf("invalid node should copy as a plain mapping: %v", a)
	}
	b := got["b"].(map[string]any)[node.Marker].(map[string]any)
	if b["deep"] != "INNER" {
		t.Errorf("nested node inside invalid wrapper should resolve: %v", b)
	}
}

type canonicalDoc struct {
	title map[string]any
}

func (d canonicalDoc) ToCanonical() any {
	return map[string]any{"title": d.title}
}

func TestWalkCanonicalizable(t *testing.T) {
	doc := canonicalDoc{title: node.Build("greeting", nil)}

	r := Walk(map[string]any{"doc": doc})
	if keys := r.Keys(); len(keys) != 1 || keys[0] != "greeting" {
		t.Fatalf("Keys = %v", keys)
	}

	got := r.Resolve(upper)
	want := map[string]any{"doc": map[string]any{"title": "GREETING"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve = %v, want %v", got, want)
	}
}

func TestResolveConcurrentMatchesSerial(t *testing.T) {
	input := map[string]any{"list": make([]any, 0, 64)}
	list := input["list"].([]any)
	for i := 0; i < 64; i++ {
		list = append(list, node.Build("key", map[string]any{"i": i}))
	}
	input["list"] = list

	serial := Walk(input).Resolve(upper)
	concurrent := Walk(input).ResolveConcurrent(upper)
	if !reflect.DeepEqual(serial, concurrent) {
		t.Error("concurrent resolution diverged from serial")
	}
}

func TestOutputBeforeResolve(t *testing.T) {
	r := Walk(map[string]any{"title": node.Build("greeting", nil), "n": 1})
	out := r.Output().(map[string]any)
	if out["title"] != nil {
		t.Errorf("pending slot should be nil before Resolve, got %v", out["title"])
	}
	if out["n"] != 1 {
		t.Errorf("plain values copy immediately, got %v", out["n"])
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d", r.Len())
	}
}
