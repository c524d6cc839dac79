// Package walker deep-traverses arbitrary structured values, collecting
// translation nodes into pending resolutions while producing a deep-cloned
// skeleton of the input. Resolution happens in a second phase, after the
// loader has populated the catalog, so one batched load serves the whole tree.
package walker

import (
	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-translate/pkg/node"
)

// Canonicalizable is implemented by opaque values that expose a plain-tree
// canonical form; the walker replaces the value with it and keeps walking.
type Canonicalizable interface {
	ToCanonical() any
}

// pending is one translation node waiting for resolution, bound to its slot
// in the skeleton.
type pending struct {
	node   node.Node
	assign func(any)
}

// Result is the outcome of the first walk phase: a skeleton clone of the
// input plus the collected translation nodes.
type Result struct {
	output   any
	keys     []string
	pendings []pending
}

// Walk clones v depth-first. Valid translation nodes become pending slots;
// plain mappings and sequences shallow-copy and recurse; canonicalizable
// values walk their canonical form; scalars and opaque leaves pass through
// unchanged. The input is never mutated.
func Walk(v any) *Result {
	r := &Result{}
	r.walk(v, func(out any) { r.output = out })
	return r
}

// Keys lists the translation keys collected during the walk, in traversal
// order, for the loader's batched fetch.
func (r *Result) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Output returns the skeleton. Pending slots hold nil until resolved.
func (r *Result) Output() any { return r.output }

// Len reports the number of pending resolutions.
func (r *Result) Len() int { return len(r.pendings) }

// Resolve invokes fn for every pending node and splices each result into its
// slot. Resolution outputs are terminal: they are never walked again.
func (r *Result) Resolve(fn func(node.Node) any) any {
	for _, p := range r.pendings {
		p.assign(fn(p.node))
	}
	return r.output
}

// ResolveConcurrent computes resolutions in parallel — pure reads against the
// now-frozen catalog — then splices serially, since slots can share a parent
// container.
func (r *Result) ResolveConcurrent(fn func(node.Node) any) any {
	if len(r.pendings) < 2 {
		return r.Resolve(fn)
	}
	results := make([]any, len(r.pendings))
	var g errgroup.Group
	for i := range r.pendings {
		g.Go(func() error {
			results[i] = fn(r.pendings[i].node)
			return nil
		})
	}
	_ = g.Wait()
	for i, p := range r.pendings {
		p.assign(results[i])
	}
	return r.output
}

func (r *Result) walk(v any, assign func(any)) {
	if n, ok := node.Parse(v); ok {
		r.keys = append(r.keys, n.Key)
		r.pendings = append(r.pendings, pending{node: n, assign: assign})
		assign(nil)
		return
	}

	switch value := v.(type) {
	case map[string]any:
		dst := make(map[string]any, len(value))
		assign(dst)
		for key, item := range value {
			r.walk(item, func(out any) { dst[key] = out })
		}
	case []any:
		dst := make([]any, len(value))
		assign(dst)
		for i, item := range value {
			r.walk(item, func(out any) { dst[i] = out })
		}
	case Canonicalizable:
		r.walk(value.ToCanonical(), assign)
	default:
		assign(v)
	}
}
