package el

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/tagtree-dev/tagtree/pkg/dom"
)

// Text creates an entity-encoded text node.
func Text(content string) dom.Text {
	return dom.Text(content)
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) dom.Text {
	return dom.Text(fmt.Sprintf(format, args...))
}

// Raw creates a literal markup node emitted verbatim. The caller vouches
// for its safety.
func Raw(html string) dom.Raw {
	return dom.Raw(html)
}

// Defer creates deferred content: the producer runs fresh on every
// serialization pass.
func Defer(fn func() any) *dom.Deferred {
	return dom.Defer(fn)
}

// DeferErr is Defer for producers that can fail.
func DeferErr(fn func() (any, error)) *dom.Deferred {
	return dom.DeferErr(fn)
}

// Group bundles content without a wrapper element.
func Group(children ...any) *dom.Fragment {
	f, err := dom.NewFragment(children...)
	if err != nil {
		panic(err)
	}
	return f
}

// If returns node when condition holds, otherwise nothing.
func If(condition bool, node Node) Node {
	if condition {
		return node
	}
	return nil
}

// IfElse returns ifTrue when condition holds, otherwise ifFalse.
func IfElse(condition bool, ifTrue, ifFalse Node) Node {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// Unless returns node when condition does not hold.
func Unless(condition bool, node Node) Node {
	if !condition {
		return node
	}
	return nil
}

// When builds node lazily: fn runs only when condition holds.
func When(condition bool, fn func() Node) Node {
	if condition {
		return fn()
	}
	return nil
}

// Nothing returns empty content.
func Nothing() Node {
	return nil
}

// Range maps items to nodes in order.
func Range[T any](items []T, fn func(item T, index int) Node) []Node {
	nodes := make([]Node, 0, len(items))
	for i, item := range items {
		if n := fn(item, i); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// RangeMap maps entries to nodes in sorted key order, so output is
// stable across runs.
func RangeMap[K cmp.Ordered, V any](m map[K]V, fn func(key K, value V) Node) []Node {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	nodes := make([]Node, 0, len(keys))
	for _, k := range keys {
		if n := fn(k, m[k]); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// Repeat builds n nodes by index.
func Repeat(n int, fn func(i int) Node) []Node {
	nodes := make([]Node, 0, n)
	for i := 0; i < n; i++ {
		if node := fn(i); node != nil {
			nodes = append(nodes, node)
		}
	}
	return nodes
}
