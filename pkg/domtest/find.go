package domtest

import (
	"testing"

	"github.com/tagtree-dev/tagtree/pkg/dom"
)

// Find returns the first element named name in depth-first order, checking
// n itself before its descendants. The search reads stored children only;
// deferred producers are not evaluated.
//
// Example:
//
//	title, ok := domtest.Find(doc, "title")
func Find(n dom.Node, name string) (dom.ElementNode, bool) {
	var found dom.ElementNode
	walk(n, func(el dom.ElementNode) bool {
		if el.Name() == name {
			found = el
			return false
		}
		return true
	})
	return found, found != nil
}

// FindAll returns every element named name in depth-first order.
func FindAll(n dom.Node, name string) []dom.ElementNode {
	var found []dom.ElementNode
	walk(n, func(el dom.ElementNode) bool {
		if el.Name() == name {
			found = append(found, el)
		}
		return true
	})
	return found
}

// MustFind is Find that fails the test when no element matches.
//
// Example:
//
//	body := domtest.MustFind(t, doc, "body")
//	body.Children().Append(el.P("appended"))
func MustFind(tb testing.TB, n dom.Node, name string) dom.ElementNode {
	tb.Helper()
	el, ok := Find(n, name)
	if !ok {
		tb.Fatalf("no <%s> element in tree", name)
	}
	return el
}

// walk visits every element under n in depth-first order until the visitor
// returns false. Fragments are transparent: their children are visited in
// place.
func walk(n dom.Node, visit func(dom.ElementNode) bool) bool {
	if el, ok := n.(dom.ElementNode); ok {
		if !visit(el) {
			return false
		}
		return walkChildren(el.Children(), visit)
	}
	if f, ok := n.(*dom.Fragment); ok {
		return walkChildren(f.Children(), visit)
	}
	return true
}

func walkChildren(kids dom.ChildList, visit func(dom.ElementNode) bool) bool {
	for i := 0; i < kids.Len(); i++ {
		child := kids.At(i)
		if child == nil {
			continue
		}
		if !walk(child, visit) {
			return false
		}
	}
	return true
}
