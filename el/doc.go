// Package el provides the element DSL for tagtree.
//
// It offers HTML tag constructors, attribute helpers, and content helpers
// over github.com/tagtree-dev/tagtree/pkg/dom, so documents read as nested
// function calls:
//
//	import (
//	    "github.com/tagtree-dev/tagtree/pkg/dom"
//	    . "github.com/tagtree-dev/tagtree/el"
//	)
//
//	page := Div(Class("card"),
//	    H1("Hello"),
//	    P("Rendered at ", Defer(func() any { return time.Now().Format(time.Kitchen) })),
//	)
//	text, err := dom.Markup(page)
//
// Tag names are compile-time constants here, so the constructors panic on
// the one thing that can still go wrong: malformed nested content. Use
// dom.New directly when an error return is wanted.
package el
