// Package domtest provides testing helpers for document trees.
//
// The domtest package reduces boilerplate when asserting on serialized
// markup by providing render helpers, substring assertions, and tree
// queries.
//
// # Quick Start
//
//	func TestProfileCard(t *testing.T) {
//	    card := el.Div(map[string]any{"class": "card"}, el.H2("Ada"))
//	    domtest.ExpectContains(t, card, "Ada")
//	    domtest.ExpectAttribute(t, card, "class", "card")
//	}
//
// # Render Assertions
//
// Assert on serialized output without spelling out dom.Markup each time:
//
//	domtest.ExpectMarkup(t, node, `<p>hello</p>`)
//	domtest.ExpectContains(t, node, "hello")
//	domtest.ExpectNotContains(t, node, "draft")
//	domtest.ExpectElement(t, node, "nav")
//
// # Tree Queries
//
// Find elements by name anywhere in a tree, then assert on the live views:
//
//	title, ok := domtest.Find(doc, "title")
//	if !ok {
//	    t.Fatal("no title element")
//	}
//	title.Children().Append("New Title")
//
// # Observing Fragments
//
// RecordSink captures the fragment stream of a serialization pass:
//
//	sink, fragments := domtest.RecordSink()
//	dom.Markup(doc, sink)
//	// *fragments holds each emitted fragment in document order
package domtest
