// Package dom implements an in-memory model of HTML-like documents.
//
// The central type is Element: a named node that owns a mutable attribute
// collection and an ordered, mutable child sequence. Both are exposed as
// live views: Attrs() and Children() return the element's own storage,
// never copies, so edits through a view are visible to every holder and to
// the next serialization pass.
//
// Trees are built with New (or the el package's tag constructors), mutated
// through the views, and serialized with Markup. Serialization is a pure
// read: nothing is cached, deferred producers run fresh on every pass, and
// the emitted text always reflects the tree's current state.
//
// Elements are not safe for concurrent mutation. Callers that share a tree
// across goroutines must synchronize externally; concurrent calls to Markup
// on an unchanging tree are fine.
package dom
