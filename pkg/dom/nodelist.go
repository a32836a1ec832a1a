package dom

import "fmt"

// ChildList is the ordered child-sequence contract an element delegates
// to. Mutations through it are visible to the owning element's next
// serialization pass. Resolve evaluates deferred entries fresh on every
// call and never caches.
type ChildList interface {
	Len() int
	At(i int) Node
	Append(content ...any) error
	RemoveAt(i int) Node
	Resolve() ([]Node, error)
}

// NodeList is the standard ChildList implementation.
type NodeList struct {
	fac   Factories
	nodes []Node
}

// NewNodeList builds a NodeList from constructor-style content, with
// nested element forms promoted through the default factories.
func NewNodeList(content ...any) (*NodeList, error) {
	return NewNodeListWith(Factories{}, content...)
}

// NewNodeListWith is NewNodeList with an explicit factory record, so a
// substituted element kind governs its auto-promoted descendants.
func NewNodeListWith(fac Factories, content ...any) (*NodeList, error) {
	l := &NodeList{fac: fac.withDefaults()}
	if err := l.Append(content...); err != nil {
		return nil, err
	}
	return l, nil
}

// Len returns the number of stored entries. Deferred entries count as one
// regardless of what they will produce.
func (l *NodeList) Len() int { return len(l.nodes) }

// At returns the stored entry at i, unresolved, or nil when out of range.
func (l *NodeList) At(i int) Node {
	if i < 0 || i >= len(l.nodes) {
		return nil
	}
	return l.nodes[i]
}

// Append classifies and appends content values:
//
//   - Node values are stored verbatim
//   - strings become Text, other scalars become their printed text
//   - []any is promoted to a child element (first entry is the tag name)
//   - zero-argument funcs become Deferred entries
//   - a ChildList or []Node is spliced entry by entry
//   - nil values are skipped
//
// Attribute-shaped values (maps, Attr, Attrs) are rejected here; they
// belong in element construction.
func (l *NodeList) Append(content ...any) error {
	for _, v := range content {
		switch x := v.(type) {
		case nil:
			continue
		case ChildList:
			for i := 0; i < x.Len(); i++ {
				if n := x.At(i); n != nil {
					l.nodes = append(l.nodes, n)
				}
			}
		case []Node:
			for _, n := range x {
				if n != nil {
					l.nodes = append(l.nodes, n)
				}
			}
		default:
			n, err := classify(l.fac, v)
			if err != nil {
				return err
			}
			if n != nil {
				l.nodes = append(l.nodes, n)
			}
		}
	}
	return nil
}

// RemoveAt removes and returns the entry at i, or nil when out of range.
// A removed element is detached: bookmarks pointing at it go absent.
func (l *NodeList) RemoveAt(i int) Node {
	if i < 0 || i >= len(l.nodes) {
		return nil
	}
	n := l.nodes[i]
	l.nodes = append(l.nodes[:i], l.nodes[i+1:]...)
	if g, ok := n.(generational); ok {
		g.detach()
	}
	return n
}

// Remove removes the first entry identical to n and reports whether one
// was found.
func (l *NodeList) Remove(n Node) bool {
	for i, have := range l.nodes {
		if have == n {
			l.RemoveAt(i)
			return true
		}
	}
	return false
}

// Clear removes all entries, detaching each.
func (l *NodeList) Clear() {
	for len(l.nodes) > 0 {
		l.RemoveAt(len(l.nodes) - 1)
	}
}

// Resolve returns the current entries with deferred producers evaluated
// and fragments spliced. Every call starts from scratch; producers with
// side effects run once per call.
func (l *NodeList) Resolve() ([]Node, error) {
	out := make([]Node, 0, len(l.nodes))
	for _, n := range l.nodes {
		got, err := resolveNode(n)
		if err != nil {
			return nil, err
		}
		out = append(out, got...)
	}
	return out, nil
}

// classify converts one content value into its node form. It returns
// (nil, nil) for values that contribute nothing.
func classify(fac Factories, v any) (Node, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case *Deferred:
		if x.fac.Promote == nil {
			x.fac = fac
		}
		return x, nil
	case Node:
		return x, nil
	case string:
		return Text(x), nil
	case []any:
		if len(x) == 0 {
			return nil, fmt.Errorf("nested element form: %w", ErrNoName)
		}
		name, ok := x[0].(string)
		if !ok || name == "" {
			return nil, fmt.Errorf("nested element form starts with %T: %w", x[0], ErrNoName)
		}
		return fac.Promote(name, x[1:]...)
	case func() any:
		return &Deferred{fac: fac, produce: func() (any, error) { return x(), nil }}, nil
	case func() (any, error):
		return &Deferred{fac: fac, produce: x}, nil
	case Attr, []Attr, map[string]any, map[string]string, Attrs:
		return nil, fmt.Errorf("%w: %T belongs in element construction", ErrBadContent, v)
	default:
		return Text(fmt.Sprintf("%v", x)), nil
	}
}
