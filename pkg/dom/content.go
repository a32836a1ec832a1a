package dom

import "fmt"

// Text is plain character content. It is entity-encoded at serialization
// time, so a Text may safely hold "<" or "&". An explicit empty Text still
// counts as content: a parent holding only Text("") serializes in the
// open/close form rather than self-closing.
type Text string

// WriteMarkup implements Node.
func (t Text) WriteMarkup(w *Writer) error {
	return w.WriteString(escapeText(string(t)))
}

// Raw is literal markup emitted verbatim, bypassing entity encoding. The
// caller vouches for its safety.
type Raw string

// WriteMarkup implements Node.
func (r Raw) WriteMarkup(w *Writer) error {
	return w.WriteString(string(r))
}

// Deferred is a lazily produced content entry. Its producer runs fresh on
// every serialization pass, never once-and-cached, so a Deferred can
// reflect state that changes between passes. A producer error aborts the
// pass and propagates to the caller unmodified.
type Deferred struct {
	fac     Factories
	produce func() (any, error)
}

// Defer wraps a producer whose value is classified like constructor
// content: strings become text, nodes are taken verbatim, nested element
// forms are promoted, nil yields nothing.
func Defer(fn func() any) *Deferred {
	return &Deferred{produce: func() (any, error) { return fn(), nil }}
}

// DeferErr is Defer for producers that can fail.
func DeferErr(fn func() (any, error)) *Deferred {
	return &Deferred{produce: fn}
}

// resolve evaluates the producer and classifies its product.
func (d *Deferred) resolve() ([]Node, error) {
	v, err := d.produce()
	if err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case nil:
		return nil, nil
	case ChildList:
		return x.Resolve()
	case []Node:
		out := make([]Node, 0, len(x))
		for _, n := range x {
			got, err := resolveNode(n)
			if err != nil {
				return nil, err
			}
			out = append(out, got...)
		}
		return out, nil
	default:
		n, err := classify(d.fac.withDefaults(), v)
		if err != nil {
			return nil, err
		}
		return resolveNode(n)
	}
}

// WriteMarkup implements Node for direct rendering outside a child list.
func (d *Deferred) WriteMarkup(w *Writer) error {
	got, err := d.resolve()
	if err != nil {
		return err
	}
	for _, n := range got {
		if err := n.WriteMarkup(w); err != nil {
			return err
		}
	}
	return nil
}

// resolveNode flattens one classified node into resolved sequence entries.
func resolveNode(n Node) ([]Node, error) {
	switch x := n.(type) {
	case nil:
		return nil, nil
	case *Deferred:
		return x.resolve()
	case *Fragment:
		return x.kids.Resolve()
	default:
		return []Node{n}, nil
	}
}

// Fragment groups content without introducing a wrapper element. At
// resolution time a fragment splices its children into the parent's
// sequence, so an empty fragment contributes nothing.
type Fragment struct {
	kids *NodeList
}

// NewFragment builds a fragment from constructor-style content.
func NewFragment(content ...any) (*Fragment, error) {
	kids, err := NewNodeList(content...)
	if err != nil {
		return nil, fmt.Errorf("fragment: %w", err)
	}
	return &Fragment{kids: kids}, nil
}

// Children returns the fragment's live child list.
func (f *Fragment) Children() ChildList { return f.kids }

// WriteMarkup implements Node.
func (f *Fragment) WriteMarkup(w *Writer) error {
	kids, err := f.kids.Resolve()
	if err != nil {
		return err
	}
	for _, n := range kids {
		if err := n.WriteMarkup(w); err != nil {
			return err
		}
	}
	return nil
}
