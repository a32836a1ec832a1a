package dom

// Factories selects the collaborator implementations a constructor wires
// into new elements. The zero value means the standard kinds: AttrSet,
// NodeList, and New. A record travels with the element it built, and the
// default children factory promotes nested element forms through the same
// record's Promote, so substituting one hook is enough to govern every
// auto-promoted descendant.
type Factories struct {
	// NewAttrs wraps raw attribute input into a collection.
	NewAttrs func(raw any) (Attrs, error)

	// NewChildren wraps raw content into a child sequence.
	NewChildren func(raw []any) (ChildList, error)

	// Promote constructs the elements built from nested raw forms.
	Promote func(name string, content ...any) (ElementNode, error)
}

func (f Factories) withDefaults() Factories {
	out := f
	if out.NewAttrs == nil {
		out.NewAttrs = func(raw any) (Attrs, error) { return NewAttrSet(raw) }
	}
	if out.Promote == nil {
		out.Promote = func(name string, content ...any) (ElementNode, error) {
			return NewWith(f, name, content...)
		}
	}
	if out.NewChildren == nil {
		out.NewChildren = func(raw []any) (ChildList, error) {
			return NewNodeListWith(f, raw...)
		}
	}
	return out
}

// generational is the detach protocol between child lists and bookmark
// tables. Element kinds get it through their embedded *Element.
type generational interface {
	markGen() uint64
	detach()
}

// Element is a named markup node owning a mutable attribute collection
// and an ordered, mutable child sequence. Attrs and Children return those
// collaborators directly: live views, not copies.
type Element struct {
	name  string
	attrs Attrs
	kids  ChildList
	fac   Factories

	marks map[string]mark
	gen   uint64
}

// mark is one bookmark entry: the target plus its detach generation at
// store time. A later generation means the target left its tree.
type mark struct {
	target ElementNode
	gen    uint64
}

// New constructs an element. The name must be non-empty; content values
// are classified by position and type:
//
//   - a map[string]any, map[string]string or Attrs in the first position
//     supplies the attributes (a prebuilt Attrs is adopted, not copied);
//     attribute-shaped values in later positions merge into it
//   - Attr and []Attr values set single attributes wherever they appear
//   - a sole ChildList becomes the child sequence without copying
//   - strings and other scalars become text content
//   - Node values are taken verbatim
//   - []any values are recursively promoted to child elements
//   - zero-argument funcs become deferred content
//   - nil values are skipped
func New(name string, content ...any) (*Element, error) {
	return NewWith(Factories{}, name, content...)
}

// NewWith is New with substituted collaborator factories.
func NewWith(fac Factories, name string, content ...any) (*Element, error) {
	if name == "" {
		return nil, ErrNoName
	}
	fac = fac.withDefaults()
	e := &Element{name: name, fac: fac}

	rest := content
	if len(rest) > 0 {
		switch a := rest[0].(type) {
		case Attrs:
			e.attrs = a
			rest = rest[1:]
		case map[string]any, map[string]string:
			attrs, err := fac.NewAttrs(rest[0])
			if err != nil {
				return nil, err
			}
			e.attrs = attrs
			rest = rest[1:]
		}
	}
	if e.attrs == nil {
		attrs, err := fac.NewAttrs(nil)
		if err != nil {
			return nil, err
		}
		e.attrs = attrs
	}

	var kidsRaw []any
	for _, v := range rest {
		switch x := v.(type) {
		case Attr:
			if !x.IsEmpty() {
				e.attrs.Set(x.Key, x.Value)
			}
		case []Attr:
			for _, a := range x {
				if !a.IsEmpty() {
					e.attrs.Set(a.Key, a.Value)
				}
			}
		case map[string]any, map[string]string, Attrs:
			if err := e.attrs.Merge(x); err != nil {
				return nil, err
			}
		default:
			kidsRaw = append(kidsRaw, v)
		}
	}

	if len(kidsRaw) == 1 {
		if list, ok := kidsRaw[0].(ChildList); ok {
			e.kids = list
		}
	}
	if e.kids == nil {
		kids, err := fac.NewChildren(kidsRaw)
		if err != nil {
			return nil, err
		}
		e.kids = kids
	}
	return e, nil
}

// Name returns the current tag name.
func (e *Element) Name() string { return e.name }

// SetName renames the element; the next serialization pass emits the new
// name in both tags. Renaming to "" fails with ErrNoName.
func (e *Element) SetName(name string) error {
	if name == "" {
		return ErrNoName
	}
	e.name = name
	return nil
}

// Attrs returns the element's attribute collection. It is the element's
// own storage: edits through it show up on the next serialization pass,
// and edits by other holders of the view show up here.
func (e *Element) Attrs() Attrs { return e.attrs }

// Children returns the element's child sequence, live in the same way.
func (e *Element) Children() ChildList { return e.kids }

// SetBookmark stores a non-owning reference to target under name,
// overwriting any previous entry. A nil target removes the entry.
func (e *Element) SetBookmark(name string, target ElementNode) {
	if target == nil {
		delete(e.marks, name)
		return
	}
	if e.marks == nil {
		e.marks = make(map[string]mark)
	}
	var gen uint64
	if g, ok := target.(generational); ok {
		gen = g.markGen()
	}
	e.marks[name] = mark{target: target, gen: gen}
}

// Bookmark returns the element stored under name. The second result is
// false when no entry exists or when the target has since been removed
// from its child list. A bookmark never keeps a detached element
// reachable as if it were still in the tree.
func (e *Element) Bookmark(name string) (ElementNode, bool) {
	m, ok := e.marks[name]
	if !ok {
		return nil, false
	}
	if g, ok := m.target.(generational); ok && g.markGen() != m.gen {
		return nil, false
	}
	return m.target, true
}

func (e *Element) markGen() uint64 { return e.gen }

func (e *Element) detach() { e.gen++ }

// WriteMarkup implements Node. The resolved child sequence decides the
// form: empty serializes self-closing as "<name attrs />", anything else
// (an explicit empty text included) as "<name attrs>...</name>".
func (e *Element) WriteMarkup(w *Writer) error {
	kids, err := e.kids.Resolve()
	if err != nil {
		return err
	}
	attrs, err := e.attrs.Fragment()
	if err != nil {
		return err
	}

	if len(kids) == 0 {
		return w.WriteString("<" + e.name + attrs + " />")
	}
	if err := w.WriteString("<" + e.name + attrs + ">"); err != nil {
		return err
	}
	for _, n := range kids {
		if err := n.WriteMarkup(w); err != nil {
			return err
		}
	}
	return w.WriteString("</" + e.name + ">")
}
