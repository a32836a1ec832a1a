package dom

// Comment is an element kind serializing as "<!-- ... -->". Text content
// is emitted verbatim (comment bodies are not entity-encoded) and element
// children serialize normally inside the markers.
type Comment struct {
	*Element
}

// NewComment builds a comment around the given content.
func NewComment(content ...any) (*Comment, error) {
	e, err := New("!--", content...)
	if err != nil {
		return nil, err
	}
	return &Comment{Element: e}, nil
}

// WriteMarkup implements Node.
func (c *Comment) WriteMarkup(w *Writer) error {
	kids, err := c.Children().Resolve()
	if err != nil {
		return err
	}
	if err := w.WriteString("<!--"); err != nil {
		return err
	}
	for _, n := range kids {
		if t, ok := n.(Text); ok {
			if err := w.WriteString(string(t)); err != nil {
				return err
			}
			continue
		}
		if err := n.WriteMarkup(w); err != nil {
			return err
		}
	}
	return w.WriteString("-->")
}

// Script is an element kind for inline scripts. String content becomes
// literal body text rather than entity-encoded character data, and the
// element always serializes in the open/close form: browsers do not parse
// a self-closed script tag, so an empty one renders as
// "<script></script>".
type Script struct {
	*Element
}

// NewScript builds a script element. Attribute inputs behave as in New;
// body strings are taken verbatim.
func NewScript(content ...any) (*Script, error) {
	fac := Factories{
		NewChildren: func(raw []any) (ChildList, error) {
			body := make([]any, len(raw))
			for i, v := range raw {
				if s, ok := v.(string); ok {
					body[i] = Raw(s)
					continue
				}
				body[i] = v
			}
			return NewNodeListWith(Factories{}, body...)
		},
	}
	e, err := NewWith(fac, "script", content...)
	if err != nil {
		return nil, err
	}
	return &Script{Element: e}, nil
}

// WriteMarkup implements Node.
func (s *Script) WriteMarkup(w *Writer) error {
	kids, err := s.Children().Resolve()
	if err != nil {
		return err
	}
	attrs, err := s.Attrs().Fragment()
	if err != nil {
		return err
	}
	if err := w.WriteString("<" + s.Name() + attrs + ">"); err != nil {
		return err
	}
	for _, n := range kids {
		if err := n.WriteMarkup(w); err != nil {
			return err
		}
	}
	return w.WriteString("</" + s.Name() + ">")
}

// Document is the whole-document wrapper: an "html" element whose
// serialization is preceded by the DOCTYPE declaration.
type Document struct {
	*Element
}

// NewDocument builds a document around the given content, typically head
// and body elements.
func NewDocument(content ...any) (*Document, error) {
	e, err := New("html", content...)
	if err != nil {
		return nil, err
	}
	return &Document{Element: e}, nil
}

// WriteMarkup implements Node.
func (d *Document) WriteMarkup(w *Writer) error {
	if err := w.WriteString("<!DOCTYPE html>\n"); err != nil {
		return err
	}
	return d.Element.WriteMarkup(w)
}
