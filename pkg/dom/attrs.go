package dom

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Attrs is the attribute-collection contract an element delegates to. It
// is a mergeable name/value store whose Fragment method renders the
// attribute run of an opening tag.
//
// Value semantics at render time: nil and false are omitted, true renders
// as a bare name, []string and map[string]bool render as space-joined
// token sets, zero-argument funcs are called fresh each pass, and
// everything else renders as name="value" with the value escaped.
type Attrs interface {
	Len() int
	Names() []string
	Has(name string) bool
	Get(name string) (any, bool)
	Set(name string, value any)
	Del(name string)
	Merge(raw any) error

	// Fragment renders the collection as a leading-space attribute run,
	// for example ` class="card" id="x"`, with names sorted. It returns
	// "" for an empty collection.
	Fragment() (string, error)
}

// AttrSet is the standard Attrs implementation.
type AttrSet struct {
	m map[string]any
}

// NewAttrSet builds an AttrSet from raw attribute input: nil, a
// map[string]any, a map[string]string, or an existing Attrs (copied).
func NewAttrSet(raw any) (*AttrSet, error) {
	s := &AttrSet{m: make(map[string]any)}
	if raw == nil {
		return s, nil
	}
	if err := s.Merge(raw); err != nil {
		return nil, err
	}
	return s, nil
}

// Len returns the number of attributes.
func (s *AttrSet) Len() int { return len(s.m) }

// Names returns the attribute names in sorted order.
func (s *AttrSet) Names() []string {
	names := make([]string, 0, len(s.m))
	for name := range s.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name is present.
func (s *AttrSet) Has(name string) bool {
	_, ok := s.m[name]
	return ok
}

// Get returns the stored value for name.
func (s *AttrSet) Get(name string) (any, bool) {
	v, ok := s.m[name]
	return v, ok
}

// Set stores value under name, replacing any previous value.
func (s *AttrSet) Set(name string, value any) {
	if name == "" {
		return
	}
	s.m[name] = value
}

// Del removes name.
func (s *AttrSet) Del(name string) {
	delete(s.m, name)
}

// Add merges value into name. An absent attribute behaves like Set; an
// existing one is coerced to a token set and the new tokens appended.
// This is the "class"-style merge: Add("class", "active") extends rather
// than replaces.
func (s *AttrSet) Add(name string, value any) {
	if name == "" {
		return
	}
	prev, ok := s.m[name]
	if !ok {
		s.m[name] = value
		return
	}
	s.m[name] = append(tokens(prev), tokens(value)...)
}

// Merge bulk-sets attributes from raw input: a map[string]any, a
// map[string]string, an Attr, a []Attr, or another Attrs.
func (s *AttrSet) Merge(raw any) error {
	switch x := raw.(type) {
	case nil:
		return nil
	case map[string]any:
		for k, v := range x {
			s.Set(k, v)
		}
	case map[string]string:
		for k, v := range x {
			s.Set(k, v)
		}
	case Attr:
		if !x.IsEmpty() {
			s.Set(x.Key, x.Value)
		}
	case []Attr:
		for _, a := range x {
			if !a.IsEmpty() {
				s.Set(a.Key, a.Value)
			}
		}
	case Attrs:
		for _, name := range x.Names() {
			if v, ok := x.Get(name); ok {
				s.Set(name, v)
			}
		}
	default:
		return fmt.Errorf("%w: %T", ErrBadAttrs, raw)
	}
	return nil
}

// Fragment implements Attrs.
func (s *AttrSet) Fragment() (string, error) {
	if len(s.m) == 0 {
		return "", nil
	}

	var buf strings.Builder
	for _, name := range s.Names() {
		v, err := resolveAttrValue(s.m[name])
		if err != nil {
			return "", err
		}
		switch x := v.(type) {
		case nil:
			// Omitted.
		case bool:
			if x {
				buf.WriteByte(' ')
				buf.WriteString(name)
			}
		case []string:
			writeTokenAttr(&buf, name, x)
		case map[string]bool:
			on := make([]string, 0, len(x))
			for tok, set := range x {
				if set {
					on = append(on, tok)
				}
			}
			sort.Strings(on)
			writeTokenAttr(&buf, name, on)
		case []any:
			toks := make([]string, len(x))
			for i, t := range x {
				toks[i] = attrString(t)
			}
			writeTokenAttr(&buf, name, toks)
		default:
			buf.WriteByte(' ')
			buf.WriteString(name)
			buf.WriteString(`="`)
			buf.WriteString(escapeAttr(attrString(x)))
			buf.WriteByte('"')
		}
	}
	return buf.String(), nil
}

func writeTokenAttr(buf *strings.Builder, name string, toks []string) {
	if len(toks) == 0 {
		return
	}
	buf.WriteByte(' ')
	buf.WriteString(name)
	buf.WriteString(`="`)
	buf.WriteString(escapeAttr(strings.Join(toks, " ")))
	buf.WriteByte('"')
}

// resolveAttrValue evaluates deferred attribute values. Producers run
// fresh on every render pass.
func resolveAttrValue(v any) (any, error) {
	switch fn := v.(type) {
	case func() any:
		return fn(), nil
	case func() (any, error):
		return fn()
	default:
		return v, nil
	}
}

// attrString converts a scalar attribute value to its rendered form.
func attrString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%v", x)
	}
}

// tokens coerces an attribute value to its token-set form.
func tokens(v any) []string {
	switch x := v.(type) {
	case nil:
		return nil
	case []string:
		return x
	case map[string]bool:
		on := make([]string, 0, len(x))
		for tok, set := range x {
			if set {
				on = append(on, tok)
			}
		}
		sort.Strings(on)
		return on
	case []any:
		toks := make([]string, len(x))
		for i, t := range x {
			toks[i] = attrString(t)
		}
		return toks
	default:
		return strings.Fields(attrString(x))
	}
}
