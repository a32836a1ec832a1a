package dom

import (
	"io"
	"strings"
)

// Node is anything that can appear in document content and knows how to
// serialize itself.
type Node interface {
	WriteMarkup(w *Writer) error
}

// ElementNode is the capability set shared by every element kind: a
// renamable node with live attribute and child views. The Comment, Script
// and Document kinds satisfy it through their embedded *Element, as does
// any external type with the same methods.
type ElementNode interface {
	Node
	Name() string
	SetName(name string) error
	Attrs() Attrs
	Children() ChildList
}

// Sink receives serialized fragments in document order as they are
// produced. Fragment boundaries follow the markup structure: an opening
// tag, a text run, and a closing tag each arrive as one call.
type Sink func(fragment string)

// Writer drives a single serialization pass. Fragments go to the
// underlying writer and are forwarded to every sink.
type Writer struct {
	out   io.Writer
	sinks []Sink
}

// NewWriter returns a Writer emitting to out. A nil out is allowed when
// only sinks should observe the pass.
func NewWriter(out io.Writer, sinks ...Sink) *Writer {
	return &Writer{out: out, sinks: sinks}
}

// WriteString emits one fragment.
func (w *Writer) WriteString(s string) error {
	if s == "" {
		return nil
	}
	if w.out != nil {
		if _, err := io.WriteString(w.out, s); err != nil {
			return err
		}
	}
	for _, sink := range w.sinks {
		sink(s)
	}
	return nil
}

// Markup serializes n and returns the full markup text. Every fragment is
// additionally passed to each sink while it is produced, so callers can
// stream and still receive the complete text.
//
// The pass reads the tree as it is now: renames, attribute edits and child
// mutations made since the last call all show up, and deferred producers
// are re-evaluated. A producer error aborts the pass and is returned
// unwrapped.
func Markup(n Node, sinks ...Sink) (string, error) {
	var b strings.Builder
	w := NewWriter(&b, sinks...)
	if err := n.WriteMarkup(w); err != nil {
		return "", err
	}
	return b.String(), nil
}
