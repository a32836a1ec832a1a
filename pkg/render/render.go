package render

import (
	"io"

	"github.com/tagtree-dev/tagtree/pkg/dom"
)

// String renders n to markup text.
func String(n dom.Node) (string, error) {
	return dom.Markup(n)
}

// Write renders n to w without buffering the whole document.
func Write(w io.Writer, n dom.Node) error {
	return n.WriteMarkup(dom.NewWriter(w))
}
