package dom

import "errors"

var (
	// ErrNoName is returned when an element is constructed or renamed
	// with an empty name.
	ErrNoName = errors.New("dom: element name is empty")

	// ErrBadContent is returned when a content value cannot be
	// classified as attributes, a child node, or text.
	ErrBadContent = errors.New("dom: unsupported content value")

	// ErrBadAttrs is returned when attribute input is not a raw mapping
	// or an Attrs implementation.
	ErrBadAttrs = errors.New("dom: unsupported attribute input")
)
