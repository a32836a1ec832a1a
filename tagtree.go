// Package tagtree is the site-level API over the element model.
//
// The building blocks live below: pkg/dom holds the element model and
// serialization, el the tag DSL, pkg/render the delivery layer. This
// package ties documents into a Site, an ordered collection of pages,
// which the preview server, the publisher and the CLI all consume.
//
//	site := tagtree.NewSite("blog")
//	site.Add("/", "Home", el.Div(el.H1("Hello")))
//	html, err := site.Render("/")
package tagtree

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tagtree-dev/tagtree/pkg/dom"
)

// Version is the library version, also reported by the CLI.
const Version = "0.3.0"

// Page is one addressable document of a site.
type Page struct {
	// Path is the site-relative request path, always starting with "/".
	Path string

	// Title names the page in listings and logs.
	Title string

	// Doc is the page's document tree. It stays mutable: edits through
	// its views are picked up by the next render.
	Doc dom.Node
}

// Site is an ordered collection of pages keyed by path.
type Site struct {
	name  string
	pages []*Page
	index map[string]*Page
}

// NewSite creates an empty site.
func NewSite(name string) *Site {
	return &Site{name: name, index: make(map[string]*Page)}
}

// Name returns the site name.
func (s *Site) Name() string { return s.name }

// Add registers a page, replacing any page at the same path. Paths are
// normalized to a leading "/".
func (s *Site) Add(path, title string, doc dom.Node) *Page {
	path = normalizePath(path)
	p := &Page{Path: path, Title: title, Doc: doc}
	if old, ok := s.index[path]; ok {
		for i, have := range s.pages {
			if have == old {
				s.pages[i] = p
				break
			}
		}
	} else {
		s.pages = append(s.pages, p)
	}
	s.index[path] = p
	return p
}

// Lookup returns the page at path.
func (s *Site) Lookup(path string) (*Page, bool) {
	p, ok := s.index[normalizePath(path)]
	return p, ok
}

// Pages returns the pages in insertion order. The slice is a copy; the
// pages are not.
func (s *Site) Pages() []*Page {
	out := make([]*Page, len(s.pages))
	copy(out, s.pages)
	return out
}

// Paths returns all page paths, sorted.
func (s *Site) Paths() []string {
	paths := make([]string, 0, len(s.pages))
	for _, p := range s.pages {
		paths = append(paths, p.Path)
	}
	sort.Strings(paths)
	return paths
}

// Render serializes the page at path.
func (s *Site) Render(path string) (string, error) {
	p, ok := s.Lookup(path)
	if !ok {
		return "", fmt.Errorf("tagtree: no page at %q", path)
	}
	return dom.Markup(p.Doc)
}

func normalizePath(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		return "/" + path
	}
	return path
}
