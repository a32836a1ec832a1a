package content

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tagtree-dev/tagtree"
	"github.com/tagtree-dev/tagtree/internal/errors"
	"github.com/tagtree-dev/tagtree/pkg/dom"
)

// BuildElement promotes a JsonML form into an element. The first entry
// must be the tag name; the rest go through the same content
// classification as dom.New, so attribute objects, nested arrays and
// scalars all behave as they do there.
func BuildElement(form []any) (*dom.Element, error) {
	if len(form) == 0 {
		return nil, errors.New("E042").WithDetail("Element form is empty")
	}
	name, ok := form[0].(string)
	if !ok {
		return nil, errors.New("E042").
			WithDetail(fmt.Sprintf("Element form must start with a tag name, got %T", form[0])).
			WithExample(`["p", "hello"]`)
	}
	el, err := dom.New(name, form[1:]...)
	if err != nil {
		return nil, errors.New("E042").Wrap(err)
	}
	return el, nil
}

// BuildDocument promotes a top-level form into a whole document. An
// "html" form becomes the document itself; a "head" or "body" form is
// wrapped in an html element; anything else additionally gains a body,
// so fragments like ["h1", "Hi"] render as complete pages.
func BuildDocument(form []any) (*dom.Document, error) {
	if len(form) == 0 {
		return nil, errors.New("E042").WithDetail("Document form is empty")
	}
	name, ok := form[0].(string)
	if !ok {
		return nil, errors.New("E042").
			WithDetail(fmt.Sprintf("Document form must start with a tag name, got %T", form[0])).
			WithExample(`["html", ["body", ["p", "hello"]]]`)
	}

	var (
		doc *dom.Document
		err error
	)
	switch name {
	case "html":
		doc, err = dom.NewDocument(form[1:]...)
	case "head", "body":
		doc, err = dom.NewDocument(form)
	default:
		doc, err = dom.NewDocument([]any{"body", form})
	}
	if err != nil {
		return nil, errors.New("E042").Wrap(err)
	}
	return doc, nil
}

// LoadDocument reads and promotes one document file.
func LoadDocument(path string) (*dom.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E040").WithDetail("No file at " + path)
		}
		return nil, errors.New("E040").WithDetail(path).Wrap(err)
	}

	var form []any
	if err := json.Unmarshal(data, &form); err != nil {
		return nil, errors.New("E041").WithDetail(path + ": " + err.Error())
	}

	doc, err := BuildDocument(form)
	if err != nil {
		if te, ok := err.(*errors.TagtreeError); ok && te.Detail != "" {
			te.Detail = path + ": " + te.Detail
		}
		return nil, err
	}
	return doc, nil
}

// LoadSite walks dir for .json document files and assembles a site.
// Files load in sorted path order, so later duplicates of a page path
// would win; with the index-file mapping below, paths are unique.
func LoadSite(name, dir string) (*tagtree.Site, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.ToLower(filepath.Ext(path)) != ".json" {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, errors.New("E040").
			WithDetail("Cannot read document directory " + dir).
			WithSuggestion(`Check the "documents" path in site.json`).
			Wrap(err)
	}
	sort.Strings(files)

	site := tagtree.NewSite(name)
	for _, path := range files {
		doc, err := LoadDocument(path)
		if err != nil {
			return nil, err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return nil, err
		}
		title := Title(doc)
		if title == "" {
			title = defaultTitle(rel)
		}
		site.Add(PagePath(rel), title, doc)
	}
	return site, nil
}

// PagePath maps a document file's path relative to the content root to
// its page path. Index files collapse onto their directory.
func PagePath(rel string) string {
	p := strings.TrimSuffix(filepath.ToSlash(rel), ".json")
	if p == "index" {
		return "/"
	}
	p = strings.TrimSuffix(p, "/index")
	return "/" + p
}

// Title returns the text of the document's title element, or "" when
// there is none.
func Title(n dom.Node) string {
	title, ok := findElement(n, "title")
	if !ok {
		return ""
	}
	kids, err := title.Children().Resolve()
	if err != nil {
		return ""
	}
	var b strings.Builder
	for _, kid := range kids {
		if t, ok := kid.(dom.Text); ok {
			b.WriteString(string(t))
		}
	}
	return strings.TrimSpace(b.String())
}

func findElement(n dom.Node, name string) (dom.ElementNode, bool) {
	var found dom.ElementNode
	var walk func(dom.Node) bool
	walk = func(n dom.Node) bool {
		var kids dom.ChildList
		switch v := n.(type) {
		case dom.ElementNode:
			if v.Name() == name {
				found = v
				return true
			}
			kids = v.Children()
		case *dom.Fragment:
			kids = v.Children()
		default:
			return false
		}
		for i := 0; i < kids.Len(); i++ {
			if kid := kids.At(i); kid != nil && walk(kid) {
				return true
			}
		}
		return false
	}
	if walk(n) {
		return found, true
	}
	return nil, false
}

// defaultTitle derives a page title from the file path when the
// document has no title element: "blog/first-post.json" gives
// "First post".
func defaultTitle(rel string) string {
	rel = filepath.ToSlash(rel)
	base := strings.TrimSuffix(path.Base(rel), ".json")
	if base == "index" {
		dir := path.Base(path.Dir(rel))
		if dir == "." || dir == "/" {
			return "Home"
		}
		base = dir
	}
	base = strings.ReplaceAll(base, "-", " ")
	base = strings.ReplaceAll(base, "_", " ")
	if base == "" {
		return "Home"
	}
	return strings.ToUpper(base[:1]) + base[1:]
}
