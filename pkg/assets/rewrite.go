package assets

import (
	"strings"

	"github.com/tagtree-dev/tagtree/pkg/dom"
)

// assetAttrs are the attributes holding asset references.
var assetAttrs = []string{"href", "src", "poster"}

// Rewriter updates asset references inside document trees.
type Rewriter struct {
	resolver Resolver
	prefix   string
}

// NewRewriter rewrites attribute values under prefix through resolver.
// A page written against "/static/site.css" comes out referencing
// "/static/site.a1b2c3d4.css" once the manifest resolver is plugged in.
func NewRewriter(resolver Resolver, prefix string) *Rewriter {
	return &Rewriter{resolver: resolver, prefix: prefix}
}

// Rewrite walks the tree under n and rewrites matching href, src and
// poster values in place, returning how many attributes changed. Only
// string values under the configured prefix are touched; external
// URLs, fragments and deferred content are left alone.
func (rw *Rewriter) Rewrite(n dom.Node) int {
	count := 0
	rw.walk(n, &count)
	return count
}

func (rw *Rewriter) walk(n any, count *int) {
	switch {
	case dom.IsElement(n):
		el := n.(dom.ElementNode)
		rw.rewriteAttrs(el, count)
		rw.walkChildren(el.Children(), count)
	default:
		if f, ok := n.(*dom.Fragment); ok && f != nil {
			rw.walkChildren(f.Children(), count)
		}
	}
}

func (rw *Rewriter) walkChildren(kids dom.ChildList, count *int) {
	if kids == nil {
		return
	}
	for i := 0; i < kids.Len(); i++ {
		rw.walk(kids.At(i), count)
	}
}

func (rw *Rewriter) rewriteAttrs(el dom.ElementNode, count *int) {
	attrs := el.Attrs()
	for _, name := range assetAttrs {
		v, ok := attrs.Get(name)
		if !ok {
			continue
		}
		s, ok := v.(string)
		if !ok {
			continue
		}

		source, ok := strings.CutPrefix(s, rw.prefix)
		if !ok || source == "" {
			continue
		}
		resolved := rw.resolver.Asset(source)
		if resolved == s {
			continue
		}

		attrs.Set(name, resolved)
		*count++
	}
}
