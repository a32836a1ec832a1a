package el

import "github.com/tagtree-dev/tagtree/pkg/dom"

// Type aliases for the dom primitives used by the DSL.
type Node = dom.Node
type Element = dom.Element
type ElementNode = dom.ElementNode
type Attr = dom.Attr
type Attrs = dom.Attrs
type ChildList = dom.ChildList
type Factories = dom.Factories
