package dom

import (
	"reflect"
	"strings"
)

// IsElement reports whether v satisfies the element contract, a named
// node with live attribute and child views. Every element kind in this
// package qualifies, as does any external type with the same methods. An
// optional name argument additionally requires a case-insensitive tag
// name match. Total: any value classifies, none panics.
func IsElement(v any, name ...string) bool {
	el, ok := v.(ElementNode)
	if !ok || isNil(v) {
		return false
	}
	if len(name) == 0 || name[0] == "" {
		return true
	}
	return strings.EqualFold(el.Name(), name[0])
}

// IsAttrs reports whether v satisfies the attribute-collection contract.
func IsAttrs(v any) bool {
	_, ok := v.(Attrs)
	return ok && !isNil(v)
}

// IsChildList reports whether v satisfies the child-sequence contract.
func IsChildList(v any) bool {
	_, ok := v.(ChildList)
	return ok && !isNil(v)
}

// isNil catches typed-nil pointers hiding inside a non-nil interface, so
// the predicates stay total instead of panicking on method dispatch.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
