package domtest

import (
	"strings"
	"testing"

	"github.com/tagtree-dev/tagtree/pkg/dom"
)

// Markup serializes a node and fails the test on error.
//
// Example:
//
//	got := domtest.Markup(t, card)
//	if strings.HasPrefix(got, "<div") { ... }
func Markup(tb testing.TB, n dom.Node) string {
	tb.Helper()
	s, err := dom.Markup(n)
	if err != nil {
		tb.Fatalf("markup: %v", err)
	}
	return s
}

// ExpectMarkup asserts that a node serializes to exactly want.
//
// Example:
//
//	domtest.ExpectMarkup(t, el.P("hi"), "<p>hi</p>")
func ExpectMarkup(t *testing.T, n dom.Node, want string) {
	t.Helper()
	got := Markup(t, n)
	if got != want {
		t.Errorf("markup = %q, want %q", got, want)
	}
}

// ExpectContains asserts that serialized output contains expected substring.
//
// Example:
//
//	domtest.ExpectContains(t, page, "Welcome")
func ExpectContains(t *testing.T, n dom.Node, expected string) {
	t.Helper()
	markup := Markup(t, n)
	if !strings.Contains(markup, expected) {
		t.Errorf("expected markup to contain %q, got:\n%s", expected, truncate(markup, 500))
	}
}

// ExpectNotContains asserts that serialized output does not contain substring.
//
// Example:
//
//	domtest.ExpectNotContains(t, page, "draft")
func ExpectNotContains(t *testing.T, n dom.Node, unexpected string) {
	t.Helper()
	markup := Markup(t, n)
	if strings.Contains(markup, unexpected) {
		t.Errorf("expected markup to NOT contain %q, got:\n%s", unexpected, truncate(markup, 500))
	}
}

// ExpectElement asserts that serialized output contains a specific tag.
//
// Example:
//
//	domtest.ExpectElement(t, page, "nav")
func ExpectElement(t *testing.T, n dom.Node, name string) {
	t.Helper()
	markup := Markup(t, n)
	if !strings.Contains(markup, "<"+name) {
		t.Errorf("expected markup to contain <%s> element, got:\n%s", name, truncate(markup, 500))
	}
}

// ExpectAttribute asserts that serialized output contains an attribute value.
//
// Example:
//
//	domtest.ExpectAttribute(t, page, "class", "hero")
func ExpectAttribute(t *testing.T, n dom.Node, attr, value string) {
	t.Helper()
	markup := Markup(t, n)
	needle := attr + `="` + value + `"`
	if !strings.Contains(markup, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(markup, 500))
	}
}

// RecordSink returns a sink plus the slice it appends fragments to, for
// asserting on the fragment stream of a serialization pass.
//
// Example:
//
//	sink, fragments := domtest.RecordSink()
//	dom.Markup(doc, sink)
//	first := (*fragments)[0]
func RecordSink() (dom.Sink, *[]string) {
	fragments := &[]string{}
	return func(fragment string) {
		*fragments = append(*fragments, fragment)
	}, fragments
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
