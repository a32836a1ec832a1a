package dom

import (
	"strings"
	"testing"
)

func TestComment(t *testing.T) {
	tests := []struct {
		name    string
		content []any
		want    string
	}{
		{
			name:    "plain text verbatim",
			content: []any{"build 2026-08-22 <unescaped>"},
			want:    "<!--build 2026-08-22 <unescaped>-->",
		},
		{
			name: "empty",
			want: "<!---->",
		},
		{
			name:    "element child serializes inside",
			content: []any{"see ", []any{"b", "this"}},
			want:    "<!--see <b>this</b>-->",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewComment(tt.content...)
			if err != nil {
				t.Fatalf("NewComment() error = %v", err)
			}
			if got := mustMarkup(t, c); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommentIsElement(t *testing.T) {
	c, err := NewComment("x")
	if err != nil {
		t.Fatalf("NewComment() error = %v", err)
	}
	if !IsElement(c) {
		t.Error("IsElement(comment) = false")
	}
	if !IsElement(c, "!--") {
		t.Error("IsElement(comment, \"!--\") = false")
	}
}

func TestScript(t *testing.T) {
	tests := []struct {
		name    string
		content []any
		want    string
	}{
		{
			name:    "body is verbatim",
			content: []any{"if (a < b && c > d) { go(); }"},
			want:    "<script>if (a < b && c > d) { go(); }</script>",
		},
		{
			name: "empty never self-closes",
			want: "<script></script>",
		},
		{
			name:    "attributes render normally",
			content: []any{map[string]any{"src": "/app.js", "defer": true}},
			want:    `<script defer src="/app.js"></script>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewScript(tt.content...)
			if err != nil {
				t.Fatalf("NewScript() error = %v", err)
			}
			if got := mustMarkup(t, s); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScriptViews(t *testing.T) {
	s, err := NewScript("let a = 1;")
	if err != nil {
		t.Fatalf("NewScript() error = %v", err)
	}

	// The shared view contract holds for kinds too.
	s.Attrs().Set("type", "module")
	if err := s.Children().Append("let b = 2;"); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	got := mustMarkup(t, s)
	want := `<script type="module">let a = 1;let b = 2;</script>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDocument(t *testing.T) {
	d, err := NewDocument(
		map[string]any{"lang": "en"},
		[]any{"head", []any{"title", "Home"}},
		[]any{"body", []any{"h1", "Hi"}},
	)
	if err != nil {
		t.Fatalf("NewDocument() error = %v", err)
	}

	got := mustMarkup(t, d)
	want := "<!DOCTYPE html>\n" +
		`<html lang="en"><head><title>Home</title></head><body><h1>Hi</h1></body></html>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if !strings.HasPrefix(got, "<!DOCTYPE html>\n<html") {
		t.Errorf("document does not start with the doctype: %q", got)
	}
}

func TestDocumentEmpty(t *testing.T) {
	d, err := NewDocument()
	if err != nil {
		t.Fatalf("NewDocument() error = %v", err)
	}
	if got, want := mustMarkup(t, d), "<!DOCTYPE html>\n<html />"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestKindsThroughNodeList(t *testing.T) {
	// Kind overrides must hold when serialization dispatches through a
	// parent's child list, not only at the root.
	s, err := NewScript("x < y")
	if err != nil {
		t.Fatalf("NewScript() error = %v", err)
	}
	c, err := NewComment("marker")
	if err != nil {
		t.Fatalf("NewComment() error = %v", err)
	}
	parent, err := New("body", s, c)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got := mustMarkup(t, parent)
	want := "<body><script>x < y</script><!--marker--></body>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
