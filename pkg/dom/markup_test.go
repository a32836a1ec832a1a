package dom

import (
	"errors"
	"strings"
	"testing"
)

func TestMarkupSink(t *testing.T) {
	e, err := New("div", map[string]any{"id": "a"},
		"one",
		[]any{"span", "two"},
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	var frags []string
	full, err := Markup(e, func(fragment string) { frags = append(frags, fragment) })
	if err != nil {
		t.Fatalf("Markup() error = %v", err)
	}

	want := `<div id="a">one<span>two</span></div>`
	if full != want {
		t.Errorf("full text = %q, want %q", full, want)
	}

	// Fragments arrive in document order and concatenate to the full
	// text exactly.
	if got := strings.Join(frags, ""); got != want {
		t.Errorf("joined fragments = %q, want %q", got, want)
	}
	wantFrags := []string{`<div id="a">`, "one", "<span>", "two", "</span>", "</div>"}
	if len(frags) != len(wantFrags) {
		t.Fatalf("got %d fragments %q, want %d", len(frags), frags, len(wantFrags))
	}
	for i, f := range wantFrags {
		if frags[i] != f {
			t.Errorf("fragment[%d] = %q, want %q", i, frags[i], f)
		}
	}
}

func TestMarkupMultipleSinks(t *testing.T) {
	e, err := New("p", "x")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	var a, b []string
	full, err := Markup(e,
		func(fragment string) { a = append(a, fragment) },
		func(fragment string) { b = append(b, fragment) },
	)
	if err != nil {
		t.Fatalf("Markup() error = %v", err)
	}
	if full != "<p>x</p>" {
		t.Errorf("full text = %q", full)
	}
	if strings.Join(a, "") != full || strings.Join(b, "") != full {
		t.Errorf("sinks diverge: %q vs %q", a, b)
	}
}

func TestMarkupErrorAbortsPass(t *testing.T) {
	boom := errors.New("boom")
	e, err := New("div",
		"head",
		func() (any, error) { return nil, boom },
		"tail",
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	var frags []string
	_, err = Markup(e, func(fragment string) { frags = append(frags, fragment) })
	if !errors.Is(err, boom) {
		t.Fatalf("Markup() error = %v, want %v", err, boom)
	}
	// Child resolution precedes tag emission, so nothing for the failed
	// element reached the sink.
	if len(frags) != 0 {
		t.Errorf("sink received %q before the abort", frags)
	}
}

func TestWriterForwardsToWriterAndSinks(t *testing.T) {
	e, err := New("p", "hi")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	var out strings.Builder
	var seen []string
	w := NewWriter(&out, func(fragment string) { seen = append(seen, fragment) })
	if err := e.WriteMarkup(w); err != nil {
		t.Fatalf("WriteMarkup() error = %v", err)
	}
	if got, want := out.String(), "<p>hi</p>"; got != want {
		t.Errorf("writer got %q, want %q", got, want)
	}
	if strings.Join(seen, "") != out.String() {
		t.Errorf("sink saw %q, writer saw %q", seen, out.String())
	}
}

type failWriter struct{ err error }

func (f *failWriter) Write(p []byte) (int, error) { return 0, f.err }

func TestWriterPropagatesWriteError(t *testing.T) {
	e, err := New("p", "hi")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	sink := &failWriter{err: errors.New("closed")}
	if err := e.WriteMarkup(NewWriter(sink)); !errors.Is(err, sink.err) {
		t.Errorf("WriteMarkup() error = %v, want %v", err, sink.err)
	}
}
