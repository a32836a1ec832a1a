package dom

import (
	"errors"
	"testing"
)

func TestAttrSetFragment(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want string
	}{
		{
			name: "empty",
			raw:  nil,
			want: "",
		},
		{
			name: "single string",
			raw:  map[string]any{"src": "logo.png"},
			want: ` src="logo.png"`,
		},
		{
			name: "names sorted",
			raw:  map[string]any{"id": "x", "class": "card", "alt": "pic"},
			want: ` alt="pic" class="card" id="x"`,
		},
		{
			name: "value escaped",
			raw:  map[string]any{"title": `say "hi" & <go>`},
			want: ` title="say &quot;hi&quot; &amp; &lt;go&gt;"`,
		},
		{
			name: "true renders bare",
			raw:  map[string]any{"disabled": true},
			want: " disabled",
		},
		{
			name: "false omitted",
			raw:  map[string]any{"disabled": false, "id": "x"},
			want: ` id="x"`,
		},
		{
			name: "nil omitted",
			raw:  map[string]any{"data-x": nil, "id": "x"},
			want: ` id="x"`,
		},
		{
			name: "int and float",
			raw:  map[string]any{"width": 640, "step": 0.5},
			want: ` step="0.5" width="640"`,
		},
		{
			name: "string slice joins tokens",
			raw:  map[string]any{"class": []string{"btn", "btn-primary"}},
			want: ` class="btn btn-primary"`,
		},
		{
			name: "token set map sorted",
			raw:  map[string]any{"class": map[string]bool{"on": true, "off": false, "active": true}},
			want: ` class="active on"`,
		},
		{
			name: "empty token set omitted",
			raw:  map[string]any{"class": []string{}, "id": "x"},
			want: ` id="x"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewAttrSet(tt.raw)
			if err != nil {
				t.Fatalf("NewAttrSet() error = %v", err)
			}
			got, err := s.Fragment()
			if err != nil {
				t.Fatalf("Fragment() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAttrSetDeferredValue(t *testing.T) {
	s, err := NewAttrSet(nil)
	if err != nil {
		t.Fatalf("NewAttrSet() error = %v", err)
	}

	n := 0
	s.Set("data-count", func() any {
		n++
		return n
	})

	for pass, want := range []string{` data-count="1"`, ` data-count="2"`} {
		got, err := s.Fragment()
		if err != nil {
			t.Fatalf("Fragment() pass %d error = %v", pass, err)
		}
		if got != want {
			t.Errorf("pass %d got %q, want %q", pass, got, want)
		}
	}
}

func TestAttrSetDeferredValueError(t *testing.T) {
	boom := errors.New("boom")
	s, err := NewAttrSet(nil)
	if err != nil {
		t.Fatalf("NewAttrSet() error = %v", err)
	}
	s.Set("id", func() (any, error) { return nil, boom })
	if _, err := s.Fragment(); !errors.Is(err, boom) {
		t.Errorf("Fragment() error = %v, want %v", err, boom)
	}
}

func TestAttrSetMutation(t *testing.T) {
	s, err := NewAttrSet(map[string]string{"id": "a", "class": "x"})
	if err != nil {
		t.Fatalf("NewAttrSet() error = %v", err)
	}

	if got, want := s.Len(), 2; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	if !s.Has("id") {
		t.Error("Has(id) = false")
	}
	if v, ok := s.Get("class"); !ok || v != "x" {
		t.Errorf("Get(class) = %v, %v", v, ok)
	}

	s.Set("id", "b")
	if v, _ := s.Get("id"); v != "b" {
		t.Errorf("after Set, Get(id) = %v", v)
	}

	s.Del("class")
	if s.Has("class") {
		t.Error("Has(class) = true after Del")
	}

	got := s.Names()
	if len(got) != 1 || got[0] != "id" {
		t.Errorf("Names() = %v, want [id]", got)
	}
}

func TestAttrSetAdd(t *testing.T) {
	s, err := NewAttrSet(nil)
	if err != nil {
		t.Fatalf("NewAttrSet() error = %v", err)
	}

	s.Add("class", "btn")
	s.Add("class", "active")
	got, err := s.Fragment()
	if err != nil {
		t.Fatalf("Fragment() error = %v", err)
	}
	if want := ` class="btn active"`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAttrSetMerge(t *testing.T) {
	s, err := NewAttrSet(map[string]any{"id": "a"})
	if err != nil {
		t.Fatalf("NewAttrSet() error = %v", err)
	}

	other, err := NewAttrSet(map[string]any{"class": "card", "id": "b"})
	if err != nil {
		t.Fatalf("NewAttrSet() error = %v", err)
	}
	if err := s.Merge(other); err != nil {
		t.Fatalf("Merge(Attrs) error = %v", err)
	}
	if err := s.Merge([]Attr{{Key: "role", Value: "main"}}); err != nil {
		t.Fatalf("Merge([]Attr) error = %v", err)
	}

	got, err := s.Fragment()
	if err != nil {
		t.Fatalf("Fragment() error = %v", err)
	}
	if want := ` class="card" id="b" role="main"`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if err := s.Merge(42); !errors.Is(err, ErrBadAttrs) {
		t.Errorf("Merge(42) error = %v, want ErrBadAttrs", err)
	}
}
