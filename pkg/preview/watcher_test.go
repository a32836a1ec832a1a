package preview

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func startWatcher(t *testing.T, dir string, extra ...string) (*Watcher, chan []string) {
	t.Helper()

	w := NewWatcher(WatchConfig{
		Paths:    []string{dir},
		Ignore:   extra,
		Interval: 20 * time.Millisecond,
	})

	batches := make(chan []string, 10)
	w.OnChange(func(paths []string) {
		batches <- paths
	})

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	t.Cleanup(w.Stop)
	go w.Start(ctx)

	// Give the initial scan time to finish.
	time.Sleep(150 * time.Millisecond)
	return w, batches
}

func waitForPath(t *testing.T, batches chan []string, want string) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case batch := <-batches:
			for _, p := range batch {
				if p == want {
					return
				}
			}
		case <-deadline:
			t.Fatalf("timeout waiting for change to %q", want)
		}
	}
}

func TestWatcherDetectsModification(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "page.md")
	if err := os.WriteFile(file, []byte("draft"), 0644); err != nil {
		t.Fatal(err)
	}

	_, batches := startWatcher(t, dir)

	if err := os.WriteFile(file, []byte("published"), 0644); err != nil {
		t.Fatal(err)
	}
	// Force a modtime bump past filesystem timestamp resolution.
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(file, future, future); err != nil {
		t.Fatal(err)
	}

	waitForPath(t, batches, file)
}

func TestWatcherDetectsNewFile(t *testing.T) {
	dir := t.TempDir()
	_, batches := startWatcher(t, dir)

	file := filepath.Join(dir, "new.md")
	if err := os.WriteFile(file, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	waitForPath(t, batches, file)
}

func TestWatcherDetectsDelete(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "doomed.md")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	_, batches := startWatcher(t, dir)

	if err := os.Remove(file); err != nil {
		t.Fatal(err)
	}

	waitForPath(t, batches, file)
}

func TestWatcherIgnore(t *testing.T) {
	w := NewWatcher(WatchConfig{
		Paths:  []string{"."},
		Ignore: []string{"*_draft.md"},
	})

	tests := []struct {
		path string
		want bool
	}{
		{filepath.Join("content", "post_draft.md"), true},
		{filepath.Join("content", "post.md"), false},
		{filepath.Join("site", "node_modules", "lib.js"), true},
		{filepath.Join("site", "cache.tmp"), true},
		{filepath.Join("site", "main.go"), false},
	}

	for _, tt := range tests {
		if got := w.shouldIgnore(tt.path); got != tt.want {
			t.Errorf("shouldIgnore(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestWatcherIgnoreSegments(t *testing.T) {
	w := NewWatcher(WatchConfig{
		Paths:  []string{"."},
		Ignore: []string{"build"},
	})

	if !w.shouldIgnore(filepath.Join("site", "build", "out.html")) {
		t.Error("should ignore build directory segment")
	}
	if w.shouldIgnore(filepath.Join("site", "rebuild.go")) {
		t.Error("should not ignore substring match")
	}
}

func TestWatcherIsRunning(t *testing.T) {
	w := NewWatcher(WatchConfig{Paths: []string{"."}})
	if w.IsRunning() {
		t.Error("watcher should not run before Start")
	}
	w.Stop()
}
