package publish_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/tagtree-dev/tagtree/pkg/publish"
)

func TestDiskStorePutListDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := publish.NewDiskStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	puts := map[string]string{
		"index.html":            "<html>home</html>",
		"blog/hello/index.html": "<html>hello</html>",
		"static/site.css":       "body{}",
	}
	for key, content := range puts {
		if err := store.Put(ctx, key, "text/html", strings.NewReader(content)); err != nil {
			t.Fatalf("Put(%q): %v", key, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "blog", "hello", "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "<html>hello</html>" {
		t.Errorf("file content = %q", data)
	}

	keys, err := store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"blog/hello/index.html", "index.html", "static/site.css"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("List() = %v, want %v", keys, want)
	}

	if err := store.Delete(ctx, "blog/hello/index.html"); err != nil {
		t.Fatalf("Delete(): %v", err)
	}
	if err := store.Delete(ctx, "blog/hello/index.html"); !errors.Is(err, publish.ErrNotFound) {
		t.Errorf("second Delete() = %v, want ErrNotFound", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "blog")); !os.IsNotExist(err) {
		t.Error("emptied directories should be removed")
	}
}

func TestDiskStoreOverwrite(t *testing.T) {
	store, err := publish.NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	if err := store.Put(ctx, "index.html", "text/html", strings.NewReader("v1")); err != nil {
		t.Fatal(err)
	}
	if err := store.Put(ctx, "index.html", "text/html", strings.NewReader("v2")); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(store.Dir(), "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "v2" {
		t.Errorf("content = %q, want %q", data, "v2")
	}
}

func TestDiskStoreBadKeys(t *testing.T) {
	store, err := publish.NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	for _, key := range []string{"", "/abs.html", "../escape.html", "a/../b.html", "a//b.html", "a\\b.html"} {
		if err := store.Put(ctx, key, "text/html", strings.NewReader("x")); !errors.Is(err, publish.ErrBadKey) {
			t.Errorf("Put(%q) = %v, want ErrBadKey", key, err)
		}
	}
}

func TestDiskStoreListSkipsTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := publish.NewDiskStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".tmp-12345"), []byte("partial"), 0644); err != nil {
		t.Fatal(err)
	}

	keys, err := store.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 0 {
		t.Errorf("List() = %v, want no keys", keys)
	}
}
