package publish

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tagtree-dev/tagtree"
)

// ErrNotFound is returned when a deleted object does not exist.
var ErrNotFound = errors.New("publish: object not found")

// ErrBadKey is returned for keys that would escape the output root.
var ErrBadKey = errors.New("publish: invalid object key")

// Store is a publish destination. Keys are slash-separated relative
// paths like "blog/hello/index.html".
type Store interface {
	// Put writes one object, replacing any previous version.
	Put(ctx context.Context, key, contentType string, body io.Reader) error

	// List returns the keys of all stored objects.
	List(ctx context.Context) ([]string, error)

	// Delete removes one object.
	Delete(ctx context.Context, key string) error
}

// Options configures a publish run.
type Options struct {
	// StaticDir publishes the files under this directory at static/.
	StaticDir string

	// Prune deletes stored objects that this run did not produce.
	Prune bool

	// DryRun plans the run without writing or deleting anything.
	DryRun bool
}

// Result reports what a publish run did (or, under DryRun, would do).
type Result struct {
	Uploaded []string
	Deleted  []string
	Bytes    int64
}

// Publisher writes rendered sites to a store.
type Publisher struct {
	store   Store
	options Options
	log     *slog.Logger
}

// New creates a publisher over store.
func New(store Store, options Options) *Publisher {
	return &Publisher{
		store:   store,
		options: options,
		log:     slog.Default().With("component", "publish"),
	}
}

// Publish renders every page of site, uploads the documents and static
// files, and prunes stale objects when configured. Pages are rendered
// from their live trees at call time.
func (p *Publisher) Publish(ctx context.Context, site *tagtree.Site) (*Result, error) {
	result := &Result{}
	produced := make(map[string]bool)

	for _, pagePath := range site.Paths() {
		html, err := site.Render(pagePath)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", pagePath, err)
		}
		key := PageKey(pagePath)
		produced[key] = true
		if err := p.put(ctx, result, key, "text/html; charset=utf-8",
			strings.NewReader(html), int64(len(html))); err != nil {
			return nil, err
		}
	}

	if p.options.StaticDir != "" {
		if err := p.putStatic(ctx, result, produced); err != nil {
			return nil, err
		}
	}

	if p.options.Prune {
		if err := p.prune(ctx, result, produced); err != nil {
			return nil, err
		}
	}

	p.log.Info("publish complete",
		"uploaded", len(result.Uploaded),
		"deleted", len(result.Deleted),
		"bytes", result.Bytes,
		"dry_run", p.options.DryRun)
	return result, nil
}

func (p *Publisher) put(ctx context.Context, result *Result, key, contentType string, body io.Reader, size int64) error {
	if p.options.DryRun {
		p.log.Info("would upload", "key", key, "bytes", size)
	} else {
		if err := p.store.Put(ctx, key, contentType, body); err != nil {
			return fmt.Errorf("put %s: %w", key, err)
		}
		p.log.Debug("uploaded", "key", key, "bytes", size)
	}
	result.Uploaded = append(result.Uploaded, key)
	result.Bytes += size
	return nil
}

func (p *Publisher) putStatic(ctx context.Context, result *Result, produced map[string]bool) error {
	root := p.options.StaticDir
	return filepath.Walk(root, func(fp string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, fp)
		if err != nil {
			return err
		}
		key := "static/" + filepath.ToSlash(rel)
		produced[key] = true

		contentType := mime.TypeByExtension(filepath.Ext(fp))
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		f, err := os.Open(fp)
		if err != nil {
			return err
		}
		defer f.Close()

		return p.put(ctx, result, key, contentType, f, info.Size())
	})
}

func (p *Publisher) prune(ctx context.Context, result *Result, produced map[string]bool) error {
	existing, err := p.store.List(ctx)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}

	for _, key := range existing {
		if produced[key] {
			continue
		}
		if p.options.DryRun {
			p.log.Info("would delete", "key", key)
		} else {
			if err := p.store.Delete(ctx, key); err != nil {
				return fmt.Errorf("delete %s: %w", key, err)
			}
			p.log.Debug("deleted", "key", key)
		}
		result.Deleted = append(result.Deleted, key)
	}

	sort.Strings(result.Deleted)
	return nil
}

// PageKey maps a page path to its object key. "/" becomes index.html,
// "/about" becomes about/index.html, and a path whose last segment has
// an extension, like "/feed.xml", maps verbatim.
func PageKey(path string) string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return "index.html"
	}
	base := trimmed
	if i := strings.LastIndex(trimmed, "/"); i != -1 {
		base = trimmed[i+1:]
	}
	if strings.Contains(base, ".") {
		return trimmed
	}
	return trimmed + "/index.html"
}
