// Package assets fingerprints static files and rewrites document trees
// to reference the fingerprinted names.
//
// Fingerprint copies each file under a source directory to the output
// directory with a content hash in its name and records the mapping in
// a manifest:
//
//	{
//	  "site.css": "site.a1b2c3d4.css",
//	  "img/logo.png": "img/logo.e5f6a7b8.png"
//	}
//
// A Rewriter then walks built pages and updates href, src and poster
// attributes in place through the element views:
//
//	manifest, _ := assets.Fingerprint("static", "dist/static")
//	rw := assets.NewRewriter(assets.NewResolver(manifest, "/static/"), "/static/")
//	rw.Rewrite(page.Doc)
package assets

import (
	"encoding/json"
	"os"
	"sync"
)

// Manifest maps source asset paths to their fingerprinted names. It is
// safe for concurrent use.
type Manifest struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewManifest creates an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{entries: make(map[string]string)}
}

// Load reads a manifest JSON file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return &Manifest{entries: entries}, nil
}

// Save writes the manifest as indented JSON.
func (m *Manifest) Save(path string) error {
	m.mu.RLock()
	data, err := json.MarshalIndent(m.entries, "", "  ")
	m.mu.RUnlock()
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// Resolve returns the fingerprinted name for source, or source itself
// when the manifest has no entry for it.
func (m *Manifest) Resolve(source string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if resolved, ok := m.entries[source]; ok {
		return resolved
	}
	return source
}

// Has reports whether source has a manifest entry.
func (m *Manifest) Has(source string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.entries[source]
	return ok
}

// Set adds or replaces an entry.
func (m *Manifest) Set(source, resolved string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[source] = resolved
}

// Len returns the number of entries.
func (m *Manifest) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// All returns a copy of the entries.
func (m *Manifest) All() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make(map[string]string, len(m.entries))
	for k, v := range m.entries {
		result[k] = v
	}
	return result
}
