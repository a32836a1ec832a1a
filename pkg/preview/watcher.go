package preview

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// WatchConfig configures the polling file watcher.
type WatchConfig struct {
	// Paths are the directories to watch.
	Paths []string

	// Ignore patterns to skip. Bare names match any path segment,
	// patterns with wildcards match file names or slash paths.
	Ignore []string

	// Interval is the polling interval.
	Interval time.Duration
}

// defaultIgnore is always skipped in addition to configured patterns.
var defaultIgnore = []string{
	".git",
	"node_modules",
	"dist",
	"tmp",
	".tagtree",
	"*.tmp",
	"*.swp",
	"*~",
}

// Watcher polls directories for modified, created and deleted files.
// It reports each batch of changed paths through a single callback so
// a burst of writes triggers one rebuild.
type Watcher struct {
	config      WatchConfig
	onChange    func(paths []string)
	mu          sync.Mutex
	running     bool
	initialized bool
	stopCh      chan struct{}
	modTimes    map[string]time.Time
}

// NewWatcher creates a watcher over the configured paths.
func NewWatcher(config WatchConfig) *Watcher {
	if config.Interval == 0 {
		config.Interval = 100 * time.Millisecond
	}
	config.Ignore = append(append([]string{}, defaultIgnore...), config.Ignore...)

	return &Watcher{
		config:   config,
		modTimes: make(map[string]time.Time),
	}
}

// OnChange sets the callback invoked with each batch of changed paths.
func (w *Watcher) OnChange(fn func(paths []string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start polls until ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.mu.Unlock()

	w.scanInitial()

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stopCh:
			return nil
		case <-ticker.C:
			w.poll()
		}
	}
}

// Stop ends the polling loop.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		close(w.stopCh)
		w.running = false
	}
}

// IsRunning reports whether the watcher is polling.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// scanInitial records the starting timestamps without reporting them.
func (w *Watcher) scanInitial() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, root := range w.config.Paths {
		filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return nil
			}
			if info.IsDir() {
				if w.shouldIgnore(p) {
					return filepath.SkipDir
				}
				return nil
			}
			if !w.shouldIgnore(p) {
				w.modTimes[p] = info.ModTime()
			}
			return nil
		})
	}

	w.initialized = true
}

// poll scans for modified and deleted files and reports one batch.
func (w *Watcher) poll() {
	w.mu.Lock()
	callback := w.onChange
	initialized := w.initialized
	w.mu.Unlock()

	if callback == nil {
		return
	}

	var changed []string

	for _, root := range w.config.Paths {
		filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return nil
			}
			if info.IsDir() {
				if w.shouldIgnore(p) {
					return filepath.SkipDir
				}
				return nil
			}
			if w.shouldIgnore(p) {
				return nil
			}

			w.mu.Lock()
			last, seen := w.modTimes[p]
			mod := info.ModTime()
			if !seen || mod.After(last) {
				w.modTimes[p] = mod
				if seen || initialized {
					changed = append(changed, p)
				}
			}
			w.mu.Unlock()
			return nil
		})
	}

	w.mu.Lock()
	for p := range w.modTimes {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			delete(w.modTimes, p)
			changed = append(changed, p)
		}
	}
	w.mu.Unlock()

	if len(changed) > 0 {
		callback(changed)
	}
}

// shouldIgnore checks a path against the ignore patterns.
func (w *Watcher) shouldIgnore(fullPath string) bool {
	name := filepath.Base(fullPath)
	normalized := filepath.ToSlash(fullPath)

	for _, pattern := range w.config.Ignore {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if name == pattern {
			return true
		}

		hasSep := strings.Contains(pattern, "/") || strings.Contains(pattern, "\\")
		hasGlob := strings.ContainsAny(pattern, "*?[")

		switch {
		case hasGlob && hasSep:
			if matched, _ := path.Match(filepath.ToSlash(pattern), normalized); matched {
				return true
			}
		case hasGlob:
			if matched, _ := filepath.Match(pattern, name); matched {
				return true
			}
		case hasSep:
			if segmentsMatch(normalized, filepath.ToSlash(pattern)) {
				return true
			}
		default:
			if hasSegment(normalized, pattern) {
				return true
			}
		}
	}

	return false
}

// hasSegment reports whether one path segment equals segment exactly,
// so an ignore entry "tmp" skips foo/tmp/bar.go but not attempt.go.
func hasSegment(p, segment string) bool {
	if segment == "" {
		return false
	}
	for _, part := range splitSegments(p) {
		if part == segment {
			return true
		}
	}
	return false
}

// segmentsMatch reports whether the pattern's segments appear
// consecutively anywhere in the path.
func segmentsMatch(p, pattern string) bool {
	pathParts := splitSegments(p)
	patternParts := splitSegments(pattern)
	if len(patternParts) == 0 || len(patternParts) > len(pathParts) {
		return false
	}

	for i := 0; i <= len(pathParts)-len(patternParts); i++ {
		match := true
		for j := range patternParts {
			if pathParts[i+j] != patternParts[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}

	return false
}

func splitSegments(p string) []string {
	if p == "" {
		return nil
	}
	parts := strings.Split(p, "/")
	result := parts[:0]
	for _, part := range parts {
		if part != "" && part != "." {
			result = append(result, part)
		}
	}
	return result
}
