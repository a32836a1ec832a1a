package preview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tagtree-dev/tagtree"
	"github.com/tagtree-dev/tagtree/pkg/middleware"
	"github.com/tagtree-dev/tagtree/pkg/render"
)

// Options configures the preview server.
type Options struct {
	// Addr is the listen address (default "127.0.0.1:8000").
	Addr string

	// StaticDir serves files from this directory under /static/.
	StaticDir string

	// Watch lists directories to poll for changes. Empty disables the
	// watcher.
	Watch []string

	// Ignore adds patterns to the watcher's ignore list.
	Ignore []string

	// Interval is the watch polling interval (default 100ms).
	Interval time.Duration

	// DisableReload turns off script injection and the live-reload
	// WebSocket endpoint.
	DisableReload bool

	// Rebuild is called after watched files change. The returned site
	// replaces the one being served.
	Rebuild func() (*tagtree.Site, error)

	// OnReload is called after each broadcast with the number of
	// connected browsers.
	OnReload func(clients int)

	// Middleware wraps every route, e.g. middleware.Metrics().
	Middleware []func(http.Handler) http.Handler

	// Routes mounts extra handlers by pattern, e.g. "/metrics" with
	// promhttp.Handler().
	Routes map[string]http.Handler
}

// Server serves a site for local preview, rendering each page from its
// document tree per request.
type Server struct {
	options Options
	log     *slog.Logger

	hub      *reloadHub
	watcher  *Watcher
	changeCh chan []string

	mu         sync.RWMutex
	site       *tagtree.Site
	httpServer *http.Server
	running    bool
}

// NewServer creates a preview server for site.
func NewServer(site *tagtree.Site, options Options) *Server {
	if options.Addr == "" {
		options.Addr = "127.0.0.1:8000"
	}

	s := &Server{
		options: options,
		site:    site,
		log:     slog.Default().With("component", "preview"),
	}

	if !options.DisableReload {
		s.hub = newReloadHub()
	}
	if len(options.Watch) > 0 {
		s.watcher = NewWatcher(WatchConfig{
			Paths:    options.Watch,
			Ignore:   options.Ignore,
			Interval: options.Interval,
		})
	}

	return s
}

// Site returns the site currently being served.
func (s *Server) Site() *tagtree.Site {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.site
}

func (s *Server) setSite(site *tagtree.Site) {
	s.mu.Lock()
	s.site = site
	s.mu.Unlock()
}

// ClientCount returns the number of connected live-reload browsers.
func (s *Server) ClientCount() int {
	if s.hub == nil {
		return 0
	}
	return s.hub.clientCount()
}

// Handler builds the route tree. Exposed for tests and embedding.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	for _, mw := range s.options.Middleware {
		r.Use(mw)
	}
	if s.hub != nil {
		r.Get(reloadPath, s.hub.handleWebSocket)
	}
	if s.options.StaticDir != "" {
		r.Get("/static/*", s.serveStatic)
	}
	for pattern, h := range s.options.Routes {
		r.Handle(pattern, h)
	}
	r.NotFound(s.servePage)
	return r
}

// Start serves until ctx is cancelled or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	if s.watcher != nil {
		s.changeCh = make(chan []string, 16)
		s.watcher.OnChange(func(paths []string) {
			select {
			case s.changeCh <- paths:
			default:
			}
		})
		go s.watcher.Start(ctx)
		go s.processChanges(ctx)
	}

	s.mu.Lock()
	s.httpServer = &http.Server{
		Addr:    s.options.Addr,
		Handler: s.Handler(),
	}
	srv := s.httpServer
	s.mu.Unlock()

	s.log.Info("preview server listening",
		"addr", s.options.Addr,
		"pages", len(s.Site().Pages()),
		"reload", s.hub != nil)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.Stop()
		return nil
	case err := <-errCh:
		s.Stop()
		return err
	}
}

// Stop shuts the server down.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false

	if s.watcher != nil {
		s.watcher.Stop()
	}
	if s.hub != nil {
		s.hub.close()
	}
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(ctx)
	}
}

// Rebuild invokes the rebuild hook, swaps in the returned site and
// refreshes connected browsers. Without a hook it only broadcasts a
// reload.
func (s *Server) Rebuild() error {
	if s.options.Rebuild != nil {
		site, err := s.options.Rebuild()
		if err != nil {
			s.log.Error("rebuild failed", "error", err)
			s.notifyError(err.Error())
			return err
		}
		if site != nil {
			s.setSite(site)
			s.log.Info("site rebuilt", "pages", len(site.Pages()))
		}
	}

	s.clearError()
	s.notifyReload()
	return nil
}

// processChanges serializes change handling and coalesces bursts.
func (s *Server) processChanges(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case batch := <-s.changeCh:
			draining := true
			for draining {
				select {
				case next := <-s.changeCh:
					batch = append(batch, next...)
				default:
					draining = false
				}
			}
			s.handleChanges(batch)
		}
	}
}

func (s *Server) handleChanges(paths []string) {
	if len(paths) == 0 {
		return
	}
	middleware.RecordWatchEvent()
	for _, p := range paths {
		s.log.Debug("changed", "path", p)
	}

	// Stylesheet-only changes skip the rebuild; browsers re-fetch the
	// links in place.
	if file, only := stylesheetsOnly(paths); only {
		s.notifyCSS(file)
		return
	}

	s.Rebuild()
}

func (s *Server) notifyReload() {
	if s.hub == nil {
		return
	}
	s.hub.notifyReload()
	middleware.RecordReload("full")
	if s.options.OnReload != nil {
		s.options.OnReload(s.hub.clientCount())
	}
	s.log.Info("reloaded browsers", "clients", s.hub.clientCount())
}

func (s *Server) notifyCSS(file string) {
	if s.hub == nil {
		return
	}
	s.hub.notifyCSS(file)
	middleware.RecordReload("css")
	s.log.Info("reloaded stylesheets", "file", file)
}

func (s *Server) notifyError(msg string) {
	if s.hub == nil {
		return
	}
	s.hub.notifyError(msg)
	middleware.RecordReload("error")
}

func (s *Server) clearError() {
	if s.hub == nil {
		return
	}
	s.hub.clearError()
}

// servePage renders the page at the request path.
func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	site := s.Site()

	page, ok := site.Lookup(r.URL.Path)
	if !ok {
		s.serveMissing(w, site)
		return
	}

	html, err := render.String(page.Doc)
	if err != nil {
		s.log.Error("render failed", "path", r.URL.Path, "error", err)
		http.Error(w, "render error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(s.injectClientScript(html)))
}

// serveMissing lists the available pages so a mistyped path is easy to
// correct during development.
func (s *Server) serveMissing(w http.ResponseWriter, site *tagtree.Site) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html>
<head><title>Page Not Found</title></head>
<body style="font-family: system-ui; padding: 40px; background: #1a1a1a; color: #fff;">
<h1 style="color: #ff5555;">Page Not Found</h1>
<p>This site has the following pages:</p>
<ul>
`)
	for _, p := range site.Paths() {
		fmt.Fprintf(&b, `<li><a style="color: #8be9fd;" href="%s">%s</a></li>`+"\n", p, p)
	}
	b.WriteString("</ul>\n")
	if s.hub != nil {
		b.WriteString(clientScript)
	}
	b.WriteString("</body>\n</html>\n")

	w.Write([]byte(b.String()))
}

// injectClientScript inserts the live-reload script before </body>.
func (s *Server) injectClientScript(html string) string {
	if s.hub == nil {
		return html
	}
	if idx := strings.LastIndex(html, "</body>"); idx != -1 {
		return html[:idx] + clientScript + html[idx:]
	}
	if idx := strings.LastIndex(html, "</html>"); idx != -1 {
		return html[:idx] + clientScript + html[idx:]
	}
	return html + clientScript
}

// serveStatic serves a sanitized path from StaticDir.
func (s *Server) serveStatic(w http.ResponseWriter, r *http.Request) {
	rel, ok := staticRelPath(strings.TrimPrefix(r.URL.Path, "/static/"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	full := filepath.Join(s.options.StaticDir, filepath.FromSlash(rel))
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, full)
}

// staticRelPath sanitizes a static file request so serving cannot
// escape the static directory.
func staticRelPath(rel string) (string, bool) {
	if rel == "" || strings.IndexByte(rel, 0) != -1 {
		return "", false
	}
	if strings.Contains(rel, "\\") || strings.HasPrefix(rel, "/") {
		return "", false
	}
	for _, seg := range strings.Split(rel, "/") {
		if seg == "." || seg == ".." {
			return "", false
		}
	}

	clean := path.Clean(rel)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", false
	}
	if filepath.IsAbs(filepath.FromSlash(clean)) {
		return "", false
	}
	return clean, true
}

// stylesheetsOnly reports whether every changed path is a stylesheet,
// returning the first one.
func stylesheetsOnly(paths []string) (string, bool) {
	if len(paths) == 0 {
		return "", false
	}
	first := ""
	for _, p := range paths {
		switch strings.ToLower(filepath.Ext(p)) {
		case ".css", ".scss", ".sass", ".less":
			if first == "" {
				first = p
			}
		default:
			return "", false
		}
	}
	return first, true
}
