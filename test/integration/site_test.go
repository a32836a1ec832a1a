package integration_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tagtree-dev/tagtree"
	"github.com/tagtree-dev/tagtree/el"
	"github.com/tagtree-dev/tagtree/internal/content"
	"github.com/tagtree-dev/tagtree/pkg/dom"
	"github.com/tagtree-dev/tagtree/pkg/domtest"
	"github.com/tagtree-dev/tagtree/pkg/middleware"
	"github.com/tagtree-dev/tagtree/pkg/preview"
	"github.com/tagtree-dev/tagtree/pkg/render"
)

func demoSite() *tagtree.Site {
	site := tagtree.NewSite("integration")
	site.Add("/", "Home", el.Document(
		el.Head(el.Title("Home")),
		el.Body(el.H1("Welcome")),
	))
	site.Add("/about", "About", el.Document(
		el.Head(el.Title("About")),
		el.Body(el.P("About us")),
	))
	return site
}

// TestPreviewInsideChiRouter mounts the preview handler behind an outer
// chi router, next to plain API routes and unrelated middleware.
func TestPreviewInsideChiRouter(t *testing.T) {
	srv := preview.NewServer(demoSite(), preview.Options{DisableReload: true})

	sawRequest := false
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			sawRequest = true
			next.ServeHTTP(w, req)
		})
	})
	r.Get("/api/health", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Handle("/*", srv.Handler())

	t.Run("api route works", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/health", nil))
		if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
			t.Errorf("health = %d %q", rec.Code, rec.Body.String())
		}
	})

	t.Run("pages render through the mount", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", "/about", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "<p>About us</p>") {
			t.Errorf("body missing page content:\n%s", rec.Body.String())
		}
	})

	t.Run("outer middleware runs first", func(t *testing.T) {
		sawRequest = false
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
		if !sawRequest {
			t.Error("outer middleware did not run")
		}
	})

	t.Run("missing page is 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", "/nope", nil))
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})
}

// TestLoadedSiteServesLive loads documents from disk and proves the
// served markup tracks later tree mutations.
func TestLoadedSiteServesLive(t *testing.T) {
	dir := t.TempDir()
	doc := `["html", ["head", ["title", "News"]], ["body", ["ul", ["li", "first"]]]]`
	if err := os.WriteFile(filepath.Join(dir, "index.json"), []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	site, err := content.LoadSite("news", dir)
	if err != nil {
		t.Fatal(err)
	}
	srv := preview.NewServer(site, preview.Options{DisableReload: true})

	get := func() string {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		return rec.Body.String()
	}

	if body := get(); !strings.Contains(body, "<li>first</li>") {
		t.Fatalf("initial body wrong:\n%s", body)
	}

	page, ok := site.Lookup("/")
	if !ok {
		t.Fatal("page not found")
	}
	list := domtest.MustFind(t, page.Doc, "ul")
	if err := list.Children().Append(el.Li("second")); err != nil {
		t.Fatal(err)
	}

	if body := get(); !strings.Contains(body, "<li>second</li>") {
		t.Errorf("mutation not visible in served markup:\n%s", body)
	}
}

// TestRenderHandlerInStdlibMux mounts render.Handler next to plain
// routes on a stdlib mux.
func TestRenderHandlerInStdlibMux(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("api"))
	})
	mux.Handle("/hello", render.Handler(func(r *http.Request) dom.Node {
		return el.Div(el.H1("Hello from " + r.URL.Path))
	}))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/api/x", nil))
	if rec.Body.String() != "api" {
		t.Errorf("api body = %q", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/hello", nil))
	if !strings.Contains(rec.Body.String(), "<h1>Hello from /hello</h1>") {
		t.Errorf("handler body = %q", rec.Body.String())
	}
}

// TestMetricsEndpointThroughPreview exercises the Middleware and Routes
// options together: instrumented requests show up in the exposition.
func TestMetricsEndpointThroughPreview(t *testing.T) {
	srv := preview.NewServer(demoSite(), preview.Options{
		DisableReload: true,
		Middleware:    []func(http.Handler) http.Handler{middleware.Metrics()},
		Routes:        map[string]http.Handler{"/metrics": promhttp.Handler()},
	})
	h := srv.Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("page status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "tagtree_requests_total") {
		t.Error("exposition missing tagtree_requests_total")
	}
}
