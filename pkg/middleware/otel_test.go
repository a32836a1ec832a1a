package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func TestTracing_PassesRequestThrough(t *testing.T) {
	var sawSpan bool
	handler := Tracing()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The global provider defaults to a no-op tracer, but the span
		// must still be present on the request context.
		span := trace.SpanFromContext(r.Context())
		sawSpan = span != nil
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/pages", nil))

	if !sawSpan {
		t.Fatal("expected a span on the request context")
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if got := rec.Body.String(); got != "ok" {
		t.Fatalf("body = %q, want %q", got, "ok")
	}
}

func TestTracing_FilterSkipsTracing(t *testing.T) {
	var called bool
	handler := Tracing(WithFilter(func(r *http.Request) bool {
		return r.URL.Path != "/healthz"
	}))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if !called {
		t.Fatal("expected filtered request to reach the handler")
	}
}

func TestTracing_AttributeExtractorRuns(t *testing.T) {
	var extracted bool
	handler := Tracing(
		WithTracerName("test"),
		WithAttributeExtractor(func(r *http.Request) []attribute.KeyValue {
			extracted = true
			return []attribute.KeyValue{attribute.String("page.host", r.Host)}
		}),
	)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if !extracted {
		t.Fatal("expected attribute extractor to run")
	}
}

func TestSpanFromContext(t *testing.T) {
	handler := Tracing()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if SpanFromContext(r.Context()) == nil {
			t.Error("expected SpanFromContext to return a span during handling")
		}
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
}
