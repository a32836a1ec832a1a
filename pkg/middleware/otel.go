package middleware

import (
	"context"
	"fmt"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracingConfig configures the OpenTelemetry tracing middleware.
type TracingConfig struct {
	// TracerName is the name of the tracer (default: "tagtree").
	TracerName string

	// Filter decides whether a request should be traced.
	// Default: trace everything.
	Filter func(*http.Request) bool

	// AttributeExtractor extracts additional span attributes from a
	// request. Default: none.
	AttributeExtractor func(*http.Request) []attribute.KeyValue
}

// TracingOption configures the OpenTelemetry tracing middleware.
type TracingOption func(*TracingConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracingOption {
	return func(c *TracingConfig) {
		c.TracerName = name
	}
}

// WithFilter sets a predicate deciding which requests are traced.
func WithFilter(filter func(*http.Request) bool) TracingOption {
	return func(c *TracingConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a function extracting extra span
// attributes from a request.
func WithAttributeExtractor(extractor func(*http.Request) []attribute.KeyValue) TracingOption {
	return func(c *TracingConfig) {
		c.AttributeExtractor = extractor
	}
}

func defaultTracingConfig() TracingConfig {
	return TracingConfig{
		TracerName: "tagtree",
	}
}

// Tracing creates middleware that opens an OpenTelemetry span for every
// request using the globally registered tracer provider. The span
// carries the request method, path and response status; responses with
// a 5xx status mark the span as errored.
//
//	r.Use(middleware.Tracing(middleware.WithTracerName("mysite")))
func Tracing(opts ...TracingOption) func(http.Handler) http.Handler {
	config := defaultTracingConfig()
	for _, opt := range opts {
		opt(&config)
	}

	tracer := otel.Tracer(config.TracerName)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if config.Filter != nil && !config.Filter(r) {
				next.ServeHTTP(w, r)
				return
			}

			attrs := []attribute.KeyValue{
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
			}
			if config.AttributeExtractor != nil {
				attrs = append(attrs, config.AttributeExtractor(r)...)
			}

			ctx, span := tracer.Start(r.Context(),
				fmt.Sprintf("%s %s", r.Method, r.URL.Path),
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(attrs...),
			)
			defer span.End()

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			span.SetAttributes(attribute.Int("http.status_code", status))
			if status >= 500 {
				span.SetStatus(codes.Error, http.StatusText(status))
			} else {
				span.SetStatus(codes.Ok, "")
			}
		})
	}
}

// SpanFromContext returns the span recorded on ctx by Tracing, if any.
func SpanFromContext(ctx context.Context) trace.Span {
	return trace.SpanFromContext(ctx)
}
