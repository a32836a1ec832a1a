// Package middleware provides observability middleware for tagtree HTTP
// servers.
//
// Both middlewares are standard func(http.Handler) http.Handler wrappers,
// so they compose with chi and plain net/http alike:
//
//	r := chi.NewRouter()
//	r.Use(middleware.Metrics())
//	r.Use(middleware.Tracing())
//	r.Handle("/metrics", promhttp.Handler())
//
// Metrics records Prometheus counters and histograms for page serving;
// Tracing opens an OpenTelemetry server span per request using the global
// tracer provider.
package middleware
