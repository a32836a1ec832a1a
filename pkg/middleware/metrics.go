package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "tagtree").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for request duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics middleware.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "tagtree",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// metrics holds the Prometheus metrics for page serving and preview.
type metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	responseBytes   prometheus.Histogram
	inFlight        prometheus.Gauge
	reloadsTotal    *prometheus.CounterVec
	watchEvents     prometheus.Counter
}

// globalMetrics is the singleton metrics instance, created on the first
// Metrics() call. Record helpers are no-ops until then.
var (
	globalMetrics   *metrics
	globalMetricsMu sync.Mutex
)

func initMetrics(config MetricsConfig) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "requests_total",
			Help:        "Total number of HTTP requests served",
			ConstLabels: config.ConstLabels,
		}, []string{"path", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "request_duration_seconds",
			Help:        "Request handling duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"path"}),

		responseBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "response_bytes",
			Help:        "Rendered response size in bytes",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{512, 4096, 32768, 262144, 2097152},
		}),

		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "in_flight_requests",
			Help:        "Number of requests currently being served",
			ConstLabels: config.ConstLabels,
		}),

		reloadsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "reloads_total",
			Help:        "Total live-reload notifications broadcast to preview clients",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		watchEvents: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "watch_events_total",
			Help:        "Total filesystem change batches observed by the watcher",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// Metrics creates middleware that records Prometheus metrics for every
// request.
//
// Metrics collected:
//   - tagtree_requests_total: counter of requests by path and status
//   - tagtree_request_duration_seconds: histogram of handling duration
//   - tagtree_response_bytes: histogram of rendered response sizes
//   - tagtree_in_flight_requests: gauge of concurrent requests
//   - tagtree_reloads_total: counter of live-reload broadcasts (see RecordReload)
//   - tagtree_watch_events_total: counter of watcher change batches
//
// Expose them with promhttp:
//
//	r.Use(middleware.Metrics(middleware.WithNamespace("mysite")))
//	r.Handle("/metrics", promhttp.Handler())
func Metrics(opts ...MetricsOption) func(http.Handler) http.Handler {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	globalMetricsMu.Lock()
	if globalMetrics == nil {
		globalMetrics = initMetrics(config)
	}
	m := globalMetrics
	globalMetricsMu.Unlock()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if path == "" {
				path = "/"
			}

			m.inFlight.Inc()
			defer m.inFlight.Dec()

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			m.requestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
			m.requestsTotal.WithLabelValues(path, strconv.Itoa(ww.Status())).Inc()
			m.responseBytes.Observe(float64(ww.BytesWritten()))
		})
	}
}

// RecordReload records a live-reload broadcast of the given kind
// ("full", "css", "error"). No-op until Metrics() has initialized the
// registry.
func RecordReload(kind string) {
	if globalMetrics != nil {
		globalMetrics.reloadsTotal.WithLabelValues(kind).Inc()
	}
}

// RecordWatchEvent records one watcher change batch.
func RecordWatchEvent() {
	if globalMetrics != nil {
		globalMetrics.watchEvents.Inc()
	}
}
