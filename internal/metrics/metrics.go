// Package metrics exposes Prometheus metrics for document rendering.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Config configures the render metrics.
type Config struct {
	// Namespace is the metrics namespace (default: "vellum").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the render metrics.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the duration histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "vellum",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// renderMetrics holds the Prometheus metrics for rendering.
type renderMetrics struct {
	rendersTotal  *prometheus.CounterVec
	renderSeconds *prometheus.HistogramVec
	renderBytes   prometheus.Histogram
}

var (
	global   *renderMetrics
	globalMu sync.Mutex
)

func initMetrics(config Config) *renderMetrics {
	factory := promauto.With(config.Registry)

	return &renderMetrics{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of document renders by source and status",
			ConstLabels: config.ConstLabels,
		}, []string{"source", "status"}),

		renderSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Document render duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"source"}),

		renderBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_bytes",
			Help:        "Size of rendered output in bytes",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{256, 1024, 10240, 102400, 1048576}, // 256B to 1MB
		}),
	}
}

// Init initializes the render metrics. The first call wins; later
// calls reuse the existing registration.
func Init(opts ...Option) {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	if global == nil {
		global = initMetrics(config)
	}
}

// ObserveRender records one render. All recording helpers are nil-safe
// so library code can call them whether or not metrics were set up.
func ObserveRender(source string, duration time.Duration, size int, err error) {
	if global == nil {
		return
	}

	status := "success"
	if err != nil {
		status = "error"
	}

	global.rendersTotal.WithLabelValues(source, status).Inc()
	global.renderSeconds.WithLabelValues(source).Observe(duration.Seconds())
	if err == nil {
		global.renderBytes.Observe(float64(size))
	}
}
