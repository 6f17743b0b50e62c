package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsConfig configures the Prometheus render metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "welgo").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for durations.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus render metrics.
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
		Namespace: "welgo",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics records render and component metrics. It implements
// render.Observer.
//
// Metrics collected:
//   - welgo_renders_total: Counter of top-level renders by status
//   - welgo_render_duration_seconds: Histogram of render duration
//   - welgo_render_bytes: Histogram of produced markup size
//   - welgo_component_invocations_total: Counter of component calls by component and status
//   - welgo_component_duration_seconds: Histogram of component duration by component
type Metrics struct {
	config MetricsConfig

	rendersTotal      *prometheus.CounterVec
	renderDuration    prometheus.Histogram
	renderBytes       prometheus.Histogram
	componentsTotal   *prometheus.CounterVec
	componentDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers the render metrics. Registering twice on
// the same registry panics, as with any Prometheus collector.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		config: config,

		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of top-level renders",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Render duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		renderBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_bytes",
			Help:        "Size of rendered markup in bytes",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{256, 1024, 4096, 16384, 65536, 262144, 1048576}, // 256B to 1MB
		}),

		componentsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "component_invocations_total",
			Help:        "Total number of component invocations",
			ConstLabels: config.ConstLabels,
		}, []string{"component", "status"}),

		componentDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "component_duration_seconds",
			Help:        "Component invocation duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"component"}),
	}
}

// BeginRender implements render.Observer.
func (m *Metrics) BeginRender(ctx context.Context) (context.Context, func(int, error)) {
	start := time.Now()
	return ctx, func(bytes int, err error) {
		m.rendersTotal.WithLabelValues(status(err)).Inc()
		m.renderDuration.Observe(time.Since(start).Seconds())
		if err == nil {
			m.renderBytes.Observe(float64(bytes))
		}
	}
}

// BeginComponent implements resolve.Observer.
func (m *Metrics) BeginComponent(ctx context.Context, name string) (context.Context, func(error)) {
	start := time.Now()
	return ctx, func(err error) {
		m.componentsTotal.WithLabelValues(name, status(err)).Inc()
		m.componentDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}
}

// Handler returns an HTTP handler exposing the registry the metrics were
// registered on. It falls back to the default gatherer when the registry
// cannot be gathered.
func (m *Metrics) Handler() http.Handler {
	if g, ok := m.config.Registry.(prometheus.Gatherer); ok {
		return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
	}
	return promhttp.Handler()
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
