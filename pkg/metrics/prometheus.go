package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Run results used as the "result" label.
const (
	ResultSuccess = "success"
)

// Manager holds the metrics of generator runs.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      map[string]string
	registry         *prometheus.Registry

	runs              *prometheus.CounterVec
	fetchDuration     prometheus.Histogram
	responseBytes     prometheus.Gauge
	recordsTotal      prometheus.Gauge
	outputBytes       prometheus.Gauge
	lastSuccessUnix   prometheus.Gauge
	lastRunDurationMs prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // process-wide singleton, like the logger

// Custom registry to avoid default Go metrics in the textfile.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // process-wide registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager. Without WithPrometheusRegistry it
// registers on a fresh private registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "emojisnap",
		subsystem:        "generator",
		histogramBuckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		constLabels:      map[string]string{},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.runs = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "runs_total",
		Help:        "Generator runs by result (success or failure kind)",
		ConstLabels: m.constLabels,
	}, []string{"result"})

	m.fetchDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "fetch_duration_seconds",
		Help:        "Time spent retrieving the rankings document",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	})

	m.responseBytes = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "response_bytes",
		Help:        "Size of the last rankings response body",
		ConstLabels: m.constLabels,
	})

	m.recordsTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "records",
		Help:        "Number of rankings in the last generated file",
		ConstLabels: m.constLabels,
	})

	m.outputBytes = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "output_bytes",
		Help:        "Size of the last generated file",
		ConstLabels: m.constLabels,
	})

	m.lastSuccessUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "last_success_timestamp_seconds",
		Help:        "Unix time of the last successful generation",
		ConstLabels: m.constLabels,
	})

	m.lastRunDurationMs = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "last_run_duration_milliseconds",
		Help:        "Wall time of the last run",
		ConstLabels: m.constLabels,
	})
}

// RecordRun counts a finished run under result.
func (m *Manager) RecordRun(result string, d time.Duration) {
	m.runs.WithLabelValues(result).Inc()
	m.lastRunDurationMs.Set(float64(d) / float64(time.Millisecond))
}

// RecordFetch records the fetch duration and the response size.
func (m *Manager) RecordFetch(d time.Duration, bytes int) {
	m.fetchDuration.Observe(d.Seconds())
	m.responseBytes.Set(float64(bytes))
}

// RecordOutput records a successful emission.
func (m *Manager) RecordOutput(records, bytes int, at time.Time) {
	m.recordsTotal.Set(float64(records))
	m.outputBytes.Set(float64(bytes))
	m.lastSuccessUnix.Set(float64(at.Unix()))
}

// Registry returns the registry the manager registers on.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes all metrics in the Prometheus text format, for the
// node exporter textfile collector. The file is replaced atomically.
func (m *Manager) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteTextfile, err)
	}
	return nil
}

// Default returns the process-wide manager.
func Default() *Manager {
	return globalManager
}

// GetRegistry returns the custom Prometheus registry used by the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
