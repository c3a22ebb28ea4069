package observability

import (
	"net/http"
	"packslip/internal/usecase/interfaces"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "packslip"

// GenerationMetrics exposes generation counters on a dedicated registry so
// tests can build as many instances as they like.
type GenerationMetrics struct {
	registry      *prometheus.Registry
	bulkJobs      *prometheus.CounterVec
	bulkOrders    prometheus.Histogram
	bulkDuration  prometheus.Histogram
	renders       *prometheus.CounterVec
	renderLatency *prometheus.HistogramVec
	singles       *prometheus.CounterVec
}

var _ interfaces.IGenerationMetrics = (*GenerationMetrics)(nil)

func NewGenerationMetrics() *GenerationMetrics {
	m := &GenerationMetrics{
		registry: prometheus.NewRegistry(),
		bulkJobs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bulk_jobs_total",
			Help:      "Bulk generation jobs by outcome.",
		}, []string{"outcome"}),
		bulkOrders: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "bulk_job_orders",
			Help:      "Orders per successful bulk job.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100},
		}),
		bulkDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "bulk_job_duration_seconds",
			Help:      "Wall time of bulk jobs.",
			Buckets:   prometheus.ExponentialBuckets(0.25, 2, 10),
		}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Document renders by mode and result.",
		}, []string{"mode", "result"}),
		renderLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Time spent rendering one document.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"mode"}),
		singles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "single_orders_total",
			Help:      "Single-order generations by outcome.",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		m.bulkJobs,
		m.bulkOrders,
		m.bulkDuration,
		m.renders,
		m.renderLatency,
		m.singles,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *GenerationMetrics) ObserveBulkJob(outcome string, orders int, elapsed time.Duration) {
	m.bulkJobs.WithLabelValues(outcome).Inc()
	m.bulkDuration.Observe(elapsed.Seconds())
	if outcome == "success" {
		m.bulkOrders.Observe(float64(orders))
	}
}

func (m *GenerationMetrics) ObserveRender(mode string, elapsed time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.renders.WithLabelValues(mode, result).Inc()
	m.renderLatency.WithLabelValues(mode).Observe(elapsed.Seconds())
}

func (m *GenerationMetrics) ObserveSingle(outcome string) {
	m.singles.WithLabelValues(outcome).Inc()
}

// Registry is exposed for tests and for callers registering extra collectors.
func (m *GenerationMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *GenerationMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
