// internal/services/metrics_service.go
// Prometheus metrics for draw generation

package services

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService wires the counters and histograms exported at /metrics.
type MetricsService struct {
	drawsGenerated *prometheus.CounterVec
	drawDuration   prometheus.Histogram
	qualityScore   prometheus.Histogram
	registry       *prometheus.Registry
}

// NewMetricsService creates a new metrics service with its own registry, so
// tests can construct one without colliding with the global default registry.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	drawsGenerated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "draw_requests_total",
		Help: "Total draw generation requests, labeled by outcome.",
	}, []string{"outcome"})

	drawDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "draw_generation_duration_seconds",
		Help:    "Time spent running the draw engine.",
		Buckets: prometheus.DefBuckets,
	})

	qualityScore := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "draw_quality_score",
		Help:    "Quality score (0-100) of generated draws.",
		Buckets: []float64{0, 25, 50, 65, 75, 85, 95, 100},
	})

	registry.MustRegister(drawsGenerated, drawDuration, qualityScore)

	return &MetricsService{
		drawsGenerated: drawsGenerated,
		drawDuration:   drawDuration,
		qualityScore:   qualityScore,
		registry:       registry,
	}
}

// RecordSuccess records a successful draw generation.
func (m *MetricsService) RecordSuccess(elapsed time.Duration, quality int) {
	m.drawsGenerated.WithLabelValues("success").Inc()
	m.drawDuration.Observe(elapsed.Seconds())
	m.qualityScore.Observe(float64(quality))
}

// RecordFailure records a rejected draw request, labeled by error kind.
func (m *MetricsService) RecordFailure(kind string) {
	m.drawsGenerated.WithLabelValues("error:" + kind).Inc()
}

// Handler returns the HTTP handler serving the Prometheus exposition format.
func (m *MetricsService) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
