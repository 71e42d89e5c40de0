package service

import (
	"sync"

	"edgenudge/internal/models"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsService accumulates the session-scoped running metrics and
// mirrors them into prometheus. Only successful predictions are
// recorded.
type MetricsService struct {
	mu             sync.Mutex
	count          int64
	totalLatencyMs float64

	predictions *prometheus.CounterVec
	latency     prometheus.Histogram
}

// NewMetricsService registers the collectors on reg. Pass a fresh
// prometheus.NewRegistry() in tests.
func NewMetricsService(reg prometheus.Registerer) *MetricsService {
	m := &MetricsService{
		predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "edgenudge_predictions_total",
			Help: "Successful occupancy predictions by label.",
		}, []string{"label"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "edgenudge_prediction_latency_ms",
			Help:    "Wall-clock inference latency in milliseconds.",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 14),
		}),
	}
	if reg != nil {
		reg.MustRegister(m.predictions, m.latency)
	}
	return m
}

// Record adds one successful prediction.
func (m *MetricsService) Record(latencyMs float64, label models.Label) {
	m.mu.Lock()
	m.count++
	m.totalLatencyMs += latencyMs
	m.mu.Unlock()

	m.predictions.WithLabelValues(string(label)).Inc()
	m.latency.Observe(latencyMs)
}

// Stats returns the running totals. Average is 0 before the first
// prediction.
func (m *MetricsService) Stats() models.RunningMetrics {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := models.RunningMetrics{
		PredictionCount: m.count,
		TotalLatencyMs:  m.totalLatencyMs,
	}
	if m.count > 0 {
		stats.AvgLatencyMs = m.totalLatencyMs / float64(m.count)
	}
	return stats
}
