package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// WebhookMetrics records reconciliation outcomes per notification topic.
type WebhookMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewWebhookMetrics registers the webhook metrics on the provided registerer.
func NewWebhookMetrics(reg prometheus.Registerer) *WebhookMetrics {
	if reg == nil {
		return &WebhookMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "webhook_reconciliation_duration_seconds",
		Help:    "Duration of webhook reconciliations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"topic"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "webhook_reconciliation_success",
		Help: "Successfully reconciled gateway notifications.",
	}, []string{"topic"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "webhook_reconciliation_failure",
		Help: "Gateway notifications that failed to reconcile.",
	}, []string{"topic"})
	reg.MustRegister(duration, success, failure)
	return &WebhookMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// ObserveDuration records the processing time for the given topic.
func (m *WebhookMetrics) ObserveDuration(topic string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(topic)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the given topic.
func (m *WebhookMetrics) IncSuccess(topic string) {
	if m == nil || m.success == nil {
		return
	}
	m.success.WithLabelValues(normalizeLabel(topic)).Inc()
}

// IncFailure increments the failure counter for the given topic.
func (m *WebhookMetrics) IncFailure(topic string) {
	if m == nil || m.failure == nil {
		return
	}
	m.failure.WithLabelValues(normalizeLabel(topic)).Inc()
}

func normalizeLabel(topic string) string {
	if topic == "" {
		return "unknown"
	}
	return topic
}
