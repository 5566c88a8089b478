package metrics

import "github.com/prometheus/client_golang/prometheus"

// FunnelMetrics exposes counters/histograms for the intake funnel.
type FunnelMetrics struct {
	intakeTotal    *prometheus.CounterVec
	previewSource  *prometheus.CounterVec
	webhookLatency *prometheus.HistogramVec
	unlockTotal    *prometheus.CounterVec
}

func NewFunnelMetrics(reg prometheus.Registerer) *FunnelMetrics {
	m := &FunnelMetrics{
		intakeTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "forma",
			Subsystem: "funnel",
			Name:      "intake_total",
			Help:      "Total intake submissions by outcome",
		}, []string{"status"}),
		previewSource: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "forma",
			Subsystem: "funnel",
			Name:      "preview_source_total",
			Help:      "Plan previews served, by source (webhook or local)",
		}, []string{"source"}),
		webhookLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "forma",
			Subsystem: "funnel",
			Name:      "webhook_latency_seconds",
			Help:      "Latency of plan-generation webhook calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
		unlockTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "forma",
			Subsystem: "funnel",
			Name:      "unlock_redirect_total",
			Help:      "Unlock clicks redirected to the payment link",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.intakeTotal, m.previewSource, m.webhookLatency, m.unlockTotal)
	return m
}

func (m *FunnelMetrics) ObserveIntake(status string) {
	if m == nil {
		return
	}
	m.intakeTotal.WithLabelValues(status).Inc()
}

func (m *FunnelMetrics) ObservePreviewSource(source string) {
	if m == nil {
		return
	}
	m.previewSource.WithLabelValues(source).Inc()
}

func (m *FunnelMetrics) ObserveWebhookLatency(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.webhookLatency.WithLabelValues(outcome).Observe(seconds)
}

func (m *FunnelMetrics) ObserveUnlock(status string) {
	if m == nil {
		return
	}
	m.unlockTotal.WithLabelValues(status).Inc()
}
