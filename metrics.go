package main

import "github.com/prometheus/client_golang/prometheus"

// ContactMetrics counts contact form outcomes and relay latency.
type ContactMetrics struct {
	submissions  *prometheus.CounterVec
	relayLatency *prometheus.HistogramVec
	instances    prometheus.Gauge
}

func NewContactMetrics(reg prometheus.Registerer) *ContactMetrics {
	m := &ContactMetrics{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Subsystem: "contact",
			Name:      "submissions_total",
			Help:      "Contact form submissions by outcome",
		}, []string{"outcome"}),
		relayLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "portfolio",
			Subsystem: "contact",
			Name:      "relay_latency_seconds",
			Help:      "Latency of form relay calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
		instances: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "portfolio",
			Subsystem: "contact",
			Name:      "form_instances",
			Help:      "Mounted contact form instances",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissions, m.relayLatency, m.instances)
	return m
}

func (m *ContactMetrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(outcome).Inc()
}

func (m *ContactMetrics) ObserveRelayLatency(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.relayLatency.WithLabelValues(outcome).Observe(seconds)
}

func (m *ContactMetrics) SetInstances(n int) {
	if m == nil {
		return
	}
	m.instances.Set(float64(n))
}

// Observer records relay outcomes carried by controller transitions.
func (m *ContactMetrics) Observer() Observer {
	return func(t Transition) {
		if m == nil || t.Outcome == "" {
			return
		}
		m.ObserveSubmission(t.Outcome)
		m.ObserveRelayLatency(t.Outcome, t.Elapsed.Seconds())
	}
}
