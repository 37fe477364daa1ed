package httppipe

import "github.com/prometheus/client_golang/prometheus"

// Metrics exposes the pipeline's cross-cutting counters. The in-flight
// gauge is the busy-indicator invariant made observable: it rises on
// every start hook and falls on the paired finish hook.
type Metrics struct {
	InFlight prometheus.Gauge
	Requests *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		InFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "portal",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of dispatched requests that have not finished.",
		}),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portal",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Dispatched requests by method and outcome.",
		}, []string{"method", "outcome"}),
	}
	if reg != nil {
		reg.MustRegister(m.InFlight, m.Requests)
	}
	return m
}

func (m *Metrics) observe(method, outcome string) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(method, outcome).Inc()
}
