package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "queueless"

// Metrics groups the queue counters. A nil *Metrics is valid and records nothing.
type Metrics struct {
	bookings        *prometheus.CounterVec
	completions     *prometheus.CounterVec
	estimateUpdates prometheus.Counter
	dispatchDropped *prometheus.CounterVec
	queueDepth      *prometheus.GaugeVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_total",
			Help:      "Token booking attempts by outcome.",
		}, []string{"outcome"}),
		completions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "completions_total",
			Help:      "Token completions by outcome.",
		}, []string{"outcome"}),
		estimateUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "estimate_updates_total",
			Help:      "Estimated serve times that changed and were published.",
		}),
		dispatchDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatch_dropped_total",
			Help:      "Events given up on after exhausting delivery attempts.",
		}, []string{"kind"}),
		queueDepth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "queue_depth",
			Help:      "Tokens currently waiting per department for today.",
		}, []string{"department"}),
	}
	if reg != nil {
		reg.MustRegister(m.bookings, m.completions, m.estimateUpdates, m.dispatchDropped, m.queueDepth)
	}
	return m
}

func (m *Metrics) Booking(outcome string) {
	if m == nil {
		return
	}
	m.bookings.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Completion(outcome string) {
	if m == nil {
		return
	}
	m.completions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) EstimateUpdates(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.estimateUpdates.Add(float64(n))
}

func (m *Metrics) DispatchDropped(kind string) {
	if m == nil {
		return
	}
	m.dispatchDropped.WithLabelValues(kind).Inc()
}

func (m *Metrics) QueueDepth(department string, depth int) {
	if m == nil {
		return
	}
	m.queueDepth.WithLabelValues(department).Set(float64(depth))
}

func (m *Metrics) ForgetQueue(department string) {
	if m == nil {
		return
	}
	m.queueDepth.DeleteLabelValues(department)
}
