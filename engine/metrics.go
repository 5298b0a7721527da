package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Algorithm label values.
const (
	algoDijkstra = "dijkstra"
	algoPrim     = "prim"
)

// Cache result label values.
const (
	resultHit  = "hit"
	resultMiss = "miss"
)

// Metrics counts engine activity. A nil *Metrics is valid and records nothing.
type Metrics struct {
	queries     *prometheus.CounterVec
	settled     *prometheus.CounterVec
	relaxations *prometheus.CounterVec
}

// NewMetrics creates the engine counters and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		queries: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pairpath",
			Subsystem: "engine",
			Name:      "queries_total",
			Help:      "Engine queries by algorithm and cache result.",
		}, []string{"algorithm", "result"}),
		settled: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pairpath",
			Subsystem: "engine",
			Name:      "settled_vertices_total",
			Help:      "Vertices popped from the heap and finalized.",
		}, []string{"algorithm"}),
		relaxations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pairpath",
			Subsystem: "engine",
			Name:      "relaxations_total",
			Help:      "Successful decrease-key relaxations.",
		}, []string{"algorithm"}),
	}
}

func (m *Metrics) query(algorithm, result string) {
	if m == nil {
		return
	}
	m.queries.WithLabelValues(algorithm, result).Inc()
}

func (m *Metrics) settle(algorithm string) {
	if m == nil {
		return
	}
	m.settled.WithLabelValues(algorithm).Inc()
}

func (m *Metrics) relax(algorithm string) {
	if m == nil {
		return
	}
	m.relaxations.WithLabelValues(algorithm).Inc()
}
