// Package metrics holds the Prometheus collectors for index builds and queries.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Query results used as the "result" label.
const (
	ResultHit   = "hit"
	ResultMiss  = "miss"
	ResultError = "error"
)

// Metrics is a set of collectors registered on a private registry, so that
// several indexes (and tests) never collide on the default registerer.
type Metrics struct {
	registry *prometheus.Registry

	BuildDuration *prometheus.HistogramVec
	QueryDuration *prometheus.HistogramVec
	QueriesTotal  *prometheus.CounterVec
	IndexLength   prometheus.Gauge
	IndexNodes    prometheus.Gauge
}

// New creates and registers every collector.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		BuildDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "orftrie_index_build_duration_seconds",
			Help:    "Time to build the suffix index",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10, 60},
		}, []string{"engine"}),
		QueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "orftrie_query_duration_seconds",
			Help:    "Time to answer a query",
			Buckets: []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}, []string{"op"}),
		QueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "orftrie_queries_total",
			Help: "Queries answered, by operation and result",
		}, []string{"op", "result"}),
		IndexLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orftrie_index_length_symbols",
			Help: "Length of the indexed sequence",
		}),
		IndexNodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orftrie_index_nodes",
			Help: "Trie nodes held by the index (0 for the array engine)",
		}),
	}
	m.registry.MustRegister(
		m.BuildDuration,
		m.QueryDuration,
		m.QueriesTotal,
		m.IndexLength,
		m.IndexNodes,
	)
	return m
}

// Registry exposes the registry for scraping.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ObserveBuild records a finished index build.
func (m *Metrics) ObserveBuild(engine string, d time.Duration, length, nodes int) {
	m.BuildDuration.WithLabelValues(engine).Observe(d.Seconds())
	m.IndexLength.Set(float64(length))
	m.IndexNodes.Set(float64(nodes))
}

// ObserveQuery records one query. found is ignored when err is set.
func (m *Metrics) ObserveQuery(op string, d time.Duration, found bool, err error) {
	m.QueryDuration.WithLabelValues(op).Observe(d.Seconds())
	result := ResultMiss
	switch {
	case err != nil:
		result = ResultError
	case found:
		result = ResultHit
	}
	m.QueriesTotal.WithLabelValues(op, result).Inc()
}
