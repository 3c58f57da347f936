package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation results recorded by IncOperation.
const (
	ResultOK       = "ok"
	ResultInvalid  = "invalid"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// Metrics holds the Prometheus metrics of the bill store.
type Metrics struct {
	// Registry owns these metrics. There is no scrape endpoint; the registry
	// is written to a node_exporter textfile instead.
	Registry *prometheus.Registry

	operations          *prometheus.CounterVec
	persistenceFailures *prometheus.CounterVec
	collectionSize      prometheus.Gauge
}

// NewMetrics creates a dedicated registry so repeated construction in tests
// does not trip duplicate registration.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bills_store_operations_total",
				Help: "Bill store operations by kind and outcome.",
			},
			[]string{"operation", "result"},
		),
		persistenceFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bills_persistence_failures_total",
				Help: "Snapshot load or save failures.",
			},
			[]string{"operation"},
		),
		collectionSize: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "bills_collection_size",
				Help: "Number of bills currently held by the store.",
			},
		),
	}
}

// IncOperation counts one store operation. Safe on a nil receiver.
func (m *Metrics) IncOperation(operation, result string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(operation, result).Inc()
}

// IncPersistenceFailure counts a failed snapshot load or save.
func (m *Metrics) IncPersistenceFailure(operation string) {
	if m == nil {
		return
	}
	m.persistenceFailures.WithLabelValues(operation).Inc()
}

// SetCollectionSize records the current number of bills.
func (m *Metrics) SetCollectionSize(n int) {
	if m == nil {
		return
	}
	m.collectionSize.Set(float64(n))
}

// WriteTextfile writes the registry in the text exposition format, for the
// node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}

// PersistenceFailureCounter returns the failure counter of one operation.
func (m *Metrics) PersistenceFailureCounter(operation string) prometheus.Counter {
	return m.persistenceFailures.WithLabelValues(operation)
}
