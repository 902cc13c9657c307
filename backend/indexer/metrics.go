package indexer

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the indexer's prometheus instruments.
type Metrics struct {
	EventsIngested *prometheus.CounterVec
	EventsSkipped  prometheus.Counter
	ParseFailures  prometheus.Counter
	CursorLedger   prometheus.Gauge
}

// NewMetrics registers the indexer instruments on the given registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		EventsIngested: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pifp",
			Subsystem: "indexer",
			Name:      "events_ingested_total",
			Help:      "Contract events persisted, by event type.",
		}, []string{"event_type"}),
		EventsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pifp",
			Subsystem: "indexer",
			Name:      "events_skipped_total",
			Help:      "Events dropped as duplicates during re-ingestion.",
		}),
		ParseFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pifp",
			Subsystem: "indexer",
			Name:      "parse_failures_total",
			Help:      "Log lines that failed to parse as contract events.",
		}),
		CursorLedger: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "pifp",
			Subsystem: "indexer",
			Name:      "cursor_ledger",
			Help:      "Last fully ingested ledger sequence.",
		}),
	}
	reg.MustRegister(m.EventsIngested, m.EventsSkipped, m.ParseFailures, m.CursorLedger)
	return m
}
