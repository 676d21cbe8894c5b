package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "marketplace_indexer"

// Cycle outcomes
const (
	OutcomeApplied     = "applied"
	OutcomeIdle        = "idle"
	OutcomeUnavailable = "unavailable"
	OutcomeReorg       = "reorg"
	OutcomeMalformed   = "malformed"
	OutcomeCursorWrite = "cursor_write_failed"
	OutcomeFailed      = "failed"
)

// Alert names
const (
	AlertCursorWriteFailed = "cursor_write_failed"
	AlertMalformedEvent    = "malformed_event"
)

var (
	CyclesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cycles_total",
		Help:      "Reconciliation cycles by outcome",
	}, []string{"outcome"})

	EventsAppliedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_applied_total",
		Help:      "Events applied to the read models by kind",
	}, []string{"kind"})

	EventsSkippedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_skipped_total",
		Help:      "Events skipped because no handler exists for their kind",
	}, []string{"kind"})

	ReorgsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reorgs_total",
		Help:      "Chain reorganizations that rolled the cursor back",
	})

	AlertsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_total",
		Help:      "Operator alerts raised by the scheduler",
	}, []string{"alert"})

	CursorBlock = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "cursor_block",
		Help:      "Block number of the persisted sync cursor",
	})

	ConfirmedHeight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "confirmed_height",
		Help:      "Highest block considered final by the event source",
	})

	BatchSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "batch_size",
		Help:      "Events returned by the event source per cycle",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 11), // 1 to 1024
	})

	CycleDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "cycle_duration_seconds",
		Help:      "Wall time of a reconciliation cycle",
		Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
	})
)

func init() {
	prometheus.MustRegister(
		CyclesTotal,
		EventsAppliedTotal,
		EventsSkippedTotal,
		ReorgsTotal,
		AlertsTotal,
		CursorBlock,
		ConfirmedHeight,
		BatchSize,
		CycleDuration,
	)
}

// Handler serves the default registry in the Prometheus text format
func Handler() http.Handler {
	return promhttp.Handler()
}
