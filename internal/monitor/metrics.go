package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CyclesTotal tracks completed trading cycles.
	CyclesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "polymix_monitor_cycles_total",
		Help: "Total number of trading cycles run",
	})

	// CycleDurationSeconds tracks trading cycle duration.
	CycleDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "polymix_monitor_cycle_duration_seconds",
		Help:    "Duration of one full trading cycle",
		Buckets: prometheus.DefBuckets,
	})

	// FetchFailuresTotal tracks degraded categories by name.
	FetchFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "polymix_monitor_fetch_failures_total",
		Help: "Total number of category fetches that degraded to an empty batch",
	}, []string{"category"})

	// TradesSettledTotal tracks trades settled by the sweep.
	TradesSettledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "polymix_monitor_trades_settled_total",
		Help: "Total number of open trades settled by the settlement sweep",
	})
)
