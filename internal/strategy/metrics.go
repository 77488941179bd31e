package strategy

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EvaluationsTotal tracks completed strategy evaluations.
	EvaluationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "polymix_strategy_evaluations_total",
		Help: "Total number of market pairs evaluated",
	})

	// EvaluationsRejectedTotal tracks rejected evaluations by reason.
	EvaluationsRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "polymix_strategy_evaluations_rejected_total",
			Help: "Total number of market pairs rejected before evaluation",
		},
		[]string{"reason"},
	)

	// EdgeCents tracks the computed edge distribution in cents.
	EdgeCents = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "polymix_strategy_edge_cents",
		Help:    "Computed edge per 100 cent notional, including negative edges",
		Buckets: []float64{-20, -10, -5, -2, -1, 0, 1, 2, 5, 10, 20},
	})
)
