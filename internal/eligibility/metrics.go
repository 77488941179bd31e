package eligibility

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecordsEligibleTotal tracks records admitted to execution.
	RecordsEligibleTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "polymix_eligibility_records_eligible_total",
		Help: "Total number of evaluated records admitted for execution",
	})

	// RecordsRejectedTotal tracks filtered records by reason.
	RecordsRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "polymix_eligibility_records_rejected_total",
			Help: "Total number of evaluated records rejected by the eligibility filter",
		},
		[]string{"reason"},
	)
)
