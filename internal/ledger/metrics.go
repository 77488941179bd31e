package ledger

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TradesExecutedTotal tracks successful paper-trade executions.
	TradesExecutedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "polymix_ledger_trades_executed_total",
		Help: "Total number of paper trades executed",
	})

	// TradesSettledTotal tracks trades settled from venue resolution.
	TradesSettledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "polymix_ledger_trades_settled_total",
		Help: "Total number of paper trades settled",
	})

	// TradesClosedTotal tracks manual trade closes.
	TradesClosedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "polymix_ledger_trades_closed_total",
		Help: "Total number of paper trades closed manually",
	})

	// TradesRejectedTotal tracks executes refused by the ledger.
	TradesRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "polymix_ledger_trades_rejected_total",
			Help: "Total number of trade executions rejected by the ledger",
		},
		[]string{"reason"},
	)

	// BalanceUSD is the current paper balance.
	BalanceUSD = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "polymix_ledger_balance_usd",
		Help: "Current paper-trading balance in USD",
	})

	// ExposureUSD is the sum of open amounts per leg.
	ExposureUSD = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "polymix_ledger_exposure_usd",
		Help: "Total exposure across OPEN paper trades in USD",
	})

	// RealizedPnLUSD is the cumulative realized profit and loss.
	RealizedPnLUSD = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "polymix_ledger_realized_pnl_usd",
		Help: "Cumulative realized PnL across settled and closed trades in USD",
	})
)
