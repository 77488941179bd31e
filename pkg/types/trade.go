package types

import "time"

// Leg is one side of a cross-venue hedge: a purchase of one outcome on
// one venue.
type Leg struct {
	Venue          Venue   `json:"venue"`
	Outcome        Outcome `json:"outcome"`
	RawPrice       float64 `json:"raw_price"`       // cents, as quoted
	EffectivePrice float64 `json:"effective_price"` // cents, fee and slippage adjusted
}

// StrategyResult is the evaluator's verdict for one market pair.
// Immutable once computed. The two legs always reference different venues.
type StrategyResult struct {
	SelectedStrategy int     `json:"selected_strategy"` // 1 or 2
	TotalCost        float64 `json:"total_cost"`        // cents per 100c notional
	Edge             float64 `json:"edge"`              // 100 - TotalCost
	ROIPercent       float64 `json:"roi_percent"`
	AwayLeg          Leg     `json:"away_leg"`
	HomeLeg          Leg     `json:"home_leg"`
	Strategy1Cost    float64 `json:"strategy_1_cost"`
	Strategy2Cost    float64 `json:"strategy_2_cost"`
}

// Legs returns the two legs in away, home order.
func (r *StrategyResult) Legs() [2]Leg {
	return [2]Leg{r.AwayLeg, r.HomeLeg}
}

// TradeStatus is the lifecycle state of a paper trade.
// Transitions: OPEN -> CLOSED or OPEN -> SETTLED, both terminal.
type TradeStatus string

const (
	TradeOpen    TradeStatus = "OPEN"
	TradeClosed  TradeStatus = "CLOSED"
	TradeSettled TradeStatus = "SETTLED"
)

// TradeRecord is one executed paper trade. Owned exclusively by the ledger;
// callers only ever see copies.
type TradeRecord struct {
	ID           string         `json:"id"`
	GameKey      string         `json:"game_key"`
	Game         string         `json:"game"`
	Category     string         `json:"category"`
	OpenedAt     time.Time      `json:"opened_at"`
	Result       StrategyResult `json:"strategy_result"`
	AmountPerLeg float64        `json:"amount_per_leg"` // USD
	Cost         float64        `json:"cost"`           // USD outlay across both legs
	Status       TradeStatus    `json:"status"`
	ClosedAt     time.Time      `json:"closed_at,omitempty"`
	CloseReason  string         `json:"close_reason,omitempty"`
	RealizedPnL  float64        `json:"realized_pnl"`
}

// ExpectedProfit is the edge captured at execution time, in USD.
func (t *TradeRecord) ExpectedProfit() float64 {
	return t.Result.Edge / 100.0 * t.AmountPerLeg
}

// LedgerSnapshot is a read-only view of ledger state for reporting.
type LedgerSnapshot struct {
	Balance         float64       `json:"balance"`
	InitialBalance  float64       `json:"initial_balance"`
	TotalExposure   float64       `json:"total_exposure"`
	RealizedProfit  float64       `json:"realized_profit"`
	EstimatedProfit float64       `json:"estimated_profit"` // expected edge on OPEN trades
	TotalTrades     int           `json:"total_trades"`
	Trades          []TradeRecord `json:"trades,omitempty"`
}
