// Package notify pushes alerts for executed paper trades.
package notify

import (
	"context"
	"fmt"

	"github.com/polymix/polymix/pkg/types"
)

// Notifier delivers an alert for one executed trade. Delivery failures
// are reported to the caller but never stop the trading cycle.
type Notifier interface {
	Notify(ctx context.Context, trade *types.TradeRecord) error
}

// FormatTrade renders the alert text for an executed trade.
func FormatTrade(trade *types.TradeRecord) string {
	r := trade.Result
	return fmt.Sprintf(
		"Arbitrage executed: %s [%s]\n"+
			"Strategy %d | cost %.2f | edge %.2f | ROI %.2f%%\n"+
			"Stake %.2f per leg | expected profit %.2f",
		trade.Game, trade.Category,
		r.SelectedStrategy, r.TotalCost, r.Edge, r.ROIPercent,
		trade.AmountPerLeg, trade.ExpectedProfit(),
	)
}
