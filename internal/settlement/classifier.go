// Package settlement classifies raw per-venue status fields into a single
// settlement verdict. Classification fails open: malformed or missing data
// always reads as "still active", never as settled.
package settlement

import (
	"fmt"
	"strings"

	"github.com/polymix/polymix/pkg/types"
)

// Kalshi lifecycle strings that mean the market is final.
var kalshiClosedStates = map[string]bool{
	"finalized": true,
	"settled":   true,
}

// Classify returns the settlement state of a market pair from its raw
// venue status fields.
func Classify(poly types.PolymarketStatus, kalshi types.KalshiStatus) types.SettlementInfo {
	polySettled := poly.Closed != nil && *poly.Closed
	kalshiSettled := kalshiClosedStates[strings.ToLower(strings.TrimSpace(kalshi.Status))]

	info := types.SettlementInfo{SettledVenue: types.SettledNone}

	switch {
	case polySettled && kalshiSettled:
		info.IsSettled = true
		info.SettledVenue = types.SettledBoth
		info.StatusDetail = fmt.Sprintf("polymarket closed, kalshi %s", kalshi.Status)
	case polySettled:
		info.IsSettled = true
		info.SettledVenue = types.SettledPolymarket
		info.StatusDetail = "polymarket closed"
	case kalshiSettled:
		info.IsSettled = true
		info.SettledVenue = types.SettledKalshi
		info.StatusDetail = fmt.Sprintf("kalshi %s", kalshi.Status)
	}

	return info
}

// ClassifyRecord classifies one feed record.
func ClassifyRecord(rec *types.MarketPairRecord) types.SettlementInfo {
	return Classify(rec.PolyStatus, rec.KalshiStat)
}
