package ledger

import "github.com/polymix/polymix/pkg/types"

// Read API: every accessor copies under the lock so no caller can observe
// a transient state where exposure disagrees with the open-trade set.

// Balance returns the current balance in USD.
func (l *Ledger) Balance() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}

// TotalExposure returns the sum of amount-per-leg over OPEN trades.
func (l *Ledger) TotalExposure() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.exposure
}

// OpenGameKeys returns the dedup view the eligibility filter consumes:
// every game key with an OPEN trade.
func (l *Ledger) OpenGameKeys() map[string]bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	keys := make(map[string]bool, len(l.openByKey))
	for k := range l.openByKey {
		keys[k] = true
	}
	return keys
}

// OpenPositions returns copies of all OPEN trades in execution order.
func (l *Ledger) OpenPositions() []types.TradeRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]types.TradeRecord, 0, len(l.openByKey))
	for _, t := range l.trades {
		if t.Status == types.TradeOpen {
			out = append(out, *t)
		}
	}
	return out
}

// TradeHistory returns up to limit trades, newest first. limit <= 0 means
// the full history.
func (l *Ledger) TradeHistory(limit int) []types.TradeRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := len(l.trades)
	if limit <= 0 || limit > n {
		limit = n
	}

	out := make([]types.TradeRecord, 0, limit)
	for i := n - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, *l.trades[i])
	}
	return out
}

// Snapshot returns the full reporting view, including up to limit trades
// newest first.
func (l *Ledger) Snapshot(limit int) types.LedgerSnapshot {
	trades := l.TradeHistory(limit)

	l.mu.Lock()
	defer l.mu.Unlock()

	var realized, estimated float64
	for _, t := range l.trades {
		switch t.Status {
		case types.TradeOpen:
			estimated += t.ExpectedProfit()
		default:
			realized += t.RealizedPnL
		}
	}

	return types.LedgerSnapshot{
		Balance:         l.balance,
		InitialBalance:  l.initialBalance,
		TotalExposure:   l.exposure,
		RealizedProfit:  realized,
		EstimatedProfit: estimated,
		TotalTrades:     len(l.trades),
		Trades:          trades,
	}
}
