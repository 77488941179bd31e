// Package ledger owns the paper-trading state: balance, exposure, and the
// full trade history. It is the single serialized access point for every
// mutation; callers only ever receive snapshots.
package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/polymix/polymix/pkg/types"
	"go.uber.org/zap"
)

// Store persists trades so the one-OPEN-trade-per-key invariant survives a
// restart between execute and notify.
type Store interface {
	SaveTrade(ctx context.Context, trade *types.TradeRecord) error
	UpdateTrade(ctx context.Context, trade *types.TradeRecord) error
	LoadTrades(ctx context.Context) ([]types.TradeRecord, error)
	Close() error
}

// Config holds ledger configuration.
type Config struct {
	InitialBalance float64
	Logger         *zap.Logger
	Store          Store
}

// Ledger is the mutex-guarded paper-trading aggregate. Created once at
// process start; never reset during the process lifetime.
type Ledger struct {
	mu             sync.Mutex
	logger         *zap.Logger
	store          Store
	initialBalance float64
	balance        float64
	exposure       float64
	trades         []*types.TradeRecord // insertion order = execution order
	openByKey      map[string]*types.TradeRecord
}

// New creates a ledger and rehydrates prior trades from the store, so OPEN
// positions recorded before a crash still block duplicate execution.
func New(cfg Config) (*Ledger, error) {
	l := &Ledger{
		logger:         cfg.Logger,
		store:          cfg.Store,
		initialBalance: cfg.InitialBalance,
		balance:        cfg.InitialBalance,
		openByKey:      make(map[string]*types.TradeRecord),
	}

	trades, err := cfg.Store.LoadTrades(context.Background())
	if err != nil {
		return nil, fmt.Errorf("load trades: %w", err)
	}

	for i := range trades {
		trade := trades[i]
		l.trades = append(l.trades, &trade)
		switch trade.Status {
		case types.TradeOpen:
			l.exposure += trade.AmountPerLeg
			l.openByKey[trade.GameKey] = &trade
		case types.TradeSettled, types.TradeClosed:
			l.balance += trade.RealizedPnL
		}
	}

	BalanceUSD.Set(l.balance)
	ExposureUSD.Set(l.exposure)

	cfg.Logger.Info("ledger-initialized",
		zap.Float64("balance", l.balance),
		zap.Float64("exposure", l.exposure),
		zap.Int("trades-loaded", len(trades)),
		zap.Int("open-positions", len(l.openByKey)))

	return l, nil
}

// Execute records a new OPEN paper trade for an eligible opportunity.
// At most one OPEN trade may exist per game key at any time.
func (l *Ledger) Execute(ctx context.Context, rec *types.MarketPairRecord, result *types.StrategyResult, amountPerLeg float64) (*types.TradeRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := rec.Key()

	if _, exists := l.openByKey[key]; exists {
		TradesRejectedTotal.WithLabelValues("duplicate_open_position").Inc()
		return nil, fmt.Errorf("execute %s: %w", key, types.ErrDuplicateOpenPosition)
	}

	if 2*amountPerLeg > l.balance-l.exposure {
		TradesRejectedTotal.WithLabelValues("insufficient_balance").Inc()
		return nil, fmt.Errorf("execute %s: %w", key, types.ErrInsufficientBalance)
	}

	trade := &types.TradeRecord{
		ID:           uuid.New().String(),
		GameKey:      key,
		Game:         fmt.Sprintf("%s vs %s", rec.AwayTeam, rec.HomeTeam),
		Category:     rec.Category,
		OpenedAt:     time.Now(),
		Result:       *result,
		AmountPerLeg: amountPerLeg,
		Cost:         result.TotalCost / 100.0 * amountPerLeg,
		Status:       types.TradeOpen,
	}

	l.trades = append(l.trades, trade)
	l.openByKey[key] = trade
	l.exposure += amountPerLeg
	ExposureUSD.Set(l.exposure)
	TradesExecutedTotal.Inc()

	// The trade is committed once persisted; a persistence failure is loud
	// but does not unwind the in-memory state the monitor already acts on.
	err := l.store.SaveTrade(ctx, trade)
	if err != nil {
		l.logger.Error("trade-persist-failed",
			zap.String("trade-id", trade.ID),
			zap.String("game-key", key),
			zap.Error(err))
	}

	l.logger.Info("paper-trade-executed",
		zap.String("trade-id", trade.ID),
		zap.String("game-key", key),
		zap.String("game", trade.Game),
		zap.Int("strategy", result.SelectedStrategy),
		zap.Float64("total-cost", result.TotalCost),
		zap.Float64("edge", result.Edge),
		zap.Float64("roi-percent", result.ROIPercent),
		zap.Float64("amount-per-leg", amountPerLeg))

	snapshot := *trade
	return &snapshot, nil
}

// Settle transitions an OPEN trade to SETTLED and credits the edge captured
// at execution time. A correctly executed cross-venue hedge realizes its
// edge regardless of which side won, so settlement needs no winner.
// Idempotent: settling an already-terminal trade is a no-op.
func (l *Ledger) Settle(ctx context.Context, gameKey string, info types.SettlementInfo) (*types.TradeRecord, error) {
	return l.finalize(ctx, gameKey, types.TradeSettled, string(info.SettledVenue), true)
}

// Close is the manual exit prior to settlement. Same accounting as Settle
// but tagged with the operator's reason, and never idempotent: closing a
// key without an OPEN trade is an error.
func (l *Ledger) Close(ctx context.Context, gameKey, reason string) (*types.TradeRecord, error) {
	return l.finalize(ctx, gameKey, types.TradeClosed, reason, false)
}

func (l *Ledger) finalize(ctx context.Context, gameKey string, status types.TradeStatus, detail string, idempotent bool) (*types.TradeRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	trade, open := l.openByKey[gameKey]
	if !open {
		if idempotent {
			// Settling a trade that already left OPEN returns the terminal
			// record unchanged.
			if terminal := l.lastTerminal(gameKey); terminal != nil {
				snapshot := *terminal
				return &snapshot, nil
			}
		}
		return nil, fmt.Errorf("%s %s: %w", status, gameKey, types.ErrTradeNotFound)
	}

	pnl := trade.ExpectedProfit()
	trade.Status = status
	trade.ClosedAt = time.Now()
	trade.CloseReason = detail
	trade.RealizedPnL = pnl

	delete(l.openByKey, gameKey)
	l.exposure -= trade.AmountPerLeg
	l.balance += pnl
	BalanceUSD.Set(l.balance)
	ExposureUSD.Set(l.exposure)
	RealizedPnLUSD.Add(pnl)
	if status == types.TradeSettled {
		TradesSettledTotal.Inc()
	} else {
		TradesClosedTotal.Inc()
	}

	err := l.store.UpdateTrade(ctx, trade)
	if err != nil {
		l.logger.Error("trade-persist-failed",
			zap.String("trade-id", trade.ID),
			zap.String("game-key", gameKey),
			zap.Error(err))
	}

	l.logger.Info("paper-trade-finalized",
		zap.String("trade-id", trade.ID),
		zap.String("game-key", gameKey),
		zap.String("status", string(status)),
		zap.String("detail", detail),
		zap.Float64("realized-pnl", pnl),
		zap.Float64("balance", l.balance))

	snapshot := *trade
	return &snapshot, nil
}

// lastTerminal returns the newest non-OPEN trade for the key, or nil.
func (l *Ledger) lastTerminal(gameKey string) *types.TradeRecord {
	for i := len(l.trades) - 1; i >= 0; i-- {
		t := l.trades[i]
		if t.GameKey == gameKey && t.Status != types.TradeOpen {
			return t
		}
	}
	return nil
}
