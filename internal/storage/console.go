package storage

import (
	"context"

	"github.com/polymix/polymix/pkg/types"
	"go.uber.org/zap"
)

// ConsoleStore is the no-persistence backend: trades are logged and kept
// only in the ledger's memory. State does not survive a restart, so the
// cross-restart dedup guarantee requires sqlite or postgres.
type ConsoleStore struct {
	logger *zap.Logger
}

// NewConsoleStore creates a console store.
func NewConsoleStore(logger *zap.Logger) *ConsoleStore {
	logger.Info("console-store-initialized",
		zap.String("note", "trades are not persisted across restarts"))
	return &ConsoleStore{logger: logger}
}

// SaveTrade logs the executed trade.
func (c *ConsoleStore) SaveTrade(_ context.Context, trade *types.TradeRecord) error {
	c.logger.Info("trade-recorded",
		zap.String("trade-id", trade.ID),
		zap.String("game-key", trade.GameKey),
		zap.String("game", trade.Game),
		zap.Float64("cost", trade.Cost),
		zap.Float64("edge", trade.Result.Edge),
		zap.Float64("roi-percent", trade.Result.ROIPercent))
	return nil
}

// UpdateTrade logs the transition.
func (c *ConsoleStore) UpdateTrade(_ context.Context, trade *types.TradeRecord) error {
	c.logger.Info("trade-updated",
		zap.String("trade-id", trade.ID),
		zap.String("game-key", trade.GameKey),
		zap.String("status", string(trade.Status)),
		zap.Float64("realized-pnl", trade.RealizedPnL))
	return nil
}

// LoadTrades returns nothing; console mode starts fresh.
func (c *ConsoleStore) LoadTrades(_ context.Context) ([]types.TradeRecord, error) {
	return nil, nil
}

// Close is a no-op.
func (c *ConsoleStore) Close() error {
	c.logger.Info("closing-console-store")
	return nil
}
