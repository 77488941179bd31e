package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/polymix/polymix/pkg/types"
)

// ConsoleNotifier logs alerts instead of pushing them. Default mode.
type ConsoleNotifier struct {
	logger *zap.Logger
}

// NewConsoleNotifier creates a log-only notifier.
func NewConsoleNotifier(logger *zap.Logger) *ConsoleNotifier {
	return &ConsoleNotifier{logger: logger}
}

// Notify logs the trade alert.
func (c *ConsoleNotifier) Notify(_ context.Context, trade *types.TradeRecord) error {
	c.logger.Info("trade-alert",
		zap.String("trade-id", trade.ID),
		zap.String("game", trade.Game),
		zap.String("game-key", trade.GameKey),
		zap.String("category", trade.Category),
		zap.Int("strategy", trade.Result.SelectedStrategy),
		zap.Float64("roi-percent", trade.Result.ROIPercent),
		zap.Float64("expected-profit", trade.ExpectedProfit()))

	NotificationsSentTotal.WithLabelValues("console").Inc()
	return nil
}
