package notify

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/polymix/polymix/pkg/types"
)

// Throttled wraps a Notifier with a daily cap and a minimum interval
// between pushes. Suppressed alerts are dropped, not queued; the trade
// itself is already recorded in the ledger.
type Throttled struct {
	inner       Notifier
	maxPerDay   int
	minInterval time.Duration
	logger      *zap.Logger
	now         func() time.Time

	mu       sync.Mutex
	lastSent time.Time
	sentDay  time.Time // midnight of the day the counter belongs to
	sentCnt  int
}

// NewThrottled creates a throttling wrapper around inner.
// maxPerDay <= 0 disables the daily cap.
func NewThrottled(inner Notifier, maxPerDay int, minInterval time.Duration, logger *zap.Logger) *Throttled {
	return &Throttled{
		inner:       inner,
		maxPerDay:   maxPerDay,
		minInterval: minInterval,
		logger:      logger,
		now:         time.Now,
	}
}

// Notify forwards the alert unless the throttle suppresses it.
// Suppression is not an error.
func (t *Throttled) Notify(ctx context.Context, trade *types.TradeRecord) error {
	if !t.admit(trade) {
		return nil
	}

	err := t.inner.Notify(ctx, trade)
	if err != nil {
		return err
	}

	t.record()
	return nil
}

func (t *Throttled) admit(trade *types.TradeRecord) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	day := now.Truncate(24 * time.Hour)
	if !day.Equal(t.sentDay) {
		t.sentDay = day
		t.sentCnt = 0
	}

	if t.maxPerDay > 0 && t.sentCnt >= t.maxPerDay {
		NotificationsThrottledTotal.WithLabelValues("daily_cap").Inc()
		t.logger.Debug("notification-throttled",
			zap.String("reason", "daily_cap"),
			zap.String("game-key", trade.GameKey))
		return false
	}

	if !t.lastSent.IsZero() && now.Sub(t.lastSent) < t.minInterval {
		NotificationsThrottledTotal.WithLabelValues("min_interval").Inc()
		t.logger.Debug("notification-throttled",
			zap.String("reason", "min_interval"),
			zap.String("game-key", trade.GameKey))
		return false
	}

	return true
}

func (t *Throttled) record() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastSent = t.now()
	t.sentCnt++
}
