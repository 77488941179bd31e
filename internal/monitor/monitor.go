// Package monitor runs the polling cycle that turns feed records into
// paper trades: fetch, evaluate, classify, filter, execute, notify.
package monitor

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/polymix/polymix/internal/eligibility"
	"github.com/polymix/polymix/internal/feed"
	"github.com/polymix/polymix/internal/ledger"
	"github.com/polymix/polymix/internal/notify"
	"github.com/polymix/polymix/internal/settlement"
	"github.com/polymix/polymix/internal/strategy"
	"github.com/polymix/polymix/pkg/types"
)

// Config holds monitor configuration.
type Config struct {
	Categories []string
	Interval   time.Duration
	MinROI     float64
	BetAmount  float64
	Fees       strategy.Fees
	Logger     *zap.Logger
}

// Monitor drives the trading cycle on a fixed interval. One cycle runs at
// a time; ticks that arrive while a cycle is still running are dropped.
type Monitor struct {
	config   Config
	feed     feed.Feed
	ledger   *ledger.Ledger
	notifier notify.Notifier
	logger   *zap.Logger
	ctx      context.Context
	wg       sync.WaitGroup
}

// New creates a new monitor.
func New(cfg Config, f feed.Feed, l *ledger.Ledger, n notify.Notifier) *Monitor {
	return &Monitor{
		config:   cfg,
		feed:     f,
		ledger:   l,
		notifier: n,
		logger:   cfg.Logger,
	}
}

// Start launches the polling loop. The first cycle runs immediately;
// shutdown happens at cycle boundaries, never mid-cycle.
func (m *Monitor) Start(ctx context.Context) error {
	m.ctx = ctx
	m.logger.Info("monitor-starting",
		zap.Strings("categories", m.config.Categories),
		zap.Duration("interval", m.config.Interval),
		zap.Float64("min-roi-percent", m.config.MinROI),
		zap.Float64("bet-amount", m.config.BetAmount))

	m.wg.Add(1)
	go m.loop()

	return nil
}

// Close waits for the loop to exit. Start's context must be cancelled
// first.
func (m *Monitor) Close() error {
	m.wg.Wait()
	m.logger.Info("monitor-stopped")
	return nil
}

func (m *Monitor) loop() {
	defer m.wg.Done()

	ticker := time.NewTicker(m.config.Interval)
	defer ticker.Stop()

	m.RunCycle(m.ctx)

	for {
		select {
		case <-m.ctx.Done():
			m.logger.Info("monitor-stopping")
			return
		case <-ticker.C:
			m.RunCycle(m.ctx)
		}
	}
}

// RunCycle executes one full trading cycle. Exported for tests and for
// one-shot CLI invocations.
func (m *Monitor) RunCycle(ctx context.Context) {
	start := time.Now()
	CyclesTotal.Inc()

	records := m.fetchAll(ctx)
	evals, settled := m.evaluateAll(records)

	m.sweepSettled(ctx, settled)

	eligible, rejected := eligibility.Filter(evals, m.config.MinROI, m.ledger.OpenGameKeys())
	executed := m.executeAll(ctx, eligible)
	m.notifyAll(ctx, executed)

	CycleDurationSeconds.Observe(time.Since(start).Seconds())
	m.logger.Info("cycle-complete",
		zap.Int("records", len(records)),
		zap.Int("eligible", len(eligible)),
		zap.Int("rejected", len(rejected)),
		zap.Int("executed", len(executed)),
		zap.Int("settled", len(settled)),
		zap.Duration("duration", time.Since(start)))
}

// fetchAll pulls every configured category in parallel. A failing
// category degrades to an empty contribution for this cycle; the others
// still trade.
func (m *Monitor) fetchAll(ctx context.Context) []types.MarketPairRecord {
	var (
		mu      sync.Mutex
		records []types.MarketPairRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, category := range m.config.Categories {
		category := category
		g.Go(func() error {
			recs, err := m.feed.Fetch(gctx, category)
			if err != nil {
				FetchFailuresTotal.WithLabelValues(category).Inc()
				m.logger.Warn("category-fetch-failed",
					zap.String("category", category),
					zap.Error(err))
				return nil
			}

			mu.Lock()
			records = append(records, recs...)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return records
}

// settledMarket is one feed record whose market has resolved.
type settledMarket struct {
	key  string
	info types.SettlementInfo
}

// evaluateAll runs the evaluator and the settlement classifier over the
// batch. Settled records are excluded from trading and handed to the
// settlement sweep instead.
func (m *Monitor) evaluateAll(records []types.MarketPairRecord) ([]eligibility.Evaluation, []settledMarket) {
	evals := make([]eligibility.Evaluation, 0, len(records))
	var settled []settledMarket

	for i := range records {
		rec := &records[i]

		info := settlement.ClassifyRecord(rec)
		if info.IsSettled {
			settled = append(settled, settledMarket{key: rec.Key(), info: info})
			m.logger.Debug("record-settled",
				zap.String("game-key", rec.Key()),
				zap.String("venue", string(info.SettledVenue)),
				zap.String("detail", info.StatusDetail))
			continue
		}

		result, err := strategy.EvaluateRecord(rec, m.config.Fees)
		evals = append(evals, eligibility.Evaluation{
			Record:     rec,
			Result:     result,
			Settlement: info,
			Err:        err,
		})
	}

	return evals, settled
}

// sweepSettled settles any OPEN trade whose market has since resolved.
func (m *Monitor) sweepSettled(ctx context.Context, settled []settledMarket) {
	if len(settled) == 0 {
		return
	}

	open := m.ledger.OpenGameKeys()
	for _, sm := range settled {
		if !open[sm.key] {
			continue
		}

		trade, err := m.ledger.Settle(ctx, sm.key, sm.info)
		if err != nil {
			m.logger.Error("settlement-sweep-failed",
				zap.String("game-key", sm.key),
				zap.Error(err))
			continue
		}

		TradesSettledTotal.Inc()
		m.logger.Info("trade-settled",
			zap.String("trade-id", trade.ID),
			zap.String("game-key", sm.key),
			zap.Float64("realized-pnl", trade.RealizedPnL))
	}
}

// executeAll opens paper trades for the eligible evaluations, best ROI
// first. Once capital runs out the rest of the batch is skipped: every
// trade costs the same, so no later candidate can fit either.
func (m *Monitor) executeAll(ctx context.Context, eligible []eligibility.Evaluation) []*types.TradeRecord {
	executed := make([]*types.TradeRecord, 0, len(eligible))

	for _, ev := range eligible {
		trade, err := m.ledger.Execute(ctx, ev.Record, ev.Result, m.config.BetAmount)
		if err != nil {
			if errors.Is(err, types.ErrInsufficientBalance) {
				m.logger.Warn("capital-exhausted",
					zap.String("game-key", ev.Record.Key()),
					zap.Int("skipped", len(eligible)-len(executed)))
				break
			}
			m.logger.Error("trade-execution-failed",
				zap.String("game-key", ev.Record.Key()),
				zap.Error(err))
			continue
		}

		executed = append(executed, trade)
		m.logger.Info("paper-trade-executed",
			zap.String("trade-id", trade.ID),
			zap.String("game-key", trade.GameKey),
			zap.Int("strategy", trade.Result.SelectedStrategy),
			zap.Float64("roi-percent", trade.Result.ROIPercent),
			zap.Float64("expected-profit", trade.ExpectedProfit()))
	}

	return executed
}

// notifyAll pushes alerts for the executed trades. Delivery failures are
// logged and dropped; the ledger already holds the trade.
func (m *Monitor) notifyAll(ctx context.Context, executed []*types.TradeRecord) {
	for _, trade := range executed {
		err := m.notifier.Notify(ctx, trade)
		if err != nil {
			m.logger.Warn("trade-notification-failed",
				zap.String("trade-id", trade.ID),
				zap.Error(err))
		}
	}
}
