package storage

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/goccy/go-json"
	"github.com/polymix/polymix/pkg/types"
	"go.uber.org/zap"
)

func sampleTrade() *types.TradeRecord {
	return &types.TradeRecord{
		ID:       "trade-1",
		GameKey:  "lal@bos",
		Game:     "Lakers vs Celtics",
		Category: "nba",
		OpenedAt: time.Date(2026, 1, 10, 19, 0, 0, 0, time.UTC),
		Result: types.StrategyResult{
			SelectedStrategy: 1,
			TotalCost:        97.725,
			Edge:             2.275,
			ROIPercent:       2.33,
			AwayLeg:          types.Leg{Venue: types.VenuePolymarket, Outcome: types.OutcomeAway, RawPrice: 45},
			HomeLeg:          types.Leg{Venue: types.VenueKalshi, Outcome: types.OutcomeHome, RawPrice: 48},
		},
		AmountPerLeg: 100,
		Cost:         97.725,
		Status:       types.TradeOpen,
	}
}

func TestPostgresStore_SaveTrade(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("create sqlmock: %v", err)
	}
	defer db.Close()

	store := &PostgresStore{db: db, logger: zap.NewNop()}
	trade := sampleTrade()

	mock.ExpectExec("INSERT INTO paper_trades").
		WithArgs(
			trade.ID, trade.GameKey, trade.Game, trade.Category, trade.OpenedAt,
			sqlmock.AnyArg(), trade.AmountPerLeg, trade.Cost, "OPEN", "", 0.0,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = store.SaveTrade(context.Background(), trade)
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresStore_UpdateTrade(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("create sqlmock: %v", err)
	}
	defer db.Close()

	store := &PostgresStore{db: db, logger: zap.NewNop()}
	trade := sampleTrade()
	trade.Status = types.TradeSettled
	trade.ClosedAt = trade.OpenedAt.Add(3 * time.Hour)
	trade.RealizedPnL = 2.275

	mock.ExpectExec("UPDATE paper_trades").
		WithArgs(trade.ID, "SETTLED", trade.ClosedAt, "", 2.275).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = store.UpdateTrade(context.Background(), trade)
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresStore_UpdateTrade_MissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("create sqlmock: %v", err)
	}
	defer db.Close()

	store := &PostgresStore{db: db, logger: zap.NewNop()}

	mock.ExpectExec("UPDATE paper_trades").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = store.UpdateTrade(context.Background(), sampleTrade())
	if err == nil {
		t.Error("expected error when no row matched")
	}
}

func TestPostgresStore_LoadTrades(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("create sqlmock: %v", err)
	}
	defer db.Close()

	store := &PostgresStore{db: db, logger: zap.NewNop()}
	trade := sampleTrade()
	resultJSON, _ := json.Marshal(trade.Result)

	rows := sqlmock.NewRows([]string{
		"id", "game_key", "game", "category", "opened_at", "strategy_result",
		"amount_per_leg", "cost", "status", "closed_at", "close_reason", "realized_pnl",
	}).AddRow(
		trade.ID, trade.GameKey, trade.Game, trade.Category, trade.OpenedAt, resultJSON,
		trade.AmountPerLeg, trade.Cost, "OPEN", nil, "", 0.0,
	)

	mock.ExpectQuery("SELECT (.+) FROM paper_trades").WillReturnRows(rows)

	trades, err := store.LoadTrades(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(trades) != 1 {
		t.Fatalf("expected one trade, got %d", len(trades))
	}
	if trades[0].GameKey != "lal@bos" {
		t.Errorf("unexpected game key %q", trades[0].GameKey)
	}
	if trades[0].Status != types.TradeOpen {
		t.Errorf("unexpected status %q", trades[0].Status)
	}
	if trades[0].Result.Edge != trade.Result.Edge {
		t.Errorf("strategy result did not round-trip: %+v", trades[0].Result)
	}
}

func TestConsoleStore_RoundTrip(t *testing.T) {
	store := NewConsoleStore(zap.NewNop())
	ctx := context.Background()

	err := store.SaveTrade(ctx, sampleTrade())
	if err != nil {
		t.Errorf("save: %v", err)
	}

	trades, err := store.LoadTrades(ctx)
	if err != nil {
		t.Errorf("load: %v", err)
	}
	if len(trades) != 0 {
		t.Error("console store must not persist trades")
	}

	if err := store.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
}
