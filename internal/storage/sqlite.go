package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/polymix/polymix/pkg/types"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// SQLiteStore persists the trade ledger in a local SQLite file (pure Go,
// no CGo). The default backend for single-host paper trading.
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.Logger
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS paper_trades (
	id              TEXT PRIMARY KEY,
	game_key        TEXT NOT NULL,
	game            TEXT NOT NULL,
	category        TEXT NOT NULL,
	opened_at       DATETIME NOT NULL,
	strategy_result TEXT NOT NULL,
	amount_per_leg  REAL NOT NULL,
	cost            REAL NOT NULL,
	status          TEXT NOT NULL,
	closed_at       DATETIME,
	close_reason    TEXT NOT NULL DEFAULT '',
	realized_pnl    REAL NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_trades_game_key ON paper_trades(game_key);
CREATE INDEX IF NOT EXISTS idx_trades_status   ON paper_trades(status);
`

// NewSQLiteStore opens (or creates) the database at the given path.
func NewSQLiteStore(path string, logger *zap.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}

	// SQLite is single-writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	_, err = db.Exec(sqliteSchema)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	logger.Info("sqlite-store-opened", zap.String("path", path))

	return &SQLiteStore{db: db, logger: logger}, nil
}

// SaveTrade inserts a newly executed trade.
func (s *SQLiteStore) SaveTrade(ctx context.Context, trade *types.TradeRecord) error {
	result, err := json.Marshal(trade.Result)
	if err != nil {
		return fmt.Errorf("marshal strategy result: %w", err)
	}

	query := `
		INSERT INTO paper_trades (
			id, game_key, game, category, opened_at, strategy_result,
			amount_per_leg, cost, status, close_reason, realized_pnl
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		trade.ID,
		trade.GameKey,
		trade.Game,
		trade.Category,
		trade.OpenedAt.UTC().Format(time.RFC3339Nano),
		string(result),
		trade.AmountPerLeg,
		trade.Cost,
		string(trade.Status),
		trade.CloseReason,
		trade.RealizedPnL,
	)
	if err != nil {
		return fmt.Errorf("insert trade: %w", err)
	}

	return nil
}

// UpdateTrade records a settle/close transition.
func (s *SQLiteStore) UpdateTrade(ctx context.Context, trade *types.TradeRecord) error {
	query := `
		UPDATE paper_trades
		SET status = ?, closed_at = ?, close_reason = ?, realized_pnl = ?
		WHERE id = ?
	`

	res, err := s.db.ExecContext(ctx, query,
		string(trade.Status),
		trade.ClosedAt.UTC().Format(time.RFC3339Nano),
		trade.CloseReason,
		trade.RealizedPnL,
		trade.ID,
	)
	if err != nil {
		return fmt.Errorf("update trade: %w", err)
	}

	rows, err := res.RowsAffected()
	if err == nil && rows == 0 {
		return fmt.Errorf("update trade %s: %w", trade.ID, sql.ErrNoRows)
	}

	return nil
}

// LoadTrades returns all trades in execution order.
func (s *SQLiteStore) LoadTrades(ctx context.Context) ([]types.TradeRecord, error) {
	query := `
		SELECT id, game_key, game, category, opened_at, strategy_result,
		       amount_per_leg, cost, status, closed_at, close_reason, realized_pnl
		FROM paper_trades
		ORDER BY opened_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query trades: %w", err)
	}
	defer rows.Close()

	var trades []types.TradeRecord
	for rows.Next() {
		var (
			trade     types.TradeRecord
			openedAt  string
			resultRaw string
			status    string
			closedAt  sql.NullString
		)

		err = rows.Scan(
			&trade.ID,
			&trade.GameKey,
			&trade.Game,
			&trade.Category,
			&openedAt,
			&resultRaw,
			&trade.AmountPerLeg,
			&trade.Cost,
			&status,
			&closedAt,
			&trade.CloseReason,
			&trade.RealizedPnL,
		)
		if err != nil {
			return nil, fmt.Errorf("scan trade: %w", err)
		}

		trade.OpenedAt, err = time.Parse(time.RFC3339Nano, openedAt)
		if err != nil {
			return nil, fmt.Errorf("parse opened_at for %s: %w", trade.ID, err)
		}

		err = json.Unmarshal([]byte(resultRaw), &trade.Result)
		if err != nil {
			return nil, fmt.Errorf("unmarshal strategy result for %s: %w", trade.ID, err)
		}

		trade.Status = types.TradeStatus(status)
		if closedAt.Valid && closedAt.String != "" {
			t, parseErr := time.Parse(time.RFC3339Nano, closedAt.String)
			if parseErr == nil {
				trade.ClosedAt = t
			}
		}

		trades = append(trades, trade)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate trades: %w", err)
	}

	return trades, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	s.logger.Info("closing-sqlite-store")
	return s.db.Close()
}
