package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/goccy/go-json"
	_ "github.com/lib/pq"
	"github.com/polymix/polymix/pkg/types"
	"go.uber.org/zap"
)

// PostgresStore persists the trade ledger in PostgreSQL.
type PostgresStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// PostgresConfig holds PostgreSQL configuration.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	SSLMode  string
	Logger   *zap.Logger
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS paper_trades (
	id              TEXT PRIMARY KEY,
	game_key        TEXT NOT NULL,
	game            TEXT NOT NULL,
	category        TEXT NOT NULL,
	opened_at       TIMESTAMPTZ NOT NULL,
	strategy_result JSONB NOT NULL,
	amount_per_leg  DOUBLE PRECISION NOT NULL,
	cost            DOUBLE PRECISION NOT NULL,
	status          TEXT NOT NULL,
	closed_at       TIMESTAMPTZ,
	close_reason    TEXT NOT NULL DEFAULT '',
	realized_pnl    DOUBLE PRECISION NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_paper_trades_game_key ON paper_trades(game_key);
CREATE INDEX IF NOT EXISTS idx_paper_trades_status   ON paper_trades(status);
`

// NewPostgresStore connects, pings, and applies the schema.
func NewPostgresStore(cfg *PostgresConfig) (*PostgresStore, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	err = db.Ping()
	if err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	_, err = db.Exec(postgresSchema)
	if err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	cfg.Logger.Info("postgres-store-connected",
		zap.String("host", cfg.Host),
		zap.String("database", cfg.Database))

	return &PostgresStore{db: db, logger: cfg.Logger}, nil
}

// SaveTrade inserts a newly executed trade.
func (p *PostgresStore) SaveTrade(ctx context.Context, trade *types.TradeRecord) error {
	result, err := json.Marshal(trade.Result)
	if err != nil {
		return fmt.Errorf("marshal strategy result: %w", err)
	}

	query := `
		INSERT INTO paper_trades (
			id, game_key, game, category, opened_at, strategy_result,
			amount_per_leg, cost, status, close_reason, realized_pnl
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = p.db.ExecContext(ctx, query,
		trade.ID,
		trade.GameKey,
		trade.Game,
		trade.Category,
		trade.OpenedAt,
		result,
		trade.AmountPerLeg,
		trade.Cost,
		string(trade.Status),
		trade.CloseReason,
		trade.RealizedPnL,
	)
	if err != nil {
		return fmt.Errorf("insert trade: %w", err)
	}

	p.logger.Debug("trade-stored",
		zap.String("trade-id", trade.ID),
		zap.String("game-key", trade.GameKey))

	return nil
}

// UpdateTrade records a settle/close transition.
func (p *PostgresStore) UpdateTrade(ctx context.Context, trade *types.TradeRecord) error {
	query := `
		UPDATE paper_trades
		SET status = $2, closed_at = $3, close_reason = $4, realized_pnl = $5
		WHERE id = $1
	`

	res, err := p.db.ExecContext(ctx, query,
		trade.ID,
		string(trade.Status),
		trade.ClosedAt,
		trade.CloseReason,
		trade.RealizedPnL,
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
func (p *PostgresStore) LoadTrades(ctx context.Context) ([]types.TradeRecord, error) {
	query := `
		SELECT id, game_key, game, category, opened_at, strategy_result,
		       amount_per_leg, cost, status, closed_at, close_reason, realized_pnl
		FROM paper_trades
		ORDER BY opened_at ASC
	`

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query trades: %w", err)
	}
	defer rows.Close()

	var trades []types.TradeRecord
	for rows.Next() {
		var (
			trade     types.TradeRecord
			resultRaw []byte
			status    string
			closedAt  sql.NullTime
		)

		err = rows.Scan(
			&trade.ID,
			&trade.GameKey,
			&trade.Game,
			&trade.Category,
			&trade.OpenedAt,
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

		err = json.Unmarshal(resultRaw, &trade.Result)
		if err != nil {
			return nil, fmt.Errorf("unmarshal strategy result for %s: %w", trade.ID, err)
		}

		trade.Status = types.TradeStatus(status)
		if closedAt.Valid {
			trade.ClosedAt = closedAt.Time
		}

		trades = append(trades, trade)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate trades: %w", err)
	}

	return trades, nil
}

// Close closes the database connection.
func (p *PostgresStore) Close() error {
	p.logger.Info("closing-postgres-store")
	return p.db.Close()
}
