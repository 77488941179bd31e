package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/polymix/polymix/internal/ledger"
	"github.com/polymix/polymix/internal/storage"
	"github.com/polymix/polymix/pkg/config"
)

// openLedger rehydrates the paper-trading ledger from the configured
// store. Console mode persists nothing, so the reporting commands require
// sqlite or postgres.
func openLedger() (*ledger.Ledger, ledger.Store, error) {
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger := zap.NewNop()

	var store ledger.Store
	switch cfg.StorageMode {
	case "postgres":
		store, err = storage.NewPostgresStore(&storage.PostgresConfig{
			Host:     cfg.PostgresHost,
			Port:     cfg.PostgresPort,
			User:     cfg.PostgresUser,
			Password: cfg.PostgresPass,
			Database: cfg.PostgresDB,
			SSLMode:  cfg.PostgresSSL,
			Logger:   logger,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres store: %w", err)
		}
	case "sqlite":
		store, err = storage.NewSQLiteStore(cfg.SQLitePath, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
	default:
		return nil, nil, fmt.Errorf("STORAGE_MODE is %q; ledger reporting needs sqlite or postgres", cfg.StorageMode)
	}

	led, err := ledger.New(ledger.Config{
		InitialBalance: cfg.InitialBalance,
		Logger:         logger,
		Store:          store,
	})
	if err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("rehydrate ledger: %w", err)
	}

	return led, store, nil
}
