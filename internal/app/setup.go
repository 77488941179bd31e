package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/polymix/polymix/internal/feed"
	"github.com/polymix/polymix/internal/ledger"
	"github.com/polymix/polymix/internal/monitor"
	"github.com/polymix/polymix/internal/notify"
	"github.com/polymix/polymix/internal/storage"
	"github.com/polymix/polymix/internal/strategy"
	"github.com/polymix/polymix/pkg/cache"
	"github.com/polymix/polymix/pkg/config"
	"github.com/polymix/polymix/pkg/healthprobe"
	"github.com/polymix/polymix/pkg/httpserver"
)

// New creates a new application instance. The ledger rehydrates from
// storage here, so open positions survive a restart.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	ctx, cancel := context.WithCancel(context.Background())

	probe := healthprobe.New()

	feedCache, err := setupCache(logger)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("setup cache: %w", err)
	}

	store, err := setupStore(cfg, logger)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("setup storage: %w", err)
	}

	led, err := ledger.New(ledger.Config{
		InitialBalance: cfg.InitialBalance,
		Logger:         logger,
		Store:          store,
	})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("setup ledger: %w", err)
	}

	notifier, err := setupNotifier(cfg, logger)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("setup notifier: %w", err)
	}

	marketFeed := setupFeed(cfg, logger, feedCache)
	mon := setupMonitor(cfg, logger, marketFeed, led, notifier)
	httpServer := setupHTTPServer(cfg, logger, probe, led)

	return &App{
		cfg:        cfg,
		logger:     logger,
		probe:      probe,
		httpServer: httpServer,
		feedCache:  feedCache,
		store:      store,
		ledger:     led,
		notifier:   notifier,
		monitor:    mon,
		ctx:        ctx,
		cancel:     cancel,
	}, nil
}

func setupCache(logger *zap.Logger) (cache.Cache, error) {
	return cache.NewRistrettoCache(&cache.RistrettoConfig{
		NumCounters: 1000, // 10x expected max items (one entry per category)
		MaxCost:     100,
		BufferItems: 64,
		Logger:      logger,
	})
}

func setupStore(cfg *config.Config, logger *zap.Logger) (ledger.Store, error) {
	switch cfg.StorageMode {
	case "postgres":
		store, err := storage.NewPostgresStore(&storage.PostgresConfig{
			Host:     cfg.PostgresHost,
			Port:     cfg.PostgresPort,
			User:     cfg.PostgresUser,
			Password: cfg.PostgresPass,
			Database: cfg.PostgresDB,
			SSLMode:  cfg.PostgresSSL,
			Logger:   logger,
		})
		if err != nil {
			return nil, fmt.Errorf("create postgres store: %w", err)
		}
		return store, nil
	case "sqlite":
		store, err := storage.NewSQLiteStore(cfg.SQLitePath, logger)
		if err != nil {
			return nil, fmt.Errorf("create sqlite store: %w", err)
		}
		return store, nil
	default:
		return storage.NewConsoleStore(logger), nil
	}
}

func setupNotifier(cfg *config.Config, logger *zap.Logger) (notify.Notifier, error) {
	var inner notify.Notifier
	if cfg.NotifierMode == "telegram" {
		telegram, err := notify.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID, logger)
		if err != nil {
			return nil, fmt.Errorf("create telegram notifier: %w", err)
		}
		inner = telegram
	} else {
		inner = notify.NewConsoleNotifier(logger)
	}

	return notify.NewThrottled(inner, cfg.NotifyMaxPerDay, cfg.NotifyMinInterval, logger), nil
}

func setupFeed(cfg *config.Config, logger *zap.Logger, feedCache cache.Cache) feed.Feed {
	client := feed.NewClient(&feed.ClientConfig{
		BaseURL:        cfg.FeedBaseURL,
		Timeout:        cfg.FeedTimeout,
		RequestsPerSec: cfg.FeedRateLimit,
		Logger:         logger,
	})
	return feed.NewCachedFeed(client, feedCache, cfg.FeedCacheTTL, logger)
}

func setupMonitor(
	cfg *config.Config,
	logger *zap.Logger,
	marketFeed feed.Feed,
	led *ledger.Ledger,
	notifier notify.Notifier,
) *monitor.Monitor {
	return monitor.New(monitor.Config{
		Categories: cfg.FeedCategories,
		Interval:   cfg.PollInterval,
		MinROI:     cfg.MinROIPercent,
		BetAmount:  cfg.BetAmount,
		Fees: strategy.Fees{
			PolymarketFee: cfg.PolymarketFee,
			KalshiFee:     cfg.KalshiFee,
			Slippage:      cfg.SlippageRate,
		},
		Logger: logger,
	}, marketFeed, led, notifier)
}

func setupHTTPServer(
	cfg *config.Config,
	logger *zap.Logger,
	probe *healthprobe.Probe,
	led *ledger.Ledger,
) *httpserver.Server {
	return httpserver.New(&httpserver.Config{
		Port:   cfg.HTTPPort,
		Logger: logger,
		Probe:  probe,
		Ledger: led,
	})
}
