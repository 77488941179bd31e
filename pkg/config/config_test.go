package config

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/polymix/polymix/pkg/types"
)

func TestConfig_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.PolymarketFee != 0.02 {
		t.Errorf("expected PolymarketFee 0.02, got %f", cfg.PolymarketFee)
	}
	if cfg.KalshiFee != 0.07 {
		t.Errorf("expected KalshiFee 0.07, got %f", cfg.KalshiFee)
	}
	if cfg.SlippageRate != 0.005 {
		t.Errorf("expected SlippageRate 0.005, got %f", cfg.SlippageRate)
	}
	if cfg.PollInterval != 30*time.Second {
		t.Errorf("expected PollInterval 30s, got %v", cfg.PollInterval)
	}
	if cfg.InitialBalance != 10000.0 {
		t.Errorf("expected InitialBalance 10000, got %f", cfg.InitialBalance)
	}
	if cfg.StorageMode != "console" {
		t.Errorf("expected StorageMode console, got %q", cfg.StorageMode)
	}
	if len(cfg.FeedCategories) != 3 || cfg.FeedCategories[0] != "nba" {
		t.Errorf("unexpected FeedCategories: %v", cfg.FeedCategories)
	}
}

func TestConfig_CategoryParsing(t *testing.T) {
	os.Setenv("FEED_CATEGORIES", " NBA , mlb,,nhl ")
	t.Cleanup(func() {
		os.Unsetenv("FEED_CATEGORIES")
	})

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []string{"nba", "mlb", "nhl"}
	if len(cfg.FeedCategories) != len(want) {
		t.Fatalf("expected %d categories, got %v", len(want), cfg.FeedCategories)
	}
	for i, c := range want {
		if cfg.FeedCategories[i] != c {
			t.Errorf("category %d: expected %q, got %q", i, c, cfg.FeedCategories[i])
		}
	}
}

func TestConfig_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantKey string
	}{
		{"negative_polymarket_fee", "POLYMARKET_FEE", "-0.01", "POLYMARKET_FEE"},
		{"negative_kalshi_fee", "KALSHI_FEE", "-1", "KALSHI_FEE"},
		{"negative_slippage", "SLIPPAGE_RATE", "-0.005", "SLIPPAGE_RATE"},
		{"zero_bet_amount", "BET_AMOUNT", "0", "BET_AMOUNT"},
		{"zero_initial_balance", "INITIAL_BALANCE", "0", "INITIAL_BALANCE"},
		{"zero_poll_interval", "POLL_INTERVAL", "0s", "POLL_INTERVAL"},
		{"unknown_storage_mode", "STORAGE_MODE", "redis", "STORAGE_MODE"},
		{"unknown_notifier_mode", "NOTIFIER_MODE", "email", "NOTIFIER_MODE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv(tt.key, tt.value)
			t.Cleanup(func() {
				os.Unsetenv(tt.key)
			})

			_, err := LoadFromEnv()
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var cfgErr *types.ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigurationError, got %T: %v", err, err)
			}
			if cfgErr.Key != tt.wantKey {
				t.Errorf("expected key %q, got %q", tt.wantKey, cfgErr.Key)
			}
		})
	}
}

func TestConfig_TelegramRequiresCredentials(t *testing.T) {
	os.Setenv("NOTIFIER_MODE", "telegram")
	t.Cleanup(func() {
		os.Unsetenv("NOTIFIER_MODE")
	})

	_, err := LoadFromEnv()
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var cfgErr *types.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %T: %v", err, err)
	}
	if cfgErr.Key != "TELEGRAM_TOKEN" {
		t.Errorf("expected key TELEGRAM_TOKEN, got %q", cfgErr.Key)
	}

	os.Setenv("TELEGRAM_TOKEN", "123:abc")
	os.Setenv("TELEGRAM_CHAT_ID", "42")
	t.Cleanup(func() {
		os.Unsetenv("TELEGRAM_TOKEN")
		os.Unsetenv("TELEGRAM_CHAT_ID")
	})

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.TelegramChatID != 42 {
		t.Errorf("expected chat id 42, got %d", cfg.TelegramChatID)
	}
}
