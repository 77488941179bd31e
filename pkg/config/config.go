package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/polymix/polymix/pkg/types"
)

// Config holds all application configuration.
type Config struct {
	// Application
	LogLevel string
	HTTPPort string

	// Feed
	FeedBaseURL    string
	FeedCategories []string
	FeedTimeout    time.Duration
	FeedCacheTTL   time.Duration
	FeedRateLimit  float64

	// Strategy
	PolymarketFee float64
	KalshiFee     float64
	SlippageRate  float64
	MinROIPercent float64

	// Paper trading
	BetAmount      float64
	InitialBalance float64

	// Monitor
	PollInterval time.Duration

	// Storage
	StorageMode  string // "console", "sqlite" or "postgres"
	SQLitePath   string
	PostgresHost string
	PostgresPort string
	PostgresUser string
	PostgresPass string
	PostgresDB   string
	PostgresSSL  string

	// Notifications
	NotifierMode      string // "console" or "telegram"
	TelegramToken     string
	TelegramChatID    int64
	NotifyMaxPerDay   int
	NotifyMinInterval time.Duration
}

// LoadFromEnv loads configuration from environment variables with defaults.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		// Application defaults
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
		HTTPPort: getEnvOrDefault("HTTP_PORT", "8080"),

		// Feed defaults
		FeedBaseURL:    getEnvOrDefault("FEED_BASE_URL", "http://localhost:5000"),
		FeedCategories: splitCategories(getEnvOrDefault("FEED_CATEGORIES", "nba,nfl,nhl")),
		FeedTimeout:    getDurationOrDefault("FEED_TIMEOUT", 10*time.Second),
		FeedCacheTTL:   getDurationOrDefault("FEED_CACHE_TTL", 30*time.Second),
		FeedRateLimit:  getFloat64OrDefault("FEED_RATE_LIMIT", 5.0),

		// Strategy defaults
		PolymarketFee: getFloat64OrDefault("POLYMARKET_FEE", 0.02),
		KalshiFee:     getFloat64OrDefault("KALSHI_FEE", 0.07),
		SlippageRate:  getFloat64OrDefault("SLIPPAGE_RATE", 0.005),
		MinROIPercent: getFloat64OrDefault("MIN_ROI_PERCENT", 0.0),

		// Paper trading defaults
		BetAmount:      getFloat64OrDefault("BET_AMOUNT", 100.0),
		InitialBalance: getFloat64OrDefault("INITIAL_BALANCE", 10000.0),

		// Monitor defaults
		PollInterval: getDurationOrDefault("POLL_INTERVAL", 30*time.Second),

		// Storage defaults
		StorageMode:  getEnvOrDefault("STORAGE_MODE", "console"),
		SQLitePath:   getEnvOrDefault("SQLITE_PATH", "polymix.db"),
		PostgresHost: getEnvOrDefault("POSTGRES_HOST", "localhost"),
		PostgresPort: getEnvOrDefault("POSTGRES_PORT", "5432"),
		PostgresUser: getEnvOrDefault("POSTGRES_USER", "polymix"),
		PostgresPass: getEnvOrDefault("POSTGRES_PASSWORD", "polymix123"),
		PostgresDB:   getEnvOrDefault("POSTGRES_DB", "polymix"),
		PostgresSSL:  getEnvOrDefault("POSTGRES_SSLMODE", "disable"),

		// Notification defaults
		NotifierMode:      getEnvOrDefault("NOTIFIER_MODE", "console"),
		TelegramToken:     os.Getenv("TELEGRAM_TOKEN"),
		TelegramChatID:    getInt64OrDefault("TELEGRAM_CHAT_ID", 0),
		NotifyMaxPerDay:   getIntOrDefault("NOTIFY_MAX_PER_DAY", 10),
		NotifyMinInterval: getDurationOrDefault("NOTIFY_MIN_INTERVAL", 30*time.Minute),
	}

	err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Validate checks that configuration values are valid.
func (c *Config) Validate() error {
	if c.HTTPPort == "" {
		return &types.ConfigurationError{Key: "HTTP_PORT", Message: "cannot be empty"}
	}

	if c.FeedBaseURL == "" {
		return &types.ConfigurationError{Key: "FEED_BASE_URL", Message: "cannot be empty"}
	}

	if len(c.FeedCategories) == 0 {
		return &types.ConfigurationError{Key: "FEED_CATEGORIES", Message: "cannot be empty"}
	}

	if c.FeedRateLimit <= 0 {
		return &types.ConfigurationError{
			Key:     "FEED_RATE_LIMIT",
			Message: fmt.Sprintf("must be positive, got %f", c.FeedRateLimit),
		}
	}

	if c.PolymarketFee < 0 {
		return &types.ConfigurationError{
			Key:     "POLYMARKET_FEE",
			Message: fmt.Sprintf("cannot be negative, got %f", c.PolymarketFee),
		}
	}

	if c.KalshiFee < 0 {
		return &types.ConfigurationError{
			Key:     "KALSHI_FEE",
			Message: fmt.Sprintf("cannot be negative, got %f", c.KalshiFee),
		}
	}

	if c.SlippageRate < 0 {
		return &types.ConfigurationError{
			Key:     "SLIPPAGE_RATE",
			Message: fmt.Sprintf("cannot be negative, got %f", c.SlippageRate),
		}
	}

	if c.BetAmount <= 0 {
		return &types.ConfigurationError{
			Key:     "BET_AMOUNT",
			Message: fmt.Sprintf("must be positive, got %f", c.BetAmount),
		}
	}

	if c.InitialBalance <= 0 {
		return &types.ConfigurationError{
			Key:     "INITIAL_BALANCE",
			Message: fmt.Sprintf("must be positive, got %f", c.InitialBalance),
		}
	}

	if c.PollInterval <= 0 {
		return &types.ConfigurationError{
			Key:     "POLL_INTERVAL",
			Message: fmt.Sprintf("must be positive, got %s", c.PollInterval),
		}
	}

	switch c.StorageMode {
	case "console", "sqlite", "postgres":
	default:
		return &types.ConfigurationError{
			Key:     "STORAGE_MODE",
			Message: fmt.Sprintf("must be 'console', 'sqlite' or 'postgres', got %q", c.StorageMode),
		}
	}

	switch c.NotifierMode {
	case "console":
	case "telegram":
		if c.TelegramToken == "" {
			return &types.ConfigurationError{Key: "TELEGRAM_TOKEN", Message: "required when NOTIFIER_MODE is 'telegram'"}
		}
		if c.TelegramChatID == 0 {
			return &types.ConfigurationError{Key: "TELEGRAM_CHAT_ID", Message: "required when NOTIFIER_MODE is 'telegram'"}
		}
	default:
		return &types.ConfigurationError{
			Key:     "NOTIFIER_MODE",
			Message: fmt.Sprintf("must be 'console' or 'telegram', got %q", c.NotifierMode),
		}
	}

	if c.NotifyMaxPerDay < 0 {
		return &types.ConfigurationError{
			Key:     "NOTIFY_MAX_PER_DAY",
			Message: fmt.Sprintf("cannot be negative, got %d", c.NotifyMaxPerDay),
		}
	}

	return nil
}

func splitCategories(value string) []string {
	parts := strings.Split(value, ",")
	categories := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			categories = append(categories, p)
		}
	}
	return categories
}

func getEnvOrDefault(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intVal
}

func getInt64OrDefault(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intVal, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return defaultValue
	}

	return intVal
}

func getFloat64OrDefault(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	floatVal, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}

	return floatVal
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}
