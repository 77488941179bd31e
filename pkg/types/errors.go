package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for the engine's failure taxonomy. Per-record errors
// reject the single record, ledger errors reject the single trade, and
// configuration errors are fatal at startup.
var (
	// ErrZeroOrInvalidPrice rejects a record whose quoted price is <= 0.
	ErrZeroOrInvalidPrice = errors.New("zero or invalid price")

	// ErrInsufficientBalance rejects an execute that would exceed available funds.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrDuplicateOpenPosition rejects an execute for a game key that already
	// has an OPEN trade.
	ErrDuplicateOpenPosition = errors.New("duplicate open position")

	// ErrTradeNotFound is returned by settle/close for an unknown game key.
	ErrTradeNotFound = errors.New("trade not found")
)

// InputDataError marks a malformed record. It isolates the record and
// never aborts the batch.
type InputDataError struct {
	GameKey string
	Field   string
	Err     error
}

func (e *InputDataError) Error() string {
	return fmt.Sprintf("input data error for %s (%s): %v", e.GameKey, e.Field, e.Err)
}

func (e *InputDataError) Unwrap() error {
	return e.Err
}

// FeedUnavailable marks a failed fetch for one category. The monitor
// degrades the category to an empty batch for the cycle.
type FeedUnavailable struct {
	Category string
	Err      error
}

func (e *FeedUnavailable) Error() string {
	return fmt.Sprintf("feed unavailable for category %q: %v", e.Category, e.Err)
}

func (e *FeedUnavailable) Unwrap() error {
	return e.Err
}

// ConfigurationError is fatal at startup; the process never degrades
// silently on bad configuration.
type ConfigurationError struct {
	Key     string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration %s: %s", e.Key, e.Message)
}
