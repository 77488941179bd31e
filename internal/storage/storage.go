// Package storage provides the persistence backends for the paper-trading
// ledger: postgres, sqlite, and a log-only console mode.
package storage

import "github.com/polymix/polymix/internal/ledger"

// Every backend satisfies the ledger's Store contract.
var (
	_ ledger.Store = (*PostgresStore)(nil)
	_ ledger.Store = (*SQLiteStore)(nil)
	_ ledger.Store = (*ConsoleStore)(nil)
)
