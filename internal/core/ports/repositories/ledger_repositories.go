package repositories

import (
	"context"

	"github.com/SscSPs/savings_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerReader defines read operations over the transaction ledger
type LedgerReader interface {
	// ListTransactions returns ledger entries newest first, narrowed by filter.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)

	// GetBalance returns the signed sum of every ledger entry.
	GetBalance(ctx context.Context) (decimal.Decimal, error)

	// CountByDate returns the number of entries per UTC calendar date, oldest first.
	CountByDate(ctx context.Context) ([]domain.DailyCount, error)
}

// LedgerWriter defines write operations for the ledger. There is deliberately
// no update or delete: the ledger is append-only.
type LedgerWriter interface {
	// SaveTransaction inserts txn and returns its assigned ID.
	SaveTransaction(ctx context.Context, txn domain.Transaction) (int64, error)
}

// LedgerRepositoryFacade combines all ledger repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
