package services

import (
	"context"

	"github.com/SscSPs/savings_tracker/internal/core/domain"
	"github.com/SscSPs/savings_tracker/internal/dto"
)

// LedgerReaderSvc defines read operations over the ledger
type LedgerReaderSvc interface {
	// ListTransactions lists ledger entries newest first.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error)
}

// LedgerWriterSvc defines write operations for the ledger
type LedgerWriterSvc interface {
	// RecordTransaction validates and appends a ledger entry.
	RecordTransaction(ctx context.Context, req dto.RecordTransactionRequest) (*domain.Transaction, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
