package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/savings_tracker/internal/apperrors"
	"github.com/SscSPs/savings_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/savings_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/savings_tracker/internal/core/ports/services"
	"github.com/SscSPs/savings_tracker/internal/dto"
)

// ledgerService implements the LedgerSvcFacade interface
type ledgerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
}

// NewLedgerService creates a new ledger service with the provided options
func NewLedgerService(repo portsrepo.LedgerRepositoryFacade, options ...Option) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		BaseService: newBaseService(),
		ledgerRepo:  repo,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// RecordTransaction validates the request and appends it to the ledger.
// Nothing is persisted when validation fails.
func (s *ledgerService) RecordTransaction(ctx context.Context, req dto.RecordTransactionRequest) (*domain.Transaction, error) {
	kind, err := domain.ParseTransactionKind(req.Kind)
	if err != nil {
		return nil, err
	}

	var occurredAt time.Time
	if req.OccurredAt != "" {
		occurredAt, err = domain.ParseDate("occurredAt", req.OccurredAt)
		if err != nil {
			return nil, err
		}
	}

	txn, err := domain.NewTransaction(kind, req.Amount, req.Category, req.Description, occurredAt, s.Now())
	if err != nil {
		s.LogDebug(ctx, "Rejected transaction", slog.String("error", err.Error()))
		return nil, err
	}

	id, err := s.ledgerRepo.SaveTransaction(ctx, txn)
	if err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("kind", string(txn.Kind)))
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}
	txn.TransactionID = id

	s.LogInfo(ctx, "Transaction recorded",
		slog.Int64("transaction_id", id),
		slog.String("kind", string(txn.Kind)),
		slog.String("amount", txn.Amount.String()))
	s.Emit(ctx, domain.EventTransactionRecorded, txn)
	return &txn, nil
}

// ListTransactions lists ledger entries, newest first.
func (s *ledgerService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	filter, err := transactionFilterFromParams(params)
	if err != nil {
		return nil, err
	}

	txns, err := s.ledgerRepo.ListTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

// transactionFilterFromParams turns inclusive calendar dates into the
// half-open range used by the store.
func transactionFilterFromParams(params dto.ListTransactionsParams) (domain.TransactionFilter, error) {
	var filter domain.TransactionFilter
	if params.Kind != "" {
		kind, err := domain.ParseTransactionKind(params.Kind)
		if err != nil {
			return filter, err
		}
		filter.Kind = kind
	}
	from, to, err := dateRange(params.StartDate, params.EndDate)
	if err != nil {
		return filter, err
	}
	filter.From, filter.To = from, to
	return filter, nil
}

// dateRange parses optional inclusive start/end dates into [from, to).
func dateRange(start, end string) (time.Time, time.Time, error) {
	var from, to time.Time
	var err error
	if start != "" {
		if from, err = domain.ParseCalendarDate("startDate", start); err != nil {
			return from, to, err
		}
	}
	if end != "" {
		if to, err = domain.ParseCalendarDate("endDate", end); err != nil {
			return from, to, err
		}
		to = to.AddDate(0, 0, 1)
	}
	if !from.IsZero() && !to.IsZero() && !from.Before(to) {
		return from, to, apperrors.Validationf("startDate must not be after endDate")
	}
	return from, to, nil
}
