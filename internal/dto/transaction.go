package dto

import (
	"time"

	"github.com/SscSPs/savings_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordTransactionRequest defines the data needed to append a ledger entry.
type RecordTransactionRequest struct {
	Kind        string          `json:"kind" binding:"required,txnkind"`
	Amount      decimal.Decimal `json:"amount" binding:"required,amount"`
	OccurredAt  string          `json:"occurredAt" binding:"omitempty,calendardate"`
	Category    string          `json:"category" binding:"max=64"`
	Description string          `json:"description" binding:"max=500"`
}

// ListTransactionsParams defines the optional filters for listing the ledger.
type ListTransactionsParams struct {
	Kind      string `form:"kind" binding:"omitempty,txnkind"`
	StartDate string `form:"startDate" binding:"omitempty,calendardate"`
	EndDate   string `form:"endDate" binding:"omitempty,calendardate"`
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	TransactionID int64                  `json:"id"`
	Kind          domain.TransactionKind `json:"kind"`
	Amount        decimal.Decimal        `json:"amount"`
	Category      string                 `json:"category"`
	Description   string                 `json:"description"`
	OccurredAt    time.Time              `json:"occurredAt"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// BalanceResponse is the current ledger balance.
type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Kind:          t.Kind,
		Amount:        t.Amount,
		Category:      t.Category,
		Description:   t.Description,
		OccurredAt:    t.OccurredAt,
		CreatedAt:     t.CreatedAt,
	}
}

// ToTransactionResponses converts a slice, never returning nil.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i := range txns {
		out[i] = ToTransactionResponse(&txns[i])
	}
	return out
}
