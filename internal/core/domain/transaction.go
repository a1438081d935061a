package domain

import (
	"strings"
	"time"

	"github.com/SscSPs/savings_tracker/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionKind indicates whether money came in or went out.
type TransactionKind string

const (
	Inflow  TransactionKind = "inflow"
	Outflow TransactionKind = "outflow"
)

// ParseTransactionKind normalises a kind, accepting the Indonesian labels
// used by the web client ("masuk", "keluar").
func ParseTransactionKind(raw string) (TransactionKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "inflow", "income", "masuk":
		return Inflow, nil
	case "outflow", "expense", "keluar":
		return Outflow, nil
	}
	return "", apperrors.Validationf("kind must be inflow or outflow, got %q", raw)
}

// Transaction is a single append-only ledger entry.
type Transaction struct {
	TransactionID int64           `json:"transactionID"`
	Kind          TransactionKind `json:"kind"`
	Amount        decimal.Decimal `json:"amount"` // always positive
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	OccurredAt    time.Time       `json:"occurredAt"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// NewTransaction validates the inputs and builds an unsaved Transaction.
// A zero occurredAt defaults to now.
func NewTransaction(kind TransactionKind, amount decimal.Decimal, category, description string, occurredAt, now time.Time) (Transaction, error) {
	if kind != Inflow && kind != Outflow {
		return Transaction{}, apperrors.Validationf("kind must be inflow or outflow, got %q", kind)
	}
	if err := ValidateAmount("amount", amount); err != nil {
		return Transaction{}, err
	}
	if occurredAt.IsZero() {
		occurredAt = now
	}
	return Transaction{
		Kind:        kind,
		Amount:      amount,
		Category:    strings.TrimSpace(category),
		Description: strings.TrimSpace(description),
		OccurredAt:  Timestamp(occurredAt),
		CreatedAt:   Timestamp(now),
	}, nil
}

// Signed returns the transaction's contribution to the balance.
func (t Transaction) Signed() decimal.Decimal {
	if t.Kind == Outflow {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Balance folds the signed amounts of txns. Order does not matter.
func Balance(txns []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		total = total.Add(t.Signed())
	}
	return total
}

const (
	// AmountScale is the number of fractional digits an amount may carry.
	AmountScale = 4
	// AmountIntegerDigits bounds the integer part, matching NUMERIC(20,4).
	AmountIntegerDigits = 16
)

// ValidateAmount rejects amounts that are not positive or that the store
// cannot hold exactly. It never rescales huge exponents.
func ValidateAmount(field string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperrors.Validationf("%s must be greater than 0", field)
	}
	digits := amount.NumDigits()
	exp := int(amount.Exponent())
	if digits+exp > AmountIntegerDigits {
		return apperrors.Validationf("%s must be below 10^%d (at most %d integer digits)", field, AmountIntegerDigits, AmountIntegerDigits)
	}
	if exp >= -AmountScale {
		return nil
	}
	if -exp-AmountScale > digits || !amount.Equal(amount.Truncate(AmountScale)) {
		return apperrors.Validationf("%s must have at most %d decimal places", field, AmountScale)
	}
	return nil
}

// TransactionFilter narrows a ledger listing. Zero values mean "no filter".
type TransactionFilter struct {
	Kind TransactionKind
	From time.Time // inclusive
	To   time.Time // exclusive
}

// DailyCount is the number of ledger entries on one calendar date.
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}
