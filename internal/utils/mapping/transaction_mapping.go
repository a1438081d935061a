package mapping

import (
	"github.com/SscSPs/savings_tracker/internal/core/domain"
	"github.com/SscSPs/savings_tracker/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		Kind:          string(d.Kind),
		Amount:        d.Amount.String(),
		Category:      d.Category,
		Description:   d.Description,
		OccurredAt:    FormatTimestamp(d.OccurredAt),
		CreatedAt:     FormatTimestamp(d.CreatedAt),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) (domain.Transaction, error) {
	amount, err := ParseAmount("amount", m.Amount)
	if err != nil {
		return domain.Transaction{}, err
	}
	occurred, err := ParseTimestamp("occurred_at", m.OccurredAt)
	if err != nil {
		return domain.Transaction{}, err
	}
	created, err := ParseTimestamp("created_at", m.CreatedAt)
	if err != nil {
		return domain.Transaction{}, err
	}
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Kind:          domain.TransactionKind(m.Kind),
		Amount:        amount,
		Category:      m.Category,
		Description:   m.Description,
		OccurredAt:    occurred,
		CreatedAt:     created,
	}, nil
}

// ToDomainTransactionSlice converts a slice of model Transactions
func ToDomainTransactionSlice(ms []models.Transaction) ([]domain.Transaction, error) {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		d, err := ToDomainTransaction(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
