package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/savings_tracker/internal/apperrors"
	"github.com/SscSPs/savings_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeByMonth(t *testing.T) {
	txns := []domain.Transaction{
		{Kind: domain.Inflow, Amount: decimal.NewFromInt(50000), OccurredAt: time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)},
		{Kind: domain.Outflow, Amount: decimal.NewFromInt(20000), OccurredAt: time.Date(2025, 2, 28, 23, 0, 0, 0, time.UTC)},
		{Kind: domain.Inflow, Amount: decimal.NewFromInt(7), OccurredAt: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)},
		{Kind: domain.Inflow, Amount: decimal.NewFromInt(9), OccurredAt: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)},
	}

	got := domain.SummarizeByMonth(txns, time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), 3)

	require.Len(t, got, 3)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), got[0].Month)
	assert.True(t, got[0].Income.IsZero())
	assert.True(t, got[0].Expense.IsZero())
	assert.Equal(t, "50000", got[1].Income.String())
	assert.Equal(t, "20000", got[1].Expense.String())
	assert.Equal(t, "30000", got[1].Net().String())
	assert.True(t, got[2].Income.IsZero(), "out-of-range transactions are ignored")
}

func TestParseDate(t *testing.T) {
	d, err := domain.ParseDate("occurredAt", "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), d)

	d, err = domain.ParseDate("occurredAt", "2025-03-10T23:30:00+07:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 16, 30, 0, 0, time.UTC), d)

	d, err = domain.ParseCalendarDate("nextDate", "2025-03-10T23:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), d)

	_, err = domain.ParseDate("nextDate", "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = domain.ParseDate("nextDate", "10/03/2025")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestParseMonth(t *testing.T) {
	m, err := domain.ParseMonth("2025-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), m)

	_, err = domain.ParseMonth("2025-13")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestTotalsFor(t *testing.T) {
	txns := []domain.Transaction{
		{Kind: domain.Inflow, Amount: decimal.NewFromInt(100000), Category: "Gaji"},
		{Kind: domain.Outflow, Amount: decimal.NewFromInt(30000), Category: ""},
		{Kind: domain.Outflow, Amount: decimal.NewFromInt(45000), Category: "Makan"},
		{Kind: domain.Outflow, Amount: decimal.NewFromInt(5000), Category: "  "},
	}

	totals := domain.TotalsFor(txns)

	assert.Equal(t, 4, totals.TransactionCount)
	assert.Equal(t, "100000", totals.Income.String())
	assert.Equal(t, "80000", totals.Expense.String())
	require.Len(t, totals.IncomeByCategory, 1)
	assert.Equal(t, "Gaji", totals.IncomeByCategory[0].Category)
	require.Len(t, totals.ExpenseByCategory, 2)
	assert.Equal(t, "Makan", totals.ExpenseByCategory[0].Category)
	assert.Equal(t, domain.DefaultCategory, totals.ExpenseByCategory[1].Category)
	assert.Equal(t, "35000", totals.ExpenseByCategory[1].Amount.String())
}

func TestTotalsFor_Empty(t *testing.T) {
	totals := domain.TotalsFor(nil)

	assert.Zero(t, totals.TransactionCount)
	assert.True(t, totals.Income.IsZero())
	assert.NotNil(t, totals.IncomeByCategory)
	assert.Empty(t, totals.ExpenseByCategory)
}
