package services

import (
	"context"
	"time"

	"github.com/SscSPs/savings_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingService defines read-only views derived from the ledger
type ReportingService interface {
	// TotalBalance returns the current ledger balance.
	TotalBalance(ctx context.Context) (decimal.Decimal, error)

	// MonthlySummary returns income and expense for the month containing month.
	// A zero month means the current month.
	MonthlySummary(ctx context.Context, month time.Time) (*domain.MonthlySummary, error)

	// DailyCounts returns ledger entry counts per calendar date.
	DailyCounts(ctx context.Context) ([]domain.DailyCount, error)

	// PeriodReport aggregates the ledger between two inclusive calendar dates.
	// Zero dates leave that side open.
	PeriodReport(ctx context.Context, startDate, endDate time.Time) (*domain.PeriodReport, error)

	// Statistics builds the dashboard view with a timeline of the given length.
	Statistics(ctx context.Context, months int) (*domain.Statistics, error)
}
