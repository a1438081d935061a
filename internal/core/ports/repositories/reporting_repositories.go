package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/savings_tracker/internal/core/domain"
)

// ReportingRepository defines read-only aggregate queries used by reports
type ReportingRepository interface {
	// GetPeriodTotals aggregates the ledger over [from, to). Zero bounds are open.
	GetPeriodTotals(ctx context.Context, from, to time.Time) (*domain.PeriodTotals, error)

	// GetMonthlyTotals returns one summary per month for the given number of
	// consecutive months starting at the month containing first.
	GetMonthlyTotals(ctx context.Context, first time.Time, months int) ([]domain.MonthlySummary, error)

	// CountTargetsByStatus returns how many targets are in each status.
	CountTargetsByStatus(ctx context.Context) (map[domain.TargetStatus]int, error)

	// CountActiveSchedules returns how many schedule entries are active.
	CountActiveSchedules(ctx context.Context) (int, error)
}
