package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/savings_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/savings_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetPeriodTotals aggregates income and expense per category over [from, to).
func (r *reportingRepository) GetPeriodTotals(ctx context.Context, from, to time.Time) (*domain.PeriodTotals, error) {
	query := `
		SELECT
			kind,
			COALESCE(NULLIF(TRIM(category), ''), $1) AS category,
			SUM(amount) AS total,
			COUNT(*) AS n
		FROM transactions
		WHERE ($2::timestamptz IS NULL OR occurred_at >= $2)
			AND ($3::timestamptz IS NULL OR occurred_at < $3)
		GROUP BY kind, 2
	`

	rows, err := r.Pool.Query(ctx, query, domain.DefaultCategory, nullableTime(from), nullableTime(to))
	if err != nil {
		return nil, fmt.Errorf("error querying period totals: %w", err)
	}
	defer rows.Close()

	totals := &domain.PeriodTotals{
		Income:            decimal.Zero,
		Expense:           decimal.Zero,
		IncomeByCategory:  []domain.CategoryAmount{},
		ExpenseByCategory: []domain.CategoryAmount{},
	}
	for rows.Next() {
		var kind, category string
		var amount decimal.Decimal
		var n int
		if err := rows.Scan(&kind, &category, &amount, &n); err != nil {
			return nil, fmt.Errorf("error scanning period totals row: %w", err)
		}

		totals.TransactionCount += n
		entry := domain.CategoryAmount{Category: category, Amount: amount}
		if domain.TransactionKind(kind) == domain.Inflow {
			totals.Income = totals.Income.Add(amount)
			totals.IncomeByCategory = append(totals.IncomeByCategory, entry)
		} else {
			totals.Expense = totals.Expense.Add(amount)
			totals.ExpenseByCategory = append(totals.ExpenseByCategory, entry)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating period totals rows: %w", err)
	}

	domain.SortCategoryAmounts(totals.IncomeByCategory)
	domain.SortCategoryAmounts(totals.ExpenseByCategory)
	return totals, nil
}

// GetMonthlyTotals buckets the ledger by UTC month and zero-fills the gaps.
func (r *reportingRepository) GetMonthlyTotals(ctx context.Context, first time.Time, months int) ([]domain.MonthlySummary, error) {
	if months <= 0 {
		return []domain.MonthlySummary{}, nil
	}
	first = domain.StartOfMonth(first)
	end := first.AddDate(0, months, 0)

	query := `
		SELECT
			DATE_TRUNC('month', occurred_at AT TIME ZONE 'UTC') AS month,
			COALESCE(SUM(CASE WHEN kind = 'inflow' THEN amount ELSE 0 END), 0) AS income,
			COALESCE(SUM(CASE WHEN kind = 'outflow' THEN amount ELSE 0 END), 0) AS expense
		FROM transactions
		WHERE occurred_at >= $1 AND occurred_at < $2
		GROUP BY month
	`
	rows, err := r.Pool.Query(ctx, query, first, end)
	if err != nil {
		return nil, fmt.Errorf("error querying monthly totals: %w", err)
	}
	defer rows.Close()

	// Start from an empty timeline so months without rows report zeros.
	summaries := domain.SummarizeByMonth(nil, first, months)
	for rows.Next() {
		var month time.Time
		var income, expense decimal.Decimal
		if err := rows.Scan(&month, &income, &expense); err != nil {
			return nil, fmt.Errorf("error scanning monthly totals row: %w", err)
		}
		month = domain.StartOfMonth(month)
		idx := (month.Year()-first.Year())*12 + int(month.Month()) - int(first.Month())
		if idx < 0 || idx >= months {
			continue
		}
		summaries[idx].Income = income
		summaries[idx].Expense = expense
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly totals rows: %w", err)
	}
	return summaries, nil
}

func (r *reportingRepository) CountTargetsByStatus(ctx context.Context) (map[domain.TargetStatus]int, error) {
	rows, err := r.Pool.Query(ctx, `SELECT status, COUNT(*) FROM targets GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("error counting targets: %w", err)
	}
	defer rows.Close()

	counts := map[domain.TargetStatus]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("error scanning target count: %w", err)
		}
		counts[domain.TargetStatus(status)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating target counts: %w", err)
	}
	return counts, nil
}

func (r *reportingRepository) CountActiveSchedules(ctx context.Context) (int, error) {
	var n int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM schedules WHERE is_active`).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting active schedules: %w", err)
	}
	return n, nil
}

// nullableTime turns an open (zero) bound into SQL NULL.
func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
