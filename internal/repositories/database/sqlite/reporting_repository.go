package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/SscSPs/savings_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/savings_tracker/internal/core/ports/repositories"
)

// reportingRepository implements the ReportingRepository interface.
// Amounts are TEXT in SQLite, so aggregation happens in Go over the
// matching rows.
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(db *sql.DB) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{DB: db}}
}

func (r *reportingRepository) GetPeriodTotals(ctx context.Context, from, to time.Time) (*domain.PeriodTotals, error) {
	txns, err := queryTransactions(ctx, r.DB, domain.TransactionFilter{From: from, To: to})
	if err != nil {
		return nil, fmt.Errorf("error querying period totals: %w", err)
	}
	totals := domain.TotalsFor(txns)
	return &totals, nil
}

func (r *reportingRepository) GetMonthlyTotals(ctx context.Context, first time.Time, months int) ([]domain.MonthlySummary, error) {
	if months <= 0 {
		return []domain.MonthlySummary{}, nil
	}
	first = domain.StartOfMonth(first)
	filter := domain.TransactionFilter{From: first, To: first.AddDate(0, months, 0)}
	txns, err := queryTransactions(ctx, r.DB, filter)
	if err != nil {
		return nil, fmt.Errorf("error querying monthly totals: %w", err)
	}
	return domain.SummarizeByMonth(txns, first, months), nil
}

func (r *reportingRepository) CountTargetsByStatus(ctx context.Context) (map[domain.TargetStatus]int, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT status, COUNT(*) FROM targets GROUP BY status`)
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
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM schedules WHERE is_active = 1`).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting active schedules: %w", err)
	}
	return n, nil
}
