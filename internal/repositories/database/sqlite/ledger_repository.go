package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/SscSPs/savings_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/savings_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/savings_tracker/internal/models"
	"github.com/SscSPs/savings_tracker/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

const transactionColumns = `transaction_id, kind, amount, category, description, occurred_at, created_at`

type SQLiteLedgerRepository struct {
	BaseRepository
}

func newSQLiteLedgerRepository(db *sql.DB) *SQLiteLedgerRepository {
	return &SQLiteLedgerRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.LedgerRepositoryFacade = (*SQLiteLedgerRepository)(nil)

// SaveTransaction inserts a new ledger entry.
func (r *SQLiteLedgerRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (int64, error) {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (kind, amount, category, description, occurred_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	res, err := r.DB.ExecContext(ctx, query, m.Kind, m.Amount, m.Category, m.Description, m.OccurredAt, m.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert transaction: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read transaction id: %w", err)
	}
	return id, nil
}

// ListTransactions returns ledger entries newest first.
func (r *SQLiteLedgerRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	return queryTransactions(ctx, r.DB, filter)
}

// GetBalance folds every entry's signed amount. Amounts are stored as TEXT,
// so the sum is done with decimal arithmetic rather than SQL.
func (r *SQLiteLedgerRepository) GetBalance(ctx context.Context) (decimal.Decimal, error) {
	txns, err := queryTransactions(ctx, r.DB, domain.TransactionFilter{})
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute balance: %w", err)
	}
	return domain.Balance(txns), nil
}

// CountByDate counts entries per UTC calendar date, oldest first.
func (r *SQLiteLedgerRepository) CountByDate(ctx context.Context) ([]domain.DailyCount, error) {
	query := `
		SELECT substr(occurred_at, 1, 10) AS day, COUNT(*)
		FROM transactions
		GROUP BY day
		ORDER BY day
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily counts: %w", err)
	}
	defer rows.Close()

	counts := []domain.DailyCount{}
	for rows.Next() {
		var c domain.DailyCount
		if err := rows.Scan(&c.Date, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan daily count: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate daily counts: %w", err)
	}
	return counts, nil
}

// queryTransactions lists transactions matching filter, newest first.
// Timestamps are stored in a fixed-width UTC layout, so string comparison
// orders them chronologically.
func queryTransactions(ctx context.Context, q querier, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	var (
		where []string
		args  []any
	)
	if filter.Kind != "" {
		where = append(where, "kind = ?")
		args = append(args, string(filter.Kind))
	}
	if !filter.From.IsZero() {
		where = append(where, "occurred_at >= ?")
		args = append(args, mapping.FormatTimestamp(filter.From))
	}
	if !filter.To.IsZero() {
		where = append(where, "occurred_at < ?")
		args = append(args, mapping.FormatTimestamp(filter.To))
	}

	query := "SELECT " + transactionColumns + " FROM transactions"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY occurred_at DESC, transaction_id DESC"

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var ms []models.Transaction
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(&m.TransactionID, &m.Kind, &m.Amount, &m.Category, &m.Description, &m.OccurredAt, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return mapping.ToDomainTransactionSlice(ms)
}
