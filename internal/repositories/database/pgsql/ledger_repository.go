package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/savings_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/savings_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger entries.
func newPgxLedgerRepository(pool *pgxpool.Pool) *PgxLedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure implementation matches interface
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// SaveTransaction appends a ledger entry and returns its generated ID.
func (r *PgxLedgerRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (int64, error) {
	query := `
		INSERT INTO transactions (kind, amount, category, description, occurred_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING transaction_id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		string(txn.Kind),
		txn.Amount,
		txn.Category,
		txn.Description,
		txn.OccurredAt,
		txn.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert transaction: %w", err)
	}
	return id, nil
}

// ListTransactions returns ledger entries newest first.
func (r *PgxLedgerRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	var (
		where []string
		args  []any
	)
	if filter.Kind != "" {
		args = append(args, string(filter.Kind))
		where = append(where, fmt.Sprintf("kind = $%d", len(args)))
	}
	if !filter.From.IsZero() {
		args = append(args, filter.From)
		where = append(where, fmt.Sprintf("occurred_at >= $%d", len(args)))
	}
	if !filter.To.IsZero() {
		args = append(args, filter.To)
		where = append(where, fmt.Sprintf("occurred_at < $%d", len(args)))
	}

	query := `
		SELECT transaction_id, kind, amount, category, description, occurred_at, created_at
		FROM transactions`
	if len(where) > 0 {
		query += "\n\t\tWHERE " + strings.Join(where, " AND ")
	}
	query += "\n\t\tORDER BY occurred_at DESC, transaction_id DESC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		var t domain.Transaction
		var kind string
		err := row.Scan(&t.TransactionID, &kind, &t.Amount, &t.Category, &t.Description, &t.OccurredAt, &t.CreatedAt)
		t.Kind = domain.TransactionKind(kind)
		t.OccurredAt = t.OccurredAt.UTC()
		t.CreatedAt = t.CreatedAt.UTC()
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}
	return txns, nil
}

// GetBalance returns the signed sum of all entries.
func (r *PgxLedgerRepository) GetBalance(ctx context.Context) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN kind = 'inflow' THEN amount ELSE -amount END), 0)
		FROM transactions;
	`
	var balance decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query).Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute balance: %w", err)
	}
	return balance, nil
}

// CountByDate counts entries per UTC calendar date, oldest first.
func (r *PgxLedgerRepository) CountByDate(ctx context.Context) ([]domain.DailyCount, error) {
	query := `
		SELECT TO_CHAR(DATE(occurred_at AT TIME ZONE 'UTC'), 'YYYY-MM-DD') AS day, COUNT(*)
		FROM transactions
		GROUP BY day
		ORDER BY day;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily counts: %w", err)
	}
	defer rows.Close()

	counts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DailyCount, error) {
		var c domain.DailyCount
		err := row.Scan(&c.Date, &c.Count)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan daily counts: %w", err)
	}
	return counts, nil
}
