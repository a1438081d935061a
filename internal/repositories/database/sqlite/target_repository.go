package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/savings_tracker/internal/apperrors"
	"github.com/SscSPs/savings_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/savings_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/savings_tracker/internal/models"
	"github.com/SscSPs/savings_tracker/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

const targetColumns = `target_id, name, target_amount, current_amount, target_date, status, created_at, last_updated_at`

type SQLiteTargetRepository struct {
	BaseRepository
}

func newSQLiteTargetRepository(db *sql.DB) *SQLiteTargetRepository {
	return &SQLiteTargetRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.TargetRepositoryFacade = (*SQLiteTargetRepository)(nil)

func (r *SQLiteTargetRepository) SaveTarget(ctx context.Context, target domain.Target) (int64, error) {
	m := mapping.ToModelTarget(target)
	query := `
		INSERT INTO targets (name, target_amount, current_amount, target_date, status, created_at, last_updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	res, err := r.DB.ExecContext(ctx, query,
		m.Name, m.TargetAmount, m.CurrentAmount, m.TargetDate, m.Status, m.CreatedAt, m.LastUpdatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert target %q: %w", m.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read target id: %w", err)
	}
	return id, nil
}

func (r *SQLiteTargetRepository) FindTargetByID(ctx context.Context, targetID int64) (*domain.Target, error) {
	return findTarget(ctx, r.DB, targetID)
}

func (r *SQLiteTargetRepository) ListTargets(ctx context.Context, status domain.TargetStatus) ([]domain.Target, error) {
	query := "SELECT " + targetColumns + " FROM targets"
	var args []any
	if status != "" {
		query += " WHERE status = ?"
		args = append(args, string(status))
	}
	query += " ORDER BY created_at DESC, target_id DESC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query targets: %w", err)
	}
	defer rows.Close()

	targets := []domain.Target{}
	for rows.Next() {
		m, err := scanTarget(rows)
		if err != nil {
			return nil, err
		}
		t, err := mapping.ToDomainTarget(m)
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate targets: %w", err)
	}
	return targets, nil
}

// AddContribution reads, updates and writes the target inside one
// transaction. The pool holds a single connection, so concurrent
// contributions queue behind each other instead of losing updates.
func (r *SQLiteTargetRepository) AddContribution(ctx context.Context, targetID int64, amount decimal.Decimal, at time.Time) (*domain.Target, error) {
	var updated *domain.Target
	err := r.WithTx(ctx, func(tx *sql.Tx) error {
		target, err := findTarget(ctx, tx, targetID)
		if err != nil {
			return err
		}
		if err := target.Contribute(amount, at); err != nil {
			return err
		}

		m := mapping.ToModelTarget(*target)
		query := `
			UPDATE targets
			SET current_amount = ?, status = ?, last_updated_at = ?
			WHERE target_id = ?
		`
		if _, err := tx.ExecContext(ctx, query, m.CurrentAmount, m.Status, m.LastUpdatedAt, targetID); err != nil {
			return fmt.Errorf("failed to update target %d: %w", targetID, err)
		}
		updated = target
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func findTarget(ctx context.Context, q querier, targetID int64) (*domain.Target, error) {
	query := "SELECT " + targetColumns + " FROM targets WHERE target_id = ?"
	m, err := scanTarget(q.QueryRowContext(ctx, query, targetID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	t, err := mapping.ToDomainTarget(m)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTarget(row rowScanner) (models.Target, error) {
	var m models.Target
	err := row.Scan(&m.TargetID, &m.Name, &m.TargetAmount, &m.CurrentAmount, &m.TargetDate, &m.Status, &m.CreatedAt, &m.LastUpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return m, err
		}
		return m, fmt.Errorf("failed to scan target: %w", err)
	}
	return m, nil
}
