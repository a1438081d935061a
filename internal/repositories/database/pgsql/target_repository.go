package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/savings_tracker/internal/apperrors"
	"github.com/SscSPs/savings_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/savings_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const targetColumns = `target_id, name, target_amount, current_amount, target_date, status, created_at, last_updated_at`

type PgxTargetRepository struct {
	BaseRepository
}

// newPgxTargetRepository creates a new repository for savings targets.
func newPgxTargetRepository(pool *pgxpool.Pool) *PgxTargetRepository {
	return &PgxTargetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TargetRepositoryFacade = (*PgxTargetRepository)(nil)

func (r *PgxTargetRepository) SaveTarget(ctx context.Context, target domain.Target) (int64, error) {
	query := `
		INSERT INTO targets (name, target_amount, current_amount, target_date, status, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING target_id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		target.Name,
		target.TargetAmount,
		target.CurrentAmount,
		target.TargetDate,
		string(target.Status),
		target.CreatedAt,
		target.LastUpdatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert target %q: %w", target.Name, err)
	}
	return id, nil
}

func (r *PgxTargetRepository) FindTargetByID(ctx context.Context, targetID int64) (*domain.Target, error) {
	query := `SELECT ` + targetColumns + ` FROM targets WHERE target_id = $1;`
	target, err := scanTarget(r.Pool.QueryRow(ctx, query, targetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find target %d: %w", targetID, err)
	}
	return target, nil
}

func (r *PgxTargetRepository) ListTargets(ctx context.Context, status domain.TargetStatus) ([]domain.Target, error) {
	query := `SELECT ` + targetColumns + ` FROM targets`
	var args []any
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, string(status))
	}
	query += ` ORDER BY created_at DESC, target_id DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query targets: %w", err)
	}
	defer rows.Close()

	targets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Target, error) {
		t, err := scanTarget(row)
		if err != nil {
			return domain.Target{}, err
		}
		return *t, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan targets: %w", err)
	}
	return targets, nil
}

// AddContribution applies the increment and the status recomputation in a
// single UPDATE, so concurrent contributions serialise on the row lock.
func (r *PgxTargetRepository) AddContribution(ctx context.Context, targetID int64, amount decimal.Decimal, at time.Time) (*domain.Target, error) {
	if err := domain.ValidateAmount("amount", amount); err != nil {
		return nil, err
	}
	query := `
		UPDATE targets
		SET current_amount = current_amount + $1,
			status = CASE WHEN current_amount + $1 >= target_amount THEN 'completed' ELSE 'ongoing' END,
			last_updated_at = $2
		WHERE target_id = $3
		RETURNING ` + targetColumns + `;`

	target, err := scanTarget(r.Pool.QueryRow(ctx, query, amount, domain.Timestamp(at), targetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to add contribution to target %d: %w", targetID, err)
	}
	return target, nil
}

func scanTarget(row pgx.Row) (*domain.Target, error) {
	var t domain.Target
	var status string
	err := row.Scan(
		&t.TargetID,
		&t.Name,
		&t.TargetAmount,
		&t.CurrentAmount,
		&t.TargetDate,
		&status,
		&t.CreatedAt,
		&t.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.Status = domain.TargetStatus(status)
	t.TargetDate = domain.StartOfDay(t.TargetDate)
	t.CreatedAt = t.CreatedAt.UTC()
	t.LastUpdatedAt = t.LastUpdatedAt.UTC()
	return &t, nil
}
