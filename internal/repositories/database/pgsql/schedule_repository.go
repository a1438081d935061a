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
)

const scheduleColumns = `schedule_id, kind, amount, frequency, next_date, description, is_active, created_at, last_updated_at`

type PgxScheduleRepository struct {
	BaseRepository
}

// newPgxScheduleRepository creates a new repository for schedule entries.
func newPgxScheduleRepository(pool *pgxpool.Pool) *PgxScheduleRepository {
	return &PgxScheduleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ScheduleRepositoryFacade = (*PgxScheduleRepository)(nil)

func (r *PgxScheduleRepository) SaveSchedule(ctx context.Context, entry domain.ScheduleEntry) (int64, error) {
	query := `
		INSERT INTO schedules (kind, amount, frequency, next_date, description, is_active, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING schedule_id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		string(entry.Kind),
		entry.Amount,
		string(entry.Frequency),
		entry.NextDate,
		entry.Description,
		entry.IsActive,
		entry.CreatedAt,
		entry.LastUpdatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert schedule entry: %w", err)
	}
	return id, nil
}

func (r *PgxScheduleRepository) ListSchedules(ctx context.Context, active *bool) ([]domain.ScheduleEntry, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules`
	var args []any
	if active != nil {
		query += ` WHERE is_active = $1`
		args = append(args, *active)
	}
	query += ` ORDER BY created_at DESC, schedule_id DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule entries: %w", err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ScheduleEntry, error) {
		e, err := scanSchedule(row)
		if err != nil {
			return domain.ScheduleEntry{}, err
		}
		return *e, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan schedule entries: %w", err)
	}
	return entries, nil
}

func (r *PgxScheduleRepository) SetScheduleActive(ctx context.Context, scheduleID int64, active bool, at time.Time) (*domain.ScheduleEntry, error) {
	query := `
		UPDATE schedules SET is_active = $1, last_updated_at = $2
		WHERE schedule_id = $3
		RETURNING ` + scheduleColumns + `;`
	return r.updateReturning(ctx, scheduleID, query, active, domain.Timestamp(at), scheduleID)
}

func (r *PgxScheduleRepository) ToggleScheduleActive(ctx context.Context, scheduleID int64, at time.Time) (*domain.ScheduleEntry, error) {
	query := `
		UPDATE schedules SET is_active = NOT is_active, last_updated_at = $1
		WHERE schedule_id = $2
		RETURNING ` + scheduleColumns + `;`
	return r.updateReturning(ctx, scheduleID, query, domain.Timestamp(at), scheduleID)
}

func (r *PgxScheduleRepository) updateReturning(ctx context.Context, scheduleID int64, query string, args ...any) (*domain.ScheduleEntry, error) {
	entry, err := scanSchedule(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update schedule entry %d: %w", scheduleID, err)
	}
	return entry, nil
}

func scanSchedule(row pgx.Row) (*domain.ScheduleEntry, error) {
	var e domain.ScheduleEntry
	var kind, frequency string
	err := row.Scan(
		&e.ScheduleID,
		&kind,
		&e.Amount,
		&frequency,
		&e.NextDate,
		&e.Description,
		&e.IsActive,
		&e.CreatedAt,
		&e.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Kind = domain.TransactionKind(kind)
	e.Frequency = domain.Frequency(frequency)
	e.NextDate = domain.StartOfDay(e.NextDate)
	e.CreatedAt = e.CreatedAt.UTC()
	e.LastUpdatedAt = e.LastUpdatedAt.UTC()
	return &e, nil
}
