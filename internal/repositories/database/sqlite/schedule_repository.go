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
)

const scheduleColumns = `schedule_id, kind, amount, frequency, next_date, description, is_active, created_at, last_updated_at`

type SQLiteScheduleRepository struct {
	BaseRepository
}

func newSQLiteScheduleRepository(db *sql.DB) *SQLiteScheduleRepository {
	return &SQLiteScheduleRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.ScheduleRepositoryFacade = (*SQLiteScheduleRepository)(nil)

func (r *SQLiteScheduleRepository) SaveSchedule(ctx context.Context, entry domain.ScheduleEntry) (int64, error) {
	m := mapping.ToModelSchedule(entry)
	query := `
		INSERT INTO schedules (kind, amount, frequency, next_date, description, is_active, created_at, last_updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	res, err := r.DB.ExecContext(ctx, query,
		m.Kind, m.Amount, m.Frequency, m.NextDate, m.Description, boolToInt(m.IsActive), m.CreatedAt, m.LastUpdatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert schedule entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read schedule id: %w", err)
	}
	return id, nil
}

func (r *SQLiteScheduleRepository) ListSchedules(ctx context.Context, active *bool) ([]domain.ScheduleEntry, error) {
	query := "SELECT " + scheduleColumns + " FROM schedules"
	var args []any
	if active != nil {
		query += " WHERE is_active = ?"
		args = append(args, boolToInt(*active))
	}
	query += " ORDER BY created_at DESC, schedule_id DESC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.ScheduleEntry{}
	for rows.Next() {
		m, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		e, err := mapping.ToDomainSchedule(m)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate schedule entries: %w", err)
	}
	return entries, nil
}

func (r *SQLiteScheduleRepository) SetScheduleActive(ctx context.Context, scheduleID int64, active bool, at time.Time) (*domain.ScheduleEntry, error) {
	return r.updateActive(ctx, scheduleID, at, func(bool) bool { return active })
}

func (r *SQLiteScheduleRepository) ToggleScheduleActive(ctx context.Context, scheduleID int64, at time.Time) (*domain.ScheduleEntry, error) {
	return r.updateActive(ctx, scheduleID, at, func(current bool) bool { return !current })
}

func (r *SQLiteScheduleRepository) updateActive(ctx context.Context, scheduleID int64, at time.Time, next func(bool) bool) (*domain.ScheduleEntry, error) {
	var updated *domain.ScheduleEntry
	err := r.WithTx(ctx, func(tx *sql.Tx) error {
		entry, err := findSchedule(ctx, tx, scheduleID)
		if err != nil {
			return err
		}
		entry.IsActive = next(entry.IsActive)
		entry.LastUpdatedAt = domain.Timestamp(at)

		query := `UPDATE schedules SET is_active = ?, last_updated_at = ? WHERE schedule_id = ?`
		if _, err := tx.ExecContext(ctx, query, boolToInt(entry.IsActive), mapping.FormatTimestamp(at), scheduleID); err != nil {
			return fmt.Errorf("failed to update schedule entry %d: %w", scheduleID, err)
		}
		updated = entry
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func findSchedule(ctx context.Context, q querier, scheduleID int64) (*domain.ScheduleEntry, error) {
	query := "SELECT " + scheduleColumns + " FROM schedules WHERE schedule_id = ?"
	m, err := scanSchedule(q.QueryRowContext(ctx, query, scheduleID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	e, err := mapping.ToDomainSchedule(m)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func scanSchedule(row rowScanner) (models.Schedule, error) {
	var m models.Schedule
	err := row.Scan(&m.ScheduleID, &m.Kind, &m.Amount, &m.Frequency, &m.NextDate, &m.Description, &m.IsActive, &m.CreatedAt, &m.LastUpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return m, err
		}
		return m, fmt.Errorf("failed to scan schedule entry: %w", err)
	}
	return m, nil
}
