package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/savings_tracker/internal/core/domain"
)

// ScheduleReader defines read operations for schedule entries
type ScheduleReader interface {
	// ListSchedules returns entries newest first. A nil active lists all.
	ListSchedules(ctx context.Context, active *bool) ([]domain.ScheduleEntry, error)
}

// ScheduleWriter defines write operations for schedule entries
type ScheduleWriter interface {
	// SaveSchedule inserts a new entry and returns its assigned ID.
	SaveSchedule(ctx context.Context, entry domain.ScheduleEntry) (int64, error)

	// SetScheduleActive sets the is_active flag and returns the updated entry.
	SetScheduleActive(ctx context.Context, scheduleID int64, active bool, at time.Time) (*domain.ScheduleEntry, error)

	// ToggleScheduleActive flips the is_active flag and returns the updated entry.
	ToggleScheduleActive(ctx context.Context, scheduleID int64, at time.Time) (*domain.ScheduleEntry, error)
}

// ScheduleRepositoryFacade combines all schedule repository interfaces
type ScheduleRepositoryFacade interface {
	ScheduleReader
	ScheduleWriter
}
