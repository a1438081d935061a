package services

import (
	"context"

	"github.com/SscSPs/savings_tracker/internal/core/domain"
	"github.com/SscSPs/savings_tracker/internal/dto"
)

// ScheduleReaderSvc defines read operations for schedule entries
type ScheduleReaderSvc interface {
	ListSchedules(ctx context.Context, params dto.ListSchedulesParams) ([]domain.ScheduleEntry, error)
}

// ScheduleWriterSvc defines write operations for schedule entries
type ScheduleWriterSvc interface {
	CreateSchedule(ctx context.Context, req dto.CreateScheduleRequest) (*domain.ScheduleEntry, error)

	// SetActive sets the active flag, or flips it when req.IsActive is nil.
	SetActive(ctx context.Context, scheduleID int64, req dto.ToggleScheduleRequest) (*domain.ScheduleEntry, error)
}

// ScheduleSvcFacade combines all schedule-related service interfaces
type ScheduleSvcFacade interface {
	ScheduleReaderSvc
	ScheduleWriterSvc
}
