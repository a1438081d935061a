package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/savings_tracker/internal/apperrors"
	"github.com/SscSPs/savings_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/savings_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/savings_tracker/internal/core/ports/services"
	"github.com/SscSPs/savings_tracker/internal/dto"
)

// scheduleService implements the ScheduleSvcFacade interface.
// It only stores declarations; nothing here materialises transactions.
type scheduleService struct {
	BaseService
	scheduleRepo portsrepo.ScheduleRepositoryFacade
}

// NewScheduleService creates a new schedule service with the provided options
func NewScheduleService(repo portsrepo.ScheduleRepositoryFacade, options ...Option) portssvc.ScheduleSvcFacade {
	svc := &scheduleService{
		BaseService:  newBaseService(),
		scheduleRepo: repo,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.ScheduleSvcFacade = (*scheduleService)(nil)

func (s *scheduleService) CreateSchedule(ctx context.Context, req dto.CreateScheduleRequest) (*domain.ScheduleEntry, error) {
	kind, err := domain.ParseTransactionKind(req.Kind)
	if err != nil {
		return nil, err
	}
	freq, err := domain.ParseFrequency(req.Frequency)
	if err != nil {
		return nil, err
	}
	nextDate, err := domain.ParseCalendarDate("nextDate", req.NextDate)
	if err != nil {
		return nil, err
	}

	entry, err := domain.NewScheduleEntry(kind, req.Amount, freq, nextDate, req.Description, s.Now())
	if err != nil {
		return nil, err
	}

	id, err := s.scheduleRepo.SaveSchedule(ctx, entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to save schedule entry")
		return nil, fmt.Errorf("failed to create schedule entry: %w", err)
	}
	entry.ScheduleID = id

	s.LogInfo(ctx, "Schedule entry created",
		slog.Int64("schedule_id", id),
		slog.String("frequency", string(entry.Frequency)))
	s.Emit(ctx, domain.EventScheduleCreated, entry)
	return &entry, nil
}

func (s *scheduleService) SetActive(ctx context.Context, scheduleID int64, req dto.ToggleScheduleRequest) (*domain.ScheduleEntry, error) {
	var (
		entry *domain.ScheduleEntry
		err   error
	)
	if req.IsActive == nil {
		entry, err = s.scheduleRepo.ToggleScheduleActive(ctx, scheduleID, s.Now())
	} else {
		entry, err = s.scheduleRepo.SetScheduleActive(ctx, scheduleID, *req.IsActive, s.Now())
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFoundf("schedule entry %d", scheduleID)
		}
		s.LogError(ctx, err, "Failed to update schedule entry", slog.Int64("schedule_id", scheduleID))
		return nil, fmt.Errorf("failed to update schedule entry %d: %w", scheduleID, err)
	}

	s.LogInfo(ctx, "Schedule entry toggled",
		slog.Int64("schedule_id", scheduleID),
		slog.Bool("is_active", entry.IsActive))
	s.Emit(ctx, domain.EventScheduleToggled, entry)
	return entry, nil
}

func (s *scheduleService) ListSchedules(ctx context.Context, params dto.ListSchedulesParams) ([]domain.ScheduleEntry, error) {
	entries, err := s.scheduleRepo.ListSchedules(ctx, params.Active)
	if err != nil {
		s.LogError(ctx, err, "Failed to list schedule entries")
		return nil, fmt.Errorf("failed to list schedule entries: %w", err)
	}
	if entries == nil {
		return []domain.ScheduleEntry{}, nil
	}
	return entries, nil
}
