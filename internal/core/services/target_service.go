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

// targetService implements the TargetSvcFacade interface
type targetService struct {
	BaseService
	targetRepo portsrepo.TargetRepositoryFacade
}

// NewTargetService creates a new target service with the provided options
func NewTargetService(repo portsrepo.TargetRepositoryFacade, options ...Option) portssvc.TargetSvcFacade {
	svc := &targetService{
		BaseService: newBaseService(),
		targetRepo:  repo,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.TargetSvcFacade = (*targetService)(nil)

func (s *targetService) CreateTarget(ctx context.Context, req dto.CreateTargetRequest) (*domain.Target, error) {
	targetDate, err := domain.ParseCalendarDate("targetDate", req.TargetDate)
	if err != nil {
		return nil, err
	}

	target, err := domain.NewTarget(req.Name, req.TargetAmount, targetDate, s.Now())
	if err != nil {
		return nil, err
	}

	id, err := s.targetRepo.SaveTarget(ctx, target)
	if err != nil {
		s.LogError(ctx, err, "Failed to save target", slog.String("name", target.Name))
		return nil, fmt.Errorf("failed to create target: %w", err)
	}
	target.TargetID = id

	s.LogInfo(ctx, "Target created",
		slog.Int64("target_id", id),
		slog.String("target_amount", target.TargetAmount.String()))
	s.Emit(ctx, domain.EventTargetCreated, target)
	return &target, nil
}

// Contribute adds funds to a target. Contributions to a completed target are
// accepted and may overshoot the goal.
func (s *targetService) Contribute(ctx context.Context, targetID int64, req dto.ContributeRequest) (*domain.Target, error) {
	if err := domain.ValidateAmount("amount", req.Amount); err != nil {
		return nil, err
	}

	updated, err := s.targetRepo.AddContribution(ctx, targetID, req.Amount, s.Now())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFoundf("target %d", targetID)
		}
		s.LogError(ctx, err, "Failed to add contribution", slog.Int64("target_id", targetID))
		return nil, fmt.Errorf("failed to contribute to target %d: %w", targetID, err)
	}

	s.LogInfo(ctx, "Contribution added",
		slog.Int64("target_id", targetID),
		slog.String("amount", req.Amount.String()),
		slog.String("current_amount", updated.CurrentAmount.String()),
		slog.String("status", string(updated.Status)))

	s.Emit(ctx, domain.EventTargetContributed, map[string]any{
		"targetID": targetID,
		"amount":   req.Amount,
		"target":   updated,
	})
	// Only the contribution that crossed the goal announces completion.
	if updated.IsCompleted() && updated.CurrentAmount.Sub(req.Amount).LessThan(updated.TargetAmount) {
		s.Emit(ctx, domain.EventTargetCompleted, updated)
	}
	return updated, nil
}

func (s *targetService) GetTarget(ctx context.Context, targetID int64) (*domain.Target, error) {
	target, err := s.targetRepo.FindTargetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFoundf("target %d", targetID)
		}
		s.LogError(ctx, err, "Failed to get target", slog.Int64("target_id", targetID))
		return nil, fmt.Errorf("failed to get target %d: %w", targetID, err)
	}
	return target, nil
}

func (s *targetService) ListTargets(ctx context.Context, params dto.ListTargetsParams) ([]domain.Target, error) {
	var status domain.TargetStatus
	if params.Status != "" {
		var err error
		if status, err = domain.ParseTargetStatus(params.Status); err != nil {
			return nil, err
		}
	}

	targets, err := s.targetRepo.ListTargets(ctx, status)
	if err != nil {
		s.LogError(ctx, err, "Failed to list targets")
		return nil, fmt.Errorf("failed to list targets: %w", err)
	}
	if targets == nil {
		return []domain.Target{}, nil
	}
	return targets, nil
}
