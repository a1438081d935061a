package services

import (
	"context"

	"github.com/SscSPs/savings_tracker/internal/core/domain"
	"github.com/SscSPs/savings_tracker/internal/dto"
)

// TargetReaderSvc defines read operations for savings targets
type TargetReaderSvc interface {
	GetTarget(ctx context.Context, targetID int64) (*domain.Target, error)
	ListTargets(ctx context.Context, params dto.ListTargetsParams) ([]domain.Target, error)
}

// TargetWriterSvc defines write operations for savings targets
type TargetWriterSvc interface {
	CreateTarget(ctx context.Context, req dto.CreateTargetRequest) (*domain.Target, error)

	// Contribute adds funds to a target, completing it once the goal is reached.
	Contribute(ctx context.Context, targetID int64, req dto.ContributeRequest) (*domain.Target, error)
}

// TargetSvcFacade combines all target-related service interfaces
type TargetSvcFacade interface {
	TargetReaderSvc
	TargetWriterSvc
}
