package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/savings_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TargetReader defines read operations for savings targets
type TargetReader interface {
	// FindTargetByID returns apperrors.ErrNotFound when the target does not exist.
	FindTargetByID(ctx context.Context, targetID int64) (*domain.Target, error)

	// ListTargets returns targets newest first. An empty status lists all.
	ListTargets(ctx context.Context, status domain.TargetStatus) ([]domain.Target, error)
}

// TargetWriter defines write operations for savings targets
type TargetWriter interface {
	// SaveTarget inserts a new target and returns its assigned ID.
	SaveTarget(ctx context.Context, target domain.Target) (int64, error)

	// AddContribution atomically adds amount to the target's current amount,
	// recomputes its status and returns the updated row. Concurrent calls for
	// the same target must never lose an update.
	AddContribution(ctx context.Context, targetID int64, amount decimal.Decimal, at time.Time) (*domain.Target, error)
}

// TargetRepositoryFacade combines all target repository interfaces
type TargetRepositoryFacade interface {
	TargetReader
	TargetWriter
}
