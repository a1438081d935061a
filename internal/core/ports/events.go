package ports

import (
	"context"

	"github.com/SscSPs/savings_tracker/internal/core/domain"
)

// EventPublisher delivers domain events to interested consumers outside the
// process. Publishing happens after the store has committed.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

// NoopPublisher discards every event.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, domain.Event) error { return nil }
