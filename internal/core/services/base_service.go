package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/savings_tracker/internal/core/domain"
	"github.com/SscSPs/savings_tracker/internal/core/ports"
	"github.com/SscSPs/savings_tracker/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Publisher ports.EventPublisher
	Now       func() time.Time
}

func newBaseService() BaseService {
	return BaseService{Publisher: ports.NoopPublisher{}, Now: time.Now}
}

// Option configures the shared BaseService part of any service.
type Option func(*BaseService)

// WithEventPublisher sets where domain events are sent after a mutation.
func WithEventPublisher(p ports.EventPublisher) Option {
	return func(s *BaseService) {
		if p != nil {
			s.Publisher = p
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *BaseService) {
		if now != nil {
			s.Now = now
		}
	}
}

func (s *BaseService) apply(opts []Option) {
	for _, opt := range opts {
		opt(s)
	}
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Emit publishes an event. The mutation has already been committed, so a
// delivery failure is logged and otherwise ignored.
func (s *BaseService) Emit(ctx context.Context, t domain.EventType, payload any) {
	if err := s.Publisher.Publish(ctx, domain.NewEvent(t, payload, s.Now())); err != nil {
		s.LogError(ctx, err, "Failed to publish event", slog.String("event_type", string(t)))
	}
}
