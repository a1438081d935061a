package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/savings_tracker/internal/core/domain"
	"github.com/SscSPs/savings_tracker/internal/core/ports"
	portsrepo "github.com/SscSPs/savings_tracker/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (int64, error) {
	args := m.Called(ctx, txn)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) GetBalance(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerRepository) CountByDate(ctx context.Context) ([]domain.DailyCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyCount), args.Error(1)
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

// --- Mock TargetRepository ---
type MockTargetRepository struct {
	mock.Mock
}

func (m *MockTargetRepository) SaveTarget(ctx context.Context, target domain.Target) (int64, error) {
	args := m.Called(ctx, target)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTargetRepository) FindTargetByID(ctx context.Context, targetID int64) (*domain.Target, error) {
	args := m.Called(ctx, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Target), args.Error(1)
}

func (m *MockTargetRepository) ListTargets(ctx context.Context, status domain.TargetStatus) ([]domain.Target, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Target), args.Error(1)
}

func (m *MockTargetRepository) AddContribution(ctx context.Context, targetID int64, amount decimal.Decimal, at time.Time) (*domain.Target, error) {
	args := m.Called(ctx, targetID, amount, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Target), args.Error(1)
}

var _ portsrepo.TargetRepositoryFacade = (*MockTargetRepository)(nil)

// --- Mock ScheduleRepository ---
type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) SaveSchedule(ctx context.Context, entry domain.ScheduleEntry) (int64, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockScheduleRepository) ListSchedules(ctx context.Context, active *bool) ([]domain.ScheduleEntry, error) {
	args := m.Called(ctx, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScheduleEntry), args.Error(1)
}

func (m *MockScheduleRepository) SetScheduleActive(ctx context.Context, scheduleID int64, active bool, at time.Time) (*domain.ScheduleEntry, error) {
	args := m.Called(ctx, scheduleID, active, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScheduleEntry), args.Error(1)
}

func (m *MockScheduleRepository) ToggleScheduleActive(ctx context.Context, scheduleID int64, at time.Time) (*domain.ScheduleEntry, error) {
	args := m.Called(ctx, scheduleID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScheduleEntry), args.Error(1)
}

var _ portsrepo.ScheduleRepositoryFacade = (*MockScheduleRepository)(nil)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetPeriodTotals(ctx context.Context, from, to time.Time) (*domain.PeriodTotals, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodTotals), args.Error(1)
}

func (m *MockReportingRepository) GetMonthlyTotals(ctx context.Context, first time.Time, months int) ([]domain.MonthlySummary, error) {
	args := m.Called(ctx, first, months)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlySummary), args.Error(1)
}

func (m *MockReportingRepository) CountTargetsByStatus(ctx context.Context) (map[domain.TargetStatus]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.TargetStatus]int), args.Error(1)
}

func (m *MockReportingRepository) CountActiveSchedules(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

// recordingPublisher keeps every published event in order.
type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event domain.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) types() []domain.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.EventType, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

var _ ports.EventPublisher = (*recordingPublisher)(nil)

// fixedNow is the clock used by every service under test.
var fixedNow = time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }
