package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/savings_tracker/internal/apperrors"
	"github.com/SscSPs/savings_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/savings_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/savings_tracker/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DefaultStatisticsMonths is the timeline length used when none is requested.
const DefaultStatisticsMonths = 6

// reportingService implements the ReportingService interface.
// Every call is a fresh read; nothing is cached.
type reportingService struct {
	BaseService
	ledgerRepo    portsrepo.LedgerReader
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(ledger portsrepo.LedgerReader, repo portsrepo.ReportingRepository, options ...Option) portssvc.ReportingService {
	svc := &reportingService{
		BaseService:   newBaseService(),
		ledgerRepo:    ledger,
		reportingRepo: repo,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) TotalBalance(ctx context.Context) (decimal.Decimal, error) {
	balance, err := s.ledgerRepo.GetBalance(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute balance")
		return decimal.Zero, fmt.Errorf("failed to compute balance: %w", err)
	}
	return balance, nil
}

func (s *reportingService) MonthlySummary(ctx context.Context, month time.Time) (*domain.MonthlySummary, error) {
	if month.IsZero() {
		month = s.Now()
	}
	month = domain.StartOfMonth(month)

	rows, err := s.reportingRepo.GetMonthlyTotals(ctx, month, 1)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve monthly totals", slog.String("month", month.Format(domain.MonthLayout)))
		return nil, fmt.Errorf("failed to retrieve monthly totals: %w", err)
	}
	summary := domain.MonthlySummary{Month: month, Income: decimal.Zero, Expense: decimal.Zero}
	if len(rows) > 0 {
		summary = rows[0]
	}
	return &summary, nil
}

func (s *reportingService) DailyCounts(ctx context.Context) ([]domain.DailyCount, error) {
	counts, err := s.ledgerRepo.CountByDate(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count transactions by date")
		return nil, fmt.Errorf("failed to count transactions by date: %w", err)
	}
	if counts == nil {
		return []domain.DailyCount{}, nil
	}
	return counts, nil
}

func (s *reportingService) PeriodReport(ctx context.Context, startDate, endDate time.Time) (*domain.PeriodReport, error) {
	report := &domain.PeriodReport{}
	if !startDate.IsZero() {
		report.From = domain.StartOfDay(startDate)
	}
	if !endDate.IsZero() {
		report.To = domain.StartOfDay(endDate).AddDate(0, 0, 1)
	}
	if !report.From.IsZero() && !report.To.IsZero() && !report.From.Before(report.To) {
		return nil, apperrors.Validationf("startDate must not be after endDate")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		totals, err := s.reportingRepo.GetPeriodTotals(gctx, report.From, report.To)
		if err != nil {
			return fmt.Errorf("period totals: %w", err)
		}
		report.PeriodTotals = *totals
		return nil
	})
	g.Go(func() error {
		balance, err := s.ledgerRepo.GetBalance(gctx)
		if err != nil {
			return fmt.Errorf("balance: %w", err)
		}
		report.Balance = balance
		return nil
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to build period report")
		return nil, fmt.Errorf("failed to build period report: %w", err)
	}

	s.LogInfo(ctx, "Period report generated",
		slog.Int("transaction_count", report.TransactionCount),
		slog.String("income", report.Income.String()),
		slog.String("expense", report.Expense.String()))
	return report, nil
}

func (s *reportingService) Statistics(ctx context.Context, months int) (*domain.Statistics, error) {
	if months <= 0 {
		months = DefaultStatisticsMonths
	}
	current := domain.StartOfMonth(s.Now())
	first := current.AddDate(0, -(months - 1), 0)

	stats := &domain.Statistics{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		balance, err := s.ledgerRepo.GetBalance(gctx)
		if err != nil {
			return fmt.Errorf("balance: %w", err)
		}
		stats.Balance = balance
		return nil
	})
	g.Go(func() error {
		monthly, err := s.reportingRepo.GetMonthlyTotals(gctx, first, months)
		if err != nil {
			return fmt.Errorf("monthly totals: %w", err)
		}
		stats.Monthly = monthly
		return nil
	})
	g.Go(func() error {
		totals, err := s.reportingRepo.GetPeriodTotals(gctx, time.Time{}, time.Time{})
		if err != nil {
			return fmt.Errorf("category totals: %w", err)
		}
		stats.IncomeByCategory = totals.IncomeByCategory
		stats.ExpenseByCategory = totals.ExpenseByCategory
		return nil
	})
	g.Go(func() error {
		counts, err := s.reportingRepo.CountTargetsByStatus(gctx)
		if err != nil {
			return fmt.Errorf("target counts: %w", err)
		}
		stats.OngoingTargets = counts[domain.TargetOngoing]
		stats.CompletedTargets = counts[domain.TargetCompleted]
		return nil
	})
	g.Go(func() error {
		active, err := s.reportingRepo.CountActiveSchedules(gctx)
		if err != nil {
			return fmt.Errorf("schedule counts: %w", err)
		}
		stats.ActiveSchedules = active
		return nil
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to build statistics")
		return nil, fmt.Errorf("failed to build statistics: %w", err)
	}

	stats.CurrentMonth = domain.MonthlySummary{Month: current, Income: decimal.Zero, Expense: decimal.Zero}
	if n := len(stats.Monthly); n > 0 {
		stats.CurrentMonth = stats.Monthly[n-1]
	}
	return stats, nil
}
