package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/savings_tracker/internal/apperrors"
	"github.com/SscSPs/savings_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/savings_tracker/internal/core/ports/services"
	"github.com/SscSPs/savings_tracker/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockLedger    *MockLedgerRepository
	mockReporting *MockReportingRepository
	service       portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockLedger = new(MockLedgerRepository)
	suite.mockReporting = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockLedger, suite.mockReporting, services.WithClock(fixedClock))
}

func month(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func (suite *ReportingServiceTestSuite) TestTotalBalance_RepoError() {
	ctx := context.Background()
	suite.mockLedger.On("GetBalance", ctx).Return(decimal.Zero, assert.AnError).Once()

	_, err := suite.service.TotalBalance(ctx)

	suite.ErrorIs(err, assert.AnError)
}

func (suite *ReportingServiceTestSuite) TestMonthlySummary_DefaultsToCurrentMonth() {
	ctx := context.Background()
	var none []domain.MonthlySummary
	suite.mockReporting.On("GetMonthlyTotals", ctx, month(2025, time.March), 1).Return(none, nil).Once()

	summary, err := suite.service.MonthlySummary(ctx, time.Time{})

	suite.Require().NoError(err)
	suite.Equal(month(2025, time.March), summary.Month)
	suite.True(summary.Income.IsZero())
	suite.True(summary.Expense.IsZero())
}

func (suite *ReportingServiceTestSuite) TestPeriodReport_Success() {
	ctx := context.Background()
	from := month(2025, time.January)
	to := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	suite.mockReporting.On("GetPeriodTotals", mock.Anything, from, to).Return(&domain.PeriodTotals{
		Income:           decimal.NewFromInt(100000),
		Expense:          decimal.NewFromInt(30000),
		TransactionCount: 2,
	}, nil).Once()
	suite.mockLedger.On("GetBalance", mock.Anything).Return(decimal.NewFromInt(70000), nil).Once()

	report, err := suite.service.PeriodReport(ctx, from, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC))

	suite.Require().NoError(err)
	suite.Equal(from, report.From)
	suite.Equal(to, report.To)
	suite.True(report.Net().Equal(decimal.NewFromInt(70000)))
	suite.True(report.Balance.Equal(decimal.NewFromInt(70000)))
	suite.Equal(2, report.TransactionCount)
}

func (suite *ReportingServiceTestSuite) TestPeriodReport_StartAfterEnd() {
	report, err := suite.service.PeriodReport(context.Background(), month(2025, time.March), month(2025, time.January))

	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockReporting.AssertNotCalled(suite.T(), "GetPeriodTotals", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestStatistics_Success() {
	ctx := context.Background()
	monthly := make([]domain.MonthlySummary, 6)
	for i := range monthly {
		monthly[i] = domain.MonthlySummary{Month: month(2024, time.October).AddDate(0, i, 0), Income: decimal.Zero, Expense: decimal.Zero}
	}
	monthly[5].Income = decimal.NewFromInt(250)

	suite.mockLedger.On("GetBalance", mock.Anything).Return(decimal.NewFromInt(900), nil).Once()
	suite.mockReporting.On("GetMonthlyTotals", mock.Anything, month(2024, time.October), 6).Return(monthly, nil).Once()
	suite.mockReporting.On("GetPeriodTotals", mock.Anything, time.Time{}, time.Time{}).Return(&domain.PeriodTotals{
		IncomeByCategory:  []domain.CategoryAmount{{Category: "Gaji", Amount: decimal.NewFromInt(1000)}},
		ExpenseByCategory: []domain.CategoryAmount{{Category: "Lainnya", Amount: decimal.NewFromInt(100)}},
	}, nil).Once()
	suite.mockReporting.On("CountTargetsByStatus", mock.Anything).Return(map[domain.TargetStatus]int{
		domain.TargetOngoing: 2, domain.TargetCompleted: 1,
	}, nil).Once()
	suite.mockReporting.On("CountActiveSchedules", mock.Anything).Return(3, nil).Once()

	stats, err := suite.service.Statistics(ctx, 0)

	suite.Require().NoError(err)
	suite.True(stats.Balance.Equal(decimal.NewFromInt(900)))
	suite.Len(stats.Monthly, services.DefaultStatisticsMonths)
	suite.Equal(month(2025, time.March), stats.CurrentMonth.Month)
	suite.True(stats.CurrentMonth.Income.Equal(decimal.NewFromInt(250)))
	suite.Equal(2, stats.OngoingTargets)
	suite.Equal(1, stats.CompletedTargets)
	suite.Equal(3, stats.ActiveSchedules)
	suite.Equal("Gaji", stats.IncomeByCategory[0].Category)
	suite.mockReporting.AssertExpectations(suite.T())
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestStatistics_AnyFailureFails() {
	ctx := context.Background()
	suite.mockLedger.On("GetBalance", mock.Anything).Return(decimal.Zero, nil).Maybe()
	suite.mockReporting.On("GetMonthlyTotals", mock.Anything, mock.Anything, mock.Anything).Return([]domain.MonthlySummary{}, nil).Maybe()
	suite.mockReporting.On("GetPeriodTotals", mock.Anything, mock.Anything, mock.Anything).Return(&domain.PeriodTotals{}, nil).Maybe()
	suite.mockReporting.On("CountTargetsByStatus", mock.Anything).Return(nil, assert.AnError).Once()
	suite.mockReporting.On("CountActiveSchedules", mock.Anything).Return(0, nil).Maybe()

	stats, err := suite.service.Statistics(ctx, 3)

	suite.Nil(stats)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *ReportingServiceTestSuite) TestDailyCounts_Empty() {
	ctx := context.Background()
	var none []domain.DailyCount
	suite.mockLedger.On("CountByDate", ctx).Return(none, nil).Once()

	counts, err := suite.service.DailyCounts(ctx)

	suite.Require().NoError(err)
	suite.NotNil(counts)
	suite.Empty(counts)
}

func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
