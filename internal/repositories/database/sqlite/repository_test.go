package sqlite_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/savings_tracker/internal/apperrors"
	"github.com/SscSPs/savings_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/savings_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/savings_tracker/internal/repositories/database/sqlite"
	"github.com/SscSPs/savings_tracker/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SQLiteRepositoryTestSuite struct {
	suite.Suite
	ctx   context.Context
	repos portsrepo.RepositoryProvider
	now   time.Time
}

func (suite *SQLiteRepositoryTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.now = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	suite.repos = suite.openStore("")
}

// openStore opens a migrated in-memory database private to the running test.
func (suite *SQLiteRepositoryTestSuite) openStore(suffix string) portsrepo.RepositoryProvider {
	name := strings.NewReplacer("/", "_", " ", "_").Replace(suite.T().Name()) + suffix
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := database.OpenSQLite(suite.ctx, dsn)
	suite.Require().NoError(err)
	suite.Require().NoError(database.MigrateSQLite(dsn))
	suite.T().Cleanup(func() { db.Close() })

	return sqlite.NewRepositoryProvider(db)
}

func (suite *SQLiteRepositoryTestSuite) record(kind domain.TransactionKind, amount int64, category string, at time.Time) int64 {
	txn, err := domain.NewTransaction(kind, decimal.NewFromInt(amount), category, "", at, suite.now)
	suite.Require().NoError(err)
	id, err := suite.repos.LedgerRepo.SaveTransaction(suite.ctx, txn)
	suite.Require().NoError(err)
	return id
}

func (suite *SQLiteRepositoryTestSuite) newTarget(name string, amount int64) int64 {
	target, err := domain.NewTarget(name, decimal.NewFromInt(amount), suite.now.AddDate(0, 6, 0), suite.now)
	suite.Require().NoError(err)
	id, err := suite.repos.TargetRepo.SaveTarget(suite.ctx, target)
	suite.Require().NoError(err)
	return id
}

// --- Ledger ---

func (suite *SQLiteRepositoryTestSuite) TestBalance_EmptyLedger() {
	balance, err := suite.repos.LedgerRepo.GetBalance(suite.ctx)
	suite.Require().NoError(err)
	suite.True(balance.IsZero())
}

func (suite *SQLiteRepositoryTestSuite) TestBalance_InflowsMinusOutflows() {
	suite.record(domain.Inflow, 100000, "Gaji", suite.now)
	suite.record(domain.Outflow, 30000, "Makan", suite.now)

	balance, err := suite.repos.LedgerRepo.GetBalance(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal("70000", balance.String())
}

func (suite *SQLiteRepositoryTestSuite) TestBalance_OrderIndependent() {
	entries := []struct {
		kind   domain.TransactionKind
		amount string
	}{
		{domain.Inflow, "100000"},
		{domain.Outflow, "30000.5"},
		{domain.Inflow, "0.1"},
		{domain.Inflow, "0.1"},
		{domain.Outflow, "0.0001"},
		{domain.Inflow, "0.1"},
	}
	save := func(repos portsrepo.RepositoryProvider, i int) {
		txn, err := domain.NewTransaction(entries[i].kind, decimal.RequireFromString(entries[i].amount), "", "", time.Time{}, suite.now)
		suite.Require().NoError(err)
		_, err = repos.LedgerRepo.SaveTransaction(suite.ctx, txn)
		suite.Require().NoError(err)
	}

	reversed := suite.openStore("_reversed")
	for i := range entries {
		save(suite.repos, i)
		save(reversed, len(entries)-1-i)
	}

	forward, err := suite.repos.LedgerRepo.GetBalance(suite.ctx)
	suite.Require().NoError(err)
	backward, err := reversed.LedgerRepo.GetBalance(suite.ctx)
	suite.Require().NoError(err)

	suite.True(forward.Equal(backward), "forward %s, backward %s", forward, backward)
	suite.Equal("69999.7999", forward.String())
}

func (suite *SQLiteRepositoryTestSuite) TestSaveTransaction_TimestampsRoundTrip() {
	now := time.Date(2025, 3, 15, 10, 0, 0, 123456789, time.UTC)
	txn, err := domain.NewTransaction(domain.Inflow, decimal.NewFromInt(1), "", "", time.Time{}, now)
	suite.Require().NoError(err)
	_, err = suite.repos.LedgerRepo.SaveTransaction(suite.ctx, txn)
	suite.Require().NoError(err)

	stored, err := suite.repos.LedgerRepo.ListTransactions(suite.ctx, domain.TransactionFilter{})
	suite.Require().NoError(err)
	suite.Require().Len(stored, 1)
	suite.True(txn.CreatedAt.Equal(stored[0].CreatedAt), "returned %s, stored %s", txn.CreatedAt, stored[0].CreatedAt)
	suite.True(txn.OccurredAt.Equal(stored[0].OccurredAt))
}

func (suite *SQLiteRepositoryTestSuite) TestListTransactions_NewestFirstWithFilters() {
	older := suite.record(domain.Inflow, 10, "", suite.now.AddDate(0, 0, -2))
	newer := suite.record(domain.Outflow, 5, "", suite.now)
	suite.record(domain.Inflow, 7, "", suite.now.AddDate(0, -1, 0))

	all, err := suite.repos.LedgerRepo.ListTransactions(suite.ctx, domain.TransactionFilter{})
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.Equal(newer, all[0].TransactionID)
	suite.Equal(older, all[1].TransactionID)

	outflows, err := suite.repos.LedgerRepo.ListTransactions(suite.ctx, domain.TransactionFilter{Kind: domain.Outflow})
	suite.Require().NoError(err)
	suite.Require().Len(outflows, 1)
	suite.Equal("5", outflows[0].Amount.String())

	march, err := suite.repos.LedgerRepo.ListTransactions(suite.ctx, domain.TransactionFilter{
		From: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
	})
	suite.Require().NoError(err)
	suite.Require().Len(march, 1)
	suite.Equal(older, march[0].TransactionID)
}

func (suite *SQLiteRepositoryTestSuite) TestCountByDate() {
	day := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	suite.record(domain.Inflow, 1, "", day)
	suite.record(domain.Inflow, 2, "", day.Add(10*time.Hour))
	suite.record(domain.Outflow, 3, "", day.AddDate(0, 0, 1))

	counts, err := suite.repos.LedgerRepo.CountByDate(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal([]domain.DailyCount{
		{Date: "2025-03-01", Count: 2},
		{Date: "2025-03-02", Count: 1},
	}, counts)
}

// --- Targets ---

func (suite *SQLiteRepositoryTestSuite) TestContribution_ReachesGoal() {
	id := suite.newTarget("Laptop", 1000000)

	target, err := suite.repos.TargetRepo.AddContribution(suite.ctx, id, decimal.NewFromInt(600000), suite.now)
	suite.Require().NoError(err)
	suite.Equal(domain.TargetOngoing, target.Status)

	target, err = suite.repos.TargetRepo.AddContribution(suite.ctx, id, decimal.NewFromInt(400000), suite.now)
	suite.Require().NoError(err)
	suite.Equal(domain.TargetCompleted, target.Status)
	suite.Equal("1000000", target.CurrentAmount.String())

	stored, err := suite.repos.TargetRepo.FindTargetByID(suite.ctx, id)
	suite.Require().NoError(err)
	suite.Equal(domain.TargetCompleted, stored.Status)
	suite.Equal("1000000", stored.CurrentAmount.String())
}

func (suite *SQLiteRepositoryTestSuite) TestContribution_UnknownTarget() {
	_, err := suite.repos.TargetRepo.AddContribution(suite.ctx, 999, decimal.NewFromInt(1), suite.now)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SQLiteRepositoryTestSuite) TestContribution_ConcurrentUpdatesAreNotLost() {
	id := suite.newTarget("Motor", 1000000)

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := suite.repos.TargetRepo.AddContribution(suite.ctx, id, decimal.NewFromInt(1000), suite.now)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		suite.Require().NoError(err)
	}

	target, err := suite.repos.TargetRepo.FindTargetByID(suite.ctx, id)
	suite.Require().NoError(err)
	suite.Equal("20000", target.CurrentAmount.String())
}

func (suite *SQLiteRepositoryTestSuite) TestListTargets_StatusFilter() {
	done := suite.newTarget("Done", 10)
	suite.newTarget("Pending", 10)
	_, err := suite.repos.TargetRepo.AddContribution(suite.ctx, done, decimal.NewFromInt(10), suite.now)
	suite.Require().NoError(err)

	all, err := suite.repos.TargetRepo.ListTargets(suite.ctx, "")
	suite.Require().NoError(err)
	suite.Len(all, 2)

	completed, err := suite.repos.TargetRepo.ListTargets(suite.ctx, domain.TargetCompleted)
	suite.Require().NoError(err)
	suite.Require().Len(completed, 1)
	suite.Equal(done, completed[0].TargetID)
	suite.Equal("2025-09-15", completed[0].TargetDate.Format(domain.DateLayout))
}

// --- Schedules ---

func (suite *SQLiteRepositoryTestSuite) TestSchedule_ToggleTwiceRestoresFlag() {
	entry, err := domain.NewScheduleEntry(domain.Outflow, decimal.NewFromInt(150000), domain.Monthly, suite.now, "Kos", suite.now)
	suite.Require().NoError(err)
	id, err := suite.repos.ScheduleRepo.SaveSchedule(suite.ctx, entry)
	suite.Require().NoError(err)

	toggled, err := suite.repos.ScheduleRepo.ToggleScheduleActive(suite.ctx, id, suite.now)
	suite.Require().NoError(err)
	suite.False(toggled.IsActive)

	toggled, err = suite.repos.ScheduleRepo.ToggleScheduleActive(suite.ctx, id, suite.now)
	suite.Require().NoError(err)
	suite.True(toggled.IsActive)

	set, err := suite.repos.ScheduleRepo.SetScheduleActive(suite.ctx, id, false, suite.now)
	suite.Require().NoError(err)
	suite.False(set.IsActive)

	active := true
	entries, err := suite.repos.ScheduleRepo.ListSchedules(suite.ctx, &active)
	suite.Require().NoError(err)
	suite.Empty(entries)

	entries, err = suite.repos.ScheduleRepo.ListSchedules(suite.ctx, nil)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Equal("Kos", entries[0].Description)
	suite.Equal(domain.Monthly, entries[0].Frequency)
}

func (suite *SQLiteRepositoryTestSuite) TestSchedule_UnknownID() {
	_, err := suite.repos.ScheduleRepo.ToggleScheduleActive(suite.ctx, 42, suite.now)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.repos.ScheduleRepo.SetScheduleActive(suite.ctx, 42, true, suite.now)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Reporting ---

func (suite *SQLiteRepositoryTestSuite) TestMonthlyTotals() {
	suite.record(domain.Inflow, 50000, "Gaji", time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC))
	suite.record(domain.Outflow, 20000, "Makan", time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC))
	suite.record(domain.Inflow, 999, "", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	feb, err := suite.repos.ReportingRepo.GetMonthlyTotals(suite.ctx, time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC), 1)
	suite.Require().NoError(err)
	suite.Require().Len(feb, 1)
	suite.Equal("50000", feb[0].Income.String())
	suite.Equal("20000", feb[0].Expense.String())

	empty, err := suite.repos.ReportingRepo.GetMonthlyTotals(suite.ctx, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 1)
	suite.Require().NoError(err)
	suite.Require().Len(empty, 1)
	suite.True(empty[0].Income.IsZero())
	suite.True(empty[0].Expense.IsZero())
}

func (suite *SQLiteRepositoryTestSuite) TestPeriodTotalsAndCounts() {
	suite.record(domain.Inflow, 100, "Gaji", suite.now)
	suite.record(domain.Outflow, 40, "", suite.now)
	suite.newTarget("A", 10)

	totals, err := suite.repos.ReportingRepo.GetPeriodTotals(suite.ctx, time.Time{}, time.Time{})
	suite.Require().NoError(err)
	suite.Equal(2, totals.TransactionCount)
	suite.Require().Len(totals.ExpenseByCategory, 1)
	suite.Equal(domain.DefaultCategory, totals.ExpenseByCategory[0].Category)

	counts, err := suite.repos.ReportingRepo.CountTargetsByStatus(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(1, counts[domain.TargetOngoing])
	suite.Equal(0, counts[domain.TargetCompleted])

	active, err := suite.repos.ReportingRepo.CountActiveSchedules(suite.ctx)
	suite.Require().NoError(err)
	suite.Zero(active)
}

func TestSQLiteRepositories(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}
