package dto

import (
	"github.com/SscSPs/savings_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummaryParams bounds the period report. Both dates are inclusive.
type SummaryParams struct {
	StartDate string `form:"startDate" binding:"omitempty,calendardate"`
	EndDate   string `form:"endDate" binding:"omitempty,calendardate"`
}

// MonthlySummaryParams selects the month of a monthly summary.
type MonthlySummaryParams struct {
	Month string `form:"month" binding:"omitempty,datetime=2006-01"`
}

// StatisticsParams selects the length of the monthly timeline.
type StatisticsParams struct {
	Months int `form:"months" binding:"omitempty,min=1,max=24"`
}

// CategoryAmountResponse is one category total in a report.
type CategoryAmountResponse struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// MonthlySummaryResponse holds the totals of one calendar month.
type MonthlySummaryResponse struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// SummaryResponse represents the period report response
type SummaryResponse struct {
	StartDate         string                   `json:"startDate,omitempty"`
	EndDate           string                   `json:"endDate,omitempty"`
	Income            decimal.Decimal          `json:"income"`
	Expense           decimal.Decimal          `json:"expense"`
	Net               decimal.Decimal          `json:"net"`
	TransactionCount  int                      `json:"transactionCount"`
	Balance           decimal.Decimal          `json:"balance"`
	IncomeByCategory  []CategoryAmountResponse `json:"incomeByCategory"`
	ExpenseByCategory []CategoryAmountResponse `json:"expenseByCategory"`
}

// StatisticsResponse represents the dashboard statistics response
type StatisticsResponse struct {
	Balance           decimal.Decimal          `json:"balance"`
	CurrentMonth      MonthlySummaryResponse   `json:"currentMonth"`
	Monthly           []MonthlySummaryResponse `json:"monthly"`
	IncomeByCategory  []CategoryAmountResponse `json:"incomeByCategory"`
	ExpenseByCategory []CategoryAmountResponse `json:"expenseByCategory"`
	OngoingTargets    int                      `json:"ongoingTargets"`
	CompletedTargets  int                      `json:"completedTargets"`
	ActiveSchedules   int                      `json:"activeSchedules"`
}

// ToMonthlySummaryResponse converts a domain.MonthlySummary to its DTO
func ToMonthlySummaryResponse(m domain.MonthlySummary) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		Month:   m.Month.Format(domain.MonthLayout),
		Income:  m.Income,
		Expense: m.Expense,
		Net:     m.Net(),
	}
}

func toCategoryResponses(in []domain.CategoryAmount) []CategoryAmountResponse {
	out := make([]CategoryAmountResponse, len(in))
	for i, c := range in {
		out[i] = CategoryAmountResponse{Category: c.Category, Amount: c.Amount}
	}
	return out
}

// ToSummaryResponse converts a domain.PeriodReport to its DTO. The end date is
// reported inclusively even though the report bound is exclusive.
func ToSummaryResponse(r *domain.PeriodReport) SummaryResponse {
	resp := SummaryResponse{
		Income:            r.Income,
		Expense:           r.Expense,
		Net:               r.Net(),
		TransactionCount:  r.TransactionCount,
		Balance:           r.Balance,
		IncomeByCategory:  toCategoryResponses(r.IncomeByCategory),
		ExpenseByCategory: toCategoryResponses(r.ExpenseByCategory),
	}
	if !r.From.IsZero() {
		resp.StartDate = r.From.Format(domain.DateLayout)
	}
	if !r.To.IsZero() {
		resp.EndDate = r.To.AddDate(0, 0, -1).Format(domain.DateLayout)
	}
	return resp
}

// ToStatisticsResponse converts domain.Statistics to its DTO
func ToStatisticsResponse(s *domain.Statistics) StatisticsResponse {
	monthly := make([]MonthlySummaryResponse, len(s.Monthly))
	for i, m := range s.Monthly {
		monthly[i] = ToMonthlySummaryResponse(m)
	}
	return StatisticsResponse{
		Balance:           s.Balance,
		CurrentMonth:      ToMonthlySummaryResponse(s.CurrentMonth),
		Monthly:           monthly,
		IncomeByCategory:  toCategoryResponses(s.IncomeByCategory),
		ExpenseByCategory: toCategoryResponses(s.ExpenseByCategory),
		OngoingTargets:    s.OngoingTargets,
		CompletedTargets:  s.CompletedTargets,
		ActiveSchedules:   s.ActiveSchedules,
	}
}
