package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCategory labels transactions recorded without a category.
const DefaultCategory = "Lainnya"

// MonthlySummary holds the income and expense totals of one calendar month.
type MonthlySummary struct {
	Month   time.Time       `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// Net is income minus expense.
func (m MonthlySummary) Net() decimal.Decimal {
	return m.Income.Sub(m.Expense)
}

// CategoryAmount is the total of one kind of transaction for a category.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// PeriodTotals is the raw aggregate of the ledger over a date range.
type PeriodTotals struct {
	Income            decimal.Decimal
	Expense           decimal.Decimal
	TransactionCount  int
	IncomeByCategory  []CategoryAmount
	ExpenseByCategory []CategoryAmount
}

// PeriodReport is the ledger report for [From, To). Zero bounds are open.
type PeriodReport struct {
	From    time.Time
	To      time.Time
	Balance decimal.Decimal
	PeriodTotals
}

// Net is income minus expense over the period.
func (r PeriodReport) Net() decimal.Decimal {
	return r.Income.Sub(r.Expense)
}

// Statistics is the dashboard view over the whole store.
type Statistics struct {
	Balance           decimal.Decimal
	CurrentMonth      MonthlySummary
	Monthly           []MonthlySummary // oldest first
	IncomeByCategory  []CategoryAmount
	ExpenseByCategory []CategoryAmount
	OngoingTargets    int
	CompletedTargets  int
	ActiveSchedules   int
}

// SummarizeByMonth buckets txns into the given consecutive months starting at
// first. Months without transactions are present with zero totals.
func SummarizeByMonth(txns []Transaction, first time.Time, months int) []MonthlySummary {
	first = StartOfMonth(first)
	out := make([]MonthlySummary, months)
	for i := range out {
		out[i] = MonthlySummary{Month: first.AddDate(0, i, 0), Income: decimal.Zero, Expense: decimal.Zero}
	}
	for _, t := range txns {
		m := StartOfMonth(t.OccurredAt)
		idx := (m.Year()-first.Year())*12 + int(m.Month()) - int(first.Month())
		if idx < 0 || idx >= months {
			continue
		}
		if t.Kind == Inflow {
			out[idx].Income = out[idx].Income.Add(t.Amount)
		} else {
			out[idx].Expense = out[idx].Expense.Add(t.Amount)
		}
	}
	return out
}

// CategoryOf returns the reporting label for a transaction category.
func CategoryOf(category string) string {
	if c := strings.TrimSpace(category); c != "" {
		return c
	}
	return DefaultCategory
}

// SortCategoryAmounts orders amounts largest first, then by category name.
func SortCategoryAmounts(amounts []CategoryAmount) {
	sort.SliceStable(amounts, func(i, j int) bool {
		if c := amounts[i].Amount.Cmp(amounts[j].Amount); c != 0 {
			return c > 0
		}
		return amounts[i].Category < amounts[j].Category
	})
}

// TotalsFor aggregates txns into income/expense totals and per-category
// breakdowns. Empty categories are reported as DefaultCategory.
func TotalsFor(txns []Transaction) PeriodTotals {
	totals := PeriodTotals{
		Income:            decimal.Zero,
		Expense:           decimal.Zero,
		TransactionCount:  len(txns),
		IncomeByCategory:  []CategoryAmount{},
		ExpenseByCategory: []CategoryAmount{},
	}
	income := map[string]decimal.Decimal{}
	expense := map[string]decimal.Decimal{}
	for _, t := range txns {
		category := CategoryOf(t.Category)
		if t.Kind == Inflow {
			totals.Income = totals.Income.Add(t.Amount)
			income[category] = income[category].Add(t.Amount)
		} else {
			totals.Expense = totals.Expense.Add(t.Amount)
			expense[category] = expense[category].Add(t.Amount)
		}
	}
	for c, a := range income {
		totals.IncomeByCategory = append(totals.IncomeByCategory, CategoryAmount{Category: c, Amount: a})
	}
	for c, a := range expense {
		totals.ExpenseByCategory = append(totals.ExpenseByCategory, CategoryAmount{Category: c, Amount: a})
	}
	SortCategoryAmounts(totals.IncomeByCategory)
	SortCategoryAmounts(totals.ExpenseByCategory)
	return totals
}
