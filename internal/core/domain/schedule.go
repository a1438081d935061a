package domain

import (
	"strings"
	"time"

	"github.com/SscSPs/savings_tracker/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Frequency is how often a scheduled transaction is meant to recur.
type Frequency string

const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
	Yearly  Frequency = "yearly"
)

// ParseFrequency validates a frequency value.
func ParseFrequency(raw string) (Frequency, error) {
	switch f := Frequency(strings.ToLower(strings.TrimSpace(raw))); f {
	case Daily, Weekly, Monthly, Yearly:
		return f, nil
	}
	return "", apperrors.Validationf("frequency must be one of daily, weekly, monthly, yearly, got %q", raw)
}

// ScheduleEntry declares a recurring transaction. Nothing executes it;
// NextDate is whatever the client supplied at creation.
type ScheduleEntry struct {
	ScheduleID  int64           `json:"scheduleID"`
	Kind        TransactionKind `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Frequency   Frequency       `json:"frequency"`
	NextDate    time.Time       `json:"nextDate"`
	Description string          `json:"description"`
	IsActive    bool            `json:"isActive"`
	AuditFields
}

// NewScheduleEntry validates the inputs and builds an unsaved, active entry.
func NewScheduleEntry(kind TransactionKind, amount decimal.Decimal, frequency Frequency, nextDate time.Time, description string, now time.Time) (ScheduleEntry, error) {
	if kind != Inflow && kind != Outflow {
		return ScheduleEntry{}, apperrors.Validationf("kind must be inflow or outflow, got %q", kind)
	}
	if err := ValidateAmount("amount", amount); err != nil {
		return ScheduleEntry{}, err
	}
	if _, err := ParseFrequency(string(frequency)); err != nil {
		return ScheduleEntry{}, err
	}
	if nextDate.IsZero() {
		return ScheduleEntry{}, apperrors.Validationf("nextDate is required")
	}
	now = Timestamp(now)
	return ScheduleEntry{
		Kind:        kind,
		Amount:      amount,
		Frequency:   frequency,
		NextDate:    StartOfDay(nextDate),
		Description: strings.TrimSpace(description),
		IsActive:    true,
		AuditFields: AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}, nil
}
