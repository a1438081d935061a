package domain

import (
	"strings"
	"time"

	"github.com/SscSPs/savings_tracker/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TargetStatus is the lifecycle state of a savings target.
type TargetStatus string

const (
	TargetOngoing   TargetStatus = "ongoing"
	TargetCompleted TargetStatus = "completed"
)

// ParseTargetStatus validates a status filter value.
func ParseTargetStatus(raw string) (TargetStatus, error) {
	switch TargetStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case TargetOngoing:
		return TargetOngoing, nil
	case TargetCompleted:
		return TargetCompleted, nil
	}
	return "", apperrors.Validationf("status must be ongoing or completed, got %q", raw)
}

// Target is a savings goal that accumulates contributions.
type Target struct {
	TargetID      int64           `json:"targetID"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetDate    time.Time       `json:"targetDate"`
	Status        TargetStatus    `json:"status"`
	AuditFields
}

// NewTarget validates the inputs and builds an unsaved, ongoing Target.
func NewTarget(name string, targetAmount decimal.Decimal, targetDate, now time.Time) (Target, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Target{}, apperrors.Validationf("name is required")
	}
	if err := ValidateAmount("targetAmount", targetAmount); err != nil {
		return Target{}, err
	}
	if targetDate.IsZero() {
		return Target{}, apperrors.Validationf("targetDate is required")
	}
	now = Timestamp(now)
	return Target{
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		TargetDate:    StartOfDay(targetDate),
		Status:        TargetOngoing,
		AuditFields:   AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}, nil
}

// StatusFor derives the status from the accumulated amount.
func StatusFor(current, target decimal.Decimal) TargetStatus {
	if current.GreaterThanOrEqual(target) {
		return TargetCompleted
	}
	return TargetOngoing
}

// Contribute adds amount to the target and recomputes its status.
// Overshooting and contributing to a completed target are both allowed.
func (t *Target) Contribute(amount decimal.Decimal, now time.Time) error {
	if err := ValidateAmount("amount", amount); err != nil {
		return err
	}
	t.CurrentAmount = t.CurrentAmount.Add(amount)
	t.Status = StatusFor(t.CurrentAmount, t.TargetAmount)
	t.LastUpdatedAt = Timestamp(now)
	return nil
}

// IsCompleted reports whether the goal has been reached.
func (t Target) IsCompleted() bool {
	return t.Status == TargetCompleted
}

// ProgressPercent is the whole-number completion percentage, capped at 100.
func (t Target) ProgressPercent() int64 {
	if !t.TargetAmount.IsPositive() {
		return 0
	}
	pct := t.CurrentAmount.Mul(decimal.NewFromInt(100)).Div(t.TargetAmount).Round(0)
	if pct.GreaterThan(decimal.NewFromInt(100)) {
		return 100
	}
	return pct.IntPart()
}

// RemainingAmount is how much is still missing, never negative.
func (t Target) RemainingAmount() decimal.Decimal {
	rem := t.TargetAmount.Sub(t.CurrentAmount)
	if rem.IsNegative() {
		return decimal.Zero
	}
	return rem
}
