package domain

import (
	"strings"
	"time"

	"github.com/SscSPs/savings_tracker/internal/apperrors"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// MonthLayout is the wire format for calendar months.
const MonthLayout = "2006-01"

// AuditFields holds the bookkeeping timestamps shared by persisted entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// Timestamp normalises an instant to UTC at millisecond precision, the
// finest resolution every store keeps.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// ParseDate accepts either a calendar date (YYYY-MM-DD) or an RFC 3339
// timestamp and returns the instant in UTC.
func ParseDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, apperrors.Validationf("%s is required", field)
	}
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, apperrors.Validationf("%s must be YYYY-MM-DD or RFC 3339, got %q", field, value)
}

// ParseCalendarDate is ParseDate truncated to midnight UTC.
func ParseCalendarDate(field, value string) (time.Time, error) {
	t, err := ParseDate(field, value)
	if err != nil {
		return time.Time{}, err
	}
	return StartOfDay(t), nil
}

// ParseMonth parses a YYYY-MM value into the first instant of that month (UTC).
func ParseMonth(value string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, apperrors.Validationf("month must be YYYY-MM, got %q", value)
	}
	return t.UTC(), nil
}

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfMonth truncates t to the first instant of its month (UTC).
func StartOfMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
