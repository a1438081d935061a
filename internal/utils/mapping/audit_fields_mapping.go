package mapping

import (
	"fmt"
	"time"

	"github.com/SscSPs/savings_tracker/internal/core/domain"
	"github.com/SscSPs/savings_tracker/internal/models"
	"github.com/shopspring/decimal"
)

// FormatTimestamp renders t in the storage layout (always UTC).
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(models.TimestampLayout)
}

// ParseTimestamp parses a stored timestamp column.
func ParseTimestamp(column, value string) (time.Time, error) {
	t, err := time.Parse(models.TimestampLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: %w", column, value, err)
	}
	return t.UTC(), nil
}

// FormatDate renders the calendar date of t.
func FormatDate(t time.Time) string {
	return t.UTC().Format(domain.DateLayout)
}

// ParseStoredDate parses a stored calendar date column.
func ParseStoredDate(column, value string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: %w", column, value, err)
	}
	return t, nil
}

// ParseAmount parses a stored decimal column.
func ParseAmount(column, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", column, value, err)
	}
	return d, nil
}

// ToModelAuditFields converts a domain AuditFields to a model AuditFields
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     FormatTimestamp(d.CreatedAt),
		LastUpdatedAt: FormatTimestamp(d.LastUpdatedAt),
	}
}

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) (domain.AuditFields, error) {
	created, err := ParseTimestamp("created_at", m.CreatedAt)
	if err != nil {
		return domain.AuditFields{}, err
	}
	updated, err := ParseTimestamp("last_updated_at", m.LastUpdatedAt)
	if err != nil {
		return domain.AuditFields{}, err
	}
	return domain.AuditFields{CreatedAt: created, LastUpdatedAt: updated}, nil
}
