package mapping

import (
	"github.com/SscSPs/savings_tracker/internal/core/domain"
	"github.com/SscSPs/savings_tracker/internal/models"
)

// ToModelSchedule converts a domain ScheduleEntry to a model Schedule
func ToModelSchedule(d domain.ScheduleEntry) models.Schedule {
	return models.Schedule{
		ScheduleID:  d.ScheduleID,
		Kind:        string(d.Kind),
		Amount:      d.Amount.String(),
		Frequency:   string(d.Frequency),
		NextDate:    FormatDate(d.NextDate),
		Description: d.Description,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSchedule converts a model Schedule to a domain ScheduleEntry
func ToDomainSchedule(m models.Schedule) (domain.ScheduleEntry, error) {
	amount, err := ParseAmount("amount", m.Amount)
	if err != nil {
		return domain.ScheduleEntry{}, err
	}
	nextDate, err := ParseStoredDate("next_date", m.NextDate)
	if err != nil {
		return domain.ScheduleEntry{}, err
	}
	audit, err := ToDomainAuditFields(m.AuditFields)
	if err != nil {
		return domain.ScheduleEntry{}, err
	}
	return domain.ScheduleEntry{
		ScheduleID:  m.ScheduleID,
		Kind:        domain.TransactionKind(m.Kind),
		Amount:      amount,
		Frequency:   domain.Frequency(m.Frequency),
		NextDate:    nextDate,
		Description: m.Description,
		IsActive:    m.IsActive,
		AuditFields: audit,
	}, nil
}
