package mapping

import (
	"github.com/SscSPs/savings_tracker/internal/core/domain"
	"github.com/SscSPs/savings_tracker/internal/models"
)

// ToModelTarget converts a domain Target to a model Target
func ToModelTarget(d domain.Target) models.Target {
	return models.Target{
		TargetID:      d.TargetID,
		Name:          d.Name,
		TargetAmount:  d.TargetAmount.String(),
		CurrentAmount: d.CurrentAmount.String(),
		TargetDate:    FormatDate(d.TargetDate),
		Status:        string(d.Status),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTarget converts a model Target to a domain Target
func ToDomainTarget(m models.Target) (domain.Target, error) {
	targetAmount, err := ParseAmount("target_amount", m.TargetAmount)
	if err != nil {
		return domain.Target{}, err
	}
	currentAmount, err := ParseAmount("current_amount", m.CurrentAmount)
	if err != nil {
		return domain.Target{}, err
	}
	targetDate, err := ParseStoredDate("target_date", m.TargetDate)
	if err != nil {
		return domain.Target{}, err
	}
	audit, err := ToDomainAuditFields(m.AuditFields)
	if err != nil {
		return domain.Target{}, err
	}
	return domain.Target{
		TargetID:      m.TargetID,
		Name:          m.Name,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		TargetDate:    targetDate,
		Status:        domain.TargetStatus(m.Status),
		AuditFields:   audit,
	}, nil
}
