package dto

import (
	"time"

	"github.com/SscSPs/savings_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateScheduleRequest defines the data needed to declare a recurring transaction.
type CreateScheduleRequest struct {
	Kind        string          `json:"kind" binding:"required,txnkind"`
	Amount      decimal.Decimal `json:"amount" binding:"required,amount"`
	Frequency   string          `json:"frequency" binding:"required,frequency"`
	NextDate    string          `json:"nextDate" binding:"required,calendardate"`
	Description string          `json:"description" binding:"max=500"`
}

// ToggleScheduleRequest sets the active flag. A nil IsActive flips it.
type ToggleScheduleRequest struct {
	IsActive *bool `json:"isActive"`
}

// ListSchedulesParams defines the optional filters for listing schedule entries.
type ListSchedulesParams struct {
	Active *bool `form:"active"`
}

// ScheduleResponse defines the data returned for a schedule entry.
type ScheduleResponse struct {
	ScheduleID    int64                  `json:"id"`
	Kind          domain.TransactionKind `json:"kind"`
	Amount        decimal.Decimal        `json:"amount"`
	Frequency     domain.Frequency       `json:"frequency"`
	NextDate      string                 `json:"nextDate"`
	Description   string                 `json:"description"`
	IsActive      bool                   `json:"isActive"`
	CreatedAt     time.Time              `json:"createdAt"`
	LastUpdatedAt time.Time              `json:"lastUpdatedAt"`
}

// ToScheduleResponse converts a domain.ScheduleEntry to ScheduleResponse DTO
func ToScheduleResponse(e *domain.ScheduleEntry) ScheduleResponse {
	return ScheduleResponse{
		ScheduleID:    e.ScheduleID,
		Kind:          e.Kind,
		Amount:        e.Amount,
		Frequency:     e.Frequency,
		NextDate:      e.NextDate.Format(domain.DateLayout),
		Description:   e.Description,
		IsActive:      e.IsActive,
		CreatedAt:     e.CreatedAt,
		LastUpdatedAt: e.LastUpdatedAt,
	}
}

// ToScheduleResponses converts a slice, never returning nil.
func ToScheduleResponses(entries []domain.ScheduleEntry) []ScheduleResponse {
	out := make([]ScheduleResponse, len(entries))
	for i := range entries {
		out[i] = ToScheduleResponse(&entries[i])
	}
	return out
}
