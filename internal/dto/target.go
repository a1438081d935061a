package dto

import (
	"time"

	"github.com/SscSPs/savings_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTargetRequest defines the data needed to create a savings target.
type CreateTargetRequest struct {
	Name         string          `json:"name" binding:"required,max=100"`
	TargetAmount decimal.Decimal `json:"targetAmount" binding:"required,amount"`
	TargetDate   string          `json:"targetDate" binding:"required,calendardate"`
}

// ContributeRequest adds funds to a target.
type ContributeRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,amount"`
}

// ListTargetsParams defines the optional filters for listing targets.
type ListTargetsParams struct {
	Status string `form:"status" binding:"omitempty,targetstatus"`
}

// TargetResponse defines the data returned for a savings target.
type TargetResponse struct {
	TargetID        int64               `json:"id"`
	Name            string              `json:"name"`
	TargetAmount    decimal.Decimal     `json:"targetAmount"`
	CurrentAmount   decimal.Decimal     `json:"currentAmount"`
	RemainingAmount decimal.Decimal     `json:"remainingAmount"`
	ProgressPercent int64               `json:"progressPercent"`
	TargetDate      string              `json:"targetDate"`
	Status          domain.TargetStatus `json:"status"`
	CreatedAt       time.Time           `json:"createdAt"`
	LastUpdatedAt   time.Time           `json:"lastUpdatedAt"`
}

// ToTargetResponse converts a domain.Target to TargetResponse DTO
func ToTargetResponse(t *domain.Target) TargetResponse {
	return TargetResponse{
		TargetID:        t.TargetID,
		Name:            t.Name,
		TargetAmount:    t.TargetAmount,
		CurrentAmount:   t.CurrentAmount,
		RemainingAmount: t.RemainingAmount(),
		ProgressPercent: t.ProgressPercent(),
		TargetDate:      t.TargetDate.Format(domain.DateLayout),
		Status:          t.Status,
		CreatedAt:       t.CreatedAt,
		LastUpdatedAt:   t.LastUpdatedAt,
	}
}

// ToTargetResponses converts a slice, never returning nil.
func ToTargetResponses(targets []domain.Target) []TargetResponse {
	out := make([]TargetResponse, len(targets))
	for i := range targets {
		out[i] = ToTargetResponse(&targets[i])
	}
	return out
}
