// Package transport defines the request and response DTOs of the follow-ups
// module. Validation rules live here as struct tags; mapping from domain
// types happens in the service layer.
package transport

import (
	"time"

	"github.com/AmrAnter44/sys-body-sub004/internal/followups/domain"
)

// Request DTOs

// CreateInteractionRequest logs a follow-up against a lead. LeadID may be a
// persisted visitor id or a synthesized lead id; the lead's phone is resolved
// and denormalized onto the stored row.
type CreateInteractionRequest struct {
	LeadID           string     `json:"leadId" validate:"required,min=1,max=100"`
	SalesName        string     `json:"salesName" validate:"required,min=1,max=100"`
	Notes            string     `json:"notes" validate:"max=2000"`
	Contacted        bool       `json:"contacted"`
	Result           string     `json:"result,omitempty" validate:"omitempty,oneof=interested not-interested postponed subscribed"`
	NextFollowUpDate *time.Time `json:"nextFollowUpDate,omitempty"`
}

// LeadListQuery carries the user-selected filters plus pagination. Changing
// any filter client-side resets Page to 1; the server treats each request
// independently.
type LeadListQuery struct {
	Search    string `form:"search"`
	Source    string `form:"source" validate:"omitempty,oneof=visitor expired-member expiring-member day-use member-invitation"`
	Priority  string `form:"priority" validate:"omitempty,oneof=overdue today upcoming none"`
	Result    string `form:"result" validate:"omitempty,oneof=interested not-interested postponed subscribed"`
	Contacted *bool  `form:"contacted"`
	Quick     string `form:"quick" validate:"omitempty,oneof=all mine my-overdue due-today"`
	// Horizon adjusts the expiring-member window in days.
	Horizon  int `form:"horizon" validate:"omitempty,min=1,max=365"`
	Page     int `form:"page" validate:"omitempty,min=1"`
	PageSize int `form:"pageSize" validate:"omitempty,min=1,max=100"`
}

// Response DTOs

// LeadResponse is one row of the consolidated worklist.
type LeadResponse struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Phone            string     `json:"phone"`
	PhoneDisplay     string     `json:"phoneDisplay"`
	Source           string     `json:"source"`
	DaysUntilExpiry  int        `json:"daysUntilExpiry,omitempty"`
	SalesName        string     `json:"salesName,omitempty"`
	LastNote         string     `json:"lastNote,omitempty"`
	Contacted        bool       `json:"contacted"`
	Result           string     `json:"result,omitempty"`
	NextFollowUpDate *time.Time `json:"nextFollowUpDate,omitempty"`
	Priority         string     `json:"priority"`
	Synthesized      bool       `json:"synthesized"`
}

// LeadListResponse is the paginated consolidated worklist.
type LeadListResponse struct {
	Items    []LeadResponse `json:"items"`
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
}

// InteractionResponse is one persisted follow-up interaction.
type InteractionResponse struct {
	ID               string     `json:"id"`
	LeadID           string     `json:"leadId"`
	LeadPhone        string     `json:"leadPhone"`
	Notes            string     `json:"notes"`
	Contacted        bool       `json:"contacted"`
	Result           string     `json:"result,omitempty"`
	NextFollowUpDate *time.Time `json:"nextFollowUpDate,omitempty"`
	SalesName        string     `json:"salesName,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// HistoryResponse is the newest-first interaction history for one lead phone.
type HistoryResponse struct {
	Items []InteractionResponse `json:"items"`
}

// SalesStatResponse is one leaderboard row.
type SalesStatResponse struct {
	SalesName      string  `json:"salesName"`
	TotalFollowUps int     `json:"totalFollowUps"`
	Conversions    int     `json:"conversions"`
	ConversionRate float64 `json:"conversionRate"`
	OverdueCount   int     `json:"overdueCount"`
	TodayCount     int     `json:"todayCount"`
	ContactedToday int     `json:"contactedToday"`
}

// ToInteractionResponse maps a domain interaction to its DTO.
func ToInteractionResponse(interaction domain.FollowUpInteraction) InteractionResponse {
	return InteractionResponse{
		ID:               interaction.ID.String(),
		LeadID:           interaction.LeadID,
		LeadPhone:        interaction.LeadPhone,
		Notes:            interaction.Notes,
		Contacted:        interaction.Contacted,
		Result:           string(interaction.Result),
		NextFollowUpDate: interaction.NextFollowUpDate,
		SalesName:        interaction.SalesName,
		CreatedAt:        interaction.CreatedAt,
	}
}
