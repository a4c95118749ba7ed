// Package adapters bridges the source bounded contexts onto the read
// contracts the follow-ups engine consumes. Each adapter is a thin mapping
// layer so the engine stays decoupled from the source schemas.
package adapters

import (
	"context"

	"github.com/AmrAnter44/sys-body-sub004/internal/dayuse"
	"github.com/AmrAnter44/sys-body-sub004/internal/followups/ports"
	"github.com/AmrAnter44/sys-body-sub004/internal/invitations"
	"github.com/AmrAnter44/sys-body-sub004/internal/members"
	"github.com/AmrAnter44/sys-body-sub004/internal/visitors"
)

// VisitorSource adapts the visitors service to the engine's read contract.
type VisitorSource struct {
	svc *visitors.Service
}

// NewVisitorSource wraps a visitors service.
func NewVisitorSource(svc *visitors.Service) *VisitorSource {
	return &VisitorSource{svc: svc}
}

func (a *VisitorSource) ListVisitors(ctx context.Context) ([]ports.Visitor, error) {
	records, err := a.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ports.Visitor, len(records))
	for i, record := range records {
		out[i] = ports.Visitor{
			ID:        record.ID,
			Name:      record.Name,
			Phone:     record.Phone,
			SourceTag: record.SourceTag,
			CreatedAt: record.CreatedAt,
		}
	}
	return out, nil
}

// MemberSource adapts the members service to the engine's read contract.
type MemberSource struct {
	svc *members.Service
}

// NewMemberSource wraps a members service.
func NewMemberSource(svc *members.Service) *MemberSource {
	return &MemberSource{svc: svc}
}

func (a *MemberSource) ListMembers(ctx context.Context) ([]ports.Member, error) {
	records, err := a.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ports.Member, len(records))
	for i, record := range records {
		out[i] = ports.Member{
			ID:         record.ID,
			Name:       record.Name,
			Phone:      record.Phone,
			IsActive:   record.IsActive,
			ExpiryDate: record.ExpiryDate,
		}
	}
	return out, nil
}

// DayUseSource adapts the day-use service to the engine's read contract.
type DayUseSource struct {
	svc *dayuse.Service
}

// NewDayUseSource wraps a day-use service.
func NewDayUseSource(svc *dayuse.Service) *DayUseSource {
	return &DayUseSource{svc: svc}
}

func (a *DayUseSource) ListDayUseRecords(ctx context.Context) ([]ports.DayUseRecord, error) {
	records, err := a.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ports.DayUseRecord, len(records))
	for i, record := range records {
		out[i] = ports.DayUseRecord{
			ID:        record.ID,
			Name:      record.Name,
			Phone:     record.Phone,
			VisitDate: record.VisitDate,
		}
	}
	return out, nil
}

// InvitationSource adapts the invitations service to the engine's read contract.
type InvitationSource struct {
	svc *invitations.Service
}

// NewInvitationSource wraps an invitations service.
func NewInvitationSource(svc *invitations.Service) *InvitationSource {
	return &InvitationSource{svc: svc}
}

func (a *InvitationSource) ListInvitations(ctx context.Context) ([]ports.Invitation, error) {
	records, err := a.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ports.Invitation, len(records))
	for i, record := range records {
		out[i] = ports.Invitation{
			ID:           record.ID,
			GuestName:    record.GuestName,
			GuestPhone:   record.GuestPhone,
			HostMemberID: record.HostMemberID,
			CreatedAt:    record.CreatedAt,
		}
	}
	return out, nil
}
