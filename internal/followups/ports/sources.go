// Package ports defines the read contracts the consolidation engine consumes.
// These are consumer-driven interfaces: each source context implements its own
// repository, and thin adapters in internal/adapters map those onto the types
// declared here. The engine never imports a source context directly.
package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Visitor is an organic walk-in visitor record. Unlike the other four
// sources, visitor leads are persisted rows, not computed views.
type Visitor struct {
	ID    uuid.UUID
	Name  string
	Phone string
	// SourceTag records how the visitor was captured ("walk-in", "phone",
	// "invitation", ...). Invitation-tagged rows belong to the invitation
	// stream and are excluded from the visitor adapter.
	SourceTag string
	CreatedAt time.Time
}

// Member is the authority record deciding conversion. The engine reads it as
// a snapshot; it never mutates member data.
type Member struct {
	ID         uuid.UUID
	Name       string
	Phone      string
	IsActive   bool
	ExpiryDate time.Time
}

// DayUseRecord is a single-visit service usage.
type DayUseRecord struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	VisitDate time.Time
}

// Invitation is a member-issued guest invitation. Leads use the guest's
// identity, not the host member's.
type Invitation struct {
	ID           uuid.UUID
	GuestName    string
	GuestPhone   string
	HostMemberID uuid.UUID
	CreatedAt    time.Time
}

// VisitorSource lists organic visitor records.
type VisitorSource interface {
	ListVisitors(ctx context.Context) ([]Visitor, error)
}

// MemberSource lists member authority records.
type MemberSource interface {
	ListMembers(ctx context.Context) ([]Member, error)
}

// DayUseSource lists single-day service usage records.
type DayUseSource interface {
	ListDayUseRecords(ctx context.Context) ([]DayUseRecord, error)
}

// InvitationSource lists guest invitation records.
type InvitationSource interface {
	ListInvitations(ctx context.Context) ([]Invitation, error)
}
