// Package domain holds the core types of the lead consolidation engine:
// the unified Lead, the persisted FollowUpInteraction, and the priority
// classifier. Everything here is pure data and pure functions; the current
// time is always passed in explicitly so behavior is reproducible.
package domain

import (
	"strings"
	"time"
)

// Source identifies which record stream a lead was derived from.
type Source string

const (
	SourceVisitor          Source = "visitor"
	SourceExpiredMember    Source = "expired-member"
	SourceExpiringMember   Source = "expiring-member"
	SourceDayUse           Source = "day-use"
	SourceMemberInvitation Source = "member-invitation"
)

// ID prefixes for synthesized leads. Leads derived from memberships, day-use
// records and invitations exist only as computed views; their ids carry the
// source prefix so mutation boundaries can tell them apart from persisted rows.
const (
	PrefixExpired    = "expired-"
	PrefixExpiring   = "expiring-"
	PrefixDayUse     = "dayuse-"
	PrefixInvitation = "invitation-"
)

// SystemSalesName is the placeholder credited with interactions that were not
// logged by a real salesperson. It is excluded from per-person statistics.
const SystemSalesName = "system"

var synthesizedPrefixes = []string{PrefixExpired, PrefixExpiring, PrefixDayUse, PrefixInvitation}

// IsSynthesizedID reports whether the id belongs to a synthesized lead.
// Synthesized leads have no persisted identity of their own and must never
// be the target of a delete.
func IsSynthesizedID(id string) bool {
	for _, prefix := range synthesizedPrefixes {
		if strings.HasPrefix(id, prefix) {
			return true
		}
	}
	return false
}

// Lead is a unified follow-up candidate. Exactly one of the five source
// adapters produces each lead; the id is stable across requests.
type Lead struct {
	// ID is "<sourcePrefix><originID>" for synthesized leads, or the raw
	// originating record id for organic visitor entries.
	ID     string
	Name   string
	Phone  string
	Source Source

	// NormalizedPhone is the digit-only join key derived from Phone.
	// It is computed once, at adaptation time, and reused everywhere.
	NormalizedPhone string

	// DaysUntilExpiry is set only for expiring-member leads.
	DaysUntilExpiry int

	// Attribution, filled from the interaction history during consolidation.
	SalesName        string
	LastNote         string
	Contacted        bool
	Result           Result
	NextFollowUpDate *time.Time

	// HistoryNotes holds every non-empty note ever logged for this phone,
	// oldest first. Free-text search runs over all of them, not just the
	// last comment.
	HistoryNotes []string
	Priority         Priority
}

// Synthesized reports whether the lead is a computed view over another record.
func (l Lead) Synthesized() bool {
	return IsSynthesizedID(l.ID)
}
