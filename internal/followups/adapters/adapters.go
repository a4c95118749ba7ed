// Package adapters contains the five source adapters of the consolidation
// engine. Each adapter is a pure function from source records to leads,
// independent of the others; the reference time is always passed in.
package adapters

import (
	"math"
	"time"

	"github.com/AmrAnter44/sys-body-sub004/internal/followups/domain"
	"github.com/AmrAnter44/sys-body-sub004/internal/followups/ports"
	"github.com/AmrAnter44/sys-body-sub004/platform/phone"
)

// DefaultExpiringHorizonDays is the fallback horizon for the expiring-member
// adapter when the request does not adjust it.
const DefaultExpiringHorizonDays = 30

// VisitorLeads passes through organic visitor records. Records whose source
// tag marks them as invitations are skipped; those belong to the invitation
// adapter's stream and must not appear twice.
func VisitorLeads(records []ports.Visitor) []domain.Lead {
	leads := make([]domain.Lead, 0, len(records))
	for _, record := range records {
		if record.SourceTag == "invitation" || record.SourceTag == "member-invitation" {
			continue
		}
		leads = append(leads, domain.Lead{
			ID:              record.ID.String(),
			Name:            record.Name,
			Phone:           record.Phone,
			NormalizedPhone: phone.Normalize(record.Phone),
			Source:          domain.SourceVisitor,
		})
	}
	return leads
}

// ExpiredMemberLeads selects inactive members whose membership expired before
// today. One lead per member record.
func ExpiredMemberLeads(members []ports.Member, now time.Time) []domain.Lead {
	today := domain.StartOfDay(now)
	leads := make([]domain.Lead, 0)
	for _, member := range members {
		if member.IsActive || !member.ExpiryDate.Before(today) {
			continue
		}
		leads = append(leads, domain.Lead{
			ID:              domain.PrefixExpired + member.ID.String(),
			Name:            member.Name,
			Phone:           member.Phone,
			NormalizedPhone: phone.Normalize(member.Phone),
			Source:          domain.SourceExpiredMember,
		})
	}
	return leads
}

// ExpiringMemberLeads selects active members whose membership expires within
// the horizon: today < expiry <= today + horizonDays. Already-expired members
// never qualify here; they go through ExpiredMemberLeads instead.
func ExpiringMemberLeads(members []ports.Member, now time.Time, horizonDays int) []domain.Lead {
	if horizonDays < 1 {
		horizonDays = DefaultExpiringHorizonDays
	}

	today := domain.StartOfDay(now)
	horizon := today.AddDate(0, 0, horizonDays)

	leads := make([]domain.Lead, 0)
	for _, member := range members {
		if !member.IsActive {
			continue
		}
		if !member.ExpiryDate.After(today) || member.ExpiryDate.After(horizon) {
			continue
		}
		leads = append(leads, domain.Lead{
			ID:              domain.PrefixExpiring + member.ID.String(),
			Name:            member.Name,
			Phone:           member.Phone,
			NormalizedPhone: phone.Normalize(member.Phone),
			Source:          domain.SourceExpiringMember,
			DaysUntilExpiry: daysUntil(today, member.ExpiryDate),
		})
	}
	return leads
}

// DayUseLeads produces one lead per single-visit service record.
func DayUseLeads(records []ports.DayUseRecord) []domain.Lead {
	leads := make([]domain.Lead, 0, len(records))
	for _, record := range records {
		leads = append(leads, domain.Lead{
			ID:              domain.PrefixDayUse + record.ID.String(),
			Name:            record.Name,
			Phone:           record.Phone,
			NormalizedPhone: phone.Normalize(record.Phone),
			Source:          domain.SourceDayUse,
		})
	}
	return leads
}

// InvitationLeads produces one lead per guest invitation, using the guest's
// identity rather than the host member's.
func InvitationLeads(records []ports.Invitation) []domain.Lead {
	leads := make([]domain.Lead, 0, len(records))
	for _, record := range records {
		leads = append(leads, domain.Lead{
			ID:              domain.PrefixInvitation + record.ID.String(),
			Name:            record.GuestName,
			Phone:           record.GuestPhone,
			NormalizedPhone: phone.Normalize(record.GuestPhone),
			Source:          domain.SourceMemberInvitation,
		})
	}
	return leads
}

// daysUntil is the ceiling of whole days between start-of-today and expiry.
func daysUntil(today, expiry time.Time) int {
	return int(math.Ceil(expiry.Sub(today).Hours() / 24))
}
