// Package engine implements the consolidation pipeline: merging adapter
// outputs, removing already-converted leads, attributing interaction history,
// and the filter/sort/paginate stage. All functions are pure; the caller
// supplies snapshots and the reference time.
package engine

import (
	"github.com/AmrAnter44/sys-body-sub004/internal/followups/domain"
	"github.com/AmrAnter44/sys-body-sub004/internal/followups/ports"
	"github.com/AmrAnter44/sys-body-sub004/platform/phone"
)

// Consolidate concatenates adapter outputs into one collection, preserving
// group and in-group order. No deduplication happens here: identity overlap
// across sources is resolved by the conversion filter on a different axis.
func Consolidate(groups ...[]domain.Lead) []domain.Lead {
	total := 0
	for _, group := range groups {
		total += len(group)
	}

	leads := make([]domain.Lead, 0, total)
	for _, group := range groups {
		leads = append(leads, group...)
	}
	return leads
}

// ActivePhoneSet computes the set of normalized phones belonging to active
// members. It is computed once per pipeline run from the member snapshot;
// empty-normalizing phones are excluded so they can never match anything.
func ActivePhoneSet(members []ports.Member) map[string]struct{} {
	set := make(map[string]struct{}, len(members))
	for _, member := range members {
		if !member.IsActive {
			continue
		}
		normalized := phone.Normalize(member.Phone)
		if normalized == "" {
			continue
		}
		set[normalized] = struct{}{}
	}
	return set
}

// FilterConverted drops leads whose phone already belongs to an active
// member, except expiring-member leads: an expiring member is by definition
// still active, so without the exception every renewal candidate would be
// hidden from the worklist.
func FilterConverted(leads []domain.Lead, activePhones map[string]struct{}) []domain.Lead {
	kept := make([]domain.Lead, 0, len(leads))
	for _, lead := range leads {
		if lead.Source != domain.SourceExpiringMember && isConverted(lead, activePhones) {
			continue
		}
		kept = append(kept, lead)
	}
	return kept
}

// isConverted reports whether the lead's phone matches an active member.
func isConverted(lead domain.Lead, activePhones map[string]struct{}) bool {
	if lead.NormalizedPhone == "" {
		return false
	}
	_, ok := activePhones[lead.NormalizedPhone]
	return ok
}
