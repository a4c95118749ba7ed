package engine

import (
	"sort"
	"time"

	"github.com/AmrAnter44/sys-body-sub004/internal/followups/domain"
)

// HistoryIndex maps a normalized phone to that lead's interactions, sorted
// ascending by creation time. The same index serves two different views:
// "last comment" attribution iterates oldest to newest and lets later
// entries win, while the per-lead history view reverses to newest-first.
type HistoryIndex map[string][]domain.FollowUpInteraction

// BuildHistoryIndex groups interactions by their denormalized lead phone.
// Interactions whose phone normalizes to empty are unreachable by lookup
// and are dropped.
func BuildHistoryIndex(interactions []domain.FollowUpInteraction, normalize func(string) string) HistoryIndex {
	index := make(HistoryIndex)
	for _, interaction := range interactions {
		key := normalize(interaction.LeadPhone)
		if key == "" {
			continue
		}
		index[key] = append(index[key], interaction)
	}

	for key := range index {
		entries := index[key]
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].CreatedAt.Before(entries[j].CreatedAt)
		})
		index[key] = entries
	}

	return index
}

// Latest returns the most recent interaction for the phone, or nil.
func (idx HistoryIndex) Latest(normalizedPhone string) *domain.FollowUpInteraction {
	entries := idx[normalizedPhone]
	if len(entries) == 0 {
		return nil
	}
	latest := entries[len(entries)-1]
	return &latest
}

// LastComment returns the chronologically last non-empty note for the phone.
func (idx HistoryIndex) LastComment(normalizedPhone string) string {
	entries := idx[normalizedPhone]
	last := ""
	for _, entry := range entries {
		if entry.Notes != "" {
			last = entry.Notes
		}
	}
	return last
}

// Notes returns every non-empty note for the phone, oldest first.
func (idx HistoryIndex) Notes(normalizedPhone string) []string {
	var notes []string
	for _, entry := range idx[normalizedPhone] {
		if entry.Notes != "" {
			notes = append(notes, entry.Notes)
		}
	}
	return notes
}

// History returns the full interaction list for the phone, newest first.
func (idx HistoryIndex) History(normalizedPhone string) []domain.FollowUpInteraction {
	entries := idx[normalizedPhone]
	reversed := make([]domain.FollowUpInteraction, len(entries))
	for i, entry := range entries {
		reversed[len(entries)-1-i] = entry
	}
	return reversed
}

// Attribute fills each lead's interaction-derived fields from the index and
// classifies its priority. Synthesized leads with no recorded interaction get
// a synthesized "today" follow-up date so they surface in the worklist;
// persisted visitor leads without one stay unscheduled.
func Attribute(leads []domain.Lead, index HistoryIndex, now time.Time) []domain.Lead {
	attributed := make([]domain.Lead, len(leads))
	for i, lead := range leads {
		latest := index.Latest(lead.NormalizedPhone)
		if latest != nil {
			lead.SalesName = latest.SalesName
			lead.Contacted = latest.Contacted
			lead.Result = latest.Result
			lead.NextFollowUpDate = latest.NextFollowUpDate
			lead.LastNote = index.LastComment(lead.NormalizedPhone)
			lead.HistoryNotes = index.Notes(lead.NormalizedPhone)
		} else if lead.Synthesized() {
			today := domain.StartOfDay(now)
			lead.NextFollowUpDate = &today
		}

		lead.Priority = domain.ClassifyPriority(lead.NextFollowUpDate, now)
		attributed[i] = lead
	}
	return attributed
}
