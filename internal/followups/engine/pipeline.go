package engine

import (
	"sort"
	"strings"

	"github.com/AmrAnter44/sys-body-sub004/internal/followups/domain"
)

// QuickFilter is the salesperson-centric worklist shortcut.
type QuickFilter string

const (
	// QuickAll applies no salesperson restriction.
	QuickAll QuickFilter = "all"
	// QuickMine keeps leads assigned to the current salesperson.
	QuickMine QuickFilter = "mine"
	// QuickMyOverdue keeps the current salesperson's overdue leads.
	QuickMyOverdue QuickFilter = "my-overdue"
	// QuickDueToday keeps anyone's leads due today or overdue.
	QuickDueToday QuickFilter = "due-today"
)

// ValidQuickFilters enumerates the accepted quick filter modes.
var ValidQuickFilters = map[QuickFilter]bool{
	QuickAll:       true,
	QuickMine:      true,
	QuickMyOverdue: true,
	QuickDueToday:  true,
}

// Filters are the user-selected predicates applied to the consolidated
// worklist. Zero values mean "no restriction"; all set predicates compose
// with logical AND.
type Filters struct {
	// Search matches case-insensitively as a substring against name,
	// phone, last note, and assigned salesperson.
	Search    string
	Source    domain.Source
	Priority  domain.Priority
	Result    domain.Result
	Contacted *bool
	Quick     QuickFilter
	// Me is the current salesperson's name, used by QuickMine and
	// QuickMyOverdue.
	Me string
	// ExpiringHorizonDays adjusts the expiring-member adapter's window.
	ExpiringHorizonDays int
}

// ApplyFilters keeps the leads matching every set predicate.
func ApplyFilters(leads []domain.Lead, filters Filters) []domain.Lead {
	search := strings.ToLower(strings.TrimSpace(filters.Search))

	kept := make([]domain.Lead, 0, len(leads))
	for _, lead := range leads {
		if !matchesSearch(lead, search) {
			continue
		}
		if filters.Source != "" && lead.Source != filters.Source {
			continue
		}
		if filters.Priority != "" && lead.Priority != filters.Priority {
			continue
		}
		if filters.Result != "" && lead.Result != filters.Result {
			continue
		}
		if filters.Contacted != nil && lead.Contacted != *filters.Contacted {
			continue
		}
		if !matchesQuick(lead, filters.Quick, filters.Me) {
			continue
		}
		kept = append(kept, lead)
	}
	return kept
}

func matchesSearch(lead domain.Lead, search string) bool {
	if search == "" {
		return true
	}
	for _, field := range []string{lead.Name, lead.Phone, lead.LastNote, lead.SalesName} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	// A lead stays findable by anything ever written about it, not only
	// the latest comment.
	for _, note := range lead.HistoryNotes {
		if strings.Contains(strings.ToLower(note), search) {
			return true
		}
	}
	return false
}

func matchesQuick(lead domain.Lead, quick QuickFilter, me string) bool {
	switch quick {
	case QuickMine:
		return lead.SalesName != "" && lead.SalesName == me
	case QuickMyOverdue:
		return lead.SalesName != "" && lead.SalesName == me && lead.Priority == domain.PriorityOverdue
	case QuickDueToday:
		return lead.Priority == domain.PriorityOverdue || lead.Priority == domain.PriorityToday
	default:
		return true
	}
}

// SortByPriority orders leads by priority rank, overdue first. The sort is
// stable: leads with equal priority keep their consolidation order, which
// keeps pagination deterministic across requests.
func SortByPriority(leads []domain.Lead) []domain.Lead {
	sorted := make([]domain.Lead, len(leads))
	copy(sorted, leads)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority.Rank() < sorted[j].Priority.Rank()
	})
	return sorted
}

// Paginate slices the sorted set into a 1-indexed page. Total is always the
// full filtered count, independent of the requested page.
func Paginate(leads []domain.Lead, page, pageSize int) (items []domain.Lead, total int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	total = len(leads)
	start := (page - 1) * pageSize
	if start >= total {
		return []domain.Lead{}, total
	}

	end := start + pageSize
	if end > total {
		end = total
	}
	return leads[start:end], total
}
