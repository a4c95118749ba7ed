package engine

import (
	"fmt"
	"testing"

	"github.com/AmrAnter44/sys-body-sub004/internal/followups/domain"
)

func prioritizedLead(id string, priority domain.Priority) domain.Lead {
	l := lead(id, domain.SourceVisitor, "0101")
	l.Priority = priority
	return l
}

func TestApplyFiltersComposeWithAND(t *testing.T) {
	contacted := true

	a := prioritizedLead("a", domain.PriorityOverdue)
	a.SalesName = "amira"
	a.Contacted = true
	a.Result = domain.ResultInterested

	b := prioritizedLead("b", domain.PriorityOverdue)
	b.SalesName = "hassan"
	b.Contacted = true

	c := prioritizedLead("c", domain.PriorityToday)
	c.SalesName = "amira"

	leads := []domain.Lead{a, b, c}

	got := ApplyFilters(leads, Filters{
		Priority:  domain.PriorityOverdue,
		Contacted: &contacted,
		Quick:     QuickMine,
		Me:        "amira",
	})

	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("expected only lead a, got %v", ids(got))
	}
}

func TestApplyFiltersSearch(t *testing.T) {
	a := lead("a", domain.SourceVisitor, "01012345678")
	a.Name = "Mona Ibrahim"
	b := lead("b", domain.SourceDayUse, "01099990000")
	b.LastNote = "asked about the POOL schedule"
	c := lead("c", domain.SourceVisitor, "01055550000")
	c.SalesName = "Hassan"

	leads := []domain.Lead{a, b, c}

	cases := []struct {
		search string
		want   []string
	}{
		{"mona", []string{"a"}},
		{"pool", []string{"b"}},
		{"hassan", []string{"c"}},
		{"0109999", []string{"b"}},
		{"", []string{"a", "b", "c"}},
		{"nomatch", nil},
	}

	for _, tc := range cases {
		got := ids(ApplyFilters(leads, Filters{Search: tc.search}))
		if fmt.Sprint(got) != fmt.Sprint(tc.want) {
			t.Errorf("search %q matched %v, want %v", tc.search, got, tc.want)
		}
	}
}

func TestApplyFiltersSearchOlderNotes(t *testing.T) {
	a := lead("a", domain.SourceVisitor, "01012345678")
	a.LastNote = "call back tomorrow"
	a.HistoryNotes = []string{"wants the YOGA package", "call back tomorrow"}

	b := lead("b", domain.SourceDayUse, "01099990000")
	b.LastNote = "not picking up"
	b.HistoryNotes = []string{"not picking up"}

	leads := []domain.Lead{a, b}

	// An older note keeps matching after a newer one is written.
	got := ids(ApplyFilters(leads, Filters{Search: "yoga"}))
	if fmt.Sprint(got) != fmt.Sprint([]string{"a"}) {
		t.Fatalf("search over older notes matched %v, want [a]", got)
	}

	if got := ids(ApplyFilters(leads, Filters{Search: "picking"})); fmt.Sprint(got) != fmt.Sprint([]string{"b"}) {
		t.Fatalf("search over latest note matched %v, want [b]", got)
	}
}

func TestQuickDueTodayIncludesAnyonesOverdue(t *testing.T) {
	mineOverdue := prioritizedLead("a", domain.PriorityOverdue)
	mineOverdue.SalesName = "amira"
	othersToday := prioritizedLead("b", domain.PriorityToday)
	othersToday.SalesName = "hassan"
	upcoming := prioritizedLead("c", domain.PriorityUpcoming)

	got := ids(ApplyFilters([]domain.Lead{mineOverdue, othersToday, upcoming}, Filters{Quick: QuickDueToday, Me: "amira"}))
	if fmt.Sprint(got) != fmt.Sprint([]string{"a", "b"}) {
		t.Errorf("due-today quick filter matched %v, want [a b]", got)
	}
}

func TestSortByPriorityStable(t *testing.T) {
	leads := []domain.Lead{
		prioritizedLead("n1", domain.PriorityNone),
		prioritizedLead("o1", domain.PriorityOverdue),
		prioritizedLead("t1", domain.PriorityToday),
		prioritizedLead("o2", domain.PriorityOverdue),
		prioritizedLead("u1", domain.PriorityUpcoming),
		prioritizedLead("t2", domain.PriorityToday),
	}

	sorted := SortByPriority(leads)

	want := []string{"o1", "o2", "t1", "t2", "u1", "n1"}
	if fmt.Sprint(ids(sorted)) != fmt.Sprint(want) {
		t.Errorf("sorted order %v, want %v", ids(sorted), want)
	}

	// Input must be untouched.
	if leads[0].ID != "n1" {
		t.Error("SortByPriority must not mutate its input")
	}
}

func TestPaginationCompleteness(t *testing.T) {
	var leads []domain.Lead
	for i := 0; i < 23; i++ {
		leads = append(leads, prioritizedLead(fmt.Sprintf("l%02d", i), domain.PriorityToday))
	}
	sorted := SortByPriority(leads)

	for _, pageSize := range []int{1, 4, 5, 23, 50} {
		var collected []string
		page := 1
		for {
			items, total := Paginate(sorted, page, pageSize)
			if total != 23 {
				t.Fatalf("pageSize %d page %d: total = %d, want 23", pageSize, page, total)
			}
			if len(items) == 0 {
				break
			}
			collected = append(collected, ids(items)...)
			page++
		}

		if len(collected) != 23 {
			t.Fatalf("pageSize %d: collected %d items, want 23", pageSize, len(collected))
		}
		seen := map[string]bool{}
		for i, id := range collected {
			if seen[id] {
				t.Fatalf("pageSize %d: item %q appeared twice", pageSize, id)
			}
			seen[id] = true
			if id != sorted[i].ID {
				t.Fatalf("pageSize %d: position %d = %q, want %q", pageSize, i, id, sorted[i].ID)
			}
		}
	}
}

func TestPaginateDefaults(t *testing.T) {
	leads := []domain.Lead{prioritizedLead("a", domain.PriorityToday)}

	items, total := Paginate(leads, 0, 0)
	if total != 1 || len(items) != 1 {
		t.Errorf("out-of-range page/pageSize must fall back to page 1 / default size")
	}

	items, total = Paginate(leads, 5, 10)
	if total != 1 || len(items) != 0 {
		t.Errorf("page beyond the end must return an empty page with the full total")
	}
}

func ids(leads []domain.Lead) []string {
	var out []string
	for _, l := range leads {
		out = append(out, l.ID)
	}
	return out
}
