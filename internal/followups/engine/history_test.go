package engine

import (
	"testing"
	"time"

	"github.com/AmrAnter44/sys-body-sub004/internal/followups/domain"
	"github.com/AmrAnter44/sys-body-sub004/platform/phone"

	"github.com/google/uuid"
)

func interaction(rawPhone, notes, sales string, createdAt time.Time) domain.FollowUpInteraction {
	return domain.FollowUpInteraction{
		ID:        uuid.New(),
		LeadPhone: rawPhone,
		Notes:     notes,
		SalesName: sales,
		CreatedAt: createdAt,
	}
}

func TestLastCommentAndHistoryOrdering(t *testing.T) {
	t1 := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC)

	first := interaction("01012345678", "first note", "amira", t1)
	second := interaction("+20 10 1234 5678", "second note", "amira", t2)

	// Deliberately insert newest first; the index must sort by CreatedAt.
	index := BuildHistoryIndex([]domain.FollowUpInteraction{second, first}, phone.Normalize)

	key := phone.Normalize("01012345678")
	if got := index.LastComment(key); got != "second note" {
		t.Errorf("last comment = %q, want the t2 note", got)
	}

	history := index.History(key)
	if len(history) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(history))
	}
	if !history[0].CreatedAt.Equal(t2) || !history[1].CreatedAt.Equal(t1) {
		t.Error("history must be newest first")
	}
}

func TestNotesCollectsFullHistory(t *testing.T) {
	t1 := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	t3 := time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC)

	index := BuildHistoryIndex([]domain.FollowUpInteraction{
		interaction("0101", "wants the yoga package", "amira", t1),
		interaction("0101", "", "amira", t2),
		interaction("0101", "call back tomorrow", "amira", t3),
	}, phone.Normalize)

	notes := index.Notes(phone.Normalize("0101"))
	if len(notes) != 2 {
		t.Fatalf("expected 2 non-empty notes, got %d", len(notes))
	}
	if notes[0] != "wants the yoga package" || notes[1] != "call back tomorrow" {
		t.Errorf("notes = %v, want oldest first with empties dropped", notes)
	}
}

func TestLastCommentSkipsEmptyNotes(t *testing.T) {
	t1 := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC)

	withNote := interaction("0101", "called, interested", "amira", t1)
	noNote := interaction("0101", "", "amira", t2)

	index := BuildHistoryIndex([]domain.FollowUpInteraction{withNote, noNote}, phone.Normalize)

	if got := index.LastComment(phone.Normalize("0101")); got != "called, interested" {
		t.Errorf("last comment = %q, want the older non-empty note", got)
	}
}

func TestAttributeFromLatestInteraction(t *testing.T) {
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	due := time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC)

	latest := interaction("01012345678", "will decide next week", "hassan", time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC))
	latest.Contacted = true
	latest.Result = domain.ResultPostponed
	latest.NextFollowUpDate = &due

	index := BuildHistoryIndex([]domain.FollowUpInteraction{latest}, phone.Normalize)
	leads := Attribute([]domain.Lead{lead("v1", domain.SourceVisitor, "01012345678")}, index, now)

	got := leads[0]
	if got.SalesName != "hassan" {
		t.Errorf("salesName = %q, want hassan", got.SalesName)
	}
	if got.Result != domain.ResultPostponed {
		t.Errorf("result = %q, want postponed", got.Result)
	}
	if !got.Contacted {
		t.Error("contacted flag must carry over from the latest interaction")
	}
	if got.Priority != domain.PriorityOverdue {
		t.Errorf("priority = %q, want overdue (due date in the past)", got.Priority)
	}
}

func TestAttributeSynthesizedDefaultsToToday(t *testing.T) {
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	index := BuildHistoryIndex(nil, phone.Normalize)

	virtual := lead("expired-m1", domain.SourceExpiredMember, "0101")
	organic := lead("v1", domain.SourceVisitor, "0102")

	attributed := Attribute([]domain.Lead{virtual, organic}, index, now)

	if attributed[0].Priority != domain.PriorityToday {
		t.Errorf("virtual lead priority = %q, want today", attributed[0].Priority)
	}
	if attributed[1].Priority != domain.PriorityNone {
		t.Errorf("organic lead without schedule priority = %q, want none", attributed[1].Priority)
	}
}
