package engine

import (
	"testing"

	"github.com/AmrAnter44/sys-body-sub004/internal/followups/domain"
	"github.com/AmrAnter44/sys-body-sub004/internal/followups/ports"
	"github.com/AmrAnter44/sys-body-sub004/platform/phone"

	"github.com/google/uuid"
)

func lead(id string, source domain.Source, rawPhone string) domain.Lead {
	return domain.Lead{
		ID:              id,
		Name:            "Lead " + id,
		Phone:           rawPhone,
		NormalizedPhone: phone.Normalize(rawPhone),
		Source:          source,
	}
}

func TestConsolidatePreservesOrder(t *testing.T) {
	a := []domain.Lead{lead("a1", domain.SourceVisitor, "0101"), lead("a2", domain.SourceVisitor, "0102")}
	b := []domain.Lead{lead("expired-b1", domain.SourceExpiredMember, "0103")}

	all := Consolidate(a, b, nil)

	if len(all) != 3 {
		t.Fatalf("expected 3 leads, got %d", len(all))
	}
	wantOrder := []string{"a1", "a2", "expired-b1"}
	for i, want := range wantOrder {
		if all[i].ID != want {
			t.Errorf("position %d = %q, want %q", i, all[i].ID, want)
		}
	}
}

func TestActivePhoneSetSkipsInactiveAndEmpty(t *testing.T) {
	members := []ports.Member{
		{ID: uuid.New(), Phone: "01012345678", IsActive: true},
		{ID: uuid.New(), Phone: "01099998888", IsActive: false},
		{ID: uuid.New(), Phone: "", IsActive: true},
		{ID: uuid.New(), Phone: "+0", IsActive: true}, // normalizes to empty
	}

	set := ActivePhoneSet(members)

	if len(set) != 1 {
		t.Fatalf("expected 1 phone in active set, got %d", len(set))
	}
	if _, ok := set["1012345678"]; !ok {
		t.Error("active member's normalized phone missing from set")
	}
}

func TestFilterConvertedKeepsExpiringException(t *testing.T) {
	// An active member and two leads sharing their phone: the visitor lead
	// is converted and must drop; the expiring-member lead is the renewal
	// candidate and must stay.
	activeMember := ports.Member{ID: uuid.New(), Phone: "01012345678", IsActive: true}
	active := ActivePhoneSet([]ports.Member{activeMember})

	visitor := lead("v1", domain.SourceVisitor, "+20 10 1234 5678")
	expiring := lead("expiring-m1", domain.SourceExpiringMember, "01012345678")
	unrelated := lead("v2", domain.SourceVisitor, "01055554444")

	kept := FilterConverted([]domain.Lead{visitor, expiring, unrelated}, active)

	if len(kept) != 2 {
		t.Fatalf("expected 2 leads after conversion filter, got %d", len(kept))
	}
	ids := map[string]bool{}
	for _, l := range kept {
		ids[l.ID] = true
	}
	if ids["v1"] {
		t.Error("converted visitor lead must be removed")
	}
	if !ids["expiring-m1"] {
		t.Error("expiring-member lead must survive the conversion filter")
	}
	if !ids["v2"] {
		t.Error("unconverted visitor lead must be kept")
	}
}

func TestFilterConvertedEmptyPhoneNeverMatches(t *testing.T) {
	active := map[string]struct{}{"": {}}
	noPhone := lead("v1", domain.SourceVisitor, "")

	kept := FilterConverted([]domain.Lead{noPhone}, active)
	if len(kept) != 1 {
		t.Fatal("a lead with an empty normalized phone must never count as converted")
	}
}
