package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AmrAnter44/sys-body-sub004/internal/followups/domain"
	"github.com/AmrAnter44/sys-body-sub004/internal/followups/ports"
	"github.com/AmrAnter44/sys-body-sub004/internal/followups/repository"
	"github.com/AmrAnter44/sys-body-sub004/internal/followups/transport"
	"github.com/AmrAnter44/sys-body-sub004/platform/apperr"
	"github.com/AmrAnter44/sys-body-sub004/platform/logger"

	"github.com/google/uuid"
)

// =============================================================================
// In-memory fakes
// =============================================================================

type fakeSources struct {
	visitors    []ports.Visitor
	members     []ports.Member
	dayUse      []ports.DayUseRecord
	invitations []ports.Invitation

	visitorsErr error
	membersErr  error
}

func (f *fakeSources) ListVisitors(context.Context) ([]ports.Visitor, error) {
	return f.visitors, f.visitorsErr
}
func (f *fakeSources) ListMembers(context.Context) ([]ports.Member, error) {
	return f.members, f.membersErr
}
func (f *fakeSources) ListDayUseRecords(context.Context) ([]ports.DayUseRecord, error) {
	return f.dayUse, nil
}
func (f *fakeSources) ListInvitations(context.Context) ([]ports.Invitation, error) {
	return f.invitations, nil
}

type fakeRepo struct {
	interactions []domain.FollowUpInteraction
	listErr      error
}

func (f *fakeRepo) Create(_ context.Context, interaction domain.FollowUpInteraction) (domain.FollowUpInteraction, error) {
	interaction.ID = uuid.New()
	interaction.CreatedAt = time.Now()
	f.interactions = append(f.interactions, interaction)
	return interaction, nil
}

func (f *fakeRepo) List(context.Context) ([]domain.FollowUpInteraction, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.interactions, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (domain.FollowUpInteraction, error) {
	for _, interaction := range f.interactions {
		if interaction.ID == id {
			return interaction, nil
		}
	}
	return domain.FollowUpInteraction{}, repository.ErrNotFound
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, interaction := range f.interactions {
		if interaction.ID == id {
			f.interactions = append(f.interactions[:i], f.interactions[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

var testNow = time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

func newTestService(sources *fakeSources, repo *fakeRepo) *Service {
	svc := New(Sources{
		Visitors:    sources,
		Members:     sources,
		DayUse:      sources,
		Invitations: sources,
	}, repo, nil, nil, 30, logger.New("development"))
	svc.SetClock(func() time.Time { return testNow })
	return svc
}

// =============================================================================
// Tests
// =============================================================================

func TestGetConsolidatedLeadsMergesAllSources(t *testing.T) {
	sources := &fakeSources{
		visitors: []ports.Visitor{{ID: uuid.New(), Name: "Walk In", Phone: "01011110000", SourceTag: "walk-in"}},
		members: []ports.Member{
			{ID: uuid.New(), Name: "Expired", Phone: "01022220000", IsActive: false, ExpiryDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
			{ID: uuid.New(), Name: "Expiring", Phone: "01033330000", IsActive: true, ExpiryDate: time.Date(2024, 2, 11, 0, 0, 0, 0, time.UTC)},
		},
		dayUse:      []ports.DayUseRecord{{ID: uuid.New(), Name: "Day", Phone: "01044440000"}},
		invitations: []ports.Invitation{{ID: uuid.New(), GuestName: "Guest", GuestPhone: "01055550000"}},
	}
	svc := newTestService(sources, &fakeRepo{})

	resp, err := svc.GetConsolidatedLeads(context.Background(), transport.LeadListQuery{}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 5 {
		t.Fatalf("total = %d, want 5 leads across all sources", resp.Total)
	}

	// The expiring member is still active; the exception must keep the
	// renewal lead visible even though its phone is in the active set.
	var sawExpiring bool
	for _, item := range resp.Items {
		if item.Source == string(domain.SourceExpiringMember) {
			sawExpiring = true
			if item.DaysUntilExpiry != 10 {
				t.Errorf("daysUntilExpiry = %d, want 10", item.DaysUntilExpiry)
			}
		}
	}
	if !sawExpiring {
		t.Error("expiring-member lead missing from the worklist")
	}
}

func TestConvertedVisitorHiddenButRenewalStays(t *testing.T) {
	sharedPhone := "01012345678"
	sources := &fakeSources{
		visitors: []ports.Visitor{{ID: uuid.New(), Name: "Converted", Phone: sharedPhone, SourceTag: "walk-in"}},
		members: []ports.Member{
			{ID: uuid.New(), Name: "Now member", Phone: sharedPhone, IsActive: true, ExpiryDate: time.Date(2024, 2, 11, 0, 0, 0, 0, time.UTC)},
		},
	}
	svc := newTestService(sources, &fakeRepo{})

	resp, err := svc.GetConsolidatedLeads(context.Background(), transport.LeadListQuery{}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Total != 1 {
		t.Fatalf("total = %d, want 1 (visitor hidden, expiring kept)", resp.Total)
	}
	if resp.Items[0].Source != string(domain.SourceExpiringMember) {
		t.Errorf("surviving lead source = %q, want expiring-member", resp.Items[0].Source)
	}
}

func TestSourceOutageDegradesToEmpty(t *testing.T) {
	sources := &fakeSources{
		visitorsErr: errors.New("visitors table unreachable"),
		dayUse:      []ports.DayUseRecord{{ID: uuid.New(), Name: "Day", Phone: "01044440000"}},
	}
	svc := newTestService(sources, &fakeRepo{})

	resp, err := svc.GetConsolidatedLeads(context.Background(), transport.LeadListQuery{}, "")
	if err != nil {
		t.Fatalf("a single source outage must not fail the run: %v", err)
	}
	if resp.Total != 1 {
		t.Fatalf("total = %d, want the day-use lead despite the visitor outage", resp.Total)
	}
}

func TestMembersOutageDisablesConversionFilter(t *testing.T) {
	// When the authority set cannot be read the filter has nothing to match
	// against; every lead stays visible rather than the run failing.
	sources := &fakeSources{
		visitors:   []ports.Visitor{{ID: uuid.New(), Name: "V", Phone: "0101", SourceTag: "walk-in"}},
		membersErr: errors.New("members service down"),
	}
	svc := newTestService(sources, &fakeRepo{})

	resp, err := svc.GetConsolidatedLeads(context.Background(), transport.LeadListQuery{}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 1 {
		t.Fatalf("total = %d, want 1", resp.Total)
	}
}

func TestCreateInteractionDenormalizesLeadPhone(t *testing.T) {
	memberID := uuid.New()
	sources := &fakeSources{
		members: []ports.Member{
			{ID: memberID, Name: "Expired", Phone: "01066660000", IsActive: false, ExpiryDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
	}
	repo := &fakeRepo{}
	svc := newTestService(sources, repo)

	created, err := svc.CreateInteraction(context.Background(), transport.CreateInteractionRequest{
		LeadID:    domain.PrefixExpired + memberID.String(),
		SalesName: "amira",
		Notes:     "wants to rejoin next month",
		Contacted: true,
		Result:    "postponed",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.LeadPhone != "01066660000" {
		t.Errorf("leadPhone = %q, want the origin member's phone", created.LeadPhone)
	}

	// The logged interaction now attributes the lead in the worklist.
	resp, err := svc.GetConsolidatedLeads(context.Background(), transport.LeadListQuery{}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Items[0].SalesName != "amira" || resp.Items[0].LastNote != "wants to rejoin next month" {
		t.Errorf("attribution missing: %+v", resp.Items[0])
	}
}

func TestCreateInteractionValidation(t *testing.T) {
	svc := newTestService(&fakeSources{}, &fakeRepo{})

	_, err := svc.CreateInteraction(context.Background(), transport.CreateInteractionRequest{SalesName: "amira"})
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Errorf("missing leadId: got %v, want validation error", err)
	}

	_, err = svc.CreateInteraction(context.Background(), transport.CreateInteractionRequest{LeadID: "x"})
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Errorf("missing salesName: got %v, want validation error", err)
	}

	_, err = svc.CreateInteraction(context.Background(), transport.CreateInteractionRequest{LeadID: "nope", SalesName: "amira"})
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("unknown lead: got %v, want not found error", err)
	}
}

func TestDeleteInteractionGuardsSynthesizedIDs(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(&fakeSources{}, repo)

	err := svc.DeleteInteraction(context.Background(), "expired-abc123")
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("deleting a synthesized id: got %v, want validation error", err)
	}

	err = svc.DeleteInteraction(context.Background(), "not-a-uuid")
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("deleting a malformed id: got %v, want validation error", err)
	}

	err = svc.DeleteInteraction(context.Background(), uuid.New().String())
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("deleting a missing id: got %v, want not found error", err)
	}
}

func TestDeleteInteractionRemovesFromHistory(t *testing.T) {
	visitorID := uuid.New()
	sources := &fakeSources{
		visitors: []ports.Visitor{{ID: visitorID, Name: "V", Phone: "01012345678", SourceTag: "walk-in"}},
	}
	repo := &fakeRepo{}
	svc := newTestService(sources, repo)

	created, err := svc.CreateInteraction(context.Background(), transport.CreateInteractionRequest{
		LeadID:    visitorID.String(),
		SalesName: "amira",
		Notes:     "first call",
		Contacted: true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	history, err := svc.History(context.Background(), "01012345678")
	if err != nil || len(history.Items) != 1 {
		t.Fatalf("expected 1 history entry, got %d (err %v)", len(history.Items), err)
	}

	if err := svc.DeleteInteraction(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	history, err = svc.History(context.Background(), "01012345678")
	if err != nil || len(history.Items) != 0 {
		t.Fatalf("expected empty history after delete, got %d (err %v)", len(history.Items), err)
	}
}

func TestGetLeaderboardCreditsConversions(t *testing.T) {
	sharedPhone := "01012345678"
	sources := &fakeSources{
		visitors: []ports.Visitor{{ID: uuid.New(), Name: "Converted", Phone: sharedPhone, SourceTag: "walk-in"}},
		members: []ports.Member{
			{ID: uuid.New(), Name: "Now member", Phone: sharedPhone, IsActive: true, ExpiryDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
	}
	repo := &fakeRepo{interactions: []domain.FollowUpInteraction{{
		ID:        uuid.New(),
		LeadPhone: sharedPhone,
		Notes:     "signed up!",
		Contacted: true,
		Result:    domain.ResultSubscribed,
		SalesName: "amira",
		CreatedAt: testNow.Add(-time.Hour),
	}}}
	svc := newTestService(sources, repo)

	stats, err := svc.GetLeaderboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("expected 1 salesperson, got %d", len(stats))
	}

	// The converted visitor is hidden from the worklist, but the
	// leaderboard still credits amira with the conversion.
	amira := stats[0]
	if amira.TotalFollowUps != 1 || amira.Conversions != 1 || amira.ConversionRate != 100 {
		t.Errorf("stats = %+v, want 1 follow-up, 1 conversion, 100%%", amira)
	}
	if amira.ContactedToday != 1 {
		t.Errorf("contactedToday = %d, want 1", amira.ContactedToday)
	}
}
