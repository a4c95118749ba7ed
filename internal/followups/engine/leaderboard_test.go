package engine

import (
	"testing"
	"time"

	"github.com/AmrAnter44/sys-body-sub004/internal/followups/domain"
)

func attributedLead(id, sales string, priority domain.Priority, rawPhone string) domain.Lead {
	l := lead(id, domain.SourceVisitor, rawPhone)
	l.SalesName = sales
	l.Priority = priority
	return l
}

func TestLeaderboardAggregation(t *testing.T) {
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	active := map[string]struct{}{"1012345678": {}}

	leads := []domain.Lead{
		// amira: 2 follow-ups, 1 conversion, 1 overdue
		attributedLead("a1", "amira", domain.PriorityOverdue, "01012345678"), // converted
		attributedLead("a2", "amira", domain.PriorityToday, "01055550000"),
		// hassan: 1 follow-up, 0 conversions
		attributedLead("h1", "hassan", domain.PriorityUpcoming, "01066660000"),
		// unattributed and system-credited leads accrue nothing
		attributedLead("x1", "", domain.PriorityOverdue, "01077770000"),
		attributedLead("x2", domain.SystemSalesName, domain.PriorityOverdue, "01088880000"),
	}

	interactions := []domain.FollowUpInteraction{
		{SalesName: "amira", Contacted: true, CreatedAt: now.Add(-2 * time.Hour)},
		{SalesName: "amira", Contacted: false, CreatedAt: now.Add(-1 * time.Hour)},
		{SalesName: "amira", Contacted: true, CreatedAt: now.AddDate(0, 0, -1)}, // yesterday
		{SalesName: domain.SystemSalesName, Contacted: true, CreatedAt: now},
	}

	stats := Leaderboard(leads, interactions, active, now)

	if len(stats) != 2 {
		t.Fatalf("expected 2 salespeople, got %d", len(stats))
	}

	// amira converts 50%, hassan 0% -> amira ranks first.
	amira := stats[0]
	if amira.SalesName != "amira" {
		t.Fatalf("rank 1 = %q, want amira", amira.SalesName)
	}
	if amira.TotalFollowUps != 2 || amira.Conversions != 1 {
		t.Errorf("amira stats = %d/%d, want 1/2", amira.Conversions, amira.TotalFollowUps)
	}
	if amira.ConversionRate != 50 {
		t.Errorf("amira conversionRate = %v, want 50", amira.ConversionRate)
	}
	if amira.OverdueCount != 1 || amira.TodayCount != 1 {
		t.Errorf("amira overdue/today = %d/%d, want 1/1", amira.OverdueCount, amira.TodayCount)
	}
	if amira.ContactedToday != 1 {
		t.Errorf("amira contactedToday = %d, want 1", amira.ContactedToday)
	}

	hassan := stats[1]
	if hassan.ConversionRate != 0 {
		t.Errorf("hassan conversionRate = %v, want 0", hassan.ConversionRate)
	}
}

func TestLeaderboardConversionIncludesExpiringMembers(t *testing.T) {
	// Conversion credit uses the plain phone-match rule: an expiring member
	// whose phone is in the active set counts as a conversion even though
	// the worklist keeps that lead visible.
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	active := map[string]struct{}{"1012345678": {}}

	renewal := lead("expiring-m1", domain.SourceExpiringMember, "01012345678")
	renewal.SalesName = "amira"

	stats := Leaderboard([]domain.Lead{renewal}, nil, active, now)

	if len(stats) != 1 || stats[0].Conversions != 1 {
		t.Fatal("expiring-member lead with active phone must count as a conversion")
	}
}

func TestLeaderboardConservation(t *testing.T) {
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	active := map[string]struct{}{"1012345678": {}, "1055550000": {}}

	leads := []domain.Lead{
		attributedLead("a1", "amira", domain.PriorityNone, "01012345678"),
		attributedLead("a2", "amira", domain.PriorityNone, "01055550000"),
		attributedLead("a3", "amira", domain.PriorityNone, "01066660000"),
		attributedLead("h1", "hassan", domain.PriorityNone, "01077770000"),
	}

	for _, s := range Leaderboard(leads, nil, active, now) {
		if s.Conversions > s.TotalFollowUps {
			t.Errorf("%s: conversions %d exceed totalFollowUps %d", s.SalesName, s.Conversions, s.TotalFollowUps)
		}
		if s.ConversionRate < 0 || s.ConversionRate > 100 {
			t.Errorf("%s: conversionRate %v outside [0,100]", s.SalesName, s.ConversionRate)
		}
	}
}

func TestLeaderboardTiesKeepInputOrder(t *testing.T) {
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

	leads := []domain.Lead{
		attributedLead("h1", "hassan", domain.PriorityNone, "0101"),
		attributedLead("a1", "amira", domain.PriorityNone, "0102"),
	}

	stats := Leaderboard(leads, nil, map[string]struct{}{}, now)

	if stats[0].SalesName != "hassan" || stats[1].SalesName != "amira" {
		t.Errorf("tied conversion rates must keep first-seen order, got %q then %q",
			stats[0].SalesName, stats[1].SalesName)
	}
}
