package domain

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassifyPriorityMonotonicity(t *testing.T) {
	now := time.Date(2024, 2, 1, 14, 30, 0, 0, time.UTC)

	before := date(2024, 1, 20)
	sameDay := date(2024, 2, 1)
	after := date(2024, 2, 10)

	if got := ClassifyPriority(&before, now); got != PriorityOverdue {
		t.Errorf("past date classified as %q, want overdue", got)
	}
	if got := ClassifyPriority(&sameDay, now); got != PriorityToday {
		t.Errorf("same day classified as %q, want today", got)
	}
	if got := ClassifyPriority(&after, now); got != PriorityUpcoming {
		t.Errorf("future date classified as %q, want upcoming", got)
	}
	if got := ClassifyPriority(nil, now); got != PriorityNone {
		t.Errorf("nil date classified as %q, want none", got)
	}
}

func TestClassifyPriorityIgnoresTimeOfDay(t *testing.T) {
	// Target later today must classify as today, not upcoming,
	// regardless of the wall-clock time on either side.
	now := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)
	target := time.Date(2024, 2, 1, 23, 59, 0, 0, time.UTC)

	if got := ClassifyPriority(&target, now); got != PriorityToday {
		t.Errorf("same-day evening target classified as %q, want today", got)
	}

	// Target earlier today must not classify as overdue.
	target = time.Date(2024, 2, 1, 0, 1, 0, 0, time.UTC)
	now = time.Date(2024, 2, 1, 22, 0, 0, 0, time.UTC)
	if got := ClassifyPriority(&target, now); got != PriorityToday {
		t.Errorf("same-day morning target classified as %q, want today", got)
	}
}

func TestPriorityRankOrdering(t *testing.T) {
	ordered := []Priority{PriorityOverdue, PriorityToday, PriorityUpcoming, PriorityNone}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].Rank() >= ordered[i].Rank() {
			t.Errorf("expected %q to rank before %q", ordered[i-1], ordered[i])
		}
	}
}

func TestIsSynthesizedID(t *testing.T) {
	cases := []struct {
		id   string
		want bool
	}{
		{"expired-abc123", true},
		{"expiring-abc123", true},
		{"dayuse-9f1", true},
		{"invitation-42", true},
		{"7d4f3f1e-8a2b-4c88-9c2f-0f4a5b6c7d8e", false},
		{"", false},
		{"expire-abc", false},
	}

	for _, tc := range cases {
		if got := IsSynthesizedID(tc.id); got != tc.want {
			t.Errorf("IsSynthesizedID(%q) = %v, want %v", tc.id, got, tc.want)
		}
	}
}
