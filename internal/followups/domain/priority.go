package domain

import "time"

// Priority is the time-sensitivity tag derived from a lead's next scheduled
// contact date.
type Priority string

const (
	PriorityOverdue  Priority = "overdue"
	PriorityToday    Priority = "today"
	PriorityUpcoming Priority = "upcoming"
	PriorityNone     Priority = "none"
)

// Rank returns the display ordering of a priority. Overdue always sorts first.
func (p Priority) Rank() int {
	switch p {
	case PriorityOverdue:
		return 0
	case PriorityToday:
		return 1
	case PriorityUpcoming:
		return 2
	default:
		return 3
	}
}

// StartOfDay truncates t to midnight in its own location. Priority and
// expiry math compare whole days; time-of-day never affects classification.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ClassifyPriority derives the priority tag from the next scheduled contact
// date. Both the target and now are normalized to midnight before comparing.
// A nil target yields PriorityNone.
func ClassifyPriority(target *time.Time, now time.Time) Priority {
	if target == nil {
		return PriorityNone
	}

	day := StartOfDay(*target)
	today := StartOfDay(now)

	switch {
	case day.Before(today):
		return PriorityOverdue
	case day.Equal(today):
		return PriorityToday
	default:
		return PriorityUpcoming
	}
}
