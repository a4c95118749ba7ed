package domain

import (
	"time"

	"github.com/google/uuid"
)

// Result records the outcome of a follow-up contact.
type Result string

const (
	ResultInterested    Result = "interested"
	ResultNotInterested Result = "not-interested"
	ResultPostponed     Result = "postponed"
	ResultSubscribed    Result = "subscribed"
	// ResultNone means no outcome was recorded.
	ResultNone Result = ""
)

// ValidResults enumerates the outcomes accepted on create.
var ValidResults = map[Result]bool{
	ResultInterested:    true,
	ResultNotInterested: true,
	ResultPostponed:     true,
	ResultSubscribed:    true,
}

// FollowUpInteraction is a persisted interaction log entry. It is immutable
// once written: created by the add-follow-up operation, deleted only by
// explicit user action, never updated.
type FollowUpInteraction struct {
	ID     uuid.UUID
	LeadID string
	// LeadPhone is denormalized from the linked lead at creation time, so
	// history lookups survive the lead itself being a transient view.
	LeadPhone        string
	Notes            string
	Contacted        bool
	Result           Result
	NextFollowUpDate *time.Time
	SalesName        string
	CreatedAt        time.Time
}
