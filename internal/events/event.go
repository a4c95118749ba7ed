// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"time"

	"github.com/AmrAnter44/sys-body-sub004/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Follow-Up Domain Events
// =============================================================================

// FollowUpLogged is published when a salesperson records a new interaction.
type FollowUpLogged struct {
	BaseEvent
	InteractionID    uuid.UUID  `json:"interactionId"`
	LeadID           string     `json:"leadId"`
	LeadPhone        string     `json:"leadPhone"`
	SalesName        string     `json:"salesName"`
	NextFollowUpDate *time.Time `json:"nextFollowUpDate,omitempty"`
}

func (e FollowUpLogged) EventName() string { return "followups.interaction.logged" }

// FollowUpDeleted is published when an interaction is removed.
type FollowUpDeleted struct {
	BaseEvent
	InteractionID uuid.UUID `json:"interactionId"`
}

func (e FollowUpDeleted) EventName() string { return "followups.interaction.deleted" }
