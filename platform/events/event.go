// Package events carries domain events between modules without direct
// imports. The bus is in-process; handlers run async by default.
package events

import (
	"context"
	"time"
)

// Event is implemented by every domain event.
type Event interface {
	// EventName uniquely identifies the event type, e.g.
	// "followups.interaction.logged".
	EventName() string
	// OccurredAt is the event's creation time.
	OccurredAt() time.Time
}

// BaseEvent supplies the timestamp half of the Event contract. Concrete
// events embed it and add their own EventName.
type BaseEvent struct {
	Timestamp time.Time `json:"timestamp"`
}

func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// NewBaseEvent stamps a base event with the current time.
func NewBaseEvent() BaseEvent {
	return BaseEvent{Timestamp: time.Now()}
}

// Handler consumes events of one type.
type Handler interface {
	Handle(ctx context.Context, event Event) error
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(ctx context.Context, event Event) error

func (f HandlerFunc) Handle(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// Bus publishes events to subscribed handlers.
type Bus interface {
	// Publish fans the event out to its subscribers. Each handler runs in
	// its own goroutine; failures are logged, not returned.
	Publish(ctx context.Context, event Event)

	// PublishSync runs every subscriber inline and joins their errors.
	PublishSync(ctx context.Context, event Event) error

	// Subscribe registers a handler for the named event type. The name must
	// match the event's EventName.
	Subscribe(eventName string, handler Handler)
}
