package events

import "time"

// Event is the contract for anything forwarded to the external bus.
type Event interface {
	// EventType returns the dotted event code, e.g. "task.created".
	EventType() string

	Payload() map[string]interface{}

	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Activity builds the event emitted after a record is written.
func Activity(eventType, entity, id string, at time.Time) BaseEvent {
	return BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"entity": entity,
			"id":     id,
		},
		OccurredAt: at,
	}
}

// Subject is the bus subject an event is published on.
func Subject(e Event) string {
	return "events." + e.EventType()
}
