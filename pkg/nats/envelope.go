package nats

import (
	"encoding/json"
	"fmt"
	"time"

	"minddock/pkg/events"
)

// envelope is the wire form of an event. Type and time travel with the data
// so subscribers do not have to guess them from the subject.
type envelope struct {
	Type       string                 `json:"type"`
	OccurredAt time.Time              `json:"occurredAt"`
	Data       map[string]interface{} `json:"data"`
}

func encode(e events.Event) ([]byte, error) {
	data, err := json.Marshal(envelope{
		Type:       e.EventType(),
		OccurredAt: e.Timestamp().UTC(),
		Data:       e.Payload(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event payload: %w", err)
	}
	return data, nil
}

func decode(raw []byte) (events.BaseEvent, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return events.BaseEvent{}, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	return events.BaseEvent{
		Type:       env.Type,
		Data:       env.Data,
		OccurredAt: env.OccurredAt,
	}, nil
}
