package amqp

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/savings_tracker/internal/core/domain"
)

// EventMessage is the JSON body published for every domain event.
type EventMessage struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

// NewEventMessage wraps a domain event for the wire.
func NewEventMessage(event domain.Event) *EventMessage {
	return &EventMessage{
		Type:       string(event.Type),
		OccurredAt: event.OccurredAt,
		Payload:    event.Payload,
	}
}

// ToJSON converts the message to JSON bytes
func (m *EventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}
