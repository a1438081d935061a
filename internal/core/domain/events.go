package domain

import "time"

// EventType names something that happened in the store.
type EventType string

const (
	EventTransactionRecorded EventType = "transaction.recorded"
	EventTargetCreated       EventType = "target.created"
	EventTargetContributed   EventType = "target.contributed"
	EventTargetCompleted     EventType = "target.completed"
	EventScheduleCreated     EventType = "schedule.created"
	EventScheduleToggled     EventType = "schedule.toggled"
)

// Event is a notification emitted after a successful mutation.
type Event struct {
	Type       EventType `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

// NewEvent stamps an event with the given time.
func NewEvent(t EventType, payload any, at time.Time) Event {
	return Event{Type: t, OccurredAt: at.UTC(), Payload: payload}
}
