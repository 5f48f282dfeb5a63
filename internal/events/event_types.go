package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventRecordCreated EventType = "record_created"
	EventRecordUpdated EventType = "record_updated"
	EventRecordDeleted EventType = "record_deleted"
)

// Event represents a record change emitted by services.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Resource  string    `json:"resource"`
	ObjectID  string    `json:"object_id"`
	Repr      string    `json:"repr"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload,omitempty"`
}

// ChangedFieldsPayload lists the fields touched by an update.
type ChangedFieldsPayload struct {
	Fields []string `json:"fields"`
}

// NewRecordEvent stamps a fresh event for the given record.
func NewRecordEvent(eventType EventType, resource, objectID, repr string, payload any) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Resource:  resource,
		ObjectID:  objectID,
		Repr:      repr,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}
