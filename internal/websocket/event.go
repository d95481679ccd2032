package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents what happened to the entity
type EventType string

const (
	EventTypeIncomeFinalized EventType = "income_finalized"
	EventTypeBudgetFinalized EventType = "budget_finalized"
	EventTypeBack            EventType = "back"
	EventTypeEdit            EventType = "edit"
	EventTypeReset           EventType = "reset"
	EventTypeDraftUpdated    EventType = "draft_updated"
	EventTypeSnapshot        EventType = "snapshot"
)

// EntityType represents the type of entity the event is about
type EntityType string

const (
	EntityTypeSession EntityType = "session"
)

// Event represents a WebSocket event message sent to clients
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`      // Combined type e.g. "session.reset"
	Entity    EntityType  `json:"entity"`    // Entity type e.g. "session"
	Payload   interface{} `json:"payload"`   // Full entity data
	Timestamp time.Time   `json:"timestamp"` // Event timestamp
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// IncomeFinalized creates a session.income_finalized event
func IncomeFinalized(payload interface{}) Event {
	return NewEvent(EventTypeIncomeFinalized, EntityTypeSession, payload)
}

// BudgetFinalized creates a session.budget_finalized event
func BudgetFinalized(payload interface{}) Event {
	return NewEvent(EventTypeBudgetFinalized, EntityTypeSession, payload)
}

// SessionBack creates a session.back event
func SessionBack(payload interface{}) Event {
	return NewEvent(EventTypeBack, EntityTypeSession, payload)
}

// SessionEdit creates a session.edit event
func SessionEdit(payload interface{}) Event {
	return NewEvent(EventTypeEdit, EntityTypeSession, payload)
}

// SessionReset creates a session.reset event
func SessionReset(payload interface{}) Event {
	return NewEvent(EventTypeReset, EntityTypeSession, payload)
}

// DraftUpdated creates a session.draft_updated event
func DraftUpdated(payload interface{}) Event {
	return NewEvent(EventTypeDraftUpdated, EntityTypeSession, payload)
}

// SessionSnapshot creates a session.snapshot event sent to a single dashboard
func SessionSnapshot(payload interface{}) Event {
	return NewEvent(EventTypeSnapshot, EntityTypeSession, payload)
}
