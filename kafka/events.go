package kafka

import (
	"context"
	"time"
)

// ChangeEvent describes a mutation applied to one row of an entity table
type ChangeEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Entity    string    `json:"entity"`
	EntityID  uint      `json:"entity_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Entities
const (
	EntityProduct  = "product"
	EntityUser     = "user"
	EntityExpense  = "expense"
	EntitySettings = "settings"
)

// Actions
const (
	ActionCreated       = "created"
	ActionUpdated       = "updated"
	ActionDeleted       = "deleted"
	ActionPasswordReset = "password_reset"
)

// TopicEntityChanges receives every ChangeEvent
const TopicEntityChanges = "ims-entity-changes"

// NewChangeEvent builds an event of type "<entity>.<action>"
func NewChangeEvent(entity, action string, id uint) ChangeEvent {
	return ChangeEvent{
		EventType: entity + "." + action,
		Entity:    entity,
		EntityID:  id,
	}
}

// EventPublisher publishes change events. Publishing is best effort:
// callers log failures and never fail the originating request.
type EventPublisher interface {
	PublishChange(ctx context.Context, event ChangeEvent) error
	Close() error
}

// NoopPublisher discards every event; used when no brokers are configured
type NoopPublisher struct{}

func (NoopPublisher) PublishChange(context.Context, ChangeEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
