package contracts

import (
	"context"
	"time"
)

// ResourceEvent is published for every mutation so the ward notification
// consumer can surface it to staff.
type ResourceEvent struct {
	Event      string    `json:"event"`
	Resource   string    `json:"resource"`
	ResourceID string    `json:"resourceId"`
	Status     string    `json:"status,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

const (
	EventCreated       = "created"
	EventUpdated       = "updated"
	EventDeleted       = "deleted"
	EventStatusChanged = "status-changed"
)

type EventPublisher interface {
	Publish(ctx context.Context, event ResourceEvent) error
}
