package interfaces

import (
	"context"
	"time"
)

const (
	EventQuoteIngested       = "quote.ingested"
	EventAutomationCompleted = "automation.completed"
)

// Event is a notification emitted after a successful write. Publishing is best effort.
type Event struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

// IEventPublisher fans events out to other consumers (dashboards, notifiers).

type IEventPublisher interface {
	Publish(ctx context.Context, evt Event) error
}
