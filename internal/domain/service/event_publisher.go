package service

import (
	"context"
	"time"
)

// ContentOperation names the mutation behind a ContentEvent.
type ContentOperation string

const (
	ContentCreated ContentOperation = "created"
	ContentUpdated ContentOperation = "updated"
	ContentDeleted ContentOperation = "deleted"
)

// ContentEvent is published after a content mutation is committed
type ContentEvent struct {
	RequestID  string           `json:"request_id,omitempty"` // For distributed tracing
	EventID    string           `json:"event_id"`
	Kind       string           `json:"kind"`
	DocumentID string           `json:"document_id"`
	Title      string           `json:"title,omitempty"`
	Slug       string           `json:"slug,omitempty"`
	Operation  ContentOperation `json:"operation"`
	ActorUID   string           `json:"actor_uid,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishContentEvent publishes a content event for async processing
	PublishContentEvent(ctx context.Context, event *ContentEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
