package service

import (
	"context"

	"beacon/internal/domain/entity"
)

// SessionEvent represents a session-state change to be distributed beyond
// this process, so other instances can redirect their subscribers too.
type SessionEvent struct {
	RequestID string              `json:"request_id,omitempty"` // For distributed tracing
	State     entity.SessionState `json:"state"`
}

// EventPublisher defines the interface for publishing session events to a
// message queue.
type EventPublisher interface {
	// PublishSessionEvent publishes a session-state change for distribution.
	PublishSessionEvent(ctx context.Context, event *SessionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
