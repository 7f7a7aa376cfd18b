package messaging

import (
	"context"
	"time"
)

// Broker defines the interface for message brokers
type Broker interface {
	Publish(ctx context.Context, channel string, message interface{}) error
	Close() error
}

// Publisher defines the interface for publishing domain events
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload interface{}) error
}

// Event types
const (
	EventUserRegistered      = "user.registered"
	EventPrescriptionCreated = "prescription.created"
)

type Message struct {
	Type       string      `json:"type"`
	Payload    interface{} `json:"payload"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// NopPublisher discards every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, interface{}) error { return nil }
