package service

import (
	"context"
	"encoding/json"
	"time"
)

// Safety event types published by the engine
const (
	SafetyEventAlertDispatched     = "alert.dispatched"
	SafetyEventNavigationRequested = "navigation.requested"
)

// SafetyEvent is an engine event published to the message queue for downstream consumers
type SafetyEvent struct {
	RequestID  string          `json:"request_id,omitempty"` // For distributed tracing
	EventID    string          `json:"event_id"`
	Type       string          `json:"type"`
	UserID     string          `json:"user_id"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

// LocationSampleMessage is the payload mobile producers publish for asynchronous ingestion
type LocationSampleMessage struct {
	RequestID  string     `json:"request_id,omitempty"`
	UserID     string     `json:"user_id"`
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	Accuracy   *float64   `json:"accuracy,omitempty"`
	CapturedAt *time.Time `json:"captured_at,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSafetyEvent publishes an engine event for asynchronous consumers
	PublishSafetyEvent(ctx context.Context, event *SafetyEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
