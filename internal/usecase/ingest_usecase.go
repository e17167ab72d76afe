package usecase

import (
	"context"
	"time"

	"carewatch/internal/domain/entity"

	"github.com/google/uuid"
)

// IngestInput represents one location report from a monitored user's device
type IngestInput struct {
	UserID     uuid.UUID  `json:"user_id"`
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	Accuracy   *float64   `json:"accuracy,omitempty"`
	CapturedAt *time.Time `json:"captured_at,omitempty"` // Defaults to the server clock
}

// IngestResult describes the side effects produced by one sample
type IngestResult struct {
	Sample    *entity.LocationSample     `json:"sample"`
	Events    []*entity.GeofenceEvent    `json:"events"`
	Wandering *entity.WanderingDetection `json:"wandering,omitempty"`
	Emergency *entity.Emergency          `json:"emergency,omitempty"`
	// Alerts handed to the notification dispatcher
	AlertsQueued int `json:"alerts_queued"`
}

// IngestUsecase is the entry point of the monitoring engine
type IngestUsecase interface {
	// Ingest validates and stores a sample, then evaluates geofences and wandering for the user.
	// Sub-evaluation and notification failures are logged, never returned.
	Ingest(ctx context.Context, input *IngestInput) (*IngestResult, error)
}
