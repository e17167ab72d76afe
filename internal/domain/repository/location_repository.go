// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"carewatch/internal/domain/entity"

	"github.com/google/uuid"
)

// LocationRepository stores the append-only location history of monitored users.
type LocationRepository interface {
	// SaveSample persists a new location sample.
	SaveSample(ctx context.Context, sample *entity.LocationSample) error

	// FindSamplesSince returns the user's samples captured at or after since, oldest first.
	FindSamplesSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*entity.LocationSample, error)

	// FindLatestSample returns the most recent sample, or nil when the user has none.
	FindLatestSample(ctx context.Context, userID uuid.UUID) (*entity.LocationSample, error)
}
