package repository

import (
	"context"

	"carewatch/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for wandering persistence.
var (
	// ErrWanderingNotFound is returned when a wandering detection lookup misses.
	ErrWanderingNotFound = errors.New("wandering detection not found")
	// ErrActiveWanderingExists is returned when a second non-resolved detection would be created for a user.
	ErrActiveWanderingExists = errors.New("active wandering detection already exists")
)

// WanderingRepository stores wandering detections. At most one non-resolved record exists per user.
type WanderingRepository interface {
	// CreateDetection persists a new detection; returns ErrActiveWanderingExists on conflict.
	CreateDetection(ctx context.Context, detection *entity.WanderingDetection) error

	// FindActiveByUser returns the user's non-resolved detection, or nil.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.WanderingDetection, error)

	// FindDetectionByID retrieves a detection by ID.
	FindDetectionByID(ctx context.Context, id uuid.UUID) (*entity.WanderingDetection, error)

	// UpdateDetection persists the mutable fields of a detection.
	UpdateDetection(ctx context.Context, detection *entity.WanderingDetection) error
}
