package repository

import (
	"context"

	"carewatch/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrGeofenceNotFound is returned when a geofence lookup misses.
var ErrGeofenceNotFound = errors.New("geofence not found")

// GeofenceRepository manages the zones configured for a user.
type GeofenceRepository interface {
	// CreateGeofence persists a new geofence.
	CreateGeofence(ctx context.Context, geofence *entity.Geofence) error

	// FindGeofenceByID retrieves a geofence by ID.
	FindGeofenceByID(ctx context.Context, id uuid.UUID) (*entity.Geofence, error)

	// FindGeofencesByUser lists all geofences of a user ordered by priority descending.
	FindGeofencesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Geofence, error)

	// FindActiveGeofencesByUser lists the geofences of a user whose IsActive flag is set.
	FindActiveGeofencesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Geofence, error)

	// UpdateGeofence persists the mutable fields (active flag, priority, alert flags).
	UpdateGeofence(ctx context.Context, geofence *entity.Geofence) error
}
