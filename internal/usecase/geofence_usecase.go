package usecase

import (
	"context"

	"carewatch/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateGeofenceInput represents the input for creating a geofence
type CreateGeofenceInput struct {
	Name            string              `json:"name"`
	CenterLatitude  float64             `json:"center_latitude"`
	CenterLongitude float64             `json:"center_longitude"`
	RadiusMeters    float64             `json:"radius_meters"`
	Type            entity.GeofenceType `json:"type"`
	AlertOnEntry    bool                `json:"alert_on_entry"`
	AlertOnExit     bool                `json:"alert_on_exit"`
	ActiveWindow    entity.ActiveWindow `json:"active_window"`
	Priority        int                 `json:"priority"`
}

// GeofenceUsecase defines the geofence management use cases
type GeofenceUsecase interface {
	CreateGeofence(ctx context.Context, userID uuid.UUID, input *CreateGeofenceInput) (*entity.Geofence, error)
	ListGeofences(ctx context.Context, userID uuid.UUID) ([]*entity.Geofence, error)
	SetGeofenceActive(ctx context.Context, userID, geofenceID uuid.UUID, active bool) (*entity.Geofence, error)
	SetGeofencePriority(ctx context.Context, userID, geofenceID uuid.UUID, priority int) (*entity.Geofence, error)

	// ListEvents returns the latest geofence events of a user, newest first
	ListEvents(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.GeofenceEvent, error)
}
