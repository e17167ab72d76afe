package entity

import (
	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// CareUser is the monitored person as seen by the safety engine.
type CareUser struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	IsActive bool      `json:"is_active"`
}

// Guardian is a contact who receives alerts about a monitored user.
type Guardian struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"` // The monitored user this guardian looks after.
	Name             string    `json:"name"`
	Phone            *string   `json:"phone"`
	Email            *string   `json:"email"`
	DeviceToken      *string   `json:"device_token"` // FCM registration token.
	CanReceiveAlerts bool      `json:"can_receive_alerts"`
}

// MovementPattern is a baseline area where the user habitually moves.
type MovementPattern struct {
	CentroidLatitude    float64 `json:"centroid_latitude"`
	CentroidLongitude   float64 `json:"centroid_longitude"`
	TypicalRadiusMeters float64 `json:"typical_radius_meters"`
}

// Centroid returns the pattern centroid as an orb point.
func (p MovementPattern) Centroid() orb.Point {
	return orb.Point{p.CentroidLongitude, p.CentroidLatitude}
}
