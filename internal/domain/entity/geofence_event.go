package entity

import (
	"time"

	"github.com/google/uuid"
)

// GeofenceEventType is the kind of transition or observation recorded for a geofence.
type GeofenceEventType string

const (
	GeofenceEventEntry   GeofenceEventType = "ENTRY"
	GeofenceEventExit    GeofenceEventType = "EXIT"
	GeofenceEventWarning GeofenceEventType = "WARNING"
	GeofenceEventDwell   GeofenceEventType = "DWELL"
)

// IsTransition reports whether the event type changes the inside/outside state of a pair.
func (t GeofenceEventType) IsTransition() bool {
	return t == GeofenceEventEntry || t == GeofenceEventExit
}

// GeofenceEvent records something that happened for a (user, geofence) pair.
// Events are immutable once written except for the notification fields.
type GeofenceEvent struct {
	ID                  uuid.UUID         `json:"id"`
	UserID              uuid.UUID         `json:"user_id"`
	GeofenceID          uuid.UUID         `json:"geofence_id"`
	Type                GeofenceEventType `json:"type"`
	RiskLevel           RiskLevel         `json:"risk_level"`
	Latitude            float64           `json:"latitude"`
	Longitude           float64           `json:"longitude"`
	Accuracy            *float64          `json:"accuracy"`
	DurationSeconds     *int64            `json:"duration_seconds"` // Set for EXIT (time inside) and DWELL.
	Notes               string            `json:"notes"`
	NotificationSent    bool              `json:"notification_sent"`
	NotifiedGuardianIDs []uuid.UUID       `json:"notified_guardian_ids"`
	CreatedAt           time.Time         `json:"created_at"`
}
