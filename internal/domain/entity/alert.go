package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertKind is the class of situation that triggered a guardian notification.
type AlertKind string

const (
	AlertKindEmergency       AlertKind = "EMERGENCY"
	AlertKindGeofenceEntry   AlertKind = "GEOFENCE_ENTRY"
	AlertKindGeofenceExit    AlertKind = "GEOFENCE_EXIT"
	AlertKindGeofenceWarning AlertKind = "GEOFENCE_WARNING"
	AlertKindWandering       AlertKind = "WANDERING"
)

// Alert is the severity context handed to the escalation cascade.
type Alert struct {
	UserID      uuid.UUID  `json:"user_id"`
	Kind        AlertKind  `json:"kind"`
	Severity    RiskLevel  `json:"severity"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	EventID     *uuid.UUID `json:"event_id,omitempty"`     // Originating geofence event, if any.
	EmergencyID *uuid.UUID `json:"emergency_id,omitempty"` // Originating emergency, if any.
	WanderingID *uuid.UUID `json:"wandering_id,omitempty"` // Originating wandering detection, if any.
	RaisedAt    time.Time  `json:"raised_at"`
}

// Channel is a delivery medium used by the cascade.
type Channel string

const (
	ChannelPush  Channel = "PUSH"
	ChannelSMS   Channel = "SMS"
	ChannelEmail Channel = "EMAIL"
)

// DeliveryStatus is the outcome of one channel attempt.
type DeliveryStatus string

const (
	DeliveryStatusSent   DeliveryStatus = "SENT"
	DeliveryStatusFailed DeliveryStatus = "FAILED"
)

// DeliveryLog is an append-only audit row for a single channel attempt to a single guardian.
type DeliveryLog struct {
	ID           uuid.UUID      `json:"id"`
	UserID       uuid.UUID      `json:"user_id"`
	GuardianID   uuid.UUID      `json:"guardian_id"`
	AlertKind    AlertKind      `json:"alert_kind"`
	Channel      Channel        `json:"channel"`
	Status       DeliveryStatus `json:"status"`
	ErrorMessage string         `json:"error_message"`
	EventID      *uuid.UUID     `json:"event_id"`
	EmergencyID  *uuid.UUID     `json:"emergency_id"`
	AttemptedAt  time.Time      `json:"attempted_at"`
}

// CascadeResult summarizes one run of the escalation cascade.
type CascadeResult struct {
	NotifiedGuardianIDs []uuid.UUID `json:"notified_guardian_ids"`
	GuardiansConsidered int         `json:"guardians_considered"`
	GuardiansSkipped    int         `json:"guardians_skipped"` // Guardians with no usable channel.
	AttemptsSent        int         `json:"attempts_sent"`
	AttemptsFailed      int         `json:"attempts_failed"`
}
