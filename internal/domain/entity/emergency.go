package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// EmergencyStatus is the lifecycle state of an emergency incident.
type EmergencyStatus string

const (
	EmergencyStatusTriggered EmergencyStatus = "TRIGGERED"
	EmergencyStatusActive    EmergencyStatus = "ACTIVE"
	EmergencyStatusNotified  EmergencyStatus = "NOTIFIED"
	EmergencyStatusResolved  EmergencyStatus = "RESOLVED"
	EmergencyStatusCancelled EmergencyStatus = "CANCELLED"
)

// IsTerminal reports whether no further status transition is allowed.
func (s EmergencyStatus) IsTerminal() bool {
	return s == EmergencyStatusResolved || s == EmergencyStatusCancelled
}

// EmergencyType identifies what raised the incident.
type EmergencyType string

const (
	EmergencyTypeManualSOS       EmergencyType = "MANUAL_SOS"
	EmergencyTypePanicButton     EmergencyType = "PANIC_BUTTON"
	EmergencyTypeFallDetected    EmergencyType = "FALL_DETECTED"
	EmergencyTypeDangerZoneEntry EmergencyType = "DANGER_ZONE_ENTRY"
)

// TriggerSource identifies who or what created the incident.
type TriggerSource string

const (
	TriggeredByUser        TriggerSource = "USER"
	TriggeredByAIDetection TriggerSource = "AI_DETECTION"
	TriggeredBySystem      TriggerSource = "SYSTEM"
)

// ErrInvalidEmergencyTransition is returned when a transition would move an incident backwards
// or out of a terminal state.
var ErrInvalidEmergencyTransition = errors.New("invalid emergency status transition")

// Emergency is the aggregate tracking an urgent situation from trigger to resolution.
// Severity is fixed at creation.
type Emergency struct {
	ID                  uuid.UUID       `json:"id"`
	UserID              uuid.UUID       `json:"user_id"`
	Type                EmergencyType   `json:"type"`
	Status              EmergencyStatus `json:"status"`
	Severity            RiskLevel       `json:"severity"`
	TriggeredBy         TriggerSource   `json:"triggered_by"`
	Latitude            float64         `json:"latitude"`
	Longitude           float64         `json:"longitude"`
	Confidence          *float64        `json:"confidence"`
	Notes               string          `json:"notes"`
	NotifiedGuardianIDs []uuid.UUID     `json:"notified_guardian_ids"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
	ResolvedAt          *time.Time      `json:"resolved_at"`
	ResolvedBy          *uuid.UUID      `json:"resolved_by"`
	ResolutionNotes     *string         `json:"resolution_notes"`
	ResponseTimeSeconds *int64          `json:"response_time_seconds"`
}

// Activate acknowledges a TRIGGERED incident.
func (e *Emergency) Activate(now time.Time) error {
	if e.Status != EmergencyStatusTriggered {
		return ErrInvalidEmergencyTransition
	}
	e.Status = EmergencyStatusActive
	e.UpdatedAt = now

	return nil
}

// MarkNotified records the guardians reached by a cascade and advances a TRIGGERED or
// ACTIVE incident to NOTIFIED. Terminal incidents keep their status but still record the ids.
func (e *Emergency) MarkNotified(guardianIDs []uuid.UUID, now time.Time) {
	for _, id := range guardianIDs {
		if !slices.Contains(e.NotifiedGuardianIDs, id) {
			e.NotifiedGuardianIDs = append(e.NotifiedGuardianIDs, id)
		}
	}

	if e.Status == EmergencyStatusTriggered || e.Status == EmergencyStatusActive {
		e.Status = EmergencyStatusNotified
	}
	e.UpdatedAt = now
}

// Resolve closes the incident and computes the response time. Resolving an already resolved
// incident is a no-op; resolving a cancelled one is rejected.
func (e *Emergency) Resolve(resolvedBy *uuid.UUID, notes string, now time.Time) error {
	switch e.Status {
	case EmergencyStatusResolved:
		return nil
	case EmergencyStatusCancelled:
		return ErrInvalidEmergencyTransition
	}

	responseTime := int64(now.Sub(e.CreatedAt) / time.Second)
	if responseTime < 0 {
		responseTime = 0
	}

	e.Status = EmergencyStatusResolved
	e.ResolvedAt = &now
	e.ResolvedBy = resolvedBy
	e.ResolutionNotes = &notes
	e.ResponseTimeSeconds = &responseTime
	e.UpdatedAt = now

	return nil
}

// Cancel aborts a non-terminal incident without computing a response time.
func (e *Emergency) Cancel(cancelledBy *uuid.UUID, reason string, now time.Time) error {
	if e.Status.IsTerminal() {
		return ErrInvalidEmergencyTransition
	}

	e.Status = EmergencyStatusCancelled
	e.ResolvedBy = cancelledBy
	if reason != "" {
		e.ResolutionNotes = &reason
	}
	e.UpdatedAt = now

	return nil
}
