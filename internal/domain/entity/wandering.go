package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// WanderingStatus is the lifecycle state of a wandering detection.
type WanderingStatus string

const (
	WanderingStatusDetected  WanderingStatus = "DETECTED"
	WanderingStatusEscalated WanderingStatus = "ESCALATED"
	WanderingStatusResolved  WanderingStatus = "RESOLVED"
)

// Resolution methods recorded on a resolved detection.
const (
	WanderingResolvedByGuardian = "GUARDIAN_CONFIRMED"
	WanderingResolvedAutoExpiry = "AUTO_EXPIRED"
)

// ErrWanderingResolved is returned when mutating a detection that already reached RESOLVED.
var ErrWanderingResolved = errors.New("wandering detection already resolved")

// WanderingDetection tracks one episode of abnormal movement. A user has at most one
// non-resolved detection at a time.
type WanderingDetection struct {
	ID                 uuid.UUID       `json:"id"`
	UserID             uuid.UUID       `json:"user_id"`
	Status             WanderingStatus `json:"status"`
	RiskLevel          RiskLevel       `json:"risk_level"`
	StartLatitude      float64         `json:"start_latitude"`
	StartLongitude     float64         `json:"start_longitude"`
	CurrentLatitude    float64         `json:"current_latitude"`
	CurrentLongitude   float64         `json:"current_longitude"`
	ConfidenceScore    float64         `json:"confidence_score"` // 0..1
	DurationMinutes    int             `json:"duration_minutes"`
	NavigationProvided bool            `json:"navigation_provided"`
	InterventionNeeded bool            `json:"intervention_needed"`
	DetectedAt         time.Time       `json:"detected_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
	ResolvedAt         *time.Time      `json:"resolved_at"`
	ResolutionMethod   *string         `json:"resolution_method"`
}

// IsActive reports whether the detection has not been resolved.
func (w *WanderingDetection) IsActive() bool {
	return w.Status != WanderingStatusResolved
}

// CurrentPoint returns the last known position as an orb point.
func (w *WanderingDetection) CurrentPoint() orb.Point {
	return orb.Point{w.CurrentLongitude, w.CurrentLatitude}
}

// Track moves the detection to the latest position and recomputes its duration.
func (w *WanderingDetection) Track(lat, lon float64, now time.Time) error {
	if !w.IsActive() {
		return ErrWanderingResolved
	}

	w.CurrentLatitude = lat
	w.CurrentLongitude = lon
	elapsed := now.Sub(w.DetectedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	w.DurationMinutes = int(elapsed / time.Minute)
	w.UpdatedAt = now

	return nil
}

// Escalate raises the detection to HIGH risk. It reports whether this call changed the status.
func (w *WanderingDetection) Escalate(now time.Time) bool {
	if w.Status != WanderingStatusDetected {
		return false
	}

	w.Status = WanderingStatusEscalated
	w.RiskLevel = RiskLevelHigh
	w.InterventionNeeded = true
	w.UpdatedAt = now

	return true
}

// ClaimNavigation flips NavigationProvided and reports whether the caller should start
// guided navigation. It returns true at most once per detection.
func (w *WanderingDetection) ClaimNavigation() bool {
	if w.NavigationProvided {
		return false
	}
	w.NavigationProvided = true

	return true
}

// Resolve moves the detection to its terminal state.
func (w *WanderingDetection) Resolve(method string, now time.Time) error {
	if !w.IsActive() {
		return ErrWanderingResolved
	}

	w.Status = WanderingStatusResolved
	w.ResolvedAt = &now
	w.ResolutionMethod = &method
	w.UpdatedAt = now

	return nil
}
