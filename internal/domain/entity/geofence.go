package entity

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// GeofenceType is the semantic category of a geofence.
type GeofenceType string

const (
	GeofenceTypeHome       GeofenceType = "HOME"
	GeofenceTypeSafeZone   GeofenceType = "SAFE_ZONE"
	GeofenceTypeDangerZone GeofenceType = "DANGER_ZONE"
	GeofenceTypeCustom     GeofenceType = "CUSTOM"
)

// IsValid checks if the GeofenceType is a valid value.
func (t GeofenceType) IsValid() bool {
	switch t {
	case GeofenceTypeHome, GeofenceTypeSafeZone, GeofenceTypeDangerZone, GeofenceTypeCustom:
		return true
	default:
		return false
	}
}

// ActiveWindow restricts when a geofence is evaluated. Empty fields mean "always".
type ActiveWindow struct {
	StartTime string         `json:"start_time,omitempty"` // "HH:MM" in the engine's configured time zone.
	EndTime   string         `json:"end_time,omitempty"`   // "HH:MM"; may be earlier than StartTime to wrap midnight.
	Days      []time.Weekday `json:"days,omitempty"`       // Days the window applies to; empty means every day.
}

// Geofence is a circular region owned by a monitored user.
type Geofence struct {
	ID              uuid.UUID    `json:"id"`
	UserID          uuid.UUID    `json:"user_id"`
	Name            string       `json:"name"`
	CenterLatitude  float64      `json:"center_latitude"`
	CenterLongitude float64      `json:"center_longitude"`
	RadiusMeters    float64      `json:"radius_meters"`
	Type            GeofenceType `json:"type"`
	IsActive        bool         `json:"is_active"`
	AlertOnEntry    bool         `json:"alert_on_entry"`
	AlertOnExit     bool         `json:"alert_on_exit"`
	ActiveWindow    ActiveWindow `json:"active_window"`
	Priority        int          `json:"priority"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// Center returns the geofence center as an orb point (longitude, latitude).
func (g *Geofence) Center() orb.Point {
	return orb.Point{g.CenterLongitude, g.CenterLatitude}
}

// Validate checks geographic bounds and the alert policy fields.
// It is called on creation so that evaluation never sees a malformed geofence.
func (g *Geofence) Validate(maxRadiusMeters float64) error {
	if !ValidCoordinates(g.CenterLatitude, g.CenterLongitude) {
		return fmt.Errorf("center (%f, %f) is out of geographic bounds", g.CenterLatitude, g.CenterLongitude)
	}
	if g.RadiusMeters <= 0 {
		return fmt.Errorf("radius must be positive, got %f", g.RadiusMeters)
	}
	if maxRadiusMeters > 0 && g.RadiusMeters > maxRadiusMeters {
		return fmt.Errorf("radius %f exceeds maximum %f", g.RadiusMeters, maxRadiusMeters)
	}
	if !g.Type.IsValid() {
		return fmt.Errorf("unknown geofence type %q", g.Type)
	}
	if _, err := parseClock(g.ActiveWindow.StartTime); err != nil {
		return err
	}
	if _, err := parseClock(g.ActiveWindow.EndTime); err != nil {
		return err
	}

	return nil
}

// IsActiveAt reports whether the geofence should be evaluated at t.
func (g *Geofence) IsActiveAt(t time.Time) bool {
	if !g.IsActive {
		return false
	}

	return g.ActiveWindow.Contains(t)
}

// Contains reports whether t falls inside the window.
func (w ActiveWindow) Contains(t time.Time) bool {
	if len(w.Days) > 0 && !slices.Contains(w.Days, t.Weekday()) {
		return false
	}

	start, startErr := parseClock(w.StartTime)
	end, endErr := parseClock(w.EndTime)
	if startErr != nil || endErr != nil || start < 0 || end < 0 {
		return true
	}

	minute := t.Hour()*60 + t.Minute()
	if start <= end {
		return minute >= start && minute < end
	}

	// Window wraps midnight, e.g. 22:00-06:00.
	return minute >= start || minute < end
}

// parseClock converts "HH:MM" into minutes since midnight. Empty input yields -1.
func parseClock(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return -1, nil
	}

	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return -1, fmt.Errorf("invalid clock value %q, expected HH:MM", value)
	}

	return parsed.Hour()*60 + parsed.Minute(), nil
}
