package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// LocationSample is a single position report from a user's device. Samples are append-only.
type LocationSample struct {
	ID         uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the sample.
	UserID     uuid.UUID `json:"user_id"`     // The monitored user who produced the sample.
	Latitude   float64   `json:"latitude"`    // WGS84 latitude in degrees.
	Longitude  float64   `json:"longitude"`   // WGS84 longitude in degrees.
	Accuracy   *float64  `json:"accuracy"`    // Optional horizontal accuracy reported by the device, in meters.
	CapturedAt time.Time `json:"captured_at"` // Timestamp of when the device captured the position.
}

// Point returns the sample position as an orb point (longitude, latitude).
func (s *LocationSample) Point() orb.Point {
	return orb.Point{s.Longitude, s.Latitude}
}

// ValidCoordinates reports whether lat/lon fall within geographic bounds.
func ValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
