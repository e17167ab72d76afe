// Package util holds small formatting helpers used in alert texts.
package util

import (
	"fmt"
	"time"
)

// FormatDistance formats meters into a human readable distance (e.g., "850 m", "1.2 km").
func FormatDistance(meters float64) string {
	if meters < 0 {
		meters = 0
	}
	if meters < 1000 {
		return fmt.Sprintf("%.0f m", meters)
	}

	return fmt.Sprintf("%.1f km", meters/1000)
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)
	if duration < 0 {
		duration = 0
	}

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}

// FormatCoordinates renders a position with six decimals, enough for roughly 0.1 m.
func FormatCoordinates(lat, lon float64) string {
	return fmt.Sprintf("%.6f, %.6f", lat, lon)
}
