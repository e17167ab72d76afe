package util

import (
	"testing"
	"time"
)

func TestFormatDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		meters   float64
		expected string
	}{
		{name: "zero", meters: 0, expected: "0 m"},
		{name: "negative clamps", meters: -3, expected: "0 m"},
		{name: "under a kilometer", meters: 849.6, expected: "850 m"},
		{name: "exact kilometer", meters: 1000, expected: "1.0 km"},
		{name: "fractional kilometers", meters: 1250, expected: "1.2 km"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDistance(tt.meters); got != tt.expected {
				t.Fatalf("FormatDistance(%f) = %s, want %s", tt.meters, got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
		{name: "negative clamps", duration: -time.Minute, expected: "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestFormatCoordinates(t *testing.T) {
	t.Parallel()

	if got := FormatCoordinates(37.5, 127); got != "37.500000, 127.000000" {
		t.Fatalf("FormatCoordinates = %s", got)
	}
}
