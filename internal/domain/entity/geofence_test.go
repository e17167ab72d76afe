package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validGeofence() *Geofence {
	return &Geofence{
		Name:            "Home",
		CenterLatitude:  25.0330,
		CenterLongitude: 121.5654,
		RadiusMeters:    100,
		Type:            GeofenceTypeHome,
		IsActive:        true,
	}
}

func TestGeofence_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(g *Geofence)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Geofence) {}},
		{name: "latitude out of range", mutate: func(g *Geofence) { g.CenterLatitude = 91 }, wantErr: true},
		{name: "longitude out of range", mutate: func(g *Geofence) { g.CenterLongitude = -181 }, wantErr: true},
		{name: "zero radius", mutate: func(g *Geofence) { g.RadiusMeters = 0 }, wantErr: true},
		{name: "radius above maximum", mutate: func(g *Geofence) { g.RadiusMeters = 20000 }, wantErr: true},
		{name: "unknown type", mutate: func(g *Geofence) { g.Type = "PARK" }, wantErr: true},
		{name: "bad clock", mutate: func(g *Geofence) { g.ActiveWindow.StartTime = "25:00" }, wantErr: true},
		{name: "wrapping window", mutate: func(g *Geofence) {
			g.ActiveWindow = ActiveWindow{StartTime: "22:00", EndTime: "06:00"}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := validGeofence()
			tt.mutate(g)
			err := g.Validate(10000)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGeofence_IsActiveAt(t *testing.T) {
	t.Parallel()

	// 2026-03-02 is a Monday.
	at := func(hour, minute int) time.Time {
		return time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC)
	}

	tests := []struct {
		name   string
		active bool
		window ActiveWindow
		when   time.Time
		want   bool
	}{
		{name: "empty window always active", active: true, when: at(3, 0), want: true},
		{name: "inactive flag wins", active: false, when: at(3, 0), want: false},
		{name: "inside daytime window", active: true, window: ActiveWindow{StartTime: "08:00", EndTime: "18:00"}, when: at(8, 0), want: true},
		{name: "end is exclusive", active: true, window: ActiveWindow{StartTime: "08:00", EndTime: "18:00"}, when: at(18, 0), want: false},
		{name: "wrapping window late", active: true, window: ActiveWindow{StartTime: "22:00", EndTime: "06:00"}, when: at(23, 30), want: true},
		{name: "wrapping window early", active: true, window: ActiveWindow{StartTime: "22:00", EndTime: "06:00"}, when: at(5, 59), want: true},
		{name: "wrapping window midday", active: true, window: ActiveWindow{StartTime: "22:00", EndTime: "06:00"}, when: at(12, 0), want: false},
		{name: "day filter matches", active: true, window: ActiveWindow{Days: []time.Weekday{time.Monday}}, when: at(12, 0), want: true},
		{name: "day filter misses", active: true, window: ActiveWindow{Days: []time.Weekday{time.Sunday}}, when: at(12, 0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := validGeofence()
			g.IsActive = tt.active
			g.ActiveWindow = tt.window
			assert.Equal(t, tt.want, g.IsActiveAt(tt.when))
		})
	}
}
