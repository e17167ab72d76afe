package geo

import (
	"testing"

	"carewatch/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func homeFence(radius float64) *entity.Geofence {
	return &entity.Geofence{
		CenterLatitude:  37.50,
		CenterLongitude: 127.00,
		RadiusMeters:    radius,
		Type:            entity.GeofenceTypeHome,
		IsActive:        true,
	}
}

func TestHaversineMeters_IdentityAndSymmetry(t *testing.T) {
	t.Parallel()

	points := []orb.Point{
		{127.00, 37.50},
		{-73.9857, 40.7484},
		{0, 0},
		{179.9, -89.9},
		{-180, 90},
	}

	for _, a := range points {
		assert.Zero(t, HaversineMeters(a, a))
		for _, b := range points {
			assert.InDelta(t, HaversineMeters(a, b), HaversineMeters(b, a), 1e-6)
		}
	}
}

func TestHaversineMeters_KnownDistance(t *testing.T) {
	t.Parallel()

	// One degree of latitude on a 6,371 km sphere.
	got := HaversineMeters(orb.Point{127.0, 37.0}, orb.Point{127.0, 38.0})
	assert.InDelta(t, 111194.9, got, 1.0)
}

func TestContains_BoundaryInclusive(t *testing.T) {
	t.Parallel()

	fence := homeFence(100)
	center := fence.Center()

	assert.True(t, Contains(center, fence))

	edge := OffsetMeters(center, 0, 200)
	fence.RadiusMeters = HaversineMeters(center, edge)
	assert.True(t, Contains(edge, fence), "a point exactly on the radius is inside")

	fence.RadiusMeters = 100
	assert.False(t, Contains(edge, fence))
	assert.Equal(t, HaversineMeters(edge, center) <= fence.RadiusMeters, Contains(edge, fence))
}

func TestIsNearBoundary(t *testing.T) {
	t.Parallel()

	fence := homeFence(100)
	center := fence.Center()

	tests := []struct {
		name     string
		north    float64
		expected bool
	}{
		{name: "center is far from edge", north: 0, expected: false},
		{name: "inside near edge", north: 60, expected: true},
		{name: "on edge", north: 100, expected: true},
		{name: "outside near edge", north: 140, expected: true},
		{name: "outside beyond band", north: 200, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := OffsetMeters(center, tt.north, 0)
			assert.Equal(t, tt.expected, IsNearBoundary(p, fence, DefaultBoundaryThresholdMeters))
		})
	}
}

func TestEvaluate_MatchesIndividualChecks(t *testing.T) {
	t.Parallel()

	fence := homeFence(100)
	p := OffsetMeters(fence.Center(), 120, 0)

	eval := Evaluate(p, fence, DefaultBoundaryThresholdMeters)
	assert.Equal(t, Contains(p, fence), eval.Inside)
	assert.Equal(t, IsNearBoundary(p, fence, DefaultBoundaryThresholdMeters), eval.NearBoundary)
	assert.InDelta(t, 120, eval.DistanceMeters, 0.5)
	assert.InDelta(t, 20, EdgeDistanceMeters(p, fence), 0.5)
	assert.Zero(t, EdgeDistanceMeters(fence.Center(), fence))
}

func TestWithinDiameter(t *testing.T) {
	t.Parallel()

	origin := orb.Point{127.0, 37.5}
	tight := []orb.Point{
		origin,
		OffsetMeters(origin, 10, 5),
		OffsetMeters(origin, -8, 12),
		OffsetMeters(origin, 20, -15),
	}
	require.True(t, WithinDiameter(tight, 50))

	spread := append(tight, OffsetMeters(origin, 80, 0))
	assert.False(t, WithinDiameter(spread, 50))

	assert.True(t, WithinDiameter(nil, 50))
	assert.True(t, WithinDiameter([]orb.Point{origin}, 0))
}

func TestOffsetMeters_RoundTrip(t *testing.T) {
	t.Parallel()

	origin := orb.Point{127.0, 37.5}
	moved := OffsetMeters(origin, 300, 400)
	assert.InDelta(t, 500, HaversineMeters(origin, moved), 1.0)
}
