// Package geo holds the pure geometry used to evaluate location samples against geofences.
package geo

import (
	"math"

	"carewatch/internal/domain/entity"

	"github.com/paulmach/orb"
)

// EarthRadiusMeters is the spherical-Earth radius used by HaversineMeters.
// orb/geo uses the WGS84 equatorial radius, so distances are computed here instead.
const EarthRadiusMeters = 6371000.0

// DefaultBoundaryThresholdMeters is the default band around a geofence edge that counts as "near".
const DefaultBoundaryThresholdMeters = 50.0

// HaversineMeters returns the great-circle distance between two points in meters.
func HaversineMeters(a, b orb.Point) float64 {
	lat1 := deg2rad(a.Lat())
	lat2 := deg2rad(b.Lat())
	dLat := lat2 - lat1
	dLon := deg2rad(b.Lon() - a.Lon())

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	if h > 1 {
		h = 1
	}

	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(h))
}

// DistanceToCenter returns the distance from p to the geofence center in meters.
func DistanceToCenter(p orb.Point, g *entity.Geofence) float64 {
	return HaversineMeters(p, g.Center())
}

// Contains reports whether p lies inside the geofence. The boundary is inclusive.
func Contains(p orb.Point, g *entity.Geofence) bool {
	return DistanceToCenter(p, g) <= g.RadiusMeters
}

// IsNearBoundary reports whether p is within thresholdMeters of the geofence edge, on either side.
func IsNearBoundary(p orb.Point, g *entity.Geofence, thresholdMeters float64) bool {
	return math.Abs(DistanceToCenter(p, g)-g.RadiusMeters) <= thresholdMeters
}

// EdgeDistanceMeters returns how far p is outside the geofence; zero when inside.
func EdgeDistanceMeters(p orb.Point, g *entity.Geofence) float64 {
	return math.Max(0, DistanceToCenter(p, g)-g.RadiusMeters)
}

// Evaluation is the containment snapshot of one sample against one geofence.
type Evaluation struct {
	Geofence       *entity.Geofence
	DistanceMeters float64
	Inside         bool
	NearBoundary   bool
}

// Evaluate computes containment and boundary proximity in one pass.
func Evaluate(p orb.Point, g *entity.Geofence, boundaryThresholdMeters float64) Evaluation {
	distance := DistanceToCenter(p, g)

	return Evaluation{
		Geofence:       g,
		DistanceMeters: distance,
		Inside:         distance <= g.RadiusMeters,
		NearBoundary:   math.Abs(distance-g.RadiusMeters) <= boundaryThresholdMeters,
	}
}

// WithinDiameter reports whether every pair of points is at most maxMeters apart.
// A bounding-box diagonal check short-circuits the pairwise scan for tight clusters.
func WithinDiameter(points []orb.Point, maxMeters float64) bool {
	if len(points) < 2 {
		return true
	}

	bound := orb.MultiPoint(points).Bound()
	if HaversineMeters(bound.Min, bound.Max) <= maxMeters {
		return true
	}

	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if HaversineMeters(points[i], points[j]) > maxMeters {
				return false
			}
		}
	}

	return true
}

// OffsetMeters moves p by the given north/east offsets using a local flat-earth approximation.
// It is intended for building fixtures and navigation hints, not for precise geodesy.
func OffsetMeters(p orb.Point, northMeters, eastMeters float64) orb.Point {
	dLat := northMeters / EarthRadiusMeters
	dLon := eastMeters / (EarthRadiusMeters * math.Cos(deg2rad(p.Lat())))

	return orb.Point{p.Lon() + rad2deg(dLon), p.Lat() + rad2deg(dLat)}
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}

func rad2deg(r float64) float64 {
	return r * 180 / math.Pi
}
