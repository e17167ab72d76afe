package impl

import (
	"context"
	"fmt"
	"time"

	"carewatch/config"
	"carewatch/internal/domain/entity"
	"carewatch/internal/domain/geo"
	"carewatch/internal/domain/repository"
	"carewatch/internal/domain/risk"
	"carewatch/internal/domain/service"
	"carewatch/internal/util"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// dwellDetector flags prolonged stationary presence near a geofence. It is independent of the
// ENTRY/EXIT state machine and only records advisory events.
type dwellDetector struct {
	events          repository.GeofenceEventRepository
	metrics         service.MetricsRecorder
	window          time.Duration
	minSamples      int
	clusterMeters   float64
	proximityMeters float64
}

func newDwellDetector(events repository.GeofenceEventRepository, metrics service.MetricsRecorder, safety *config.SafetyConfig) *dwellDetector {
	return &dwellDetector{
		events:          events,
		metrics:         metrics,
		window:          safety.DwellWindow,
		minSamples:      safety.DwellMinSamples,
		clusterMeters:   safety.DwellClusterMeters,
		proximityMeters: safety.DwellProximityMeters,
	}
}

// Detect checks the trailing dwell window ending at the current sample. window holds the
// user's samples oldest first and includes current.
func (d *dwellDetector) Detect(ctx context.Context, current *entity.LocationSample, window []*entity.LocationSample, geofences []*entity.Geofence) (*entity.GeofenceEvent, error) {
	since := current.CapturedAt.Add(-d.window)
	points := make([]orb.Point, 0, len(window))
	for _, sample := range window {
		if sample.CapturedAt.Before(since) || sample.CapturedAt.After(current.CapturedAt) {
			continue
		}
		points = append(points, sample.Point())
	}

	if len(points) < d.minSamples || !geo.WithinDiameter(points, d.clusterMeters) {
		return nil, nil
	}

	target, edgeDistance := d.nearestGeofence(current.Point(), geofences)
	if target == nil {
		return nil, nil
	}

	seen, err := d.events.ExistsEventSince(ctx, current.UserID, target.ID, entity.GeofenceEventDwell, since)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check previous dwell")
	}
	if seen {
		return nil, nil
	}

	seconds := int64(d.window / time.Second)
	event := &entity.GeofenceEvent{
		ID:              uuid.New(),
		UserID:          current.UserID,
		GeofenceID:      target.ID,
		Type:            entity.GeofenceEventDwell,
		RiskLevel:       risk.Classify(target.Type, entity.GeofenceEventDwell),
		Latitude:        current.Latitude,
		Longitude:       current.Longitude,
		Accuracy:        current.Accuracy,
		DurationSeconds: &seconds,
		Notes: fmt.Sprintf("Stationary within %s for %s, %s from %s. Check whether assistance is needed.",
			util.FormatDistance(d.clusterMeters), util.FormatDuration(d.window), util.FormatDistance(edgeDistance), target.Name),
		CreatedAt: current.CapturedAt,
	}
	if err := d.events.CreateEvent(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to create dwell event")
	}
	d.metrics.IncGeofenceEvent(string(event.Type))

	return event, nil
}

// nearestGeofence returns the geofence whose edge is closest to p and within the proximity
// limit. Ties go to the closer center.
func (d *dwellDetector) nearestGeofence(p orb.Point, geofences []*entity.Geofence) (*entity.Geofence, float64) {
	var (
		best         *entity.Geofence
		bestEdge     float64
		bestToCenter float64
	)

	for _, geofence := range geofences {
		edge := geo.EdgeDistanceMeters(p, geofence)
		if edge > d.proximityMeters {
			continue
		}

		toCenter := geo.DistanceToCenter(p, geofence)
		if best == nil || edge < bestEdge || (edge == bestEdge && toCenter < bestToCenter) {
			best, bestEdge, bestToCenter = geofence, edge, toCenter
		}
	}

	return best, bestEdge
}
