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
	"github.com/pkg/errors"
)

// trackOutcome collects what one geofence evaluation produced. Alerts are dispatched by the
// caller once the user lock is released.
type trackOutcome struct {
	Events    []*entity.GeofenceEvent
	Alerts    []*entity.Alert
	Emergency *entity.Emergency
}

func (o *trackOutcome) merge(other *trackOutcome) {
	if other == nil {
		return
	}
	o.Events = append(o.Events, other.Events...)
	o.Alerts = append(o.Alerts, other.Alerts...)
	if other.Emergency != nil {
		o.Emergency = other.Emergency
	}
}

// geofenceTracker runs the per (user, geofence) state machine. The inside/outside state is
// derived from the last ENTRY or EXIT event; WARNING and DWELL never change it. Samples older
// than the last transition are still checked for warnings but never transition.
type geofenceTracker struct {
	txManager         repository.TransactionManager
	events            repository.GeofenceEventRepository
	metrics           service.MetricsRecorder
	boundaryThreshold float64
	warningCooldown   time.Duration
}

func newGeofenceTracker(
	txManager repository.TransactionManager,
	events repository.GeofenceEventRepository,
	metrics service.MetricsRecorder,
	safety *config.SafetyConfig,
) *geofenceTracker {
	return &geofenceTracker{
		txManager:         txManager,
		events:            events,
		metrics:           metrics,
		boundaryThreshold: safety.BoundaryThresholdMeters,
		warningCooldown:   safety.WarningCooldown,
	}
}

// Track evaluates one sample against one geofence. The caller holds the user lock.
func (t *geofenceTracker) Track(ctx context.Context, sample *entity.LocationSample, geofence *entity.Geofence) (*trackOutcome, error) {
	evaluation := geo.Evaluate(sample.Point(), geofence, t.boundaryThreshold)
	outcome := &trackOutcome{}

	last, err := t.events.FindLastTransition(ctx, sample.UserID, geofence.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load last transition")
	}
	wasInside := last != nil && last.Type == entity.GeofenceEventEntry
	// A sample captured before the last transition arrived late and cannot move the state.
	late := last != nil && sample.CapturedAt.Before(last.CreatedAt)

	switch {
	case late:
	case evaluation.Inside && !wasInside:
		event := t.newEvent(sample, geofence, entity.GeofenceEventEntry)
		event.Notes = fmt.Sprintf("Entered %s", geofence.Name)
		if err := t.record(ctx, event); err != nil {
			return nil, err
		}
		outcome.Events = append(outcome.Events, event)

		if geofence.AlertOnEntry && geofence.Type != entity.GeofenceTypeDangerZone {
			outcome.Alerts = append(outcome.Alerts, transitionAlert(event, entity.AlertKindGeofenceEntry,
				"Arrived at "+geofence.Name,
				fmt.Sprintf("Arrived at %s at %s.", geofence.Name, sample.CapturedAt.Format("15:04"))))
		}

	case !evaluation.Inside && wasInside:
		event := t.newEvent(sample, geofence, entity.GeofenceEventExit)
		stay := max(sample.CapturedAt.Sub(last.CreatedAt), 0)
		seconds := int64(stay / time.Second)
		event.DurationSeconds = &seconds
		event.Notes = fmt.Sprintf("Left %s after %s", geofence.Name, util.FormatDuration(stay))
		if err := t.record(ctx, event); err != nil {
			return nil, err
		}
		outcome.Events = append(outcome.Events, event)

		if geofence.AlertOnExit && geofence.Type != entity.GeofenceTypeDangerZone {
			outcome.Alerts = append(outcome.Alerts, transitionAlert(event, entity.AlertKindGeofenceExit,
				"Left "+geofence.Name,
				fmt.Sprintf("Left %s after %s, now %s from its center.", geofence.Name, util.FormatDuration(stay), util.FormatDistance(evaluation.DistanceMeters))))
		}
	}

	if geofence.Type == entity.GeofenceTypeDangerZone && evaluation.Inside {
		danger, err := t.trackDangerZone(ctx, sample, geofence)
		if err != nil {
			return outcome, err
		}
		outcome.merge(danger)

		return outcome, nil
	}

	if evaluation.NearBoundary {
		warning, err := t.trackBoundary(ctx, sample, geofence, evaluation)
		if err != nil {
			return outcome, err
		}
		outcome.merge(warning)
	}

	return outcome, nil
}

// trackDangerZone emits a CRITICAL warning for every sample inside a danger zone and opens a
// DANGER_ZONE_ENTRY emergency when none is open. Both records share one cascade.
func (t *geofenceTracker) trackDangerZone(ctx context.Context, sample *entity.LocationSample, geofence *entity.Geofence) (*trackOutcome, error) {
	event := t.newEvent(sample, geofence, entity.GeofenceEventWarning)
	event.Notes = fmt.Sprintf("Inside danger zone %s", geofence.Name)

	var raised *entity.Emergency
	err := t.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewGeofenceEventRepository().CreateEvent(ctx, event); err != nil {
			return errors.Wrap(err, "failed to create danger zone warning")
		}

		emergencyRepo := factory.NewEmergencyRepository()
		open, err := emergencyRepo.FindOpenByUserAndType(ctx, sample.UserID, entity.EmergencyTypeDangerZoneEntry)
		if err != nil {
			return errors.Wrap(err, "failed to look up open danger zone emergency")
		}
		if open != nil {
			return nil
		}

		raised = &entity.Emergency{
			ID:          uuid.New(),
			UserID:      sample.UserID,
			Type:        entity.EmergencyTypeDangerZoneEntry,
			Status:      entity.EmergencyStatusActive,
			Severity:    entity.RiskLevelCritical,
			TriggeredBy: entity.TriggeredBySystem,
			Latitude:    sample.Latitude,
			Longitude:   sample.Longitude,
			Notes:       fmt.Sprintf("Entered danger zone %s", geofence.Name),
			CreatedAt:   sample.CapturedAt,
			UpdatedAt:   sample.CapturedAt,
		}
		if err := emergencyRepo.CreateEmergency(ctx, raised); err != nil {
			return errors.Wrap(err, "failed to create danger zone emergency")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	t.metrics.IncGeofenceEvent(string(event.Type))

	alert := transitionAlert(event, entity.AlertKindGeofenceWarning,
		"Danger zone: "+geofence.Name,
		fmt.Sprintf("Currently inside danger zone %s at %s.", geofence.Name, util.FormatCoordinates(sample.Latitude, sample.Longitude)))
	if raised != nil {
		t.metrics.IncEmergency(string(raised.Type))
		alert.Kind = entity.AlertKindEmergency
		alert.EmergencyID = &raised.ID
	}

	return &trackOutcome{
		Events:    []*entity.GeofenceEvent{event},
		Alerts:    []*entity.Alert{alert},
		Emergency: raised,
	}, nil
}

// trackBoundary emits at most one boundary WARNING per pair per cooldown window.
func (t *geofenceTracker) trackBoundary(ctx context.Context, sample *entity.LocationSample, geofence *entity.Geofence, evaluation geo.Evaluation) (*trackOutcome, error) {
	recent, err := t.events.ExistsEventSince(ctx, sample.UserID, geofence.ID, entity.GeofenceEventWarning, sample.CapturedAt.Add(-t.warningCooldown))
	if err != nil {
		return nil, errors.Wrap(err, "failed to check warning cooldown")
	}
	if recent {
		return nil, nil
	}

	event := t.newEvent(sample, geofence, entity.GeofenceEventWarning)
	event.RiskLevel = risk.BoundaryWarningLevel
	event.Notes = fmt.Sprintf("Near the boundary of %s (%s from center, radius %s)",
		geofence.Name, util.FormatDistance(evaluation.DistanceMeters), util.FormatDistance(geofence.RadiusMeters))
	if err := t.record(ctx, event); err != nil {
		return nil, err
	}

	return &trackOutcome{
		Events: []*entity.GeofenceEvent{event},
		Alerts: []*entity.Alert{transitionAlert(event, entity.AlertKindGeofenceWarning,
			"Near the edge of "+geofence.Name, event.Notes+".")},
	}, nil
}

func (t *geofenceTracker) newEvent(sample *entity.LocationSample, geofence *entity.Geofence, eventType entity.GeofenceEventType) *entity.GeofenceEvent {
	return &entity.GeofenceEvent{
		ID:         uuid.New(),
		UserID:     sample.UserID,
		GeofenceID: geofence.ID,
		Type:       eventType,
		RiskLevel:  risk.Classify(geofence.Type, eventType),
		Latitude:   sample.Latitude,
		Longitude:  sample.Longitude,
		Accuracy:   sample.Accuracy,
		CreatedAt:  sample.CapturedAt,
	}
}

func (t *geofenceTracker) record(ctx context.Context, event *entity.GeofenceEvent) error {
	if err := t.events.CreateEvent(ctx, event); err != nil {
		return errors.Wrapf(err, "failed to create %s event", event.Type)
	}
	t.metrics.IncGeofenceEvent(string(event.Type))

	return nil
}

func transitionAlert(event *entity.GeofenceEvent, kind entity.AlertKind, title, body string) *entity.Alert {
	eventID := event.ID

	return &entity.Alert{
		UserID:    event.UserID,
		Kind:      kind,
		Severity:  event.RiskLevel,
		Title:     title,
		Body:      body,
		Latitude:  event.Latitude,
		Longitude: event.Longitude,
		EventID:   &eventID,
		RaisedAt:  event.CreatedAt,
	}
}
