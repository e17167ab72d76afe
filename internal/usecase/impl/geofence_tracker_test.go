package impl

import (
	"context"
	"testing"
	"time"

	"carewatch/config"
	"carewatch/internal/domain/entity"
	"carewatch/internal/infra/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeofenceTracker_HomeExit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, userID := newUserStore()
	tracker := newGeofenceTracker(store, store, metrics.Noop{}, config.DefaultSafetyConfig())
	home := homeGeofence(userID)

	entered, err := tracker.Track(ctx, sampleAt(userID, homeCenter, testBase), home)
	require.NoError(t, err)
	require.Len(t, entered.Events, 1)
	assert.Equal(t, entity.GeofenceEventEntry, entered.Events[0].Type)
	assert.Empty(t, entered.Alerts, "entry alerts are disabled for this geofence")

	left, err := tracker.Track(ctx, sampleAt(userID, northOf(200), testBase.Add(10*time.Minute)), home)
	require.NoError(t, err)
	require.Len(t, left.Events, 1)

	exit := left.Events[0]
	assert.Equal(t, entity.GeofenceEventExit, exit.Type)
	assert.Equal(t, entity.RiskLevelMedium, exit.RiskLevel)
	require.NotNil(t, exit.DurationSeconds)
	assert.Equal(t, int64(600), *exit.DurationSeconds)

	require.Len(t, left.Alerts, 1)
	assert.Equal(t, entity.AlertKindGeofenceExit, left.Alerts[0].Kind)
	assert.Equal(t, entity.RiskLevelMedium, left.Alerts[0].Severity)
	require.NotNil(t, left.Alerts[0].EventID)
	assert.Equal(t, exit.ID, *left.Alerts[0].EventID)

	again, err := tracker.Track(ctx, sampleAt(userID, northOf(210), testBase.Add(11*time.Minute)), home)
	require.NoError(t, err)
	assert.Empty(t, again.Events, "staying outside must not repeat the exit")
}

func TestGeofenceTracker_TransitionsAlternate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, userID := newUserStore()
	tracker := newGeofenceTracker(store, store, metrics.Noop{}, config.DefaultSafetyConfig())
	home := homeGeofence(userID)

	positions := []float64{0, 10, 300, 400, 0, 300}
	for i, north := range positions {
		_, err := tracker.Track(ctx, sampleAt(userID, northOf(north), testBase.Add(time.Duration(i)*time.Minute)), home)
		require.NoError(t, err)
	}

	var types []entity.GeofenceEventType
	for _, event := range store.Events(userID) {
		types = append(types, event.Type)
	}
	assert.Equal(t, []entity.GeofenceEventType{
		entity.GeofenceEventEntry,
		entity.GeofenceEventExit,
		entity.GeofenceEventEntry,
		entity.GeofenceEventExit,
	}, types)
}

func TestGeofenceTracker_LateSamplesDoNotTransition(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, userID := newUserStore()
	tracker := newGeofenceTracker(store, store, metrics.Noop{}, config.DefaultSafetyConfig())
	home := homeGeofence(userID)

	entered, err := tracker.Track(ctx, sampleAt(userID, homeCenter, testBase.Add(10*time.Minute)), home)
	require.NoError(t, err)
	require.Len(t, entered.Events, 1)

	for _, minute := range []int{5, 7} {
		late, err := tracker.Track(ctx, sampleAt(userID, northOf(300), testBase.Add(time.Duration(minute)*time.Minute)), home)
		require.NoError(t, err)
		assert.Empty(t, late.Events, "sample at +%dm predates the entry", minute)
		assert.Empty(t, late.Alerts)
	}

	left, err := tracker.Track(ctx, sampleAt(userID, northOf(300), testBase.Add(12*time.Minute)), home)
	require.NoError(t, err)
	require.Len(t, left.Events, 1)
	require.NotNil(t, left.Events[0].DurationSeconds)
	assert.Equal(t, int64(120), *left.Events[0].DurationSeconds)

	var types []entity.GeofenceEventType
	for _, event := range store.Events(userID) {
		types = append(types, event.Type)
	}
	assert.Equal(t, []entity.GeofenceEventType{entity.GeofenceEventEntry, entity.GeofenceEventExit}, types)
}

func TestGeofenceTracker_DangerZoneBoundaryIsHigh(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, userID := newUserStore()
	tracker := newGeofenceTracker(store, store, metrics.Noop{}, config.DefaultSafetyConfig())

	danger := homeGeofence(userID)
	danger.Type = entity.GeofenceTypeDangerZone

	approach, err := tracker.Track(ctx, sampleAt(userID, northOf(130), testBase), danger)
	require.NoError(t, err)
	require.Len(t, approach.Events, 1)
	assert.Equal(t, entity.GeofenceEventWarning, approach.Events[0].Type)
	assert.Equal(t, entity.RiskLevelHigh, approach.Events[0].RiskLevel)
	assert.Nil(t, approach.Emergency, "still outside the zone")

	emergencies, err := store.FindEmergenciesByUser(ctx, userID, 10)
	require.NoError(t, err)
	assert.Empty(t, emergencies)
}

func TestGeofenceTracker_BoundaryWarningCooldown(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, userID := newUserStore()
	tracker := newGeofenceTracker(store, store, metrics.Noop{}, config.DefaultSafetyConfig())
	home := homeGeofence(userID)

	first, err := tracker.Track(ctx, sampleAt(userID, northOf(120), testBase), home)
	require.NoError(t, err)
	require.Len(t, first.Events, 1)
	assert.Equal(t, entity.GeofenceEventWarning, first.Events[0].Type)
	assert.Equal(t, entity.RiskLevelHigh, first.Events[0].RiskLevel)
	require.Len(t, first.Alerts, 1)
	assert.Equal(t, entity.AlertKindGeofenceWarning, first.Alerts[0].Kind)

	second, err := tracker.Track(ctx, sampleAt(userID, northOf(125), testBase.Add(time.Minute)), home)
	require.NoError(t, err)
	assert.Empty(t, second.Events)
	assert.Empty(t, second.Alerts)

	third, err := tracker.Track(ctx, sampleAt(userID, northOf(120), testBase.Add(6*time.Minute)), home)
	require.NoError(t, err)
	assert.Len(t, third.Events, 1)
}

func TestGeofenceTracker_DangerZone(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, userID := newUserStore()
	tracker := newGeofenceTracker(store, store, metrics.Noop{}, config.DefaultSafetyConfig())

	danger := homeGeofence(userID)
	danger.Name = "Construction site"
	danger.Type = entity.GeofenceTypeDangerZone
	danger.AlertOnEntry = true

	first, err := tracker.Track(ctx, sampleAt(userID, homeCenter, testBase), danger)
	require.NoError(t, err)
	require.Len(t, first.Events, 2)
	assert.Equal(t, entity.GeofenceEventEntry, first.Events[0].Type)
	assert.Equal(t, entity.GeofenceEventWarning, first.Events[1].Type)
	assert.Equal(t, entity.RiskLevelCritical, first.Events[1].RiskLevel)

	require.NotNil(t, first.Emergency)
	assert.Equal(t, entity.EmergencyTypeDangerZoneEntry, first.Emergency.Type)
	assert.Equal(t, entity.RiskLevelCritical, first.Emergency.Severity)
	assert.Equal(t, entity.TriggeredBySystem, first.Emergency.TriggeredBy)

	require.Len(t, first.Alerts, 1, "the entry and the warning share one cascade")
	assert.Equal(t, entity.AlertKindEmergency, first.Alerts[0].Kind)
	require.NotNil(t, first.Alerts[0].EmergencyID)
	assert.Equal(t, first.Emergency.ID, *first.Alerts[0].EmergencyID)

	second, err := tracker.Track(ctx, sampleAt(userID, northOf(5), testBase.Add(time.Minute)), danger)
	require.NoError(t, err)
	require.Len(t, second.Events, 1)
	assert.Equal(t, entity.GeofenceEventWarning, second.Events[0].Type)
	assert.Nil(t, second.Emergency, "an open danger zone emergency is reused")
	require.Len(t, second.Alerts, 1)
	assert.Equal(t, entity.AlertKindGeofenceWarning, second.Alerts[0].Kind)

	emergencies, err := store.FindEmergenciesByUser(ctx, userID, 10)
	require.NoError(t, err)
	assert.Len(t, emergencies, 1)
}

func TestDwellDetector_Detect(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, userID := newUserStore()
	detector := newDwellDetector(store, metrics.Noop{}, config.DefaultSafetyConfig())
	home := homeGeofence(userID)
	park := homeGeofence(userID)
	park.Name = "Far park"
	park.CenterLatitude += 0.05

	spot := northOf(150)
	var window []*entity.LocationSample
	for i := range 5 {
		window = append(window, sampleAt(userID, spot, testBase.Add(time.Duration(i)*5*time.Minute)))
	}

	short, err := detector.Detect(ctx, window[3], window[:4], []*entity.Geofence{home, park})
	require.NoError(t, err)
	assert.Nil(t, short, "four samples are not enough")

	current := window[len(window)-1]
	event, err := detector.Detect(ctx, current, window, []*entity.Geofence{home, park})
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, entity.GeofenceEventDwell, event.Type)
	assert.Equal(t, home.ID, event.GeofenceID)
	assert.Equal(t, entity.RiskLevelLow, event.RiskLevel)
	require.NotNil(t, event.DurationSeconds)
	assert.Equal(t, int64(1800), *event.DurationSeconds)

	next := sampleAt(userID, spot, current.CapturedAt.Add(5*time.Minute))
	repeat, err := detector.Detect(ctx, next, append(window, next), []*entity.Geofence{home, park})
	require.NoError(t, err)
	assert.Nil(t, repeat, "one dwell per window")
}

func TestDwellDetector_NoNearbyGeofence(t *testing.T) {
	t.Parallel()

	store, userID := newUserStore()
	detector := newDwellDetector(store, metrics.Noop{}, config.DefaultSafetyConfig())

	spot := northOf(2000)
	var window []*entity.LocationSample
	for i := range 6 {
		window = append(window, sampleAt(userID, spot, testBase.Add(time.Duration(i)*time.Minute)))
	}

	event, err := detector.Detect(context.Background(), window[len(window)-1], window, []*entity.Geofence{homeGeofence(userID)})
	require.NoError(t, err)
	assert.Nil(t, event)
}
