package memory

import (
	"context"
	"testing"
	"time"

	"carewatch/internal/domain/entity"
	"carewatch/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ repository.LocationRepository      = (*Store)(nil)
	_ repository.GeofenceRepository      = (*Store)(nil)
	_ repository.GeofenceEventRepository = (*Store)(nil)
	_ repository.WanderingRepository     = (*Store)(nil)
	_ repository.EmergencyRepository     = (*Store)(nil)
	_ repository.DeliveryLogRepository   = (*Store)(nil)
	_ repository.UserDirectory           = (*Store)(nil)
	_ repository.GuardianDirectory       = (*Store)(nil)
	_ repository.MovementPatternProvider = (*Store)(nil)
	_ repository.TransactionManager      = (*Store)(nil)
)

func TestStore_SingleActiveWandering(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore()
	userID := uuid.New()

	first := &entity.WanderingDetection{UserID: userID, Status: entity.WanderingStatusDetected}
	require.NoError(t, store.CreateDetection(ctx, first))

	err := store.CreateDetection(ctx, &entity.WanderingDetection{UserID: userID, Status: entity.WanderingStatusDetected})
	assert.ErrorIs(t, err, repository.ErrActiveWanderingExists)

	require.NoError(t, first.Resolve(entity.WanderingResolvedByGuardian, time.Now()))
	require.NoError(t, store.UpdateDetection(ctx, first))

	active, err := store.FindActiveByUser(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, active)

	require.NoError(t, store.CreateDetection(ctx, &entity.WanderingDetection{UserID: userID, Status: entity.WanderingStatusDetected}))
}

func TestStore_ReadsAreCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore()
	e := &entity.Emergency{UserID: uuid.New(), Status: entity.EmergencyStatusActive}
	require.NoError(t, store.CreateEmergency(ctx, e))

	loaded, err := store.FindEmergencyByID(ctx, e.ID)
	require.NoError(t, err)
	loaded.Status = entity.EmergencyStatusResolved

	again, err := store.FindEmergencyByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EmergencyStatusActive, again.Status)
}

func TestStore_LastTransitionIgnoresWarnings(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore()
	userID, geofenceID := uuid.New(), uuid.New()
	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.CreateEvent(ctx, &entity.GeofenceEvent{UserID: userID, GeofenceID: geofenceID, Type: entity.GeofenceEventEntry, CreatedAt: base}))
	require.NoError(t, store.CreateEvent(ctx, &entity.GeofenceEvent{UserID: userID, GeofenceID: geofenceID, Type: entity.GeofenceEventWarning, CreatedAt: base.Add(time.Minute)}))

	last, err := store.FindLastTransition(ctx, userID, geofenceID)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, entity.GeofenceEventEntry, last.Type)

	exists, err := store.ExistsEventSince(ctx, userID, geofenceID, entity.GeofenceEventWarning, base.Add(30*time.Second))
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = store.ExistsEventSince(ctx, userID, geofenceID, entity.GeofenceEventWarning, base.Add(2*time.Minute))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStore_SamplesOldestFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore()
	userID := uuid.New()
	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.SaveSample(ctx, &entity.LocationSample{UserID: userID, CapturedAt: base.Add(2 * time.Minute)}))
	require.NoError(t, store.SaveSample(ctx, &entity.LocationSample{UserID: userID, CapturedAt: base}))
	require.NoError(t, store.SaveSample(ctx, &entity.LocationSample{UserID: userID, CapturedAt: base.Add(-time.Hour)}))

	samples, err := store.FindSamplesSince(ctx, userID, base)
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, base, samples[0].CapturedAt)

	latest, err := store.FindLatestSample(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, base.Add(2*time.Minute), latest.CapturedAt)
}
