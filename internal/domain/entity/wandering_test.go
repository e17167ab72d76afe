package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWanderingDetection_Lifecycle(t *testing.T) {
	t.Parallel()

	detected := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	w := &WanderingDetection{
		Status:     WanderingStatusDetected,
		RiskLevel:  RiskLevelMedium,
		DetectedAt: detected,
	}

	require.NoError(t, w.Track(25.1, 121.5, detected.Add(31*time.Minute+20*time.Second)))
	assert.Equal(t, 31, w.DurationMinutes)
	assert.InDelta(t, 25.1, w.CurrentLatitude, 1e-9)

	assert.True(t, w.Escalate(detected.Add(31*time.Minute)))
	assert.False(t, w.Escalate(detected.Add(32*time.Minute)))
	assert.Equal(t, WanderingStatusEscalated, w.Status)
	assert.Equal(t, RiskLevelHigh, w.RiskLevel)
	assert.True(t, w.InterventionNeeded)

	assert.True(t, w.ClaimNavigation())
	assert.False(t, w.ClaimNavigation())

	require.NoError(t, w.Resolve(WanderingResolvedByGuardian, detected.Add(40*time.Minute)))
	assert.False(t, w.IsActive())
	require.NotNil(t, w.ResolutionMethod)
	assert.Equal(t, WanderingResolvedByGuardian, *w.ResolutionMethod)

	assert.ErrorIs(t, w.Resolve(WanderingResolvedByGuardian, detected), ErrWanderingResolved)
	assert.ErrorIs(t, w.Track(0, 0, detected), ErrWanderingResolved)
}

func TestWanderingDetection_TrackClampsNegativeDuration(t *testing.T) {
	t.Parallel()

	detected := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	w := &WanderingDetection{Status: WanderingStatusDetected, DetectedAt: detected}

	require.NoError(t, w.Track(0, 0, detected.Add(-5*time.Minute)))
	assert.Equal(t, 0, w.DurationMinutes)
}
