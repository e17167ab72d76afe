package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultSafetyConfig(), cfg.Safety)
	assert.Equal(t, DefaultNotificationConfig(), cfg.Notification)
	assert.Nil(t, cfg.Redis)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Safety: &SafetyConfig{
			WanderingDeviationMeters:  800,
			WanderingAutoResolveAfter: 4 * time.Hour,
		},
		Notification: &NotificationConfig{Workers: 2},
		Redis:        &RedisConfig{Enabled: true},
	}
	cfg.applyDefaults()

	assert.InDelta(t, 800.0, cfg.Safety.WanderingDeviationMeters, 0)
	assert.Equal(t, 4*time.Hour, cfg.Safety.WanderingAutoResolveAfter)
	assert.Equal(t, 30*time.Minute, cfg.Safety.WanderingEscalateAfter)
	assert.Equal(t, 5, cfg.Safety.DwellMinSamples)
	assert.False(t, cfg.Safety.CircularMovementEnabled)
	assert.Equal(t, 2, cfg.Notification.Workers)
	assert.Equal(t, 3*time.Second, cfg.Notification.ChannelTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Redis.CacheTTL)
}

func TestSafetyConfig_Location(t *testing.T) {
	t.Parallel()

	loc, err := (&SafetyConfig{TimeZone: "Asia/Seoul"}).Location()
	assert.NoError(t, err)
	assert.Equal(t, "Asia/Seoul", loc.String())

	loc, err = (&SafetyConfig{}).Location()
	assert.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	_, err = (&SafetyConfig{TimeZone: "Mars/Olympus"}).Location()
	assert.Error(t, err)
}
