package risk

import (
	"fmt"
	"testing"

	"carewatch/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

var (
	allZones = []entity.GeofenceType{
		entity.GeofenceTypeHome,
		entity.GeofenceTypeSafeZone,
		entity.GeofenceTypeDangerZone,
		entity.GeofenceTypeCustom,
	}
	allEvents = []entity.GeofenceEventType{
		entity.GeofenceEventEntry,
		entity.GeofenceEventExit,
		entity.GeofenceEventWarning,
		entity.GeofenceEventDwell,
	}
)

func TestClassify_FullTable(t *testing.T) {
	t.Parallel()

	expected := map[entity.GeofenceType]map[entity.GeofenceEventType]entity.RiskLevel{
		entity.GeofenceTypeHome: {
			entity.GeofenceEventEntry:   entity.RiskLevelLow,
			entity.GeofenceEventExit:    entity.RiskLevelMedium,
			entity.GeofenceEventWarning: entity.RiskLevelHigh,
			entity.GeofenceEventDwell:   entity.RiskLevelLow,
		},
		entity.GeofenceTypeSafeZone: {
			entity.GeofenceEventEntry:   entity.RiskLevelLow,
			entity.GeofenceEventExit:    entity.RiskLevelMedium,
			entity.GeofenceEventWarning: entity.RiskLevelHigh,
			entity.GeofenceEventDwell:   entity.RiskLevelLow,
		},
		entity.GeofenceTypeDangerZone: {
			entity.GeofenceEventEntry:   entity.RiskLevelCritical,
			entity.GeofenceEventExit:    entity.RiskLevelLow,
			entity.GeofenceEventWarning: entity.RiskLevelCritical,
			entity.GeofenceEventDwell:   entity.RiskLevelLow,
		},
		entity.GeofenceTypeCustom: {
			entity.GeofenceEventEntry:   entity.RiskLevelLow,
			entity.GeofenceEventExit:    entity.RiskLevelLow,
			entity.GeofenceEventWarning: entity.RiskLevelHigh,
			entity.GeofenceEventDwell:   entity.RiskLevelLow,
		},
	}

	for _, zone := range allZones {
		for _, event := range allEvents {
			t.Run(fmt.Sprintf("%s/%s", zone, event), func(t *testing.T) {
				t.Parallel()

				got := Classify(zone, event)
				assert.Equal(t, expected[zone][event], got)
				assert.Equal(t, got, Classify(zone, event), "classification must be deterministic")
			})
		}
	}
}

func TestClassify_UnknownInputsFallBackToDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultLevel, Classify("UNKNOWN", "UNKNOWN"))
	assert.Equal(t, entity.RiskLevelHigh, Classify("UNKNOWN", entity.GeofenceEventWarning))
}

func TestSeverityFromConfidence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		confidence float64
		expected   entity.RiskLevel
	}{
		{confidence: 100, expected: entity.RiskLevelCritical},
		{confidence: 95, expected: entity.RiskLevelCritical},
		{confidence: 90.0, expected: entity.RiskLevelCritical},
		{confidence: 89.9, expected: entity.RiskLevelHigh},
		{confidence: 70.0, expected: entity.RiskLevelHigh},
		{confidence: 69.9, expected: entity.RiskLevelMedium},
		{confidence: 50.0, expected: entity.RiskLevelMedium},
		{confidence: 49.9, expected: entity.RiskLevelLow},
		{confidence: 0, expected: entity.RiskLevelLow},
		{confidence: -5, expected: entity.RiskLevelLow},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%.1f", tt.confidence), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, SeverityFromConfidence(tt.confidence))
			assert.Equal(t, SeverityFromConfidence(tt.confidence), SeverityFromConfidence(tt.confidence))
		})
	}
}
