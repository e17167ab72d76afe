// Package risk maps geofence observations and detector confidence onto risk levels.
// Both mappings are pure lookup tables.
package risk

import "carewatch/internal/domain/entity"

// rule matches a (zone type, event type) pair. A nil zone set matches any zone.
type rule struct {
	zones  []entity.GeofenceType
	events []entity.GeofenceEventType
	level  entity.RiskLevel
}

func (r rule) matches(zone entity.GeofenceType, event entity.GeofenceEventType) bool {
	return containsValue(r.zones, zone) && containsValue(r.events, event)
}

// eventRules is evaluated top to bottom; the first match wins.
var eventRules = []rule{
	{
		zones:  []entity.GeofenceType{entity.GeofenceTypeDangerZone},
		events: []entity.GeofenceEventType{entity.GeofenceEventEntry, entity.GeofenceEventWarning},
		level:  entity.RiskLevelCritical,
	},
	{
		zones:  []entity.GeofenceType{entity.GeofenceTypeHome, entity.GeofenceTypeSafeZone},
		events: []entity.GeofenceEventType{entity.GeofenceEventExit},
		level:  entity.RiskLevelMedium,
	},
	{
		events: []entity.GeofenceEventType{entity.GeofenceEventWarning},
		level:  entity.RiskLevelHigh,
	},
	{
		events: []entity.GeofenceEventType{entity.GeofenceEventDwell},
		level:  entity.RiskLevelLow,
	},
}

const (
	// DefaultLevel is returned when no rule matches.
	DefaultLevel = entity.RiskLevelLow

	// BoundaryWarningLevel applies to proximity warnings raised outside or at the edge of any
	// zone. A sample inside a danger zone is classified by the table instead.
	BoundaryWarningLevel = entity.RiskLevelHigh
)

// Classify returns the risk level for an event observed on a geofence of the given type.
func Classify(zone entity.GeofenceType, event entity.GeofenceEventType) entity.RiskLevel {
	for _, r := range eventRules {
		if r.matches(zone, event) {
			return r.level
		}
	}

	return DefaultLevel
}

// confidenceThreshold maps a minimum confidence (inclusive) to a severity.
type confidenceThreshold struct {
	min   float64
	level entity.RiskLevel
}

// severityThresholds is ordered from the highest threshold down.
var severityThresholds = []confidenceThreshold{
	{min: 90, level: entity.RiskLevelCritical},
	{min: 70, level: entity.RiskLevelHigh},
	{min: 50, level: entity.RiskLevelMedium},
}

// SeverityFromConfidence derives the severity of an AI-triggered emergency from a 0-100 score.
func SeverityFromConfidence(confidence float64) entity.RiskLevel {
	for _, threshold := range severityThresholds {
		if confidence >= threshold.min {
			return threshold.level
		}
	}

	return entity.RiskLevelLow
}

func containsValue[T comparable](set []T, value T) bool {
	if set == nil {
		return true
	}
	for _, candidate := range set {
		if candidate == value {
			return true
		}
	}

	return false
}
