package service

import "time"

// MetricsRecorder collects engine counters and latencies
type MetricsRecorder interface {
	// ObserveIngest records one processed location sample and its processing time
	ObserveIngest(duration time.Duration)

	// IncEvaluationError counts a failed sub-evaluation (geofence, dwell, wandering)
	IncEvaluationError(stage string)

	// IncGeofenceEvent counts a created geofence event by type
	IncGeofenceEvent(eventType string)

	// IncChannelAttempt counts a cascade channel attempt by channel and outcome
	IncChannelAttempt(channel, status string)

	// IncDispatchDropped counts a notification job dropped because the queue was full
	IncDispatchDropped()

	// IncEmergency counts a created emergency by type
	IncEmergency(emergencyType string)
}
