// Package metrics exposes the engine counters through Prometheus.
package metrics

import (
	"net/http"
	"time"

	"carewatch/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "carewatch"

// Recorder implements service.MetricsRecorder on a dedicated registry.
type Recorder struct {
	registry *prometheus.Registry

	ingestDuration   prometheus.Histogram
	evaluationErrors *prometheus.CounterVec
	geofenceEvents   *prometheus.CounterVec
	channelAttempts  *prometheus.CounterVec
	dispatchDropped  prometheus.Counter
	emergencies      *prometheus.CounterVec
}

var _ service.MetricsRecorder = (*Recorder)(nil)

// NewRecorder registers the carewatch collectors plus the Go and process collectors.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	r := &Recorder{
		registry: registry,
		ingestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ingest_duration_seconds",
			Help:      "Time spent processing one location sample.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}),
		evaluationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluation_errors_total",
			Help:      "Sub-evaluations that failed and were skipped.",
		}, []string{"stage"}),
		geofenceEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geofence_events_total",
			Help:      "Geofence events recorded by type.",
		}, []string{"type"}),
		channelAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "channel_attempts_total",
			Help:      "Guardian notification attempts by channel and outcome.",
		}, []string{"channel", "status"}),
		dispatchDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatch_dropped_total",
			Help:      "Notification jobs dropped because the dispatch queue was full or stopped.",
		}),
		emergencies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emergencies_total",
			Help:      "Emergencies created by type.",
		}, []string{"type"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.ingestDuration,
		r.evaluationErrors,
		r.geofenceEvents,
		r.channelAttempts,
		r.dispatchDropped,
		r.emergencies,
	)

	return r
}

// NewMetricsRecorder adapts NewRecorder for fx consumers of the domain interface.
func NewMetricsRecorder(r *Recorder) service.MetricsRecorder {
	return r
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func (r *Recorder) ObserveIngest(duration time.Duration) {
	r.ingestDuration.Observe(duration.Seconds())
}

func (r *Recorder) IncEvaluationError(stage string) {
	r.evaluationErrors.WithLabelValues(stage).Inc()
}

func (r *Recorder) IncGeofenceEvent(eventType string) {
	r.geofenceEvents.WithLabelValues(eventType).Inc()
}

func (r *Recorder) IncChannelAttempt(channel, status string) {
	r.channelAttempts.WithLabelValues(channel, status).Inc()
}

func (r *Recorder) IncDispatchDropped() {
	r.dispatchDropped.Inc()
}

func (r *Recorder) IncEmergency(emergencyType string) {
	r.emergencies.WithLabelValues(emergencyType).Inc()
}

// Noop discards every measurement.
type Noop struct{}

func (Noop) ObserveIngest(time.Duration) {}
func (Noop) IncEvaluationError(string) {}
func (Noop) IncGeofenceEvent(string) {}
func (Noop) IncChannelAttempt(string, string) {}
func (Noop) IncDispatchDropped() {}
func (Noop) IncEmergency(string) {}
