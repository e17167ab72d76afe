package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Counters(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	r.IncGeofenceEvent("EXIT")
	r.IncGeofenceEvent("EXIT")
	r.IncChannelAttempt("SMS", "FAILED")
	r.IncDispatchDropped()
	r.IncEmergency("FALL_DETECTED")
	r.IncEvaluationError("dwell")
	r.ObserveIngest(15 * time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(r.geofenceEvents.WithLabelValues("EXIT")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.channelAttempts.WithLabelValues("SMS", "FAILED")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.dispatchDropped), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.emergencies.WithLabelValues("FALL_DETECTED")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.evaluationErrors.WithLabelValues("dwell")), 0)
}

func TestRecorder_Handler(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	r.IncGeofenceEvent("ENTRY")

	server := httptest.NewServer(r.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `carewatch_geofence_events_total{type="ENTRY"} 1`)
}
