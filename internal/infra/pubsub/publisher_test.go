package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carewatch/config"
	"carewatch/internal/domain/constants"
	"carewatch/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestLocalHTTPPublisher_PublishSafetyEvent(t *testing.T) {
	t.Parallel()

	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())
	event := &service.SafetyEvent{
		RequestID:  "req-1",
		EventID:    "evt-1",
		Type:       service.SafetyEventNavigationRequested,
		UserID:     "user-1",
		OccurredAt: time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishSafetyEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, service.SafetyEventNavigationRequested, received.Message.Attributes["event_type"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.SafetyEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "user-1", decoded.UserID)
}

func TestLocalHTTPPublisher_ErrorStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())
	err := publisher.PublishSafetyEvent(context.Background(), &service.SafetyEvent{EventID: "evt-2"})
	assert.ErrorContains(t, err, "503")
}

func TestNewEventPublisher(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "disabled", cfg: nil},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: slog.Default(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
		})
	}
}
