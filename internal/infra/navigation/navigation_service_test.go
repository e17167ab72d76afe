package navigation

import (
	"context"
	"encoding/json"
	"testing"

	"carewatch/internal/domain/service"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	events []*service.SafetyEvent
	err    error
}

func (p *recordingPublisher) PublishSafetyEvent(_ context.Context, event *service.SafetyEvent) error {
	p.events = append(p.events, event)

	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func TestStartHomeNavigation(t *testing.T) {
	t.Parallel()

	publisher := &recordingPublisher{}
	svc := NewNavigationService(publisher)
	userID := uuid.New()

	require.NoError(t, svc.StartHomeNavigation(context.Background(), userID, orb.Point{127.01, 37.5}))

	require.Len(t, publisher.events, 1)
	event := publisher.events[0]
	assert.Equal(t, service.SafetyEventNavigationRequested, event.Type)
	assert.Equal(t, userID.String(), event.UserID)

	var payload requestPayload
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, "HOME", payload.Destination)
	assert.InDelta(t, 37.5, payload.FromLat, 1e-9)
	assert.InDelta(t, 127.01, payload.FromLon, 1e-9)
}

func TestStartHomeNavigation_PublishError(t *testing.T) {
	t.Parallel()

	svc := NewNavigationService(&recordingPublisher{err: errors.New("topic gone")})

	err := svc.StartHomeNavigation(context.Background(), uuid.New(), orb.Point{0, 0})
	assert.ErrorContains(t, err, "topic gone")
}
