// Package navigation asks the monitored user's device to start guided navigation home.
package navigation

import (
	"context"
	"encoding/json"
	"time"

	deliverycontext "carewatch/internal/delivery/context"
	"carewatch/internal/domain/service"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// requestPayload is what the device app reads from a navigation.requested event.
type requestPayload struct {
	Destination string  `json:"destination"`
	FromLat     float64 `json:"from_latitude"`
	FromLon     float64 `json:"from_longitude"`
}

// publishedNavigation hands navigation requests to the event bus; the device app
// subscribes to navigation.requested and opens its route guidance.
type publishedNavigation struct {
	publisher service.EventPublisher
	now       func() time.Time
}

// NewNavigationService is the constructor for the event-driven navigation service.
func NewNavigationService(publisher service.EventPublisher) service.NavigationService {
	return &publishedNavigation{
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// StartHomeNavigation publishes a navigation request for the user.
func (n *publishedNavigation) StartHomeNavigation(ctx context.Context, userID uuid.UUID, from orb.Point) error {
	payload, err := json.Marshal(requestPayload{
		Destination: "HOME",
		FromLat:     from.Lat(),
		FromLon:     from.Lon(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	event := &service.SafetyEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       service.SafetyEventNavigationRequested,
		UserID:     userID.String(),
		OccurredAt: n.now(),
		Payload:    payload,
	}

	return errors.Wrap(n.publisher.PublishSafetyEvent(ctx, event), "failed to request home navigation")
}
