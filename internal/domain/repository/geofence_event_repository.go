package repository

import (
	"context"
	"time"

	"carewatch/internal/domain/entity"

	"github.com/google/uuid"
)

// GeofenceEventRepository stores geofence events. Events are immutable except for their notification fields.
type GeofenceEventRepository interface {
	// CreateEvent persists a new event.
	CreateEvent(ctx context.Context, event *entity.GeofenceEvent) error

	// FindLastTransition returns the most recent ENTRY or EXIT event for the pair, or nil.
	FindLastTransition(ctx context.Context, userID, geofenceID uuid.UUID) (*entity.GeofenceEvent, error)

	// ExistsEventSince reports whether an event of the given type was recorded for the pair at or after since.
	ExistsEventSince(ctx context.Context, userID, geofenceID uuid.UUID, eventType entity.GeofenceEventType, since time.Time) (bool, error)

	// MarkNotificationSent records the notification outcome of an event.
	MarkNotificationSent(ctx context.Context, eventID uuid.UUID, guardianIDs []uuid.UUID) error

	// FindEventsByUser lists the most recent events of a user, newest first.
	FindEventsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.GeofenceEvent, error)
}
