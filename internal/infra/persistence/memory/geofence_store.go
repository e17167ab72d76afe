package memory

import (
	"context"
	"slices"
	"time"

	"carewatch/internal/domain/entity"
	"carewatch/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateGeofence implements repository.GeofenceRepository.
func (s *Store) CreateGeofence(_ context.Context, geofence *entity.Geofence) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if geofence.ID == uuid.Nil {
		geofence.ID = uuid.New()
	}
	now := s.now()
	geofence.CreatedAt = now
	geofence.UpdatedAt = now
	s.geofences[geofence.ID] = copyGeofence(geofence)

	return nil
}

// FindGeofenceByID implements repository.GeofenceRepository.
func (s *Store) FindGeofenceByID(_ context.Context, id uuid.UUID) (*entity.Geofence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	geofence, ok := s.geofences[id]
	if !ok {
		return nil, repository.ErrGeofenceNotFound
	}

	return copyGeofence(geofence), nil
}

// FindGeofencesByUser implements repository.GeofenceRepository.
func (s *Store) FindGeofencesByUser(_ context.Context, userID uuid.UUID) ([]*entity.Geofence, error) {
	return s.filterGeofences(func(g *entity.Geofence) bool { return g.UserID == userID }), nil
}

// FindActiveGeofencesByUser implements repository.GeofenceRepository.
func (s *Store) FindActiveGeofencesByUser(_ context.Context, userID uuid.UUID) ([]*entity.Geofence, error) {
	return s.filterGeofences(func(g *entity.Geofence) bool { return g.UserID == userID && g.IsActive }), nil
}

func (s *Store) filterGeofences(keep func(*entity.Geofence) bool) []*entity.Geofence {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*entity.Geofence
	for _, g := range s.geofences {
		if keep(g) {
			out = append(out, copyGeofence(g))
		}
	}
	slices.SortFunc(out, func(a, b *entity.Geofence) int {
		if a.Priority != b.Priority {
			return b.Priority - a.Priority
		}

		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return out
}

// UpdateGeofence implements repository.GeofenceRepository.
func (s *Store) UpdateGeofence(_ context.Context, geofence *entity.Geofence) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.geofences[geofence.ID]
	if !ok {
		return repository.ErrGeofenceNotFound
	}
	stored.IsActive = geofence.IsActive
	stored.Priority = geofence.Priority
	stored.AlertOnEntry = geofence.AlertOnEntry
	stored.AlertOnExit = geofence.AlertOnExit
	stored.UpdatedAt = s.now()

	return nil
}

// --- Geofence events ---

// CreateEvent implements repository.GeofenceEventRepository.
func (s *Store) CreateEvent(_ context.Context, event *entity.GeofenceEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = s.now()
	}
	s.events = append(s.events, copyEvent(event))

	return nil
}

// FindLastTransition implements repository.GeofenceEventRepository.
func (s *Store) FindLastTransition(_ context.Context, userID, geofenceID uuid.UUID) (*entity.GeofenceEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var last *entity.GeofenceEvent
	for _, e := range s.events {
		if e.UserID != userID || e.GeofenceID != geofenceID || !e.Type.IsTransition() {
			continue
		}
		if last == nil || !e.CreatedAt.Before(last.CreatedAt) {
			last = e
		}
	}
	if last == nil {
		return nil, nil
	}

	return copyEvent(last), nil
}

// ExistsEventSince implements repository.GeofenceEventRepository.
func (s *Store) ExistsEventSince(
	_ context.Context,
	userID, geofenceID uuid.UUID,
	eventType entity.GeofenceEventType,
	since time.Time,
) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.events {
		if e.UserID == userID && e.GeofenceID == geofenceID && e.Type == eventType && !e.CreatedAt.Before(since) {
			return true, nil
		}
	}

	return false, nil
}

// MarkNotificationSent implements repository.GeofenceEventRepository.
func (s *Store) MarkNotificationSent(_ context.Context, eventID uuid.UUID, guardianIDs []uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.events {
		if e.ID == eventID {
			e.NotificationSent = len(guardianIDs) > 0
			e.NotifiedGuardianIDs = slices.Clone(guardianIDs)

			return nil
		}
	}

	return repository.ErrGeofenceNotFound
}

// FindEventsByUser implements repository.GeofenceEventRepository.
func (s *Store) FindEventsByUser(_ context.Context, userID uuid.UUID, limit int) ([]*entity.GeofenceEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*entity.GeofenceEvent
	for i := len(s.events) - 1; i >= 0; i-- {
		if s.events[i].UserID == userID {
			out = append(out, copyEvent(s.events[i]))
		}
	}
	slices.SortStableFunc(out, func(a, b *entity.GeofenceEvent) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func copyGeofence(g *entity.Geofence) *entity.Geofence {
	c := *g
	c.ActiveWindow.Days = slices.Clone(g.ActiveWindow.Days)

	return &c
}

func copyEvent(e *entity.GeofenceEvent) *entity.GeofenceEvent {
	c := *e
	c.NotifiedGuardianIDs = slices.Clone(e.NotifiedGuardianIDs)

	return &c
}
