// Package memory is an in-process implementation of the carewatch repositories and
// directories. It backs local runs without a database and the usecase scenario tests.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"carewatch/internal/domain/entity"
	"carewatch/internal/domain/repository"

	"github.com/google/uuid"
)

// Store keeps every table in maps guarded by one mutex. Values are copied on the way in
// and out so callers never share memory with the store.
type Store struct {
	mu sync.RWMutex

	users       map[uuid.UUID]*entity.CareUser
	guardians   map[uuid.UUID][]*entity.Guardian
	patterns    map[uuid.UUID][]*entity.MovementPattern
	samples     map[uuid.UUID][]*entity.LocationSample
	geofences   map[uuid.UUID]*entity.Geofence
	events      []*entity.GeofenceEvent
	wanderings  map[uuid.UUID]*entity.WanderingDetection
	emergencies map[uuid.UUID]*entity.Emergency
	logs        []*entity.DeliveryLog

	now func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		users:       make(map[uuid.UUID]*entity.CareUser),
		guardians:   make(map[uuid.UUID][]*entity.Guardian),
		patterns:    make(map[uuid.UUID][]*entity.MovementPattern),
		samples:     make(map[uuid.UUID][]*entity.LocationSample),
		geofences:   make(map[uuid.UUID]*entity.Geofence),
		wanderings:  make(map[uuid.UUID]*entity.WanderingDetection),
		emergencies: make(map[uuid.UUID]*entity.Emergency),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// AddUser registers a monitored user.
func (s *Store) AddUser(user *entity.CareUser) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := *user
	s.users[u.ID] = &u
}

// AddGuardian links a guardian to the user named by guardian.UserID.
func (s *Store) AddGuardian(guardian *entity.Guardian) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := *guardian
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
		guardian.ID = g.ID
	}
	s.guardians[g.UserID] = append(s.guardians[g.UserID], &g)
}

// AddMovementPattern records a learned pattern for a user.
func (s *Store) AddMovementPattern(userID uuid.UUID, pattern *entity.MovementPattern) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := *pattern
	s.patterns[userID] = append(s.patterns[userID], &p)
}

// Events returns a copy of the user's events in insertion order.
func (s *Store) Events(userID uuid.UUID) []*entity.GeofenceEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*entity.GeofenceEvent
	for _, e := range s.events {
		if e.UserID == userID {
			out = append(out, copyEvent(e))
		}
	}

	return out
}

// Detections returns a copy of every wandering detection recorded for the user.
func (s *Store) Detections(userID uuid.UUID) []*entity.WanderingDetection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*entity.WanderingDetection
	for _, w := range s.wanderings {
		if w.UserID == userID {
			c := *w
			out = append(out, &c)
		}
	}

	return out
}

// DeliveryLogs returns a copy of every delivery attempt in insertion order.
func (s *Store) DeliveryLogs() []*entity.DeliveryLog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.DeliveryLog, 0, len(s.logs))
	for _, l := range s.logs {
		c := *l
		out = append(out, &c)
	}

	return out
}

// Execute runs fn with the store itself as the repository factory. Writes made before an
// error are not rolled back.
func (s *Store) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s)
}

// NewGeofenceEventRepository implements repository.RepositoryFactory.
func (s *Store) NewGeofenceEventRepository() repository.GeofenceEventRepository { return s }

// NewEmergencyRepository implements repository.RepositoryFactory.
func (s *Store) NewEmergencyRepository() repository.EmergencyRepository { return s }

// NewWanderingRepository implements repository.RepositoryFactory.
func (s *Store) NewWanderingRepository() repository.WanderingRepository { return s }

// --- Directories ---

// ResolveUser implements repository.UserDirectory.
func (s *Store) ResolveUser(_ context.Context, userID uuid.UUID) (*entity.CareUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	u := *user

	return &u, nil
}

// ListActiveGuardians implements repository.GuardianDirectory.
func (s *Store) ListActiveGuardians(_ context.Context, userID uuid.UUID) ([]*entity.Guardian, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Guardian, 0, len(s.guardians[userID]))
	for _, g := range s.guardians[userID] {
		c := *g
		out = append(out, &c)
	}

	return out, nil
}

// GetRecentMovementPatterns implements repository.MovementPatternProvider.
func (s *Store) GetRecentMovementPatterns(_ context.Context, userID uuid.UUID) ([]*entity.MovementPattern, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.MovementPattern, 0, len(s.patterns[userID]))
	for _, p := range s.patterns[userID] {
		c := *p
		out = append(out, &c)
	}

	return out, nil
}

// --- Location samples ---

// SaveSample implements repository.LocationRepository.
func (s *Store) SaveSample(_ context.Context, sample *entity.LocationSample) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sample.ID == uuid.Nil {
		sample.ID = uuid.New()
	}
	c := *sample
	s.samples[c.UserID] = append(s.samples[c.UserID], &c)

	return nil
}

// FindSamplesSince implements repository.LocationRepository.
func (s *Store) FindSamplesSince(_ context.Context, userID uuid.UUID, since time.Time) ([]*entity.LocationSample, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*entity.LocationSample
	for _, sample := range s.samples[userID] {
		if !sample.CapturedAt.Before(since) {
			c := *sample
			out = append(out, &c)
		}
	}
	slices.SortStableFunc(out, func(a, b *entity.LocationSample) int {
		return a.CapturedAt.Compare(b.CapturedAt)
	})

	return out, nil
}

// FindLatestSample implements repository.LocationRepository.
func (s *Store) FindLatestSample(_ context.Context, userID uuid.UUID) (*entity.LocationSample, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest *entity.LocationSample
	for _, sample := range s.samples[userID] {
		if latest == nil || !sample.CapturedAt.Before(latest.CapturedAt) {
			latest = sample
		}
	}
	if latest == nil {
		return nil, nil
	}
	c := *latest

	return &c, nil
}
