package memory

import (
	"context"
	"slices"

	"carewatch/internal/domain/entity"
	"carewatch/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Wandering detections ---

// CreateDetection implements repository.WanderingRepository.
func (s *Store) CreateDetection(_ context.Context, detection *entity.WanderingDetection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, w := range s.wanderings {
		if w.UserID == detection.UserID && w.IsActive() {
			return repository.ErrActiveWanderingExists
		}
	}
	if detection.ID == uuid.Nil {
		detection.ID = uuid.New()
	}
	c := *detection
	s.wanderings[c.ID] = &c

	return nil
}

// FindActiveByUser implements repository.WanderingRepository.
func (s *Store) FindActiveByUser(_ context.Context, userID uuid.UUID) (*entity.WanderingDetection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, w := range s.wanderings {
		if w.UserID == userID && w.IsActive() {
			c := *w

			return &c, nil
		}
	}

	return nil, nil
}

// FindDetectionByID implements repository.WanderingRepository.
func (s *Store) FindDetectionByID(_ context.Context, id uuid.UUID) (*entity.WanderingDetection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.wanderings[id]
	if !ok {
		return nil, repository.ErrWanderingNotFound
	}
	c := *w

	return &c, nil
}

// UpdateDetection implements repository.WanderingRepository.
func (s *Store) UpdateDetection(_ context.Context, detection *entity.WanderingDetection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.wanderings[detection.ID]; !ok {
		return repository.ErrWanderingNotFound
	}
	c := *detection
	s.wanderings[c.ID] = &c

	return nil
}

// --- Emergencies ---

// CreateEmergency implements repository.EmergencyRepository.
func (s *Store) CreateEmergency(_ context.Context, emergency *entity.Emergency) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if emergency.ID == uuid.Nil {
		emergency.ID = uuid.New()
	}
	if emergency.CreatedAt.IsZero() {
		emergency.CreatedAt = s.now()
	}
	if emergency.UpdatedAt.IsZero() {
		emergency.UpdatedAt = emergency.CreatedAt
	}
	s.emergencies[emergency.ID] = copyEmergency(emergency)

	return nil
}

// FindEmergencyByID implements repository.EmergencyRepository.
func (s *Store) FindEmergencyByID(_ context.Context, id uuid.UUID) (*entity.Emergency, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.emergencies[id]
	if !ok {
		return nil, repository.ErrEmergencyNotFound
	}

	return copyEmergency(e), nil
}

// FindOpenByUserAndType implements repository.EmergencyRepository.
func (s *Store) FindOpenByUserAndType(_ context.Context, userID uuid.UUID, emergencyType entity.EmergencyType) (*entity.Emergency, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var newest *entity.Emergency
	for _, e := range s.emergencies {
		if e.UserID != userID || e.Type != emergencyType || e.Status.IsTerminal() {
			continue
		}
		if newest == nil || e.CreatedAt.After(newest.CreatedAt) {
			newest = e
		}
	}
	if newest == nil {
		return nil, nil
	}

	return copyEmergency(newest), nil
}

// FindEmergenciesByUser implements repository.EmergencyRepository.
func (s *Store) FindEmergenciesByUser(_ context.Context, userID uuid.UUID, limit int) ([]*entity.Emergency, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*entity.Emergency
	for _, e := range s.emergencies {
		if e.UserID == userID {
			out = append(out, copyEmergency(e))
		}
	}
	slices.SortFunc(out, func(a, b *entity.Emergency) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

// UpdateEmergency implements repository.EmergencyRepository.
func (s *Store) UpdateEmergency(_ context.Context, emergency *entity.Emergency) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.emergencies[emergency.ID]; !ok {
		return repository.ErrEmergencyNotFound
	}
	s.emergencies[emergency.ID] = copyEmergency(emergency)

	return nil
}

// --- Delivery logs ---

// AppendLogs implements repository.DeliveryLogRepository.
func (s *Store) AppendLogs(_ context.Context, logs []*entity.DeliveryLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range logs {
		if l.ID == uuid.Nil {
			l.ID = uuid.New()
		}
		c := *l
		s.logs = append(s.logs, &c)
	}

	return nil
}

// FindLogsByUser implements repository.DeliveryLogRepository.
func (s *Store) FindLogsByUser(_ context.Context, userID uuid.UUID, limit int) ([]*entity.DeliveryLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*entity.DeliveryLog
	for i := len(s.logs) - 1; i >= 0; i-- {
		if s.logs[i].UserID != userID {
			continue
		}
		c := *s.logs[i]
		out = append(out, &c)
		if limit > 0 && len(out) == limit {
			break
		}
	}

	return out, nil
}

func copyEmergency(e *entity.Emergency) *entity.Emergency {
	c := *e
	c.NotifiedGuardianIDs = slices.Clone(e.NotifiedGuardianIDs)

	return &c
}
