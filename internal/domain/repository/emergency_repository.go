package repository

import (
	"context"

	"carewatch/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrEmergencyNotFound is returned when an emergency lookup misses.
var ErrEmergencyNotFound = errors.New("emergency not found")

// EmergencyRepository stores emergency incidents.
type EmergencyRepository interface {
	// CreateEmergency persists a new emergency.
	CreateEmergency(ctx context.Context, emergency *entity.Emergency) error

	// FindEmergencyByID retrieves an emergency by ID.
	FindEmergencyByID(ctx context.Context, id uuid.UUID) (*entity.Emergency, error)

	// FindOpenByUserAndType returns the newest non-terminal emergency of the given type, or nil.
	FindOpenByUserAndType(ctx context.Context, userID uuid.UUID, emergencyType entity.EmergencyType) (*entity.Emergency, error)

	// FindEmergenciesByUser lists a user's emergencies, newest first.
	FindEmergenciesByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Emergency, error)

	// UpdateEmergency persists status, notification and resolution fields.
	UpdateEmergency(ctx context.Context, emergency *entity.Emergency) error
}
