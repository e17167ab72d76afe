package repository

import (
	"context"

	"carewatch/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrUserNotFound is returned when the monitored user does not exist.
var ErrUserNotFound = errors.New("user not found")

// UserDirectory resolves monitored users.
type UserDirectory interface {
	// ResolveUser returns the user or ErrUserNotFound.
	ResolveUser(ctx context.Context, userID uuid.UUID) (*entity.CareUser, error)
}

// GuardianDirectory lists the guardians linked to a user.
type GuardianDirectory interface {
	// ListActiveGuardians returns the guardians of a user that are currently linked.
	ListActiveGuardians(ctx context.Context, userID uuid.UUID) ([]*entity.Guardian, error)
}

// MovementPatternProvider returns the learned movement patterns of a user.
type MovementPatternProvider interface {
	// GetRecentMovementPatterns returns the user's recent patterns; an empty result disables deviation checks.
	GetRecentMovementPatterns(ctx context.Context, userID uuid.UUID) ([]*entity.MovementPattern, error)
}
