package usecase

import (
	"context"
	"time"

	"carewatch/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// WanderingEvaluation is the input of one wandering check. The caller holds the user lock.
type WanderingEvaluation struct {
	UserID   uuid.UUID
	Point    orb.Point
	Window   []*entity.LocationSample // Trailing samples, oldest first, including the current one
	Patterns []*entity.MovementPattern
	Now      time.Time
}

// WanderingOutcome carries the side effects the caller performs after releasing the user lock
type WanderingOutcome struct {
	Detection       *entity.WanderingDetection
	Alert           *entity.Alert
	StartNavigation bool
}

// WanderingUsecase detects and tracks wandering episodes
type WanderingUsecase interface {
	// Evaluate runs detection or tracking for one sample
	Evaluate(ctx context.Context, input *WanderingEvaluation) (*WanderingOutcome, error)

	// Resolve closes a detection; resolving a closed one returns a state conflict
	Resolve(ctx context.Context, detectionID uuid.UUID, method string) (*entity.WanderingDetection, error)

	// GetActive returns the user's active detection, or nil
	GetActive(ctx context.Context, userID uuid.UUID) (*entity.WanderingDetection, error)
}
