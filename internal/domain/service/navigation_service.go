package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// NavigationService starts guided navigation on the monitored user's device
type NavigationService interface {
	// StartHomeNavigation asks the device to guide the user home from the given position
	StartHomeNavigation(ctx context.Context, userID uuid.UUID, from orb.Point) error
}
