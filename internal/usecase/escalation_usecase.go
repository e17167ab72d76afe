package usecase

import (
	"context"

	"carewatch/internal/domain/entity"
)

// EscalationUsecase fans an alert out to the guardians of a user
type EscalationUsecase interface {
	// Notify runs the cascade. Channel failures are folded into the result, not returned.
	Notify(ctx context.Context, alert *entity.Alert) (*entity.CascadeResult, error)

	// NotifyAndRecord runs the cascade and applies the result to the originating event and emergency
	NotifyAndRecord(ctx context.Context, alert *entity.Alert) (*entity.CascadeResult, error)
}

// AlertDispatcher queues alerts for background delivery
type AlertDispatcher interface {
	// Submit enqueues the alert without blocking. It reports false when the alert was dropped.
	// The job keeps the values of ctx (request id, logger) but not its cancellation.
	Submit(ctx context.Context, alert *entity.Alert) bool
}
