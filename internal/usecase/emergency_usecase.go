package usecase

import (
	"context"

	"carewatch/internal/domain/entity"

	"github.com/google/uuid"
)

// TriggerEmergencyInput represents a user or device initiated emergency
type TriggerEmergencyInput struct {
	UserID    uuid.UUID `json:"user_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Notes     string    `json:"notes"`
}

// EmergencyUsecase defines the emergency incident use cases
type EmergencyUsecase interface {
	TriggerManualSOS(ctx context.Context, input *TriggerEmergencyInput) (*entity.Emergency, error)
	TriggerPanicButton(ctx context.Context, input *TriggerEmergencyInput) (*entity.Emergency, error)
	// TriggerFallDetection raises an incident whose severity follows the confidence (0..100)
	TriggerFallDetection(ctx context.Context, input *TriggerEmergencyInput, confidence float64) (*entity.Emergency, error)

	// NotifyGuardians re-runs the cascade for an existing incident
	NotifyGuardians(ctx context.Context, emergencyID uuid.UUID) (*entity.Emergency, error)
	Resolve(ctx context.Context, emergencyID uuid.UUID, resolvedBy *uuid.UUID, notes string) (*entity.Emergency, error)
	Cancel(ctx context.Context, emergencyID uuid.UUID, cancelledBy *uuid.UUID, reason string) (*entity.Emergency, error)

	GetEmergency(ctx context.Context, emergencyID uuid.UUID) (*entity.Emergency, error)
	ListUserEmergencies(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Emergency, error)
}
