package repository

import (
	"context"

	"carewatch/internal/domain/entity"

	"github.com/google/uuid"
)

// DeliveryLogRepository is the append-only audit trail of channel attempts.
type DeliveryLogRepository interface {
	// AppendLogs stores a batch of delivery attempts.
	AppendLogs(ctx context.Context, logs []*entity.DeliveryLog) error

	// FindLogsByUser lists the latest attempts for a user, newest first.
	FindLogsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.DeliveryLog, error)
}
