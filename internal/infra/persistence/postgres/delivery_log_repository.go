package postgres

import (
	"context"

	"carewatch/internal/domain/entity"
	domainerrors "carewatch/internal/domain/errors"
	"carewatch/internal/domain/repository"
	"carewatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const deliveryLogBatchSize = 100

// deliveryLogRepository implements the repository.DeliveryLogRepository interface.
type deliveryLogRepository struct {
	db *gorm.DB
}

// NewDeliveryLogRepository is the constructor for deliveryLogRepository.
func NewDeliveryLogRepository(db *gorm.DB) repository.DeliveryLogRepository {
	return &deliveryLogRepository{
		db: db,
	}
}

// AppendLogs stores a batch of channel attempts.
func (repo *deliveryLogRepository) AppendLogs(ctx context.Context, logs []*entity.DeliveryLog) error {
	if len(logs) == 0 {
		return nil
	}

	logModels := make([]*model.DeliveryLogModel, 0, len(logs))
	for _, log := range logs {
		logModels = append(logModels, fromDeliveryLogDomain(log))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(logModels, deliveryLogBatchSize).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append delivery logs")
	}

	for i, logM := range logModels {
		logs[i].ID = logM.ID
	}

	return nil
}

// FindLogsByUser lists recent attempts for a user, newest first.
func (repo *deliveryLogRepository) FindLogsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.DeliveryLog, error) {
	var logModels []*model.DeliveryLogModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("attempted_at DESC").
		Limit(limit).
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find delivery logs by user")
	}

	logs := make([]*entity.DeliveryLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toDeliveryLogDomain(logM))
	}

	return logs, nil
}

// --- Mapper Functions ---

func toDeliveryLogDomain(data *model.DeliveryLogModel) *entity.DeliveryLog {
	if data == nil {
		return nil
	}

	return &entity.DeliveryLog{
		ID:           data.ID,
		UserID:       data.UserID,
		GuardianID:   data.GuardianID,
		AlertKind:    entity.AlertKind(data.AlertKind),
		Channel:      entity.Channel(data.Channel),
		Status:       entity.DeliveryStatus(data.Status),
		ErrorMessage: data.ErrorMessage,
		EventID:      data.EventID,
		EmergencyID:  data.EmergencyID,
		AttemptedAt:  data.AttemptedAt,
	}
}

func fromDeliveryLogDomain(data *entity.DeliveryLog) *model.DeliveryLogModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryLogModel{
		ID:           data.ID,
		UserID:       data.UserID,
		GuardianID:   data.GuardianID,
		AlertKind:    string(data.AlertKind),
		Channel:      string(data.Channel),
		Status:       string(data.Status),
		ErrorMessage: data.ErrorMessage,
		EventID:      data.EventID,
		EmergencyID:  data.EmergencyID,
		AttemptedAt:  data.AttemptedAt,
	}
}
