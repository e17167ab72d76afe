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

var openEmergencyStatuses = []string{
	string(entity.EmergencyStatusTriggered),
	string(entity.EmergencyStatusActive),
	string(entity.EmergencyStatusNotified),
}

// emergencyRepository implements the repository.EmergencyRepository interface.
type emergencyRepository struct {
	db *gorm.DB
}

// NewEmergencyRepository is the constructor for emergencyRepository.
func NewEmergencyRepository(db *gorm.DB) repository.EmergencyRepository {
	return &emergencyRepository{
		db: db,
	}
}

// CreateEmergency persists a new emergency.
func (repo *emergencyRepository) CreateEmergency(ctx context.Context, emergency *entity.Emergency) error {
	emergencyM := fromEmergencyDomain(emergency)

	if err := repo.db.WithContext(ctx).Create(emergencyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("emergency references an unknown user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create emergency")
	}

	emergency.ID = emergencyM.ID
	emergency.CreatedAt = emergencyM.CreatedAt
	emergency.UpdatedAt = emergencyM.UpdatedAt

	return nil
}

// FindEmergencyByID retrieves an emergency by its unique ID.
func (repo *emergencyRepository) FindEmergencyByID(ctx context.Context, id uuid.UUID) (*entity.Emergency, error) {
	var emergencyM model.EmergencyModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&emergencyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEmergencyNotFound
		}

		return nil, errors.Wrap(err, "failed to find emergency by ID")
	}

	return toEmergencyDomain(&emergencyM), nil
}

// FindOpenByUserAndType returns the newest non-terminal emergency of the given type, or nil.
func (repo *emergencyRepository) FindOpenByUserAndType(
	ctx context.Context,
	userID uuid.UUID,
	emergencyType entity.EmergencyType,
) (*entity.Emergency, error) {
	var emergencyM model.EmergencyModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND type = ? AND status IN ?", userID, string(emergencyType), openEmergencyStatuses).
		Order("created_at DESC").
		First(&emergencyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find open emergency")
	}

	return toEmergencyDomain(&emergencyM), nil
}

// FindEmergenciesByUser lists a user's emergencies, newest first.
func (repo *emergencyRepository) FindEmergenciesByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Emergency, error) {
	var emergencyModels []*model.EmergencyModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&emergencyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find emergencies by user")
	}

	emergencies := make([]*entity.Emergency, 0, len(emergencyModels))
	for _, emergencyM := range emergencyModels {
		emergencies = append(emergencies, toEmergencyDomain(emergencyM))
	}

	return emergencies, nil
}

// UpdateEmergency saves status, notification and resolution fields.
func (repo *emergencyRepository) UpdateEmergency(ctx context.Context, emergency *entity.Emergency) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EmergencyModel{ID: emergency.ID}).
		Select("status", "notified_guardian_ids", "updated_at", "resolved_at", "resolved_by",
			"resolution_notes", "response_time_seconds").
		Updates(fromEmergencyDomain(emergency))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update emergency")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEmergencyNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toEmergencyDomain(data *model.EmergencyModel) *entity.Emergency {
	if data == nil {
		return nil
	}

	return &entity.Emergency{
		ID:                  data.ID,
		UserID:              data.UserID,
		Type:                entity.EmergencyType(data.Type),
		Status:              entity.EmergencyStatus(data.Status),
		Severity:            entity.RiskLevel(data.Severity),
		TriggeredBy:         entity.TriggerSource(data.TriggeredBy),
		Latitude:            data.Latitude,
		Longitude:           data.Longitude,
		Confidence:          data.Confidence,
		Notes:               data.Notes,
		NotifiedGuardianIDs: data.NotifiedGuardianIDs,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
		ResolvedAt:          data.ResolvedAt,
		ResolvedBy:          data.ResolvedBy,
		ResolutionNotes:     data.ResolutionNotes,
		ResponseTimeSeconds: data.ResponseTimeSeconds,
	}
}

func fromEmergencyDomain(data *entity.Emergency) *model.EmergencyModel {
	if data == nil {
		return nil
	}

	return &model.EmergencyModel{
		ID:                  data.ID,
		UserID:              data.UserID,
		Type:                string(data.Type),
		Status:              string(data.Status),
		Severity:            string(data.Severity),
		TriggeredBy:         string(data.TriggeredBy),
		Latitude:            data.Latitude,
		Longitude:           data.Longitude,
		Confidence:          data.Confidence,
		Notes:               data.Notes,
		NotifiedGuardianIDs: data.NotifiedGuardianIDs,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
		ResolvedAt:          data.ResolvedAt,
		ResolvedBy:          data.ResolvedBy,
		ResolutionNotes:     data.ResolutionNotes,
		ResponseTimeSeconds: data.ResponseTimeSeconds,
	}
}
