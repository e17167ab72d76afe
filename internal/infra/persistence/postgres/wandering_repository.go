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

// wanderingRepository implements the repository.WanderingRepository interface.
type wanderingRepository struct {
	db *gorm.DB
}

// NewWanderingRepository is the constructor for wanderingRepository.
func NewWanderingRepository(db *gorm.DB) repository.WanderingRepository {
	return &wanderingRepository{
		db: db,
	}
}

// CreateDetection persists a new detection. The partial unique index on unresolved rows
// turns a concurrent second detection into ErrActiveWanderingExists.
func (repo *wanderingRepository) CreateDetection(ctx context.Context, detection *entity.WanderingDetection) error {
	detectionM := fromWanderingDomain(detection)

	if err := repo.db.WithContext(ctx).Create(detectionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrActiveWanderingExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create wandering detection")
	}

	detection.ID = detectionM.ID

	return nil
}

// FindActiveByUser returns the unresolved detection of a user, or nil.
func (repo *wanderingRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.WanderingDetection, error) {
	var detectionM model.WanderingDetectionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND status <> ?", userID, string(entity.WanderingStatusResolved)).
		Order("detected_at DESC").
		First(&detectionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find active wandering detection")
	}

	return toWanderingDomain(&detectionM), nil
}

// FindDetectionByID retrieves a detection by its unique ID.
func (repo *wanderingRepository) FindDetectionByID(ctx context.Context, id uuid.UUID) (*entity.WanderingDetection, error) {
	var detectionM model.WanderingDetectionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&detectionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWanderingNotFound
		}

		return nil, errors.Wrap(err, "failed to find wandering detection by ID")
	}

	return toWanderingDomain(&detectionM), nil
}

// UpdateDetection saves every mutable field of the detection.
func (repo *wanderingRepository) UpdateDetection(ctx context.Context, detection *entity.WanderingDetection) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WanderingDetectionModel{ID: detection.ID}).
		Select("status", "risk_level", "current_latitude", "current_longitude", "duration_minutes",
			"navigation_provided", "intervention_needed", "updated_at", "resolved_at", "resolution_method").
		Updates(fromWanderingDomain(detection))

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrActiveWanderingExists
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update wandering detection")
	}

	if result.RowsAffected == 0 {
		return repository.ErrWanderingNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toWanderingDomain(data *model.WanderingDetectionModel) *entity.WanderingDetection {
	if data == nil {
		return nil
	}

	return &entity.WanderingDetection{
		ID:                 data.ID,
		UserID:             data.UserID,
		Status:             entity.WanderingStatus(data.Status),
		RiskLevel:          entity.RiskLevel(data.RiskLevel),
		StartLatitude:      data.StartLatitude,
		StartLongitude:     data.StartLongitude,
		CurrentLatitude:    data.CurrentLatitude,
		CurrentLongitude:   data.CurrentLongitude,
		ConfidenceScore:    data.ConfidenceScore,
		DurationMinutes:    data.DurationMinutes,
		NavigationProvided: data.NavigationProvided,
		InterventionNeeded: data.InterventionNeeded,
		DetectedAt:         data.DetectedAt,
		UpdatedAt:          data.UpdatedAt,
		ResolvedAt:         data.ResolvedAt,
		ResolutionMethod:   data.ResolutionMethod,
	}
}

func fromWanderingDomain(data *entity.WanderingDetection) *model.WanderingDetectionModel {
	if data == nil {
		return nil
	}

	return &model.WanderingDetectionModel{
		ID:                 data.ID,
		UserID:             data.UserID,
		Status:             string(data.Status),
		RiskLevel:          string(data.RiskLevel),
		StartLatitude:      data.StartLatitude,
		StartLongitude:     data.StartLongitude,
		CurrentLatitude:    data.CurrentLatitude,
		CurrentLongitude:   data.CurrentLongitude,
		ConfidenceScore:    data.ConfidenceScore,
		DurationMinutes:    data.DurationMinutes,
		NavigationProvided: data.NavigationProvided,
		InterventionNeeded: data.InterventionNeeded,
		DetectedAt:         data.DetectedAt,
		UpdatedAt:          data.UpdatedAt,
		ResolvedAt:         data.ResolvedAt,
		ResolutionMethod:   data.ResolutionMethod,
	}
}
