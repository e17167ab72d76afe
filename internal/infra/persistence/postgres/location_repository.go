// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"carewatch/internal/domain/entity"
	domainerrors "carewatch/internal/domain/errors"
	"carewatch/internal/domain/repository"
	"carewatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// SaveSample appends a location sample.
func (repo *locationRepository) SaveSample(ctx context.Context, sample *entity.LocationSample) error {
	sampleM := fromSampleDomain(sample)

	if err := repo.db.WithContext(ctx).Create(sampleM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required sample information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save location sample")
	}

	sample.ID = sampleM.ID

	return nil
}

// FindSamplesSince returns samples captured at or after since, oldest first.
func (repo *locationRepository) FindSamplesSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]*entity.LocationSample, error) {
	var sampleModels []*model.LocationSampleModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND captured_at >= ?", userID, since).
		Order("captured_at ASC").
		Find(&sampleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find location samples")
	}

	samples := make([]*entity.LocationSample, 0, len(sampleModels))
	for _, sampleM := range sampleModels {
		samples = append(samples, toSampleDomain(sampleM))
	}

	return samples, nil
}

// FindLatestSample returns the most recent sample, or nil when none exists.
func (repo *locationRepository) FindLatestSample(ctx context.Context, userID uuid.UUID) (*entity.LocationSample, error) {
	var sampleM model.LocationSampleModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("captured_at DESC").
		First(&sampleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find latest location sample")
	}

	return toSampleDomain(&sampleM), nil
}

// --- Mapper Functions ---

func toSampleDomain(data *model.LocationSampleModel) *entity.LocationSample {
	if data == nil {
		return nil
	}

	return &entity.LocationSample{
		ID:         data.ID,
		UserID:     data.UserID,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		Accuracy:   data.Accuracy,
		CapturedAt: data.CapturedAt,
	}
}

func fromSampleDomain(data *entity.LocationSample) *model.LocationSampleModel {
	if data == nil {
		return nil
	}

	return &model.LocationSampleModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		Accuracy:   data.Accuracy,
		CapturedAt: data.CapturedAt,
	}
}
