package postgres

import (
	"context"
	"time"

	"carewatch/internal/domain/entity"
	"carewatch/internal/domain/repository"
	"carewatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	movementPatternLookback = 30 * 24 * time.Hour
	movementPatternLimit    = 20
)

// directoryRepository serves the user, guardian and movement-pattern lookups from postgres.
type directoryRepository struct {
	db *gorm.DB
}

// NewUserDirectory is the constructor for the postgres-backed user directory.
func NewUserDirectory(db *gorm.DB) repository.UserDirectory {
	return &directoryRepository{db: db}
}

// NewGuardianDirectory is the constructor for the postgres-backed guardian directory.
func NewGuardianDirectory(db *gorm.DB) repository.GuardianDirectory {
	return &directoryRepository{db: db}
}

// NewMovementPatternProvider is the constructor for the postgres-backed movement pattern provider.
func NewMovementPatternProvider(db *gorm.DB) repository.MovementPatternProvider {
	return &directoryRepository{db: db}
}

// ResolveUser returns the monitored user or repository.ErrUserNotFound.
func (repo *directoryRepository) ResolveUser(ctx context.Context, userID uuid.UUID) (*entity.CareUser, error) {
	var userM model.CareUserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve user")
	}

	return &entity.CareUser{
		ID:       userM.ID,
		Name:     userM.Name,
		IsActive: userM.IsActive,
	}, nil
}

// ListActiveGuardians returns the linked guardians of a user in creation order.
func (repo *directoryRepository) ListActiveGuardians(ctx context.Context, userID uuid.UUID) ([]*entity.Guardian, error) {
	var guardianModels []*model.GuardianModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at ASC").
		Find(&guardianModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list guardians")
	}

	guardians := make([]*entity.Guardian, 0, len(guardianModels))
	for _, guardianM := range guardianModels {
		guardians = append(guardians, &entity.Guardian{
			ID:               guardianM.ID,
			UserID:           guardianM.UserID,
			Name:             guardianM.Name,
			Phone:            guardianM.Phone,
			Email:            guardianM.Email,
			DeviceToken:      guardianM.DeviceToken,
			CanReceiveAlerts: guardianM.CanReceiveAlerts,
		})
	}

	return guardians, nil
}

// GetRecentMovementPatterns returns the patterns observed in the last 30 days.
func (repo *directoryRepository) GetRecentMovementPatterns(ctx context.Context, userID uuid.UUID) ([]*entity.MovementPattern, error) {
	var patternModels []*model.MovementPatternModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND observed_at >= ?", userID, time.Now().Add(-movementPatternLookback)).
		Order("observed_at DESC").
		Limit(movementPatternLimit).
		Find(&patternModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find movement patterns")
	}

	patterns := make([]*entity.MovementPattern, 0, len(patternModels))
	for _, patternM := range patternModels {
		patterns = append(patterns, &entity.MovementPattern{
			CentroidLatitude:    patternM.CentroidLatitude,
			CentroidLongitude:   patternM.CentroidLongitude,
			TypicalRadiusMeters: patternM.TypicalRadiusMeters,
		})
	}

	return patterns, nil
}
