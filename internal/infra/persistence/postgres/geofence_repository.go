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

// geofenceRepository implements the repository.GeofenceRepository interface.
type geofenceRepository struct {
	db *gorm.DB
}

// NewGeofenceRepository is the constructor for geofenceRepository.
func NewGeofenceRepository(db *gorm.DB) repository.GeofenceRepository {
	return &geofenceRepository{
		db: db,
	}
}

// CreateGeofence persists a new geofence.
func (repo *geofenceRepository) CreateGeofence(ctx context.Context, geofence *entity.Geofence) error {
	geofenceM := fromGeofenceDomain(geofence)

	if err := repo.db.WithContext(ctx).Create(geofenceM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidGeofence.WrapMessage("geofence violates a table constraint")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidGeofence.WrapMessage("missing required geofence information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create geofence")
	}

	geofence.ID = geofenceM.ID
	geofence.CreatedAt = geofenceM.CreatedAt
	geofence.UpdatedAt = geofenceM.UpdatedAt

	return nil
}

// FindGeofenceByID retrieves a geofence by its unique ID.
func (repo *geofenceRepository) FindGeofenceByID(ctx context.Context, id uuid.UUID) (*entity.Geofence, error) {
	var geofenceM model.GeofenceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&geofenceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGeofenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find geofence by ID")
	}

	return toGeofenceDomain(&geofenceM), nil
}

// FindGeofencesByUser lists every geofence of a user, highest priority first.
func (repo *geofenceRepository) FindGeofencesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Geofence, error) {
	return repo.findGeofences(ctx, repo.db.WithContext(ctx).Where("user_id = ?", userID))
}

// FindActiveGeofencesByUser lists the geofences whose active flag is set.
func (repo *geofenceRepository) FindActiveGeofencesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Geofence, error) {
	return repo.findGeofences(ctx, repo.db.WithContext(ctx).Where("user_id = ? AND is_active = ?", userID, true))
}

func (repo *geofenceRepository) findGeofences(_ context.Context, query *gorm.DB) ([]*entity.Geofence, error) {
	var geofenceModels []*model.GeofenceModel

	if err := query.
		Order("priority DESC").
		Order("created_at ASC").
		Find(&geofenceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find geofences")
	}

	geofences := make([]*entity.Geofence, 0, len(geofenceModels))
	for _, geofenceM := range geofenceModels {
		geofences = append(geofences, toGeofenceDomain(geofenceM))
	}

	return geofences, nil
}

// UpdateGeofence persists the mutable geofence fields.
func (repo *geofenceRepository) UpdateGeofence(ctx context.Context, geofence *entity.Geofence) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GeofenceModel{}).
		Where("id = ?", geofence.ID).
		Updates(map[string]any{
			"is_active":      geofence.IsActive,
			"priority":       geofence.Priority,
			"alert_on_entry": geofence.AlertOnEntry,
			"alert_on_exit":  geofence.AlertOnExit,
			"updated_at":     time.Now(),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update geofence")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGeofenceNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toGeofenceDomain(data *model.GeofenceModel) *entity.Geofence {
	if data == nil {
		return nil
	}

	var days []time.Weekday
	for _, day := range data.ActiveDays {
		days = append(days, time.Weekday(day))
	}

	return &entity.Geofence{
		ID:              data.ID,
		UserID:          data.UserID,
		Name:            data.Name,
		CenterLatitude:  data.CenterLatitude,
		CenterLongitude: data.CenterLongitude,
		RadiusMeters:    data.RadiusMeters,
		Type:            entity.GeofenceType(data.Type),
		IsActive:        data.IsActive,
		AlertOnEntry:    data.AlertOnEntry,
		AlertOnExit:     data.AlertOnExit,
		ActiveWindow: entity.ActiveWindow{
			StartTime: data.StartTime,
			EndTime:   data.EndTime,
			Days:      days,
		},
		Priority:  data.Priority,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromGeofenceDomain(data *entity.Geofence) *model.GeofenceModel {
	if data == nil {
		return nil
	}

	days := make([]int, 0, len(data.ActiveWindow.Days))
	for _, day := range data.ActiveWindow.Days {
		days = append(days, int(day))
	}

	return &model.GeofenceModel{
		ID:              data.ID,
		UserID:          data.UserID,
		Name:            data.Name,
		CenterLatitude:  data.CenterLatitude,
		CenterLongitude: data.CenterLongitude,
		RadiusMeters:    data.RadiusMeters,
		Type:            string(data.Type),
		IsActive:        data.IsActive,
		AlertOnEntry:    data.AlertOnEntry,
		AlertOnExit:     data.AlertOnExit,
		StartTime:       data.ActiveWindow.StartTime,
		EndTime:         data.ActiveWindow.EndTime,
		ActiveDays:      days,
		Priority:        data.Priority,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
