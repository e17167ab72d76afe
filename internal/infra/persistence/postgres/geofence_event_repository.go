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

// geofenceEventRepository implements the repository.GeofenceEventRepository interface.
type geofenceEventRepository struct {
	db *gorm.DB
}

// NewGeofenceEventRepository is the constructor for geofenceEventRepository.
func NewGeofenceEventRepository(db *gorm.DB) repository.GeofenceEventRepository {
	return &geofenceEventRepository{
		db: db,
	}
}

// CreateEvent persists a new geofence event.
func (repo *geofenceEventRepository) CreateEvent(ctx context.Context, event *entity.GeofenceEvent) error {
	eventM := fromEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrGeofenceNotFound.WrapMessage("event references an unknown geofence")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create geofence event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt

	return nil
}

// FindLastTransition returns the newest ENTRY or EXIT of the pair, or nil.
func (repo *geofenceEventRepository) FindLastTransition(ctx context.Context, userID, geofenceID uuid.UUID) (*entity.GeofenceEvent, error) {
	var eventM model.GeofenceEventModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND geofence_id = ? AND type IN ?", userID, geofenceID,
			[]string{string(entity.GeofenceEventEntry), string(entity.GeofenceEventExit)}).
		Order("created_at DESC").
		First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find last geofence transition")
	}

	return toEventDomain(&eventM), nil
}

// ExistsEventSince reports whether an event of eventType was written for the pair at or after since.
func (repo *geofenceEventRepository) ExistsEventSince(
	ctx context.Context,
	userID, geofenceID uuid.UUID,
	eventType entity.GeofenceEventType,
	since time.Time,
) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.GeofenceEventModel{}).
		Where("user_id = ? AND geofence_id = ? AND type = ? AND created_at >= ?", userID, geofenceID, string(eventType), since).
		Limit(1).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check geofence events")
	}

	return count > 0, nil
}

// MarkNotificationSent stores the guardians reached for an event.
func (repo *geofenceEventRepository) MarkNotificationSent(ctx context.Context, eventID uuid.UUID, guardianIDs []uuid.UUID) error {
	if guardianIDs == nil {
		guardianIDs = []uuid.UUID{}
	}

	result := repo.db.WithContext(ctx).
		Model(&model.GeofenceEventModel{ID: eventID}).
		Select("notification_sent", "notified_guardian_ids").
		Updates(&model.GeofenceEventModel{
			NotificationSent:    len(guardianIDs) > 0,
			NotifiedGuardianIDs: guardianIDs,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark event notification")
	}

	if result.RowsAffected == 0 {
		return errors.Wrapf(domainerrors.ErrNotFound, "geofence event %s", eventID)
	}

	return nil
}

// FindEventsByUser lists recent events of a user, newest first.
func (repo *geofenceEventRepository) FindEventsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.GeofenceEvent, error) {
	var eventModels []*model.GeofenceEventModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find geofence events by user")
	}

	events := make([]*entity.GeofenceEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toEventDomain(eventM))
	}

	return events, nil
}

// --- Mapper Functions ---

func toEventDomain(data *model.GeofenceEventModel) *entity.GeofenceEvent {
	if data == nil {
		return nil
	}

	return &entity.GeofenceEvent{
		ID:                  data.ID,
		UserID:              data.UserID,
		GeofenceID:          data.GeofenceID,
		Type:                entity.GeofenceEventType(data.Type),
		RiskLevel:           entity.RiskLevel(data.RiskLevel),
		Latitude:            data.Latitude,
		Longitude:           data.Longitude,
		Accuracy:            data.Accuracy,
		DurationSeconds:     data.DurationSeconds,
		Notes:               data.Notes,
		NotificationSent:    data.NotificationSent,
		NotifiedGuardianIDs: data.NotifiedGuardianIDs,
		CreatedAt:           data.CreatedAt,
	}
}

func fromEventDomain(data *entity.GeofenceEvent) *model.GeofenceEventModel {
	if data == nil {
		return nil
	}

	return &model.GeofenceEventModel{
		ID:                  data.ID,
		UserID:              data.UserID,
		GeofenceID:          data.GeofenceID,
		Type:                string(data.Type),
		RiskLevel:           string(data.RiskLevel),
		Latitude:            data.Latitude,
		Longitude:           data.Longitude,
		Accuracy:            data.Accuracy,
		DurationSeconds:     data.DurationSeconds,
		Notes:               data.Notes,
		NotificationSent:    data.NotificationSent,
		NotifiedGuardianIDs: data.NotifiedGuardianIDs,
		CreatedAt:           data.CreatedAt,
	}
}
