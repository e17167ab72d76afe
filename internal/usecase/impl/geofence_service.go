package impl

import (
	"context"
	"log/slog"
	"strings"

	"carewatch/config"
	deliverycontext "carewatch/internal/delivery/context"
	"carewatch/internal/domain/entity"
	domainerrors "carewatch/internal/domain/errors"
	"carewatch/internal/domain/repository"
	"carewatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultEventListLimit = 100

type geofenceService struct {
	users     repository.UserDirectory
	geofences repository.GeofenceRepository
	events    repository.GeofenceEventRepository
	maxRadius float64
	logger    *slog.Logger
	now       nowFunc
}

// NewGeofenceService creates the geofence management use cases.
func NewGeofenceService(
	users repository.UserDirectory,
	geofences repository.GeofenceRepository,
	events repository.GeofenceEventRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.GeofenceUsecase {
	maxRadius := config.DefaultSafetyConfig().MaxGeofenceRadiusMeters
	if cfg != nil && cfg.Safety != nil && cfg.Safety.MaxGeofenceRadiusMeters > 0 {
		maxRadius = cfg.Safety.MaxGeofenceRadiusMeters
	}

	return &geofenceService{
		users:     users,
		geofences: geofences,
		events:    events,
		maxRadius: maxRadius,
		logger:    logger,
		now:       systemClock,
	}
}

func (srv *geofenceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateGeofence validates and stores a new active geofence.
func (srv *geofenceService) CreateGeofence(ctx context.Context, userID uuid.UUID, input *usecase.CreateGeofenceInput) (*entity.Geofence, error) {
	if err := srv.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	now := srv.now()
	geofence := &entity.Geofence{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            strings.TrimSpace(input.Name),
		CenterLatitude:  input.CenterLatitude,
		CenterLongitude: input.CenterLongitude,
		RadiusMeters:    input.RadiusMeters,
		Type:            input.Type,
		IsActive:        true,
		AlertOnEntry:    input.AlertOnEntry,
		AlertOnExit:     input.AlertOnExit,
		ActiveWindow:    input.ActiveWindow,
		Priority:        input.Priority,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if geofence.Name == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidGeofence, "name is required")
	}
	if err := geofence.Validate(srv.maxRadius); err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidGeofence, err.Error())
	}

	if err := srv.geofences.CreateGeofence(ctx, geofence); err != nil {
		return nil, errors.Wrap(err, "failed to create geofence")
	}

	srv.log(ctx).Info("Geofence created",
		slog.String("geofence_id", geofence.ID.String()),
		slog.String("user_id", userID.String()),
		slog.String("type", string(geofence.Type)),
	)

	return geofence, nil
}

// ListGeofences returns every geofence of a user, active or not.
func (srv *geofenceService) ListGeofences(ctx context.Context, userID uuid.UUID) ([]*entity.Geofence, error) {
	geofences, err := srv.geofences.FindGeofencesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list geofences")
	}

	return geofences, nil
}

// SetGeofenceActive toggles whether the geofence is evaluated.
func (srv *geofenceService) SetGeofenceActive(ctx context.Context, userID, geofenceID uuid.UUID, active bool) (*entity.Geofence, error) {
	return srv.update(ctx, userID, geofenceID, func(g *entity.Geofence) {
		g.IsActive = active
	})
}

// SetGeofencePriority changes the evaluation priority.
func (srv *geofenceService) SetGeofencePriority(ctx context.Context, userID, geofenceID uuid.UUID, priority int) (*entity.Geofence, error) {
	return srv.update(ctx, userID, geofenceID, func(g *entity.Geofence) {
		g.Priority = priority
	})
}

// ListEvents returns the latest geofence events of a user.
func (srv *geofenceService) ListEvents(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.GeofenceEvent, error) {
	if limit <= 0 {
		limit = defaultEventListLimit
	}

	events, err := srv.events.FindEventsByUser(ctx, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list geofence events")
	}

	return events, nil
}

func (srv *geofenceService) update(ctx context.Context, userID, geofenceID uuid.UUID, apply func(*entity.Geofence)) (*entity.Geofence, error) {
	geofence, err := srv.geofences.FindGeofenceByID(ctx, geofenceID)
	if err != nil {
		if errors.Is(err, repository.ErrGeofenceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrGeofenceNotFound, "geofence not found")
		}

		return nil, errors.Wrap(err, "failed to find geofence")
	}
	if geofence.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrGeofenceNotFound, "geofence does not belong to user")
	}

	apply(geofence)
	geofence.UpdatedAt = srv.now()

	if err := srv.geofences.UpdateGeofence(ctx, geofence); err != nil {
		return nil, errors.Wrap(err, "failed to update geofence")
	}

	return geofence, nil
}

func (srv *geofenceService) ensureUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := srv.users.ResolveUser(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return errors.Wrap(err, "failed to resolve user")
	}

	return nil
}
