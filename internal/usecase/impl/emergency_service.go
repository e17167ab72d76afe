package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "carewatch/internal/delivery/context"
	"carewatch/internal/domain/entity"
	domainerrors "carewatch/internal/domain/errors"
	"carewatch/internal/domain/repository"
	"carewatch/internal/domain/risk"
	"carewatch/internal/domain/service"
	"carewatch/internal/usecase"
	"carewatch/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultEmergencyListLimit = 50

type emergencyService struct {
	users       repository.UserDirectory
	emergencies repository.EmergencyRepository
	escalation  usecase.EscalationUsecase
	metrics     service.MetricsRecorder
	locker      *UserLocker
	logger      *slog.Logger
	now         nowFunc
}

// EmergencyServiceParams holds dependencies for the emergency use cases, injected by Fx.
type EmergencyServiceParams struct {
	fx.In

	Logger      *slog.Logger
	Users       repository.UserDirectory
	Emergencies repository.EmergencyRepository
	Escalation  usecase.EscalationUsecase
	Metrics     service.MetricsRecorder
	Locker      *UserLocker
}

// NewEmergencyService creates the emergency use cases.
func NewEmergencyService(params EmergencyServiceParams) usecase.EmergencyUsecase {
	return newEmergencyService(params)
}

func newEmergencyService(params EmergencyServiceParams) *emergencyService {
	return &emergencyService{
		users:       params.Users,
		emergencies: params.Emergencies,
		escalation:  params.Escalation,
		metrics:     params.Metrics,
		locker:      params.Locker,
		logger:      params.Logger,
		now:         systemClock,
	}
}

func (srv *emergencyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// TriggerManualSOS raises a CRITICAL incident on behalf of the user.
func (srv *emergencyService) TriggerManualSOS(ctx context.Context, input *usecase.TriggerEmergencyInput) (*entity.Emergency, error) {
	return srv.trigger(ctx, input, entity.EmergencyTypeManualSOS, entity.EmergencyStatusActive, entity.RiskLevelCritical, entity.TriggeredByUser, nil)
}

// TriggerPanicButton raises a CRITICAL incident that starts in TRIGGERED.
func (srv *emergencyService) TriggerPanicButton(ctx context.Context, input *usecase.TriggerEmergencyInput) (*entity.Emergency, error) {
	return srv.trigger(ctx, input, entity.EmergencyTypePanicButton, entity.EmergencyStatusTriggered, entity.RiskLevelCritical, entity.TriggeredByUser, nil)
}

// TriggerFallDetection raises an incident whose severity is fixed from the detector confidence.
func (srv *emergencyService) TriggerFallDetection(ctx context.Context, input *usecase.TriggerEmergencyInput, confidence float64) (*entity.Emergency, error) {
	if confidence < 0 || confidence > 100 {
		return nil, errors.Wrapf(domainerrors.ErrInvalidConfidence, "got %f", confidence)
	}

	severity := risk.SeverityFromConfidence(confidence)

	return srv.trigger(ctx, input, entity.EmergencyTypeFallDetected, entity.EmergencyStatusActive, severity, entity.TriggeredByAIDetection, &confidence)
}

func (srv *emergencyService) trigger(
	ctx context.Context,
	input *usecase.TriggerEmergencyInput,
	emergencyType entity.EmergencyType,
	status entity.EmergencyStatus,
	severity entity.RiskLevel,
	source entity.TriggerSource,
	confidence *float64,
) (*entity.Emergency, error) {
	if input == nil || input.UserID == uuid.Nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "user id is required")
	}
	if !entity.ValidCoordinates(input.Latitude, input.Longitude) {
		return nil, errors.Wrapf(domainerrors.ErrInvalidCoordinates, "lat=%f lon=%f", input.Latitude, input.Longitude)
	}

	user, err := srv.users.ResolveUser(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to resolve user")
	}
	if !user.IsActive {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "user is not active")
	}

	now := srv.now()
	emergency := &entity.Emergency{
		ID:                  uuid.New(),
		UserID:              input.UserID,
		Type:                emergencyType,
		Status:              status,
		Severity:            severity,
		TriggeredBy:         source,
		Latitude:            input.Latitude,
		Longitude:           input.Longitude,
		Confidence:          confidence,
		Notes:               input.Notes,
		NotifiedGuardianIDs: []uuid.UUID{},
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	unlock := srv.locker.Lock(input.UserID)
	err = srv.emergencies.CreateEmergency(ctx, emergency)
	unlock()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create emergency")
	}
	srv.metrics.IncEmergency(string(emergencyType))

	srv.log(ctx).Warn("Emergency triggered",
		slog.String("emergency_id", emergency.ID.String()),
		slog.String("user_id", input.UserID.String()),
		slog.String("type", string(emergencyType)),
		slog.String("severity", severity.String()),
	)

	return srv.notify(ctx, emergency)
}

// NotifyGuardians re-runs the cascade for an existing incident.
func (srv *emergencyService) NotifyGuardians(ctx context.Context, emergencyID uuid.UUID) (*entity.Emergency, error) {
	emergency, err := srv.findEmergency(ctx, emergencyID)
	if err != nil {
		return nil, err
	}

	return srv.notify(ctx, emergency)
}

// notify runs the cascade outside the user lock, then records the outcome under it.
func (srv *emergencyService) notify(ctx context.Context, emergency *entity.Emergency) (*entity.Emergency, error) {
	emergencyID := emergency.ID
	alert := &entity.Alert{
		UserID:      emergency.UserID,
		Kind:        entity.AlertKindEmergency,
		Severity:    emergency.Severity,
		Title:       emergencyTitle(emergency.Type),
		Body:        fmt.Sprintf("%s at %s. Please check on them now.", emergencyTitle(emergency.Type), util.FormatCoordinates(emergency.Latitude, emergency.Longitude)),
		Latitude:    emergency.Latitude,
		Longitude:   emergency.Longitude,
		EmergencyID: &emergencyID,
		RaisedAt:    emergency.CreatedAt,
	}

	result, err := srv.escalation.Notify(ctx, alert)
	if err != nil {
		srv.log(ctx).Error("Emergency cascade failed", slog.String("emergency_id", emergencyID.String()), slog.Any("error", err))
		result = &entity.CascadeResult{NotifiedGuardianIDs: []uuid.UUID{}}
	}

	unlock := srv.locker.Lock(emergency.UserID)
	defer unlock()

	current, err := srv.findEmergency(ctx, emergencyID)
	if err != nil {
		return nil, err
	}
	current.MarkNotified(result.NotifiedGuardianIDs, srv.now())
	if err := srv.emergencies.UpdateEmergency(ctx, current); err != nil {
		return nil, errors.Wrap(err, "failed to record emergency notification")
	}

	return current, nil
}

// Resolve closes the incident. Resolving twice returns the stored record unchanged.
func (srv *emergencyService) Resolve(ctx context.Context, emergencyID uuid.UUID, resolvedBy *uuid.UUID, notes string) (*entity.Emergency, error) {
	return srv.mutate(ctx, emergencyID, func(emergency *entity.Emergency) error {
		return emergency.Resolve(resolvedBy, notes, srv.now())
	})
}

// Cancel aborts a non-terminal incident.
func (srv *emergencyService) Cancel(ctx context.Context, emergencyID uuid.UUID, cancelledBy *uuid.UUID, reason string) (*entity.Emergency, error) {
	return srv.mutate(ctx, emergencyID, func(emergency *entity.Emergency) error {
		return emergency.Cancel(cancelledBy, reason, srv.now())
	})
}

func (srv *emergencyService) mutate(ctx context.Context, emergencyID uuid.UUID, apply func(*entity.Emergency) error) (*entity.Emergency, error) {
	emergency, err := srv.findEmergency(ctx, emergencyID)
	if err != nil {
		return nil, err
	}

	unlock := srv.locker.Lock(emergency.UserID)
	defer unlock()

	emergency, err = srv.findEmergency(ctx, emergencyID)
	if err != nil {
		return nil, err
	}

	previous := emergency.Status
	if err := apply(emergency); err != nil {
		if errors.Is(err, entity.ErrInvalidEmergencyTransition) {
			return nil, errors.Wrapf(domainerrors.ErrInvalidTransition, "emergency is %s", previous)
		}

		return nil, err
	}

	if previous == emergency.Status {
		return emergency, nil
	}

	if err := srv.emergencies.UpdateEmergency(ctx, emergency); err != nil {
		return nil, errors.Wrap(err, "failed to update emergency")
	}

	srv.log(ctx).Info("Emergency status changed",
		slog.String("emergency_id", emergency.ID.String()),
		slog.String("from", string(previous)),
		slog.String("to", string(emergency.Status)),
	)

	return emergency, nil
}

// GetEmergency returns one incident.
func (srv *emergencyService) GetEmergency(ctx context.Context, emergencyID uuid.UUID) (*entity.Emergency, error) {
	return srv.findEmergency(ctx, emergencyID)
}

// ListUserEmergencies returns the latest incidents of a user.
func (srv *emergencyService) ListUserEmergencies(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Emergency, error) {
	if limit <= 0 {
		limit = defaultEmergencyListLimit
	}

	emergencies, err := srv.emergencies.FindEmergenciesByUser(ctx, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list emergencies")
	}

	return emergencies, nil
}

func (srv *emergencyService) findEmergency(ctx context.Context, emergencyID uuid.UUID) (*entity.Emergency, error) {
	emergency, err := srv.emergencies.FindEmergencyByID(ctx, emergencyID)
	if err != nil {
		if errors.Is(err, repository.ErrEmergencyNotFound) {
			return nil, errors.Wrap(domainerrors.ErrEmergencyNotFound, "emergency not found")
		}

		return nil, errors.Wrap(err, "failed to find emergency")
	}

	return emergency, nil
}

func emergencyTitle(emergencyType entity.EmergencyType) string {
	switch emergencyType {
	case entity.EmergencyTypeManualSOS:
		return "SOS requested"
	case entity.EmergencyTypePanicButton:
		return "Panic button pressed"
	case entity.EmergencyTypeFallDetected:
		return "Possible fall detected"
	case entity.EmergencyTypeDangerZoneEntry:
		return "Danger zone entered"
	default:
		return "Emergency"
	}
}
