package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"carewatch/config"
	deliverycontext "carewatch/internal/delivery/context"
	"carewatch/internal/domain/entity"
	domainerrors "carewatch/internal/domain/errors"
	"carewatch/internal/domain/repository"
	"carewatch/internal/domain/service"
	"carewatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	defaultChannelTimeout = 3 * time.Second
	defaultMaxConcurrency = 16
)

// escalationService implements the guardian notification cascade.
type escalationService struct {
	txManager      repository.TransactionManager
	guardians      repository.GuardianDirectory
	deliveryLogs   repository.DeliveryLogRepository
	push           service.NotificationService
	sms            service.SMSService
	email          service.EmailService
	publisher      service.EventPublisher
	metrics        service.MetricsRecorder
	locker         *UserLocker
	channelTimeout time.Duration
	maxConcurrency int
	logger         *slog.Logger
	now            nowFunc
}

// EscalationServiceParams holds dependencies for the cascade, injected by Fx.
// Channel senders are optional; a nil sender disables its channel.
type EscalationServiceParams struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	TxManager    repository.TransactionManager
	Guardians    repository.GuardianDirectory
	DeliveryLogs repository.DeliveryLogRepository
	Push         service.NotificationService `optional:"true"`
	SMS          service.SMSService          `optional:"true"`
	Email        service.EmailService        `optional:"true"`
	Publisher    service.EventPublisher
	Metrics      service.MetricsRecorder
	Locker       *UserLocker
}

// NewEscalationService creates the notification cascade.
func NewEscalationService(params EscalationServiceParams) usecase.EscalationUsecase {
	return newEscalationService(params)
}

func newEscalationService(params EscalationServiceParams) *escalationService {
	channelTimeout := defaultChannelTimeout
	maxConcurrency := defaultMaxConcurrency
	if params.Config != nil && params.Config.Notification != nil {
		if params.Config.Notification.ChannelTimeout > 0 {
			channelTimeout = params.Config.Notification.ChannelTimeout
		}
		if params.Config.Notification.MaxConcurrency > 0 {
			maxConcurrency = params.Config.Notification.MaxConcurrency
		}
	}

	return &escalationService{
		txManager:      params.TxManager,
		guardians:      params.Guardians,
		deliveryLogs:   params.DeliveryLogs,
		push:           params.Push,
		sms:            params.SMS,
		email:          params.Email,
		publisher:      params.Publisher,
		metrics:        params.Metrics,
		locker:         params.Locker,
		channelTimeout: channelTimeout,
		maxConcurrency: maxConcurrency,
		logger:         params.Logger,
		now:            systemClock,
	}
}

func (srv *escalationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// channelTask is one (guardian, channel) delivery attempt.
type channelTask struct {
	guardian *entity.Guardian
	channel  entity.Channel
	target   string
	err      error
}

// Notify fans the alert out to every eligible guardian. Each channel attempt is independent:
// a failure or timeout on one never affects another.
func (srv *escalationService) Notify(ctx context.Context, alert *entity.Alert) (*entity.CascadeResult, error) {
	guardians, err := srv.guardians.ListActiveGuardians(ctx, alert.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list guardians")
	}

	result := &entity.CascadeResult{NotifiedGuardianIDs: []uuid.UUID{}}
	tasks := make([]*channelTask, 0, len(guardians)*3)
	for _, guardian := range guardians {
		if !guardian.CanReceiveAlerts {
			continue
		}
		result.GuardiansConsidered++

		planned := srv.planChannels(guardian, alert)
		if len(planned) == 0 {
			result.GuardiansSkipped++
			srv.log(ctx).Debug("Guardian has no usable channel",
				slog.String("guardian_id", guardian.ID.String()),
			)

			continue
		}
		tasks = append(tasks, planned...)
	}

	var group errgroup.Group
	group.SetLimit(srv.maxConcurrency)
	for _, task := range tasks {
		group.Go(func() error {
			task.err = srv.send(ctx, task, alert)

			return nil
		})
	}
	_ = group.Wait()

	succeeded := make(map[uuid.UUID]bool, len(tasks))
	logs := make([]*entity.DeliveryLog, 0, len(tasks))
	attemptedAt := srv.now()
	for _, task := range tasks {
		entry := &entity.DeliveryLog{
			ID:          uuid.New(),
			UserID:      alert.UserID,
			GuardianID:  task.guardian.ID,
			AlertKind:   alert.Kind,
			Channel:     task.channel,
			Status:      entity.DeliveryStatusSent,
			EventID:     alert.EventID,
			EmergencyID: alert.EmergencyID,
			AttemptedAt: attemptedAt,
		}

		if task.err != nil {
			deliveryErr := domainerrors.NewChannelDeliveryError(string(task.channel), task.guardian.ID.String(), task.err)
			srv.log(ctx).Warn("Channel delivery failed", slog.Any("error", deliveryErr))
			entry.Status = entity.DeliveryStatusFailed
			entry.ErrorMessage = task.err.Error()
			result.AttemptsFailed++
		} else {
			succeeded[task.guardian.ID] = true
			result.AttemptsSent++
		}
		srv.metrics.IncChannelAttempt(string(task.channel), string(entry.Status))
		logs = append(logs, entry)
	}

	// Keep guardian order stable in the success list.
	for _, guardian := range guardians {
		if succeeded[guardian.ID] {
			result.NotifiedGuardianIDs = append(result.NotifiedGuardianIDs, guardian.ID)
			delete(succeeded, guardian.ID)
		}
	}

	if len(logs) > 0 {
		if err := srv.deliveryLogs.AppendLogs(ctx, logs); err != nil {
			srv.log(ctx).Error("Failed to append delivery logs", slog.Any("error", err))
		}
	}

	srv.publishDispatched(ctx, alert, result)

	srv.log(ctx).Info("Cascade completed",
		slog.String("user_id", alert.UserID.String()),
		slog.String("kind", string(alert.Kind)),
		slog.String("severity", alert.Severity.String()),
		slog.Int("guardians_notified", len(result.NotifiedGuardianIDs)),
		slog.Int("attempts_sent", result.AttemptsSent),
		slog.Int("attempts_failed", result.AttemptsFailed),
	)

	return result, nil
}

// NotifyAndRecord runs the cascade and stores its outcome on the originating records,
// whatever the number of guardians reached. A failed guardian lookup counts as zero reached.
func (srv *escalationService) NotifyAndRecord(ctx context.Context, alert *entity.Alert) (*entity.CascadeResult, error) {
	result, err := srv.Notify(ctx, alert)
	if err != nil {
		srv.log(ctx).Error("Cascade aborted before any delivery", slog.Any("error", err))
		result = &entity.CascadeResult{NotifiedGuardianIDs: []uuid.UUID{}}
	}

	if alert.EventID == nil && alert.EmergencyID == nil {
		return result, nil
	}

	unlock := srv.locker.Lock(alert.UserID)
	defer unlock()

	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if alert.EventID != nil {
			if err := factory.NewGeofenceEventRepository().MarkNotificationSent(ctx, *alert.EventID, result.NotifiedGuardianIDs); err != nil {
				return errors.Wrap(err, "failed to mark event notified")
			}
		}

		if alert.EmergencyID != nil {
			emergencyRepo := factory.NewEmergencyRepository()
			emergency, err := emergencyRepo.FindEmergencyByID(ctx, *alert.EmergencyID)
			if err != nil {
				return errors.Wrap(err, "failed to load emergency")
			}
			emergency.MarkNotified(result.NotifiedGuardianIDs, srv.now())
			if err := emergencyRepo.UpdateEmergency(ctx, emergency); err != nil {
				return errors.Wrap(err, "failed to mark emergency notified")
			}
		}

		return nil
	})
	if err != nil {
		return result, errors.Wrap(err, "failed to record cascade result")
	}

	return result, nil
}

// planChannels selects the channels to try for a guardian. SMS is reserved for emergencies
// and alerts of MEDIUM severity or above.
func (srv *escalationService) planChannels(guardian *entity.Guardian, alert *entity.Alert) []*channelTask {
	var tasks []*channelTask

	if srv.push != nil && hasValue(guardian.DeviceToken) {
		tasks = append(tasks, &channelTask{guardian: guardian, channel: entity.ChannelPush, target: *guardian.DeviceToken})
	}

	smsWorthy := alert.Kind == entity.AlertKindEmergency || alert.Severity.AtLeast(entity.RiskLevelMedium)
	if srv.sms != nil && smsWorthy && hasValue(guardian.Phone) {
		tasks = append(tasks, &channelTask{guardian: guardian, channel: entity.ChannelSMS, target: *guardian.Phone})
	}

	if srv.email != nil && hasValue(guardian.Email) {
		tasks = append(tasks, &channelTask{guardian: guardian, channel: entity.ChannelEmail, target: *guardian.Email})
	}

	return tasks
}

// send performs one channel call under its own timeout. A panicking sender fails only its
// own attempt.
func (srv *escalationService) send(ctx context.Context, task *channelTask, alert *entity.Alert) (err error) {
	callCtx, cancel := context.WithTimeout(ctx, srv.channelTimeout)
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("%s sender panicked: %v", task.channel, r)
		}
	}()

	switch task.channel {
	case entity.ChannelPush:
		return srv.push.SendSingleNotification(callCtx, task.target, alert.Title, alert.Body, alertData(alert))
	case entity.ChannelSMS:
		return srv.sms.SendSMS(callCtx, task.target, alert.Title+": "+alert.Body)
	case entity.ChannelEmail:
		return srv.email.SendEmail(callCtx, task.target, alert.Title, emailBody(alert))
	default:
		return errors.Errorf("unsupported channel %s", task.channel)
	}
}

func (srv *escalationService) publishDispatched(ctx context.Context, alert *entity.Alert, result *entity.CascadeResult) {
	payload, err := json.Marshal(struct {
		Alert  *entity.Alert         `json:"alert"`
		Result *entity.CascadeResult `json:"result"`
	}{Alert: alert, Result: result})
	if err != nil {
		srv.log(ctx).Error("Failed to encode dispatch event", slog.Any("error", err))

		return
	}

	event := &service.SafetyEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       service.SafetyEventAlertDispatched,
		UserID:     alert.UserID.String(),
		OccurredAt: srv.now(),
		Payload:    payload,
	}
	if err := srv.publisher.PublishSafetyEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish dispatch event", slog.Any("error", err))
	}
}

func alertData(alert *entity.Alert) map[string]string {
	data := map[string]string{
		"kind":      string(alert.Kind),
		"severity":  alert.Severity.String(),
		"user_id":   alert.UserID.String(),
		"latitude":  fmt.Sprintf("%f", alert.Latitude),
		"longitude": fmt.Sprintf("%f", alert.Longitude),
	}
	if alert.EventID != nil {
		data["event_id"] = alert.EventID.String()
	}
	if alert.EmergencyID != nil {
		data["emergency_id"] = alert.EmergencyID.String()
	}
	if alert.WanderingID != nil {
		data["wandering_id"] = alert.WanderingID.String()
	}

	return data
}

func emailBody(alert *entity.Alert) string {
	return fmt.Sprintf("%s\n\nSeverity: %s\nLocation: %.6f, %.6f\nTime: %s\n",
		alert.Body, alert.Severity, alert.Latitude, alert.Longitude, alert.RaisedAt.Format(time.RFC3339))
}

func hasValue(s *string) bool {
	return s != nil && *s != ""
}
