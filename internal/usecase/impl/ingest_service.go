package impl

import (
	"context"
	"log/slog"
	"sync"
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
)

// Evaluation stages reported in logs and metrics.
const (
	stageWindow    = "window"
	stageGeofences = "geofences"
	stagePatterns  = "patterns"
	stageGeofence  = "geofence"
	stageDwell     = "dwell"
	stageWandering = "wandering"
	stageNavigate  = "navigation"
)

// ingestService is the per-sample entry point of the monitoring engine.
type ingestService struct {
	users        repository.UserDirectory
	patterns     repository.MovementPatternProvider
	locations    repository.LocationRepository
	geofences    repository.GeofenceRepository
	tracker      *geofenceTracker
	dwell        *dwellDetector
	wandering    usecase.WanderingUsecase
	dispatcher   usecase.AlertDispatcher
	navigation   service.NavigationService
	metrics      service.MetricsRecorder
	locker       *UserLocker
	sampleWindow time.Duration
	windowZone   *time.Location
	logger       *slog.Logger
	now          nowFunc
}

// IngestServiceParams holds dependencies for the ingest pipeline, injected by Fx.
type IngestServiceParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	TxManager  repository.TransactionManager
	Users      repository.UserDirectory
	Patterns   repository.MovementPatternProvider
	Locations  repository.LocationRepository
	Geofences  repository.GeofenceRepository
	Events     repository.GeofenceEventRepository
	Wandering  usecase.WanderingUsecase
	Dispatcher usecase.AlertDispatcher
	Navigation service.NavigationService
	Metrics    service.MetricsRecorder
	Locker     *UserLocker
}

// NewIngestService creates the ingest pipeline.
func NewIngestService(params IngestServiceParams) usecase.IngestUsecase {
	return newIngestService(params)
}

func newIngestService(params IngestServiceParams) *ingestService {
	safety := config.DefaultSafetyConfig()
	if params.Config != nil && params.Config.Safety != nil {
		safety = params.Config.Safety
	}

	windowZone, err := safety.Location()
	if err != nil {
		windowZone = time.UTC
	}

	return &ingestService{
		users:        params.Users,
		patterns:     params.Patterns,
		locations:    params.Locations,
		geofences:    params.Geofences,
		tracker:      newGeofenceTracker(params.TxManager, params.Events, params.Metrics, safety),
		dwell:        newDwellDetector(params.Events, params.Metrics, safety),
		wandering:    params.Wandering,
		dispatcher:   params.Dispatcher,
		navigation:   params.Navigation,
		metrics:      params.Metrics,
		locker:       params.Locker,
		sampleWindow: safety.SampleWindow,
		windowZone:   windowZone,
		logger:       params.Logger,
		now:          systemClock,
	}
}

func (srv *ingestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Ingest stores the sample and runs every evaluation for the user. Only validation and
// sample persistence failures reach the caller.
func (srv *ingestService) Ingest(ctx context.Context, input *usecase.IngestInput) (*usecase.IngestResult, error) {
	started := time.Now()
	defer func() {
		srv.metrics.ObserveIngest(time.Since(started))
	}()

	if err := validateIngestInput(input); err != nil {
		return nil, err
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

	capturedAt := srv.now()
	if input.CapturedAt != nil && !input.CapturedAt.IsZero() {
		capturedAt = input.CapturedAt.UTC()
	}

	sample := &entity.LocationSample{
		ID:         uuid.New(),
		UserID:     input.UserID,
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
		Accuracy:   input.Accuracy,
		CapturedAt: capturedAt,
	}
	if err := srv.locations.SaveSample(ctx, sample); err != nil {
		return nil, errors.Wrap(err, "failed to save location sample")
	}

	logger := srv.log(ctx).With(slog.String("user_id", input.UserID.String()))
	window, geofences, patterns := srv.loadContext(ctx, logger, sample)

	result := &usecase.IngestResult{Sample: sample, Events: []*entity.GeofenceEvent{}}
	tracked, wandering := srv.evaluate(ctx, logger, sample, window, geofences, patterns)

	result.Events = append(result.Events, tracked.Events...)
	result.Emergency = tracked.Emergency

	alerts := tracked.Alerts
	if wandering != nil {
		result.Wandering = wandering.Detection
		if wandering.Alert != nil {
			alerts = append(alerts, wandering.Alert)
		}
	}

	// The user lock is released; everything below talks to the network.
	for _, alert := range alerts {
		if srv.dispatcher.Submit(ctx, alert) {
			result.AlertsQueued++
		}
	}

	if wandering != nil && wandering.StartNavigation {
		if err := srv.navigation.StartHomeNavigation(ctx, input.UserID, sample.Point()); err != nil {
			srv.evaluationFailed(logger, stageNavigate, err)
		}
	}

	logger.Debug("Location sample processed",
		slog.Int("geofences", len(geofences)),
		slog.Int("events", len(result.Events)),
		slog.Int("alerts_queued", result.AlertsQueued),
	)

	return result, nil
}

// loadContext fetches the trailing window, the geofences active at capture time and the
// movement baseline. Failures degrade evaluation instead of failing the sample.
func (srv *ingestService) loadContext(ctx context.Context, logger *slog.Logger, sample *entity.LocationSample) (
	window []*entity.LocationSample,
	geofences []*entity.Geofence,
	patterns []*entity.MovementPattern,
) {
	recent, err := srv.locations.FindSamplesSince(ctx, sample.UserID, sample.CapturedAt.Add(-srv.sampleWindow))
	if err != nil {
		srv.evaluationFailed(logger, stageWindow, err)
		recent = nil
	}
	window = make([]*entity.LocationSample, 0, len(recent)+1)
	hasCurrent := false
	for _, s := range recent {
		if s.CapturedAt.After(sample.CapturedAt) {
			continue
		}
		hasCurrent = hasCurrent || s.ID == sample.ID
		window = append(window, s)
	}
	if !hasCurrent {
		window = append(window, sample)
	}

	all, err := srv.geofences.FindActiveGeofencesByUser(ctx, sample.UserID)
	if err != nil {
		srv.evaluationFailed(logger, stageGeofences, err)
	}
	for _, geofence := range all {
		if geofence.IsActiveAt(sample.CapturedAt.In(srv.windowZone)) {
			geofences = append(geofences, geofence)
		}
	}

	patterns, err = srv.patterns.GetRecentMovementPatterns(ctx, sample.UserID)
	if err != nil {
		srv.evaluationFailed(logger, stagePatterns, err)
		patterns = nil
	}

	return window, geofences, patterns
}

// evaluate runs geofence tracking and wandering detection concurrently under the user lock.
func (srv *ingestService) evaluate(
	ctx context.Context,
	logger *slog.Logger,
	sample *entity.LocationSample,
	window []*entity.LocationSample,
	geofences []*entity.Geofence,
	patterns []*entity.MovementPattern,
) (*trackOutcome, *usecase.WanderingOutcome) {
	unlock := srv.locker.Lock(sample.UserID)
	defer unlock()

	tracked := &trackOutcome{}
	var wandering *usecase.WanderingOutcome

	var wg sync.WaitGroup
	wg.Go(func() {
		for _, geofence := range geofences {
			outcome, err := srv.tracker.Track(ctx, sample, geofence)
			if err != nil {
				srv.evaluationFailed(logger.With(slog.String("geofence_id", geofence.ID.String())), stageGeofence, err)
			}
			tracked.merge(outcome)
		}

		dwell, err := srv.dwell.Detect(ctx, sample, window, geofences)
		if err != nil {
			srv.evaluationFailed(logger, stageDwell, err)
		}
		if dwell != nil {
			tracked.Events = append(tracked.Events, dwell)
		}
	})
	wg.Go(func() {
		outcome, err := srv.wandering.Evaluate(ctx, &usecase.WanderingEvaluation{
			UserID:   sample.UserID,
			Point:    sample.Point(),
			Window:   window,
			Patterns: patterns,
			Now:      sample.CapturedAt,
		})
		if err != nil {
			srv.evaluationFailed(logger, stageWandering, err)

			return
		}
		wandering = outcome
	})
	wg.Wait()

	return tracked, wandering
}

func (srv *ingestService) evaluationFailed(logger *slog.Logger, stage string, err error) {
	logger.Error("Evaluation step failed", slog.String("stage", stage), slog.Any("error", err))
	srv.metrics.IncEvaluationError(stage)
}

func validateIngestInput(input *usecase.IngestInput) error {
	if input == nil || input.UserID == uuid.Nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "user id is required")
	}
	if !entity.ValidCoordinates(input.Latitude, input.Longitude) {
		return errors.Wrapf(domainerrors.ErrInvalidCoordinates, "lat=%f lon=%f", input.Latitude, input.Longitude)
	}
	if input.Accuracy != nil && *input.Accuracy < 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "accuracy must not be negative")
	}

	return nil
}
