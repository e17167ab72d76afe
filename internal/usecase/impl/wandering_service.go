package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"carewatch/config"
	deliverycontext "carewatch/internal/delivery/context"
	"carewatch/internal/domain/entity"
	domainerrors "carewatch/internal/domain/errors"
	"carewatch/internal/domain/geo"
	"carewatch/internal/domain/repository"
	"carewatch/internal/usecase"
	"carewatch/internal/util"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Loop heuristic limits: a walk of at least circularMinPathMeters that ends within
// circularMaxGapMeters of where the window started counts as circling.
const (
	circularMinPathMeters = 800.0
	circularMaxGapMeters  = 100.0
)

type wanderingService struct {
	wanderings       repository.WanderingRepository
	locker           *UserLocker
	minSamples       int
	deviationMeters  float64
	escalateAfter    time.Duration
	autoResolveAfter time.Duration
	circularEnabled  bool
	logger           *slog.Logger
	now              nowFunc
}

// WanderingServiceParams holds dependencies for the wandering detector, injected by Fx.
type WanderingServiceParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Wanderings repository.WanderingRepository
	Locker     *UserLocker
}

// NewWanderingService creates the wandering detector.
func NewWanderingService(params WanderingServiceParams) usecase.WanderingUsecase {
	return newWanderingService(params)
}

func newWanderingService(params WanderingServiceParams) *wanderingService {
	safety := config.DefaultSafetyConfig()
	if params.Config != nil && params.Config.Safety != nil {
		safety = params.Config.Safety
	}

	return &wanderingService{
		wanderings:       params.Wanderings,
		locker:           params.Locker,
		minSamples:       safety.WanderingMinSamples,
		deviationMeters:  safety.WanderingDeviationMeters,
		escalateAfter:    safety.WanderingEscalateAfter,
		autoResolveAfter: safety.WanderingAutoResolveAfter,
		circularEnabled:  safety.CircularMovementEnabled,
		logger:           params.Logger,
		now:              systemClock,
	}
}

func (srv *wanderingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Evaluate detects a new wandering episode or tracks the active one. The caller holds the user lock.
func (srv *wanderingService) Evaluate(ctx context.Context, input *usecase.WanderingEvaluation) (*usecase.WanderingOutcome, error) {
	active, err := srv.wanderings.FindActiveByUser(ctx, input.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load active wandering detection")
	}

	if active != nil && srv.autoResolveAfter > 0 && input.Now.Sub(active.DetectedAt) > srv.autoResolveAfter {
		if err := srv.expire(ctx, active, input.Now); err != nil {
			return nil, err
		}
		active = nil
	}

	if active != nil {
		return srv.track(ctx, active, input)
	}

	return srv.detect(ctx, input)
}

func (srv *wanderingService) track(ctx context.Context, active *entity.WanderingDetection, input *usecase.WanderingEvaluation) (*usecase.WanderingOutcome, error) {
	if err := active.Track(input.Point.Lat(), input.Point.Lon(), input.Now); err != nil {
		return nil, errors.Wrap(domainerrors.ErrStateConflict, err.Error())
	}

	outcome := &usecase.WanderingOutcome{Detection: active}
	if active.DurationMinutes > int(srv.escalateAfter/time.Minute) {
		if active.Escalate(input.Now) {
			srv.log(ctx).Warn("Wandering escalated",
				slog.String("user_id", input.UserID.String()),
				slog.Int("duration_minutes", active.DurationMinutes),
			)
			outcome.Alert = wanderingAlert(active, input.Now,
				"Wandering continues",
				fmt.Sprintf("Abnormal movement has continued for %s. Guided navigation home has been started.",
					util.FormatDuration(time.Duration(active.DurationMinutes)*time.Minute)))
		}
		outcome.StartNavigation = active.ClaimNavigation()
	}

	if err := srv.wanderings.UpdateDetection(ctx, active); err != nil {
		return nil, errors.Wrap(err, "failed to update wandering detection")
	}

	return outcome, nil
}

func (srv *wanderingService) detect(ctx context.Context, input *usecase.WanderingEvaluation) (*usecase.WanderingOutcome, error) {
	if len(input.Window) < srv.minSamples {
		return nil, nil
	}

	maxDeviation := maxPatternDeviation(input.Point, input.Patterns)
	deviating := maxDeviation > srv.deviationMeters
	circling := srv.circularEnabled && isCircularMovement(input.Window)
	if !deviating && !circling {
		return nil, nil
	}

	confidence := math.Min(1, maxDeviation/(2*srv.deviationMeters))
	if circling {
		confidence = math.Max(confidence, 0.5)
	}

	start := input.Window[0]
	detection := &entity.WanderingDetection{
		ID:               uuid.New(),
		UserID:           input.UserID,
		Status:           entity.WanderingStatusDetected,
		RiskLevel:        entity.RiskLevelMedium,
		StartLatitude:    start.Latitude,
		StartLongitude:   start.Longitude,
		CurrentLatitude:  input.Point.Lat(),
		CurrentLongitude: input.Point.Lon(),
		ConfidenceScore:  confidence,
		DetectedAt:       input.Now,
		UpdatedAt:        input.Now,
	}

	if err := srv.wanderings.CreateDetection(ctx, detection); err != nil {
		if errors.Is(err, repository.ErrActiveWanderingExists) {
			return nil, errors.Wrap(domainerrors.ErrStateConflict, "active wandering detection already exists")
		}

		return nil, errors.Wrap(err, "failed to create wandering detection")
	}

	srv.log(ctx).Info("Wandering detected",
		slog.String("user_id", input.UserID.String()),
		slog.Float64("max_deviation_meters", maxDeviation),
		slog.Bool("circular", circling),
	)

	body := fmt.Sprintf("Moving %s outside the usual area.", util.FormatDistance(maxDeviation))
	if !deviating {
		body = "Repeatedly circling the same area."
	}

	return &usecase.WanderingOutcome{
		Detection: detection,
		Alert:     wanderingAlert(detection, input.Now, "Possible wandering", body),
	}, nil
}

func (srv *wanderingService) expire(ctx context.Context, active *entity.WanderingDetection, now time.Time) error {
	if err := active.Resolve(entity.WanderingResolvedAutoExpiry, now); err != nil {
		return errors.Wrap(domainerrors.ErrStateConflict, err.Error())
	}
	if err := srv.wanderings.UpdateDetection(ctx, active); err != nil {
		return errors.Wrap(err, "failed to expire wandering detection")
	}

	srv.log(ctx).Info("Wandering detection expired", slog.String("wandering_id", active.ID.String()))

	return nil
}

// Resolve closes a detection on behalf of a guardian or operator.
func (srv *wanderingService) Resolve(ctx context.Context, detectionID uuid.UUID, method string) (*entity.WanderingDetection, error) {
	if method == "" {
		method = entity.WanderingResolvedByGuardian
	}

	detection, err := srv.findDetection(ctx, detectionID)
	if err != nil {
		return nil, err
	}

	unlock := srv.locker.Lock(detection.UserID)
	defer unlock()

	// Reload under the lock; an ingest may have changed it meanwhile.
	detection, err = srv.findDetection(ctx, detectionID)
	if err != nil {
		return nil, err
	}

	if err := detection.Resolve(method, srv.now()); err != nil {
		return nil, errors.Wrap(domainerrors.ErrStateConflict, "wandering detection already resolved")
	}
	if err := srv.wanderings.UpdateDetection(ctx, detection); err != nil {
		return nil, errors.Wrap(err, "failed to resolve wandering detection")
	}

	srv.log(ctx).Info("Wandering detection resolved",
		slog.String("wandering_id", detection.ID.String()),
		slog.String("method", method),
	)

	return detection, nil
}

// GetActive returns the user's non-resolved detection, or nil.
func (srv *wanderingService) GetActive(ctx context.Context, userID uuid.UUID) (*entity.WanderingDetection, error) {
	detection, err := srv.wanderings.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load active wandering detection")
	}

	return detection, nil
}

func (srv *wanderingService) findDetection(ctx context.Context, detectionID uuid.UUID) (*entity.WanderingDetection, error) {
	detection, err := srv.wanderings.FindDetectionByID(ctx, detectionID)
	if err != nil {
		if errors.Is(err, repository.ErrWanderingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrWanderingNotFound, "wandering detection not found")
		}

		return nil, errors.Wrap(err, "failed to find wandering detection")
	}

	return detection, nil
}

// maxPatternDeviation returns how far p lies outside the furthest-off baseline area.
func maxPatternDeviation(p orb.Point, patterns []*entity.MovementPattern) float64 {
	maxDeviation := 0.0
	for _, pattern := range patterns {
		deviation := geo.HaversineMeters(p, pattern.Centroid()) - pattern.TypicalRadiusMeters
		maxDeviation = math.Max(maxDeviation, deviation)
	}

	return maxDeviation
}

// isCircularMovement reports whether the window traces a loop: a long path that returns
// close to where it started.
func isCircularMovement(window []*entity.LocationSample) bool {
	if len(window) < 3 {
		return false
	}

	pathLength := 0.0
	for i := 1; i < len(window); i++ {
		pathLength += geo.HaversineMeters(window[i-1].Point(), window[i].Point())
	}
	gap := geo.HaversineMeters(window[0].Point(), window[len(window)-1].Point())

	return pathLength >= circularMinPathMeters && gap <= circularMaxGapMeters
}

func wanderingAlert(detection *entity.WanderingDetection, now time.Time, title, body string) *entity.Alert {
	wanderingID := detection.ID

	return &entity.Alert{
		UserID:      detection.UserID,
		Kind:        entity.AlertKindWandering,
		Severity:    detection.RiskLevel,
		Title:       title,
		Body:        body,
		Latitude:    detection.CurrentLatitude,
		Longitude:   detection.CurrentLongitude,
		WanderingID: &wanderingID,
		RaisedAt:    now,
	}
}
