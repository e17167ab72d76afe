package impl

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"carewatch/config"
	deliverycontext "carewatch/internal/delivery/context"
	"carewatch/internal/domain/entity"
	"carewatch/internal/domain/service"
	"carewatch/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultDispatchWorkers = 8
	defaultDispatchQueue   = 1024
)

type dispatchJob struct {
	ctx   context.Context
	alert *entity.Alert
}

// dispatcher runs the notification cascade on a fixed pool of workers so ingestion never
// waits on guardian channels.
type dispatcher struct {
	escalation usecase.EscalationUsecase
	metrics    service.MetricsRecorder
	logger     *slog.Logger
	workers    int
	jobs       chan dispatchJob
	quit       chan struct{}
	stopped    atomic.Bool
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// DispatcherParams holds dependencies for the dispatcher, injected by Fx.
type DispatcherParams struct {
	fx.In

	Lc         fx.Lifecycle
	Config     *config.Config
	Logger     *slog.Logger
	Escalation usecase.EscalationUsecase
	Metrics    service.MetricsRecorder
}

// NewDispatcher creates the worker pool and binds it to the application lifecycle.
func NewDispatcher(params DispatcherParams) usecase.AlertDispatcher {
	workers, queueSize := defaultDispatchWorkers, defaultDispatchQueue
	if params.Config != nil && params.Config.Notification != nil {
		if params.Config.Notification.Workers > 0 {
			workers = params.Config.Notification.Workers
		}
		if params.Config.Notification.QueueSize > 0 {
			queueSize = params.Config.Notification.QueueSize
		}
	}

	d := newDispatcher(params.Escalation, params.Metrics, params.Logger, workers, queueSize)

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			d.Start()

			return nil
		},
		OnStop: d.Stop,
	})

	return d
}

func newDispatcher(escalation usecase.EscalationUsecase, metrics service.MetricsRecorder, logger *slog.Logger, workers, queueSize int) *dispatcher {
	return &dispatcher{
		escalation: escalation,
		metrics:    metrics,
		logger:     logger,
		workers:    workers,
		jobs:       make(chan dispatchJob, queueSize),
		quit:       make(chan struct{}),
	}
}

// Start launches the workers.
func (d *dispatcher) Start() {
	d.logger.Info("Starting notification dispatcher", slog.Int("workers", d.workers), slog.Int("queue_size", cap(d.jobs)))

	for range d.workers {
		d.wg.Go(d.work)
	}
}

// Stop stops accepting jobs, drains the queue and waits for the workers or ctx.
func (d *dispatcher) Stop(ctx context.Context) error {
	d.stopOnce.Do(func() {
		d.stopped.Store(true)
		close(d.quit)
	})

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Info("Notification dispatcher stopped")

		return nil
	case <-ctx.Done():
		d.logger.Warn("Notification dispatcher stop timed out", slog.Int("pending", len(d.jobs)))

		return ctx.Err()
	}
}

// Submit enqueues the alert, dropping it when the queue is full or the pool is stopping.
func (d *dispatcher) Submit(ctx context.Context, alert *entity.Alert) bool {
	logger := deliverycontext.GetLoggerOrDefault(ctx, d.logger)
	if d.stopped.Load() {
		logger.Warn("Dispatcher stopped, dropping alert", slog.String("kind", string(alert.Kind)))
		d.metrics.IncDispatchDropped()

		return false
	}

	select {
	case d.jobs <- dispatchJob{ctx: context.WithoutCancel(ctx), alert: alert}:
		return true
	default:
		logger.Error("Notification queue full, dropping alert",
			slog.String("kind", string(alert.Kind)),
			slog.String("user_id", alert.UserID.String()),
		)
		d.metrics.IncDispatchDropped()

		return false
	}
}

func (d *dispatcher) work() {
	for {
		select {
		case job := <-d.jobs:
			d.process(job)
		case <-d.quit:
			for {
				select {
				case job := <-d.jobs:
					d.process(job)
				default:
					return
				}
			}
		}
	}
}

func (d *dispatcher) process(job dispatchJob) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("Notification job panicked", slog.Any("panic", r))
		}
	}()

	if _, err := d.escalation.NotifyAndRecord(job.ctx, job.alert); err != nil {
		deliverycontext.GetLoggerOrDefault(job.ctx, d.logger).Error("Notification job failed",
			slog.String("kind", string(job.alert.Kind)),
			slog.String("user_id", job.alert.UserID.String()),
			slog.Any("error", err),
		)
	}
}
