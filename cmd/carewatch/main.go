package main

import (
	"context"
	"log/slog"
	"os"

	"carewatch/config"
	"carewatch/internal/delivery"
	"carewatch/internal/delivery/api"
	"carewatch/internal/delivery/api/router/handler"
	"carewatch/internal/infra/cache"
	logs "carewatch/internal/infra/log"
	"carewatch/internal/infra/metrics"
	"carewatch/internal/infra/navigation"
	"carewatch/internal/infra/notification"
	"carewatch/internal/infra/persistence/postgres"
	"carewatch/internal/infra/pubsub"
	"carewatch/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.NewRedisClient,
		metrics.NewRecorder,
		metrics.NewMetricsRecorder,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewLocationRepository,
			postgres.NewGeofenceRepository,
			postgres.NewGeofenceEventRepository,
			postgres.NewWanderingRepository,
			postgres.NewEmergencyRepository,
			postgres.NewDeliveryLogRepository,
			postgres.NewUserDirectory,
			postgres.NewMovementPatternProvider,
			// The postgres directory is the source behind the Redis read-through cache
			fx.Annotate(
				postgres.NewGuardianDirectory,
				fx.ResultTags(`name:"guardianSource"`),
			),
			cache.NewCachedGuardianDirectory,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			notification.NewPushService,
			notification.NewSMSService,
			notification.NewEmailService,
			pubsub.NewEventPublisher,
			navigation.NewNavigationService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserLocker,
			impl.NewEscalationService,
			impl.NewDispatcher,
			impl.NewWanderingService,
			impl.NewIngestService,
			impl.NewEmergencyService,
			impl.NewGeofenceService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewLocationHandler,
			handler.NewGeofenceHandler,
			handler.NewEmergencyHandler,
			handler.NewWanderingHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
