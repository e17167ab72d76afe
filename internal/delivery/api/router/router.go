// Package router registers the HTTP API routes.
package router

import (
	"carewatch/internal/delivery/api/router/handler"
	"carewatch/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LocationHandler  *handler.LocationHandler
	GeofenceHandler  *handler.GeofenceHandler
	EmergencyHandler *handler.EmergencyHandler
	WanderingHandler *handler.WanderingHandler
	Metrics          *metrics.Recorder `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	locationHandler  *handler.LocationHandler
	geofenceHandler  *handler.GeofenceHandler
	emergencyHandler *handler.EmergencyHandler
	wanderingHandler *handler.WanderingHandler
	metrics          *metrics.Recorder
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		locationHandler:  params.LocationHandler,
		geofenceHandler:  params.GeofenceHandler,
		emergencyHandler: params.EmergencyHandler,
		wanderingHandler: params.WanderingHandler,
		metrics:          params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	apiV1 := e.Group("/v1")

	// Per monitored user
	usersGroup := apiV1.Group("/users/:userId")
	{
		usersGroup.POST("/locations", r.locationHandler.IngestLocation)

		usersGroup.POST("/geofences", r.geofenceHandler.CreateGeofence)
		usersGroup.GET("/geofences", r.geofenceHandler.ListGeofences)
		usersGroup.PATCH("/geofences/:geofenceId/active", r.geofenceHandler.SetGeofenceActive)
		usersGroup.PATCH("/geofences/:geofenceId/priority", r.geofenceHandler.SetGeofencePriority)
		usersGroup.GET("/events", r.geofenceHandler.ListEvents)

		usersGroup.POST("/emergencies/sos", r.emergencyHandler.TriggerSOS)
		usersGroup.POST("/emergencies/panic", r.emergencyHandler.TriggerPanic)
		usersGroup.POST("/emergencies/fall", r.emergencyHandler.TriggerFall)
		usersGroup.GET("/emergencies", r.emergencyHandler.ListEmergencies)

		usersGroup.GET("/wandering", r.wanderingHandler.GetActive)
	}

	emergenciesGroup := apiV1.Group("/emergencies/:id")
	{
		emergenciesGroup.GET("", r.emergencyHandler.GetEmergency)
		emergenciesGroup.POST("/notify", r.emergencyHandler.NotifyGuardians)
		emergenciesGroup.POST("/resolve", r.emergencyHandler.ResolveEmergency)
		emergenciesGroup.POST("/cancel", r.emergencyHandler.CancelEmergency)
	}

	apiV1.POST("/wandering/:id/resolve", r.wanderingHandler.Resolve)
}
