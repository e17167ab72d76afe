package handler

import (
	"log/slog"
	"net/http"
	"time"

	"carewatch/internal/delivery/api/response"
	deliverycontext "carewatch/internal/delivery/context"
	"carewatch/internal/domain/entity"
	"carewatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GeofenceHandlerParams holds dependencies for GeofenceHandler, injected by Fx.
type GeofenceHandlerParams struct {
	fx.In

	GeofenceUC usecase.GeofenceUsecase
	Logger     *slog.Logger
}

// GeofenceHandler manages a monitored user's geofences and exposes their event history
type GeofenceHandler struct {
	geofenceUC usecase.GeofenceUsecase
	logger     *slog.Logger
}

// NewGeofenceHandler is the constructor for GeofenceHandler
func NewGeofenceHandler(params GeofenceHandlerParams) *GeofenceHandler {
	return &GeofenceHandler{
		geofenceUC: params.GeofenceUC,
		logger:     params.Logger,
	}
}

// ActiveWindowRequest restricts a geofence to a daily time range
type ActiveWindowRequest struct {
	StartTime string `json:"start_time" validate:"omitempty,clock"`
	EndTime   string `json:"end_time" validate:"omitempty,clock"`
	Days      []int  `json:"days" validate:"omitempty,dive,gte=0,lte=6"`
}

// CreateGeofenceRequest represents the request body for creating a geofence
type CreateGeofenceRequest struct {
	Name            string               `json:"name" validate:"required,max=100"`
	CenterLatitude  float64              `json:"center_latitude" validate:"gte=-90,lte=90"`
	CenterLongitude float64              `json:"center_longitude" validate:"gte=-180,lte=180"`
	RadiusMeters    float64              `json:"radius_meters" validate:"gt=0"`
	Type            string               `json:"type" validate:"required,oneof=HOME SAFE_ZONE DANGER_ZONE CUSTOM"`
	AlertOnEntry    bool                 `json:"alert_on_entry"`
	AlertOnExit     bool                 `json:"alert_on_exit"`
	ActiveWindow    *ActiveWindowRequest `json:"active_window"`
	Priority        int                  `json:"priority" validate:"gte=0"`
}

// SetGeofenceActiveRequest toggles a geofence
type SetGeofenceActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// SetGeofencePriorityRequest changes the evaluation priority of a geofence
type SetGeofencePriorityRequest struct {
	Priority *int `json:"priority" validate:"required,gte=0"`
}

// CreateGeofence handles geofence creation
func (h *GeofenceHandler) CreateGeofence(c echo.Context) error {
	userID, ok, err := parseUUIDParam(c, "userId", "user")
	if !ok {
		return err
	}

	var req CreateGeofenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid geofence input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateGeofenceInput{
		Name:            req.Name,
		CenterLatitude:  req.CenterLatitude,
		CenterLongitude: req.CenterLongitude,
		RadiusMeters:    req.RadiusMeters,
		Type:            entity.GeofenceType(req.Type),
		AlertOnEntry:    req.AlertOnEntry,
		AlertOnExit:     req.AlertOnExit,
		Priority:        req.Priority,
	}
	if req.ActiveWindow != nil {
		input.ActiveWindow = toActiveWindow(req.ActiveWindow)
	}

	ctx := deliverycontext.WithUserLogger(c.Request().Context(), h.logger, userID)
	geofence, err := h.geofenceUC.CreateGeofence(ctx, userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, geofence)
}

// ListGeofences handles listing a user's geofences
func (h *GeofenceHandler) ListGeofences(c echo.Context) error {
	userID, ok, err := parseUUIDParam(c, "userId", "user")
	if !ok {
		return err
	}

	geofences, err := h.geofenceUC.ListGeofences(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, geofences)
}

// SetGeofenceActive handles enabling or disabling a geofence
func (h *GeofenceHandler) SetGeofenceActive(c echo.Context) error {
	userID, ok, err := parseUUIDParam(c, "userId", "user")
	if !ok {
		return err
	}
	geofenceID, ok, err := parseUUIDParam(c, "geofenceId", "geofence")
	if !ok {
		return err
	}

	var req SetGeofenceActiveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid geofence state input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ctx := deliverycontext.WithUserLogger(c.Request().Context(), h.logger, userID)
	geofence, err := h.geofenceUC.SetGeofenceActive(ctx, userID, geofenceID, *req.Active)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, geofence)
}

// SetGeofencePriority handles changing a geofence priority
func (h *GeofenceHandler) SetGeofencePriority(c echo.Context) error {
	userID, ok, err := parseUUIDParam(c, "userId", "user")
	if !ok {
		return err
	}
	geofenceID, ok, err := parseUUIDParam(c, "geofenceId", "geofence")
	if !ok {
		return err
	}

	var req SetGeofencePriorityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid geofence priority input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ctx := deliverycontext.WithUserLogger(c.Request().Context(), h.logger, userID)
	geofence, err := h.geofenceUC.SetGeofencePriority(ctx, userID, geofenceID, *req.Priority)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, geofence)
}

// ListEvents handles the geofence event history of a user, newest first
func (h *GeofenceHandler) ListEvents(c echo.Context) error {
	userID, ok, err := parseUUIDParam(c, "userId", "user")
	if !ok {
		return err
	}
	limit, ok, err := parseLimit(c)
	if !ok {
		return err
	}

	events, err := h.geofenceUC.ListEvents(c.Request().Context(), userID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, events)
}

func toActiveWindow(req *ActiveWindowRequest) entity.ActiveWindow {
	window := entity.ActiveWindow{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	for _, day := range req.Days {
		window.Days = append(window.Days, time.Weekday(day))
	}

	return window
}
