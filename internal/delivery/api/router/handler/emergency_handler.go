package handler

import (
	"context"
	"log/slog"
	"net/http"

	"carewatch/internal/delivery/api/response"
	deliverycontext "carewatch/internal/delivery/context"
	"carewatch/internal/domain/entity"
	"carewatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EmergencyHandlerParams holds dependencies for EmergencyHandler, injected by Fx.
type EmergencyHandlerParams struct {
	fx.In

	EmergencyUC usecase.EmergencyUsecase
	Logger      *slog.Logger
}

// EmergencyHandler exposes emergency triggers and the incident lifecycle
type EmergencyHandler struct {
	emergencyUC usecase.EmergencyUsecase
	logger      *slog.Logger
}

// NewEmergencyHandler is the constructor for EmergencyHandler
func NewEmergencyHandler(params EmergencyHandlerParams) *EmergencyHandler {
	return &EmergencyHandler{
		emergencyUC: params.EmergencyUC,
		logger:      params.Logger,
	}
}

// TriggerEmergencyRequest is the body of SOS and panic triggers
type TriggerEmergencyRequest struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Notes     string  `json:"notes" validate:"max=1000"`
}

// FallDetectionRequest is reported by the fall-detection model on the device
type FallDetectionRequest struct {
	TriggerEmergencyRequest
	Confidence float64 `json:"confidence" validate:"gte=0,lte=100"`
}

// CloseEmergencyRequest is the body of resolve and cancel
type CloseEmergencyRequest struct {
	By    *uuid.UUID `json:"by"`
	Notes string     `json:"notes" validate:"max=1000"`
}

// TriggerSOS handles a manual SOS
func (h *EmergencyHandler) TriggerSOS(c echo.Context) error {
	return h.trigger(c, h.emergencyUC.TriggerManualSOS)
}

// TriggerPanic handles a panic button press
func (h *EmergencyHandler) TriggerPanic(c echo.Context) error {
	return h.trigger(c, h.emergencyUC.TriggerPanicButton)
}

// TriggerFall handles a fall detection report
func (h *EmergencyHandler) TriggerFall(c echo.Context) error {
	userID, ok, err := parseUUIDParam(c, "userId", "user")
	if !ok {
		return err
	}

	var req FallDetectionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid fall detection input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ctx := deliverycontext.WithUserLogger(c.Request().Context(), h.logger, userID)
	emergency, err := h.emergencyUC.TriggerFallDetection(ctx, triggerInput(userID, &req.TriggerEmergencyRequest), req.Confidence)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, emergency)
}

// ListEmergencies handles the incident history of a user, newest first
func (h *EmergencyHandler) ListEmergencies(c echo.Context) error {
	userID, ok, err := parseUUIDParam(c, "userId", "user")
	if !ok {
		return err
	}
	limit, ok, err := parseLimit(c)
	if !ok {
		return err
	}

	emergencies, err := h.emergencyUC.ListUserEmergencies(c.Request().Context(), userID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, emergencies)
}

// GetEmergency handles fetching one incident
func (h *EmergencyHandler) GetEmergency(c echo.Context) error {
	emergencyID, ok, err := parseUUIDParam(c, "id", "emergency")
	if !ok {
		return err
	}

	emergency, err := h.emergencyUC.GetEmergency(c.Request().Context(), emergencyID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, emergency)
}

// NotifyGuardians re-runs the notification cascade of an incident
func (h *EmergencyHandler) NotifyGuardians(c echo.Context) error {
	emergencyID, ok, err := parseUUIDParam(c, "id", "emergency")
	if !ok {
		return err
	}

	emergency, err := h.emergencyUC.NotifyGuardians(c.Request().Context(), emergencyID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, emergency)
}

// ResolveEmergency handles closing an incident as resolved
func (h *EmergencyHandler) ResolveEmergency(c echo.Context) error {
	emergencyID, req, ok, err := h.bindClose(c)
	if !ok {
		return err
	}

	emergency, err := h.emergencyUC.Resolve(c.Request().Context(), emergencyID, req.By, req.Notes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, emergency)
}

// CancelEmergency handles cancelling a false alarm
func (h *EmergencyHandler) CancelEmergency(c echo.Context) error {
	emergencyID, req, ok, err := h.bindClose(c)
	if !ok {
		return err
	}

	emergency, err := h.emergencyUC.Cancel(c.Request().Context(), emergencyID, req.By, req.Notes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, emergency)
}

type triggerFunc func(ctx context.Context, input *usecase.TriggerEmergencyInput) (*entity.Emergency, error)

func (h *EmergencyHandler) trigger(c echo.Context, fn triggerFunc) error {
	userID, ok, err := parseUUIDParam(c, "userId", "user")
	if !ok {
		return err
	}

	var req TriggerEmergencyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid emergency input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ctx := deliverycontext.WithUserLogger(c.Request().Context(), h.logger, userID)
	emergency, err := fn(ctx, triggerInput(userID, &req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, emergency)
}

func (h *EmergencyHandler) bindClose(c echo.Context) (uuid.UUID, *CloseEmergencyRequest, bool, error) {
	emergencyID, ok, err := parseUUIDParam(c, "id", "emergency")
	if !ok {
		return uuid.Nil, nil, false, err
	}

	var req CloseEmergencyRequest
	if err := c.Bind(&req); err != nil {
		return uuid.Nil, nil, false, response.BindingError(c, "INVALID_INPUT", "Invalid emergency input")
	}

	if err := c.Validate(&req); err != nil {
		return uuid.Nil, nil, false, response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	return emergencyID, &req, true, nil
}

func triggerInput(userID uuid.UUID, req *TriggerEmergencyRequest) *usecase.TriggerEmergencyInput {
	return &usecase.TriggerEmergencyInput{
		UserID:    userID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Notes:     req.Notes,
	}
}
