package handler

import (
	"log/slog"
	"net/http"

	"carewatch/internal/delivery/api/response"
	"carewatch/internal/domain/entity"
	"carewatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WanderingHandlerParams holds dependencies for WanderingHandler, injected by Fx.
type WanderingHandlerParams struct {
	fx.In

	WanderingUC usecase.WanderingUsecase
	Logger      *slog.Logger
}

// WanderingHandler exposes the active wandering episode and its resolution
type WanderingHandler struct {
	wanderingUC usecase.WanderingUsecase
	logger      *slog.Logger
}

// NewWanderingHandler is the constructor for WanderingHandler
func NewWanderingHandler(params WanderingHandlerParams) *WanderingHandler {
	return &WanderingHandler{
		wanderingUC: params.WanderingUC,
		logger:      params.Logger,
	}
}

// ResolveWanderingRequest is the body of a wandering resolution
type ResolveWanderingRequest struct {
	Method string `json:"method" validate:"omitempty,max=50"`
}

// GetActive returns the user's active detection. No active episode is a 404.
func (h *WanderingHandler) GetActive(c echo.Context) error {
	userID, ok, err := parseUUIDParam(c, "userId", "user")
	if !ok {
		return err
	}

	detection, err := h.wanderingUC.GetActive(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if detection == nil {
		return response.NotFound(c, "NO_ACTIVE_WANDERING", "User has no active wandering episode")
	}

	return response.Success(c, http.StatusOK, detection)
}

// Resolve closes a wandering episode
func (h *WanderingHandler) Resolve(c echo.Context) error {
	detectionID, ok, err := parseUUIDParam(c, "id", "wandering detection")
	if !ok {
		return err
	}

	var req ResolveWanderingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wandering resolution input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	method := req.Method
	if method == "" {
		method = entity.WanderingResolvedByGuardian
	}

	detection, err := h.wanderingUC.Resolve(c.Request().Context(), detectionID, method)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detection)
}
