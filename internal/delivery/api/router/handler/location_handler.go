package handler

import (
	"log/slog"
	"time"

	"carewatch/internal/delivery/api/response"
	deliverycontext "carewatch/internal/delivery/context"
	"carewatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	IngestUC usecase.IngestUsecase
	Logger   *slog.Logger
}

// LocationHandler accepts location samples reported by monitored users' devices
type LocationHandler struct {
	ingestUC usecase.IngestUsecase
	logger   *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		ingestUC: params.IngestUC,
		logger:   params.Logger,
	}
}

// IngestLocationRequest represents one location report
type IngestLocationRequest struct {
	Latitude   float64    `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude  float64    `json:"longitude" validate:"gte=-180,lte=180"`
	Accuracy   *float64   `json:"accuracy,omitempty" validate:"omitempty,gte=0"`
	CapturedAt *time.Time `json:"captured_at,omitempty"`
}

// IngestLocation stores a sample and evaluates it. Notifications are delivered in the
// background, so the response is 202 Accepted.
func (h *LocationHandler) IngestLocation(c echo.Context) error {
	userID, ok, err := parseUUIDParam(c, "userId", "user")
	if !ok {
		return err
	}

	var req IngestLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ctx := deliverycontext.WithUserLogger(c.Request().Context(), h.logger, userID)
	result, err := h.ingestUC.Ingest(ctx, &usecase.IngestInput{
		UserID:     userID,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Accuracy:   req.Accuracy,
		CapturedAt: req.CapturedAt,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Accepted(c, result)
}
