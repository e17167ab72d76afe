// Package handler contains the Pub/Sub push handlers of the ingest worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"carewatch/config"
	deliverycontext "carewatch/internal/delivery/context"
	"carewatch/internal/domain/constants"
	domainerrors "carewatch/internal/domain/errors"
	"carewatch/internal/domain/service"
	"carewatch/internal/errors"
	"carewatch/internal/infra/pubsub"
	"carewatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// tokenVerifier validates the OIDC token attached to a push request
type tokenVerifier func(req *http.Request, audience string) error

// PushHandler ingests location samples delivered by a Pub/Sub push subscription
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	verify         tokenVerifier
	logger         *slog.Logger
	ingestUC       usecase.IngestUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	IngestUC usecase.IngestUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Push auth only exists on Google subscriptions outside local development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	audience := ""
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		verify:         verifyPubSubToken,
		logger:         params.Logger,
		ingestUC:       params.IngestUC,
	}
}

// HandlePush decodes one LocationSampleMessage and runs it through the ingest pipeline.
// Malformed or rejected samples are acknowledged (200) so they are not redelivered;
// storage failures answer 503 to trigger a retry.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verify(c.Request(), h.audience); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var sample service.LocationSampleMessage
	if err := json.Unmarshal(data, &sample); err != nil {
		h.logger.Error("[Worker] Failed to parse location sample", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &sample)
	ctx = deliverycontext.WithRequest(ctx, h.logger, requestID)
	reqLogger := deliverycontext.GetLoggerOrDefault(ctx, h.logger).With(
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("user_id", sample.UserID),
	)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	result, err := h.processSample(ctx, &sample)
	if err != nil {
		reqLogger.Error("[Worker] Failed to ingest location sample",
			slog.Any("error", err),
			slog.Bool("retryable", errors.IsRetryable(err)),
		)
		if errors.IsRetryable(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Debug("[Worker] Location sample ingested",
		slog.Int("events", len(result.Events)),
		slog.Int("alerts_queued", result.AlertsQueued),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers the message attribute, then the payload, then the X-Request-Id header.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, sample *service.LocationSampleMessage) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if sample.RequestID != "" {
		return sample.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func (h *PushHandler) processSample(ctx context.Context, sample *service.LocationSampleMessage) (*usecase.IngestResult, error) {
	userID, err := uuid.Parse(sample.UserID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid user_id")
	}

	result, err := h.ingestUC.Ingest(ctx, &usecase.IngestInput{
		UserID:     userID,
		Latitude:   sample.Latitude,
		Longitude:  sample.Longitude,
		Accuracy:   sample.Accuracy,
		CapturedAt: sample.CapturedAt,
	})
	if err != nil {
		// Client errors never succeed on redelivery.
		if appErr, ok := errors.AsType[domainerrors.AppError](err); ok && appErr.HTTPCode() < http.StatusInternalServerError {
			return nil, err
		}

		return nil, errors.Retryable(err)
	}

	return result, nil
}

// verifyPubSubToken verifies the OIDC token Google attaches to push requests.
// An empty audience falls back to the URL of the push endpoint.
func verifyPubSubToken(req *http.Request, audience string) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
