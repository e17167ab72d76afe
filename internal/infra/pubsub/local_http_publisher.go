package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"time"

	"carewatch/internal/domain/service"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// localHTTPPublisher simulates a push subscription by POSTing the Pub/Sub envelope
// to a local endpoint during development.
type localHTTPPublisher struct {
	endpoint string
	client   *resty.Client
	logger   *slog.Logger
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client: resty.New().
			SetTimeout(30*time.Second).
			SetHeader("Content-Type", "application/json"),
		logger: logger,
	}
}

// PublishSafetyEvent wraps the event in a push envelope and POSTs it.
func (p *localHTTPPublisher) PublishSafetyEvent(ctx context.Context, event *service.SafetyEvent) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	var pushMsg PushMessage
	pushMsg.Subscription = "projects/local/subscriptions/safety-events"
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = event.EventID
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = eventAttributes(event)

	req := p.client.R().SetContext(ctx).SetBody(pushMsg)
	if event.RequestID != "" {
		req.SetHeader("X-Request-Id", event.RequestID)
	}

	resp, err := req.Post(p.endpoint)
	if err != nil {
		return errors.WithStack(err)
	}
	if !resp.IsSuccess() {
		return errors.Errorf("local endpoint returned non-success status: %d", resp.StatusCode())
	}

	p.logger.DebugContext(ctx, "[LocalPubSub] Safety event published",
		slog.String("endpoint", p.endpoint),
		slog.String("event_id", event.EventID),
		slog.String("event_type", event.Type),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
