package notification

import (
	"context"
	"log/slog"

	"carewatch/config"
	"carewatch/internal/domain/service"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

type smsRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Text string `json:"text"`
}

type smsGateway struct {
	client *resty.Client
	sender string
	logger *slog.Logger
}

// NewSMSService builds the SMS gateway client. It returns nil when the gateway is
// disabled, which turns the SMS channel off.
func NewSMSService(cfg *config.Config, logger *slog.Logger) service.SMSService {
	if !gatewayEnabled(cfg.SMS) {
		return nil
	}

	return &smsGateway{
		client: newGatewayClient(cfg.SMS),
		sender: cfg.SMS.Sender,
		logger: logger,
	}
}

// SendSMS posts one text message to the gateway.
func (g *smsGateway) SendSMS(ctx context.Context, phone, message string) error {
	if phone == "" {
		return errors.New("phone number is empty")
	}

	var result gatewayResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(smsRequest{From: g.sender, To: phone, Text: message}).
		SetResult(&result).
		SetError(&result).
		Post("/messages")
	if err := checkGatewayResponse(resp, &result, err); err != nil {
		return errors.Wrap(err, "failed to send SMS")
	}

	g.logger.DebugContext(ctx, "SMS accepted by gateway", slog.String("message_id", result.MessageID))

	return nil
}
