package notification

import (
	"context"
	"log/slog"

	"carewatch/config"
	"carewatch/internal/domain/service"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

type emailRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

type emailGateway struct {
	client *resty.Client
	sender string
	logger *slog.Logger
}

// NewEmailService builds the mail gateway client, or nil when email is disabled.
func NewEmailService(cfg *config.Config, logger *slog.Logger) service.EmailService {
	if !gatewayEnabled(cfg.Email) {
		return nil
	}

	return &emailGateway{
		client: newGatewayClient(cfg.Email),
		sender: cfg.Email.Sender,
		logger: logger,
	}
}

// SendEmail posts a plain-text message to the mail gateway.
func (g *emailGateway) SendEmail(ctx context.Context, to, subject, body string) error {
	if to == "" {
		return errors.New("recipient address is empty")
	}

	var result gatewayResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(emailRequest{From: g.sender, To: to, Subject: subject, Text: body}).
		SetResult(&result).
		SetError(&result).
		Post("/mail/send")
	if err := checkGatewayResponse(resp, &result, err); err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	g.logger.DebugContext(ctx, "Email accepted by gateway", slog.String("message_id", result.MessageID))

	return nil
}
