package notification

import (
	"time"

	"carewatch/config"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const defaultGatewayTimeout = 5 * time.Second

// gatewayResponse is the envelope both messaging gateways answer with.
type gatewayResponse struct {
	MessageID string `json:"messageId"`
	Error     string `json:"error"`
}

func newGatewayClient(cfg *config.GatewayConfig) *resty.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultGatewayTimeout
	}

	return resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetRetryCount(1).
		SetRetryWaitTime(200*time.Millisecond).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
}

func gatewayEnabled(cfg *config.GatewayConfig) bool {
	return cfg != nil && cfg.Enabled && cfg.BaseURL != ""
}

func checkGatewayResponse(resp *resty.Response, result *gatewayResponse, err error) error {
	if err != nil {
		return errors.Wrap(err, "gateway request failed")
	}
	if resp.IsError() {
		if result.Error != "" {
			return errors.Errorf("gateway returned %d: %s", resp.StatusCode(), result.Error)
		}

		return errors.Errorf("gateway returned %d", resp.StatusCode())
	}

	return nil
}
