package notification

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carewatch/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gatewayConfig(url string) *config.Config {
	gateway := &config.GatewayConfig{
		Enabled: true,
		BaseURL: url,
		APIKey:  "secret",
		Sender:  "carewatch",
		Timeout: time.Second,
	}

	return &config.Config{SMS: gateway, Email: gateway}
}

func TestSMSGateway_SendSMS(t *testing.T) {
	t.Parallel()

	var got smsRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"messageId":"m-1"}`))
	}))
	defer server.Close()

	svc := NewSMSService(gatewayConfig(server.URL), slog.Default())
	require.NotNil(t, svc)

	require.NoError(t, svc.SendSMS(context.Background(), "+886900000000", "Kim needs help"))
	assert.Equal(t, smsRequest{From: "carewatch", To: "+886900000000", Text: "Kim needs help"}, got)
}

func TestSMSGateway_ErrorStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid number"}`))
	}))
	defer server.Close()

	svc := NewSMSService(gatewayConfig(server.URL), slog.Default())

	err := svc.SendSMS(context.Background(), "bogus", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid number")
}

func TestEmailGateway_SendEmail(t *testing.T) {
	t.Parallel()

	var got emailRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mail/send", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"messageId":"e-1"}`))
	}))
	defer server.Close()

	svc := NewEmailService(gatewayConfig(server.URL), slog.Default())
	require.NotNil(t, svc)

	require.NoError(t, svc.SendEmail(context.Background(), "guardian@example.com", "Alert", "body"))
	assert.Equal(t, "guardian@example.com", got.To)
	assert.Equal(t, "Alert", got.Subject)
}

func TestGateways_DisabledReturnNil(t *testing.T) {
	t.Parallel()

	assert.Nil(t, NewSMSService(&config.Config{}, slog.Default()))
	assert.Nil(t, NewEmailService(&config.Config{Email: &config.GatewayConfig{Enabled: false, BaseURL: "http://x"}}, slog.Default()))
}

func TestGateways_EmptyRecipient(t *testing.T) {
	t.Parallel()

	cfg := gatewayConfig("http://127.0.0.1:1")
	assert.Error(t, NewSMSService(cfg, slog.Default()).SendSMS(context.Background(), "", "x"))
	assert.Error(t, NewEmailService(cfg, slog.Default()).SendEmail(context.Background(), "", "s", "b"))
}
