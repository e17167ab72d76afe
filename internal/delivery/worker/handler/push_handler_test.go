package handler

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"carewatch/config"
	"carewatch/internal/domain/constants"
	domainerrors "carewatch/internal/domain/errors"
	"carewatch/internal/domain/service"
	"carewatch/internal/infra/pubsub"
	mockUsecase "carewatch/internal/mocks/usecase"
	"carewatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushBody(t *testing.T, sample any, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(sample)
	require.NoError(t, err)

	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "m-1"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockIngestUsecase) {
	ingestUC := mockUsecase.NewMockIngestUsecase(t)
	if cfg == nil {
		cfg = &config.Config{}
	}

	return NewPushHandler(PushHandlerParams{
		Config:   cfg,
		Logger:   slog.New(slog.DiscardHandler),
		IngestUC: ingestUC,
	}), ingestUC
}

func TestPushHandler_HandlePush(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	validSample := service.LocationSampleMessage{UserID: userID.String(), Latitude: 37.5, Longitude: 127.0}

	tests := []struct {
		name       string
		body       func(t *testing.T) string
		setup      func(m *mockUsecase.MockIngestUsecase)
		wantStatus int
	}{
		{
			name: "ingested",
			body: func(t *testing.T) string {
				return newPushBody(t, validSample, map[string]string{"request_id": "req-7"})
			},
			setup: func(m *mockUsecase.MockIngestUsecase) {
				m.EXPECT().
					Ingest(mock.Anything, mock.MatchedBy(func(in *usecase.IngestInput) bool {
						return in.UserID == userID && in.Latitude == 37.5 && in.Longitude == 127.0
					})).
					Return(&usecase.IngestResult{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "envelope is not json",
			body:       func(*testing.T) string { return "{" },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "data is not base64",
			body:       func(*testing.T) string { return `{"message":{"data":"***"}}` },
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "invalid user id is acknowledged",
			body: func(t *testing.T) string {
				return newPushBody(t, service.LocationSampleMessage{UserID: "nope"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "validation failure is acknowledged",
			body: func(t *testing.T) string { return newPushBody(t, validSample, nil) },
			setup: func(m *mockUsecase.MockIngestUsecase) {
				m.EXPECT().Ingest(mock.Anything, mock.Anything).
					Return(nil, errors.Wrap(domainerrors.ErrInvalidCoordinates, "latitude"))
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "storage failure is retried",
			body: func(t *testing.T) string { return newPushBody(t, validSample, nil) },
			setup: func(m *mockUsecase.MockIngestUsecase) {
				m.EXPECT().Ingest(mock.Anything, mock.Anything).
					Return(nil, errors.New("connection reset"))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, ingestUC := newTestPushHandler(t, nil)
			if tt.setup != nil {
				tt.setup(ingestUC)
			}

			rec := servePush(h, tt.body(t), nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesGoogleTokens(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{PubSub: &config.PubSubConfig{
		Provider:     constants.PubSubProviderGoogle,
		PushAudience: "https://worker.example.com/push",
	}}
	cfg.Env.Env = constants.EnvProduction

	h, _ := newTestPushHandler(t, cfg)
	require.True(t, h.verifyPushAuth)

	var gotAudience string
	h.verify = func(_ *http.Request, audience string) error {
		gotAudience = audience

		return errors.New("expired")
	}

	rec := servePush(h, `{"message":{"data":""}}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "https://worker.example.com/push", gotAudience)
}

func TestPushHandler_SkipsVerificationInDevelop(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvDevelop

	h, _ := newTestPushHandler(t, cfg)

	assert.False(t, h.verifyPushAuth)
}

func TestExtractRequestID(t *testing.T) {
	t.Parallel()

	h, _ := newTestPushHandler(t, nil)

	var msg pubsub.PushMessage
	msg.Message.Attributes = map[string]string{"request_id": "from-attr"}
	sample := &service.LocationSampleMessage{RequestID: "from-payload"}

	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	assert.Equal(t, "from-attr", h.extractRequestID(req.Context(), &msg, sample))

	msg.Message.Attributes = nil
	assert.Equal(t, "from-payload", h.extractRequestID(req.Context(), &msg, sample))

	sample.RequestID = ""
	_, err := uuid.Parse(h.extractRequestID(req.Context(), &msg, sample))
	assert.NoError(t, err)
}

func TestVerifyPubSubToken_RejectsMalformedHeaders(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	require.EqualError(t, verifyPubSubToken(req, ""), "missing authorization header")

	req.Header.Set("Authorization", "Basic abc")
	require.EqualError(t, verifyPubSubToken(req, ""), "invalid authorization header format")
}
