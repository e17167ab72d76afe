package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"carewatch/config"
	"carewatch/internal/delivery/api/router"
	"carewatch/internal/delivery/api/router/handler"
	domainerrors "carewatch/internal/domain/errors"
	"carewatch/internal/domain/entity"
	"carewatch/internal/infra/metrics"
	mockUsecase "carewatch/internal/mocks/usecase"
	"carewatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// apiFixtures holds the echo instance wired with mocked usecases.
type apiFixtures struct {
	echo        *echo.Echo
	ingestUC    *mockUsecase.MockIngestUsecase
	geofenceUC  *mockUsecase.MockGeofenceUsecase
	emergencyUC *mockUsecase.MockEmergencyUsecase
	wanderingUC *mockUsecase.MockWanderingUsecase
}

func createTestAPI(t *testing.T) apiFixtures {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	logger := slog.New(slog.DiscardHandler)

	fx := apiFixtures{
		ingestUC:    mockUsecase.NewMockIngestUsecase(t),
		geofenceUC:  mockUsecase.NewMockGeofenceUsecase(t),
		emergencyUC: mockUsecase.NewMockEmergencyUsecase(t),
		wanderingUC: mockUsecase.NewMockWanderingUsecase(t),
	}

	fx.echo = newEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		LocationHandler:  handler.NewLocationHandler(handler.LocationHandlerParams{IngestUC: fx.ingestUC, Logger: logger}),
		GeofenceHandler:  handler.NewGeofenceHandler(handler.GeofenceHandlerParams{GeofenceUC: fx.geofenceUC, Logger: logger}),
		EmergencyHandler: handler.NewEmergencyHandler(handler.EmergencyHandlerParams{EmergencyUC: fx.emergencyUC, Logger: logger}),
		WanderingHandler: handler.NewWanderingHandler(handler.WanderingHandlerParams{WanderingUC: fx.wanderingUC, Logger: logger}),
		Metrics:          metrics.NewRecorder(),
	}).RegisterRoutes(fx.echo)

	return fx
}

func (fx apiFixtures) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestAPI_Health(t *testing.T) {
	t.Parallel()
	fx := createTestAPI(t)

	rec := fx.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.NotEmpty(t, env.Meta.RequestID)
}

func TestAPI_Metrics(t *testing.T) {
	t.Parallel()
	fx := createTestAPI(t)

	rec := fx.do(http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestAPI_IngestLocation(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name       string
		path       string
		body       string
		setup      func(fx apiFixtures)
		wantStatus int
		wantCode   string
	}{
		{
			name: "accepted",
			path: "/v1/users/" + userID.String() + "/locations",
			body: `{"latitude":37.5,"longitude":127.0,"accuracy":8}`,
			setup: func(fx apiFixtures) {
				fx.ingestUC.EXPECT().
					Ingest(mock.Anything, mock.MatchedBy(func(in *usecase.IngestInput) bool {
						return in.UserID == userID && in.Latitude == 37.5 && in.Accuracy != nil && *in.Accuracy == 8
					})).
					Return(&usecase.IngestResult{AlertsQueued: 1}, nil)
			},
			wantStatus: http.StatusAccepted,
		},
		{
			name:       "invalid user id",
			path:       "/v1/users/not-a-uuid/locations",
			body:       `{"latitude":37.5,"longitude":127.0}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_ID",
		},
		{
			name:       "latitude out of range",
			path:       "/v1/users/" + userID.String() + "/locations",
			body:       `{"latitude":95,"longitude":127.0}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "malformed body",
			path:       "/v1/users/" + userID.String() + "/locations",
			body:       `{"latitude":"north"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name: "unknown user",
			path: "/v1/users/" + userID.String() + "/locations",
			body: `{"latitude":37.5,"longitude":127.0}`,
			setup: func(fx apiFixtures) {
				fx.ingestUC.EXPECT().
					Ingest(mock.Anything, mock.Anything).
					Return(nil, errors.Wrap(domainerrors.ErrUserNotFound, "resolve user"))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "USER_NOT_FOUND",
		},
		{
			name: "storage failure is opaque",
			path: "/v1/users/" + userID.String() + "/locations",
			body: `{"latitude":37.5,"longitude":127.0}`,
			setup: func(fx apiFixtures) {
				fx.ingestUC.EXPECT().
					Ingest(mock.Anything, mock.Anything).
					Return(nil, errors.New("dial tcp: connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fx := createTestAPI(t)
			if tt.setup != nil {
				tt.setup(fx)
			}

			rec := fx.do(http.MethodPost, tt.path, tt.body)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantCode != "" {
				env := decode(t, rec)
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)
			}
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}

func TestAPI_CreateGeofence(t *testing.T) {
	t.Parallel()
	fx := createTestAPI(t)
	userID := uuid.New()

	fx.geofenceUC.EXPECT().
		CreateGeofence(mock.Anything, userID, mock.AnythingOfType("*usecase.CreateGeofenceInput")).
		RunAndReturn(func(_ context.Context, id uuid.UUID, in *usecase.CreateGeofenceInput) (*entity.Geofence, error) {
			assert.Equal(t, entity.GeofenceTypeHome, in.Type)
			assert.Equal(t, "22:00", in.ActiveWindow.StartTime)
			assert.Len(t, in.ActiveWindow.Days, 2)

			return &entity.Geofence{ID: uuid.New(), UserID: id, Name: in.Name, Type: in.Type}, nil
		})

	body := `{"name":"Home","center_latitude":37.5,"center_longitude":127.0,"radius_meters":100,
		"type":"HOME","alert_on_exit":true,"active_window":{"start_time":"22:00","end_time":"06:00","days":[1,2]}}`
	rec := fx.do(http.MethodPost, "/v1/users/"+userID.String()+"/geofences", body)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var geofence entity.Geofence
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &geofence))
	assert.Equal(t, "Home", geofence.Name)
}

func TestAPI_CreateGeofence_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "unknown type", body: `{"name":"x","radius_meters":10,"type":"SCHOOL"}`},
		{name: "zero radius", body: `{"name":"x","radius_meters":0,"type":"HOME"}`},
		{name: "bad clock", body: `{"name":"x","radius_meters":10,"type":"HOME","active_window":{"start_time":"25:00"}}`},
		{name: "bad weekday", body: `{"name":"x","radius_meters":10,"type":"HOME","active_window":{"days":[7]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fx := createTestAPI(t)

			rec := fx.do(http.MethodPost, "/v1/users/"+uuid.NewString()+"/geofences", tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_ERROR", decode(t, rec).Error.Code)
		})
	}
}

func TestAPI_SetGeofenceActive(t *testing.T) {
	t.Parallel()
	fx := createTestAPI(t)
	userID, geofenceID := uuid.New(), uuid.New()

	fx.geofenceUC.EXPECT().
		SetGeofenceActive(mock.Anything, userID, geofenceID, false).
		Return(&entity.Geofence{ID: geofenceID, IsActive: false}, nil)

	rec := fx.do(http.MethodPatch, "/v1/users/"+userID.String()+"/geofences/"+geofenceID.String()+"/active", `{"active":false}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	missing := fx.do(http.MethodPatch, "/v1/users/"+userID.String()+"/geofences/"+geofenceID.String()+"/active", `{}`)
	assert.Equal(t, http.StatusBadRequest, missing.Code)
}

func TestAPI_SetGeofencePriority_NotFound(t *testing.T) {
	t.Parallel()
	fx := createTestAPI(t)
	userID, geofenceID := uuid.New(), uuid.New()

	fx.geofenceUC.EXPECT().
		SetGeofencePriority(mock.Anything, userID, geofenceID, 3).
		Return(nil, errors.Wrap(domainerrors.ErrGeofenceNotFound, "load geofence"))

	rec := fx.do(http.MethodPatch, "/v1/users/"+userID.String()+"/geofences/"+geofenceID.String()+"/priority", `{"priority":3}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "GEOFENCE_NOT_FOUND", decode(t, rec).Error.Code)
}

func TestAPI_ListEvents_Limit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		query     string
		wantLimit int
		wantCode  int
	}{
		{name: "default", query: "", wantLimit: 50, wantCode: http.StatusOK},
		{name: "explicit", query: "?limit=10", wantLimit: 10, wantCode: http.StatusOK},
		{name: "clamped", query: "?limit=5000", wantLimit: 200, wantCode: http.StatusOK},
		{name: "invalid", query: "?limit=-1", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fx := createTestAPI(t)
			userID := uuid.New()
			if tt.wantCode == http.StatusOK {
				fx.geofenceUC.EXPECT().
					ListEvents(mock.Anything, userID, tt.wantLimit).
					Return([]*entity.GeofenceEvent{}, nil)
			}

			rec := fx.do(http.MethodGet, "/v1/users/"+userID.String()+"/events"+tt.query, "")

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestAPI_EmergencyTriggers(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name  string
		path  string
		body  string
		setup func(fx apiFixtures)
	}{
		{
			name: "sos",
			path: "/emergencies/sos",
			body: `{"latitude":37.5,"longitude":127.0,"notes":"help"}`,
			setup: func(fx apiFixtures) {
				fx.emergencyUC.EXPECT().
					TriggerManualSOS(mock.Anything, &usecase.TriggerEmergencyInput{UserID: userID, Latitude: 37.5, Longitude: 127.0, Notes: "help"}).
					Return(&entity.Emergency{ID: uuid.New(), Status: entity.EmergencyStatusNotified}, nil)
			},
		},
		{
			name: "panic",
			path: "/emergencies/panic",
			body: `{"latitude":37.5,"longitude":127.0}`,
			setup: func(fx apiFixtures) {
				fx.emergencyUC.EXPECT().
					TriggerPanicButton(mock.Anything, mock.Anything).
					Return(&entity.Emergency{ID: uuid.New(), Status: entity.EmergencyStatusNotified}, nil)
			},
		},
		{
			name: "fall",
			path: "/emergencies/fall",
			body: `{"latitude":37.5,"longitude":127.0,"confidence":95}`,
			setup: func(fx apiFixtures) {
				fx.emergencyUC.EXPECT().
					TriggerFallDetection(mock.Anything, mock.MatchedBy(func(in *usecase.TriggerEmergencyInput) bool {
						return in.UserID == userID && in.Latitude == 37.5
					}), float64(95)).
					Return(&entity.Emergency{ID: uuid.New(), Status: entity.EmergencyStatusNotified, Severity: entity.RiskLevelCritical}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fx := createTestAPI(t)
			tt.setup(fx)

			rec := fx.do(http.MethodPost, "/v1/users/"+userID.String()+tt.path, tt.body)

			require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
			var emergency entity.Emergency
			require.NoError(t, json.Unmarshal(decode(t, rec).Data, &emergency))
			assert.Equal(t, entity.EmergencyStatusNotified, emergency.Status)
		})
	}
}

func TestAPI_TriggerFall_ConfidenceOutOfRange(t *testing.T) {
	t.Parallel()
	fx := createTestAPI(t)

	rec := fx.do(http.MethodPost, "/v1/users/"+uuid.NewString()+"/emergencies/fall", `{"latitude":1,"longitude":1,"confidence":120}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode(t, rec).Error.Code)
}

func TestAPI_EmergencyLifecycle(t *testing.T) {
	t.Parallel()
	fx := createTestAPI(t)
	emergencyID, guardianID := uuid.New(), uuid.New()
	base := "/v1/emergencies/" + emergencyID.String()

	fx.emergencyUC.EXPECT().GetEmergency(mock.Anything, emergencyID).
		Return(&entity.Emergency{ID: emergencyID}, nil)
	fx.emergencyUC.EXPECT().NotifyGuardians(mock.Anything, emergencyID).
		Return(&entity.Emergency{ID: emergencyID, Status: entity.EmergencyStatusNotified}, nil)
	fx.emergencyUC.EXPECT().Resolve(mock.Anything, emergencyID, &guardianID, "safe").
		Return(&entity.Emergency{ID: emergencyID, Status: entity.EmergencyStatusResolved}, nil)
	fx.emergencyUC.EXPECT().Cancel(mock.Anything, emergencyID, (*uuid.UUID)(nil), "").
		Return(nil, errors.Wrap(domainerrors.ErrInvalidTransition, "cancel"))

	assert.Equal(t, http.StatusOK, fx.do(http.MethodGet, base, "").Code)
	assert.Equal(t, http.StatusOK, fx.do(http.MethodPost, base+"/notify", "").Code)
	assert.Equal(t, http.StatusOK, fx.do(http.MethodPost, base+"/resolve", `{"by":"`+guardianID.String()+`","notes":"safe"}`).Code)
	assert.Equal(t, http.StatusConflict, fx.do(http.MethodPost, base+"/cancel", "").Code)
}

func TestAPI_ListEmergencies(t *testing.T) {
	t.Parallel()
	fx := createTestAPI(t)
	userID := uuid.New()

	fx.emergencyUC.EXPECT().ListUserEmergencies(mock.Anything, userID, 5).
		Return([]*entity.Emergency{{ID: uuid.New()}}, nil)

	rec := fx.do(http.MethodGet, "/v1/users/"+userID.String()+"/emergencies?limit=5", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var emergencies []entity.Emergency
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &emergencies))
	assert.Len(t, emergencies, 1)
}

func TestAPI_Wandering(t *testing.T) {
	t.Parallel()
	fx := createTestAPI(t)
	userID, detectionID := uuid.New(), uuid.New()

	fx.wanderingUC.EXPECT().GetActive(mock.Anything, userID).Return(nil, nil).Once()
	fx.wanderingUC.EXPECT().Resolve(mock.Anything, detectionID, entity.WanderingResolvedByGuardian).
		Return(&entity.WanderingDetection{ID: detectionID, Status: entity.WanderingStatusResolved}, nil).Once()
	fx.wanderingUC.EXPECT().Resolve(mock.Anything, detectionID, "FOUND_AT_PARK").
		Return(nil, errors.Wrap(domainerrors.ErrStateConflict, "already resolved")).Once()

	rec := fx.do(http.MethodGet, "/v1/users/"+userID.String()+"/wandering", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NO_ACTIVE_WANDERING", decode(t, rec).Error.Code)

	rec = fx.do(http.MethodPost, "/v1/wandering/"+detectionID.String()+"/resolve", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = fx.do(http.MethodPost, "/v1/wandering/"+detectionID.String()+"/resolve", `{"method":"FOUND_AT_PARK"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}
