package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"carewatch/config"
	deliverycontext "carewatch/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	return e
}

func TestRequestIDMiddleware_PropagatesHeader(t *testing.T) {
	t.Parallel()

	e := newTestEcho(&bytes.Buffer{}, false)
	var seen string
	e.GET("/ping", func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "abc-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_Generates(t *testing.T) {
	t.Parallel()

	e := newTestEcho(&bytes.Buffer{}, false)
	e.GET("/ping", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestLoggerMiddleware_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		debug   bool
		status  int
		wantLog bool
	}{
		{name: "success hidden outside debug", status: http.StatusOK},
		{name: "success logged in debug", debug: true, status: http.StatusOK, wantLog: true},
		{name: "client error always logged", status: http.StatusBadRequest, wantLog: true},
		{name: "handler error logged with final status", status: http.StatusNotFound, wantLog: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := &bytes.Buffer{}
			e := newTestEcho(buf, tt.debug)
			e.GET("/x", func(c echo.Context) error {
				if tt.status == http.StatusNotFound {
					return echo.ErrNotFound
				}

				return c.NoContent(tt.status)
			})

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

			require.Equal(t, tt.status, rec.Code)
			if tt.wantLog {
				assert.Contains(t, buf.String(), "HTTP Request")
				assert.Contains(t, buf.String(), "request_id=")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}
