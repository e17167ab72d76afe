package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"carewatch/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: "warning", want: slog.LevelWarn},
		{input: " error ", want: slog.LevelError},
		{input: "trace", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := parseLogLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger_JSON(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	cfg.Env.Env = "production"
	cfg.Env.ServiceName = "carewatch"
	cfg.Env.Log.Level = "warn"

	buf := &bytes.Buffer{}
	logger, err := newLogger(buf, cfg)
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("geofence evaluation failed")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "geofence evaluation failed", record["msg"])
	assert.Equal(t, "carewatch", record["service"])
	assert.Equal(t, "production", record["env"])
}

func TestNewLogger_PrettyText(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	cfg.Env.Log.Pretty = true

	buf := &bytes.Buffer{}
	logger, err := newLogger(buf, cfg)
	require.NoError(t, err)

	logger.Info("ready")

	assert.Contains(t, buf.String(), "msg=ready")
	assert.NotContains(t, buf.String(), "service=")
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	cfg.Env.Log.Level = "verbose"

	_, err := newLogger(&bytes.Buffer{}, cfg)

	assert.EqualError(t, err, "unknown log level: verbose")
}
