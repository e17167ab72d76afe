package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"carewatch/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg), buf
}

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Parallel()

	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	tests := []struct {
		name    string
		debug   bool
		begin   time.Time
		err     error
		want    string
		wantNil bool
	}{
		{name: "failure is logged", begin: time.Now(), err: errors.New("boom"), want: "GORM query failed"},
		{name: "not found is ignored", begin: time.Now(), err: gorm.ErrRecordNotFound, wantNil: true},
		{name: "slow query is warned", begin: time.Now().Add(-time.Second), want: "GORM slow query"},
		{name: "fast query hidden outside debug", begin: time.Now(), wantNil: true},
		{name: "fast query shown in debug", debug: true, begin: time.Now(), want: "GORM query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l, buf := newTestGormLogger(tt.debug)
			l.Trace(context.Background(), tt.begin, sqlFn, tt.err)

			if tt.wantNil {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "component=gorm")
		})
	}
}

func TestGormSlogLogger_LogMode(t *testing.T) {
	t.Parallel()

	l, buf := newTestGormLogger(false)
	l.LogMode(logger.Silent).Error(context.Background(), "hidden %d", 1)
	assert.Empty(t, buf.String())

	l.Warn(context.Background(), "visible %d", 2)
	assert.Contains(t, buf.String(), "visible 2")
}
