package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"carewatch/config"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

// gormSlogLogger routes GORM output into the service slog logger under component=gorm.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	var scoped *slog.Logger
	if baseLogger != nil {
		scoped = baseLogger.With(slog.String("component", "gorm"))
	}

	return &gormSlogLogger{
		logger:        scoped,
		level:         level,
		slowThreshold: defaultGormSlowThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) emit(ctx context.Context, required logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.logger == nil || l.level < required {
		return
	}

	l.logger.LogAttrs(ctx, level, fmt.Sprintf(msg, args...))
}

// Trace logs failed queries at error, slow queries at warn and everything else at info.
// Record-not-found is expected on lookups and never logged as a failure.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	level, msg, ok := l.classify(elapsed, err)
	if !ok {
		return
	}

	sql, rows := sqlAndRowsFn()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
	if level == slog.LevelError {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	if level == slog.LevelWarn {
		attrs = append(attrs, slog.Duration("slowThreshold", l.slowThreshold))
	}

	l.logger.LogAttrs(ctx, level, msg, attrs...)
}

func (l *gormSlogLogger) classify(elapsed time.Duration, err error) (slog.Level, string, bool) {
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error:
		return slog.LevelError, "GORM query failed", true
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		return slog.LevelWarn, "GORM slow query", true
	case l.level >= logger.Info:
		return slog.LevelInfo, "GORM query", true
	default:
		return 0, "", false
	}
}
