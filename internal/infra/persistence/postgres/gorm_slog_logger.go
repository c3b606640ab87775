package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"skillswap/config"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// slowQueryThreshold is well above the bbox prefilter and single-row lookups.
const slowQueryThreshold = 200 * time.Millisecond

// gormSlogLogger routes GORM output into the application's slog logger.
// Record-not-found is a normal outcome for location lookups and is never logged.
type gormSlogLogger struct {
	logger *slog.Logger
	level  logger.LogLevel
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{logger: baseLogger, level: level}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	clone := *l
	clone.level = level

	return &clone
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, msg, args...)
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if !l.enabled(logger.Error) {
		return
	}

	elapsed := time.Since(begin)

	var (
		gormLevel logger.LogLevel
		msg       string
		extra     slog.Attr
	)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		gormLevel, msg, extra = logger.Error, "GORM query failed", slog.String("error", err.Error())
	case elapsed > slowQueryThreshold:
		gormLevel, msg, extra = logger.Warn, "GORM slow query", slog.Duration("slowThreshold", slowQueryThreshold)
	default:
		gormLevel, msg = logger.Info, "GORM query"
	}

	if !l.enabled(gormLevel) {
		return
	}

	sql, rows := fc()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
	if extra.Key != "" {
		attrs = append(attrs, extra)
	}

	l.logger.LogAttrs(ctx, slogLevel(gormLevel), msg, attrs...)
}

func (l *gormSlogLogger) enabled(level logger.LogLevel) bool {
	return l.logger != nil && l.level != logger.Silent && l.level >= level
}

func (l *gormSlogLogger) printf(ctx context.Context, level logger.LogLevel, msg string, args ...any) {
	if !l.enabled(level) {
		return
	}

	l.logger.LogAttrs(ctx, slogLevel(level), "GORM", slog.String("message", fmt.Sprintf(msg, args...)))
}

func slogLevel(level logger.LogLevel) slog.Level {
	switch level {
	case logger.Error:
		return slog.LevelError
	case logger.Warn:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
