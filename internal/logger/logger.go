package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

var (
	// process-wide logger, configured from ENVIRONMENT and LOG_LEVEL
	defaultLogger *slog.Logger
)

func init() {
	defaultLogger = New(os.Getenv("ENVIRONMENT"), os.Getenv("LOG_LEVEL"), nil)
}

// builds a logger for the given environment.
// production gets JSON on stdout at info, everything else gets text on stderr at debug.
// level overrides the environment default when it names a known slog level.
func New(env, level string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}

	if env == "production" {
		opts.Level = slog.LevelInfo
	}

	if lvl, ok := parseLevel(level); ok {
		opts.Level = lvl
	}

	if env == "production" {
		if w == nil {
			w = os.Stdout
		}

		return slog.New(slog.NewJSONHandler(w, opts))
	}

	if w == nil {
		w = os.Stderr
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// returns the default logger instance
func Default() *slog.Logger {
	return defaultLogger
}

// replaces the default logger (tests and cmd wiring)
func SetDefault(l *slog.Logger) {
	if l != nil {
		defaultLogger = l
	}
}

// creates a logger with additional context fields
func With(args ...any) *slog.Logger {
	return defaultLogger.With(args...)
}

// returns the request-scoped logger stored in ctx, or the default one
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return defaultLogger
	}

	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}

	return defaultLogger
}

// stores a logger in ctx
func WithContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

type loggerKey struct{}

func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// logs an error with the error attached as "error"
func ErrorErr(err error, msg string, args ...any) {
	args = append(args, "error", err)
	defaultLogger.Error(msg, args...)
}

// logs and exits (CLI tools only)
func Fatal(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
	os.Exit(1)
}

// logs with the error attached and exits (CLI tools only)
func FatalErr(err error, msg string, args ...any) {
	args = append(args, "error", err)
	defaultLogger.Error(msg, args...)
	os.Exit(1)
}
