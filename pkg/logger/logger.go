// Package logger builds the process-wide slog logger and a few attribute
// helpers so call sites log scopes and errors under consistent keys.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"go.uber.org/fx"
)

var Module = fx.Module("logger",
	fx.Provide(NewLogger),
)

// NewLogger returns a logger configured from LOG_LEVEL and GO_ENV.
// Production uses JSON output; everything else uses the text handler.
func NewLogger() *slog.Logger {
	return New(os.Stdout, os.Getenv("LOG_LEVEL"), os.Getenv("GO_ENV"))
}

// New builds a logger writing to w.
func New(w io.Writer, level, env string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(env, "production") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// ParseLevel maps a LOG_LEVEL value to a slog level. Unknown values are info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Scope tags a log line with the component that produced it.
func Scope(name string) slog.Attr {
	return slog.String("scope", name)
}

// Error attaches err under the "error" key.
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}
