package config

import (
	"log/slog"
	"os"
	"strings"
)

// ServiceName tags every log record and names the X-Ray segment.
const ServiceName = "tutorportal"

// NewLogger returns the process logger. Production writes JSON to stdout,
// anything else writes text. Every record carries the service name.
func NewLogger(environment, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	var h slog.Handler
	if environment == "production" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(h).With("service", ServiceName)
}

// ParseLevel maps LOG_LEVEL (debug, info, warn, error) to a slog level.
// Unknown values mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
