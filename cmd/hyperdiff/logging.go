package main

import (
	"log/slog"
	"os"
	"strings"
)

// initLogging builds the process-wide slog logger from the --log-level/
// --log-format flags (falling back to HYPERDIFF_LOG_LEVEL), writing to
// stderr so stdout stays reserved for diff/match output.
func initLogging(level, format string) *slog.Logger {
	if env := os.Getenv("HYPERDIFF_LOG_LEVEL"); env != "" && level == "" {
		level = env
	}

	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
