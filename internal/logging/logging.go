// Package logging builds the slog loggers used by the phonetics CLI.
//
// Output is a text handler. The level comes from, in order: an explicit
// level string (config file or flag), the LOG_LEVEL environment variable,
// and finally "warn".
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLevel is the environment variable consulted when no level is given.
const EnvLevel = "LOG_LEVEL"

// DefaultLevel applies when neither a level nor LOG_LEVEL is set.
const DefaultLevel = slog.LevelWarn

// ParseLevel maps debug, info, warn (warning) and error to slog levels.
// The empty string yields DefaultLevel.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultLevel, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return DefaultLevel, fmt.Errorf("logging: unknown level %q", s)
}

// Resolve picks the effective level: verbose forces debug, then level,
// then $LOG_LEVEL.
func Resolve(level string, verbose bool) (slog.Level, error) {
	if verbose {
		return slog.LevelDebug, nil
	}
	if level == "" {
		level = os.Getenv(EnvLevel)
	}

	return ParseLevel(level)
}

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
