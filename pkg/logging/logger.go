// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package logging provides structured logging for klaxon.
//
// The logger is a thin layer over Go's slog package:
//
//   - Default: stderr output, text format (follows Unix conventions)
//   - JSON: one object per line for log shippers
//   - Nop: discards everything (library default)
//
// # Basic Usage
//
//	logger := logging.Default()
//	logger.Info("gate resolved", "alert_id", id, "proceed", true)
//
// # Interaction With Prompts
//
// The gate writes prompts to stderr as well. A library caller that wants
// logs should either raise the level above Debug or point Output somewhere
// else, otherwise log lines interleave with the warning block.
//
// # Thread Safety
//
// Logger is safe for concurrent use; the underlying slog.Logger is.
//
// # Security Considerations
//
// This package does NOT redact. Callers must not log challenge tokens or
// raw user answers:
//
//	// BAD
//	logger.Debug("challenge", "token", token)
//
//	// GOOD
//	logger.Debug("challenge", "mode", mode.String())
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// =============================================================================
// Log Levels
// =============================================================================

// Level represents log severity levels.
//
// Levels follow the slog convention and are ordered by severity:
// Debug < Info < Warn < Error
type Level int

const (
	// LevelDebug is for development troubleshooting.
	// Example: "challenge built", "gate resolved"
	LevelDebug Level = iota

	// LevelInfo is for normal operational messages.
	// Example: "running guarded command"
	LevelInfo

	// LevelWarn is for potentially problematic situations.
	// Example: "metrics file not written"
	LevelWarn

	// LevelError is for error conditions.
	// Example: "guarded command failed to start"
	LevelError
)

// String returns the human-readable name of the level.
//
// Returns "DEBUG", "INFO", "WARN", "ERROR", or "UNKNOWN".
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a flag value into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", s)
	}
}

// toSlogLevel converts our Level to slog.Level.
func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// =============================================================================
// Configuration
// =============================================================================

// Config configures the Logger behavior.
//
// A zero-value Config creates a logger that writes Info+ messages to
// stderr in text format.
//
// Example configurations:
//
// CLI default:
//
//	Config{Level: LevelWarn, Service: "klaxon"}
//
// Debugging a wrapper script:
//
//	Config{Level: LevelDebug, JSON: true}
type Config struct {
	// Level sets the minimum log level.
	// Default: LevelInfo
	Level Level

	// Service is attached to every record as the "service" attribute.
	// Default: "" (no service attribute)
	Service string

	// JSON enables JSON output format.
	// Default: false (text format)
	JSON bool

	// Quiet discards all output.
	// Default: false
	Quiet bool

	// Output overrides the destination.
	// Default: os.Stderr
	Output io.Writer
}

// =============================================================================
// Logger
// =============================================================================

// Logger provides structured logging.
//
// # Creating Child Loggers
//
// Use With() to create a logger with additional attributes:
//
//	alertLogger := logger.With("alert_id", id)
//	alertLogger.Debug("challenge built", "mode", "yesno")
type Logger struct {
	slog   *slog.Logger
	config Config
}

// New creates a Logger with the given configuration.
//
// Example:
//
//	logger := logging.New(logging.Config{
//	    Level:   logging.LevelDebug,
//	    Service: "klaxon",
//	})
func New(config Config) *Logger {
	opts := &slog.HandlerOptions{
		Level: config.Level.toSlogLevel(),
	}

	out := config.Output
	if out == nil {
		out = os.Stderr
	}
	if config.Quiet {
		out = io.Discard
	}

	var handler slog.Handler
	if config.JSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	if config.Service != "" {
		handler = handler.WithAttrs([]slog.Attr{
			slog.String("service", config.Service),
		})
	}

	return &Logger{
		slog:   slog.New(handler),
		config: config,
	}
}

// Default returns a logger with default settings.
//
// The default configuration:
//   - Level: Info
//   - Output: stderr only
//   - Format: text (human-readable)
//   - Service: "klaxon"
func Default() *Logger {
	return New(Config{
		Level:   LevelInfo,
		Service: "klaxon",
	})
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return New(Config{Quiet: true})
}

// Enabled reports whether records at level would be written.
func (l *Logger) Enabled(level Level) bool {
	if l.config.Quiet {
		return false
	}
	return l.slog.Enabled(context.Background(), level.toSlogLevel())
}

// Debug logs a message at Debug level.
//
// Example:
//
//	logger.Debug("gate resolved", "reason", "accepted")
func (l *Logger) Debug(msg string, args ...any) {
	l.slog.Debug(msg, args...)
}

// Info logs a message at Info level.
func (l *Logger) Info(msg string, args ...any) {
	l.slog.Info(msg, args...)
}

// Warn logs a message at Warn level.
func (l *Logger) Warn(msg string, args ...any) {
	l.slog.Warn(msg, args...)
}

// Error logs a message at Error level.
//
// Note: For fatal errors that should terminate the program,
// use Error() followed by os.Exit().
func (l *Logger) Error(msg string, args ...any) {
	l.slog.Error(msg, args...)
}

// With returns a new Logger with additional attributes.
//
// The parent logger is not modified.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		slog:   l.slog.With(args...),
		config: l.config,
	}
}

// Slog returns the underlying slog.Logger.
func (l *Logger) Slog() *slog.Logger {
	return l.slog
}
