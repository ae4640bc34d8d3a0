// Package logging provides structured logging utilities for the vmxaudit
// tool.
//
// # Overview
//
// This package wraps the standard library slog package with tool-specific
// defaults: JSON output to stderr, environment-based log level configuration
// (LOG_LEVEL), module/version context injection, and source location
// tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive): DEBUG, INFO (default),
// WARN/WARNING, ERROR.
//
// # Usage
//
// Setting the default logger early in main:
//
//	logging.SetDefaultStructuredLogger("vmxaudit", version)
//	slog.Info("starting", "root", rootPath)
//
// Setting an explicit level (e.g. from a CLI flag):
//
//	logging.SetDefaultStructuredLoggerWithLevel("vmxaudit", version, "debug")
//
// All recoverable per-file failures during an audit run are reported through
// the default logger installed here; every entry carries a timestamp, so the
// log doubles as the run's append-only diagnostic trail.
package logging
