// Package logging provides structured logging utilities for barplan.
//
// # Overview
//
// This package wraps the standard library slog package with barplan defaults
// so every command and service logs the same way: JSON to stderr, a module and
// version attribute on every record, and source locations on debug records.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (the CLI does this from --log-level or the
// config file):
//
//	logging.SetDefaultStructuredLoggerWithLevel("barplan", version, "debug")
//	slog.Info("ranking candidates", "project", name, "candidates", n)
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls verbosity when no explicit
// level is given:
//
//	LOG_LEVEL=debug barplan rank --recipes recipes.yaml --project bar.yaml
//
// The scoring core (pkg/scoring, pkg/units) does not log; logging happens in
// the planner, catalog and CLI layers.
package logging
