// Package logging assembles structured slog loggers and formatting helpers used
// across discsub components.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so pipeline code automatically
// tags log lines with stage names, catalog disc IDs, and correlation IDs.
// NewNop provides a silent logger for tests and wiring code that cannot fail.
package logging
