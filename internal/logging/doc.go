// Package logging assembles structured slog loggers and formatting helpers used
// across Hoarder.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so per-file code automatically
// tags log lines with the run correlation ID and the source path. The package
// also provides a no-op logger for tests and wiring code that cannot fail.
package logging
