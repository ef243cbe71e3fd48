// Package logging assembles structured slog loggers and formatting helpers used
// across bookbinder.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so pipeline code automatically
// tags log lines with the run identifier and assembly state. The package also
// provides a no-op logger for tests and wiring code that cannot fail, plus a
// ProgressSampler that keeps encode progress from flooding non-interactive logs.
package logging
