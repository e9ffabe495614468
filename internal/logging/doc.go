// Package logging assembles structured slog loggers and formatting helpers used
// across mediaorg.
//
// It owns the console/JSON handlers, centralizes level and output plumbing, and
// exposes context helpers so organizer code can tag every line with the run ID
// and the file being processed. The package also provides a no-op logger for
// tests and wiring code that cannot fail.
package logging
