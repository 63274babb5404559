// Package log builds the slog loggers used for diagnostics. Diagnostics are
// written to stderr and never change the report or the exit code.
//
//	logger := log.New(os.Stderr, verbose)
//	logger.Warn("lockfile malformed, skipped", "path", p, "err", err)
package log
