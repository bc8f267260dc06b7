// Package logging provides structured logging for guestsheet.
//
// This package wraps a package-level zap logger with convenience functions
// for the events the sheet controller emits: field edits, entries added or
// rejected, validation passes and mode changes.
//
// # Silent by Default
//
// Logging is off unless a level is given, either explicitly or through the
// GUESTSHEET_LOG_LEVEL environment variable. Until Initialize is called every
// function logs to a no-op logger.
//
// # Output
//
// The TUI draws on the terminal, so logs go to a file:
//
//	if err := logging.Initialize("debug", "/tmp/guestsheet.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Secrets
//
// Field values are never logged, only their length. The WiFi password is a
// sheet field like any other.
package logging
