// Package logging provides structured logging configuration for typeahead.
//
// This package wraps log/slog so the CLI and the library packages log the
// same way. It supports configurable log levels and output formats.
//
// # Usage
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelDebug,
//	    Format: logging.FormatText,
//	})
//
//	logger.Debug("rendering results", "items", len(items))
//
// # Output Formats
//
//   - Text: Human-readable format for terminals
//   - JSON: Structured format for log files and aggregation
//
// Setting Config.Tee writes a JSON copy of every record to a second writer
// through a MultiHandler.
//
// # Integration
//
// Library packages accept a *slog.Logger through an option and default to
// logging.Nop().
package logging
