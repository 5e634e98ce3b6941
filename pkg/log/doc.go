// Package log provides a structured event trail for driver discovery and
// lifecycle.
//
// This package defines the Logger interface and Event types used to record
// what the registry scanner and the driver host did: which registry entries
// were accepted or skipped, which drivers were created, shared, released or
// torn down, and how the subsystem init count moved. It is separate from
// operational logging (slog); the event trail is machine readable and can be
// replayed with the asio-log tool.
//
// # Basic Usage
//
// Applications configure event logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	cfg.EventLogger = log.NewSlogAdapter(slog.Default())
//
//	// For production: write to binary file
//	cfg.EventLogger, _ = log.NewFileLogger("asio-host.alog")
//
//	// Both: use MultiLogger
//	cfg.EventLogger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Types
//
// Events are captured at three layers:
//   - Scanner: registry entries accepted or skipped (ScanEvent)
//   - Table: acquire/query/release/teardown of driver instances (LifecycleEvent)
//   - Guard: initialize/shutdown of the subsystem (GuardEvent)
//
// Failures at any layer are recorded as ErrorEventData.
//
// # File Format
//
// Log files are a stream of CBOR-encoded events with the .alog extension.
package log
