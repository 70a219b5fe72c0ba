// Package logger provides a structured logging facility based on Zap.
//
// Every command builds its logger through New, so the preview server, the
// batch updater and the publisher share one output format.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: console (default, human readable with ISO8601 timestamps) or json
//
// # Request Correlation
//
// WithRayID extracts the RayID stored by the rayid middleware from a Fiber
// context and attaches it to the log entry.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Server started")
package logger
