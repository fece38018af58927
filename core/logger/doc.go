// Package logger builds the application's zap logger.
//
// Production runs use JSON encoding; setting the level to "debug" or the
// format to "console" switches to a human-friendly development encoder,
// which is what the CLI commands use.
//
// # Request tracing
//
// WithRayID derives a child logger carrying the ray_id stored in the Fiber
// request context by the rayid middleware, so every log line emitted while
// serving a request can be correlated.
package logger
