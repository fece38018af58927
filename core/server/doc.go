// Package server holds the HTTP server configuration.
//
// It is intentionally small: the Fiber application itself is assembled in the
// start command, and features register their own routes through the loader.
package server
