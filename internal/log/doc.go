// Package log provides structured logging helpers built on log/slog,
// including a handler wrapper that truncates oversized attribute values
// so raw page content never floods the log output.
package log
