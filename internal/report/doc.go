// Package report provides output formatting for analysis results.
// It supports human-readable text, JSON, and Markdown formats through
// a common Writer interface.
package report
