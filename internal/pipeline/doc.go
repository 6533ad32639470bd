// Package pipeline provides the analysis orchestration framework.
// It defines the Step interface for individual analysis phases and the
// Pipeline type that runs them in sequence against one page, plus a
// BatchProcessor for analyzing many pages concurrently.
package pipeline
