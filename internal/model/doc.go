// Package model defines the core data types shared across the analyzer:
// the immutable page snapshot, the externally collected signal bags, the
// per-criterion scoring results with their typed breakdowns, and the final
// analysis report.
package model
