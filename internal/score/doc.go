// Package score implements the nine criterion scorers and the weighted
// aggregator. Every scorer is a pure function of its inputs returning a
// score in [0, 100] plus a typed breakdown of how the score was
// derived; failures inside a scorer degrade to documented defaults
// instead of propagating.
package score
