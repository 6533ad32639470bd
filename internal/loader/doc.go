// Package loader fetches web pages over HTTP and converts them into
// immutable page snapshots ready for analysis. It handles charset
// decoding, visible text extraction, and language detection.
package loader
