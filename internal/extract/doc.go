// Package extract derives structured metrics from page text and parsed
// markup: keyword density, citations, internal linking, content
// freshness, design heuristics, ad placement, and navigation affordances.
// Every function is pure and tolerant of missing input, returning zero
// values or empty bags rather than errors.
package extract
