// Package textstat computes classic readability statistics over plain
// text: Flesch Reading Ease, Flesch-Kincaid grade, Gunning Fog, SMOG,
// Automated Readability Index, and Coleman-Liau. The counting heuristics
// (word, sentence, and syllable detection) are tuned for English prose.
package textstat
