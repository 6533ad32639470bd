package extract

import (
	"sort"
	"strings"

	"github.com/krishirajsinh-p/WebBoost/internal/model"
)

// MaxKeywordScore caps the keyword sub-score fed into SEO scoring.
const MaxKeywordScore = 10.0

// Common English words excluded from keyword frequency analysis.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "all": {}, "can": {}, "her": {}, "was": {}, "one": {},
	"our": {}, "out": {}, "has": {}, "have": {}, "this": {}, "that": {},
	"with": {}, "from": {}, "they": {}, "will": {}, "would": {}, "there": {},
	"their": {}, "what": {}, "about": {}, "which": {}, "when": {}, "more": {},
	"your": {}, "some": {}, "them": {}, "other": {}, "than": {}, "then": {},
	"into": {}, "only": {}, "also": {}, "been": {}, "were": {}, "these": {},
}

// Keywords computes keyword frequency metrics from visible text.
// The bag carries the top keywords, the density of the most frequent
// term, and a bounded keyword_score for SEO scoring: a density in the
// 1-3% sweet spot earns the full score, a detectable-but-weak focus
// earns a partial score, and anything else a token score.
func Keywords(text string) model.DataBag {
	bag := model.DataBag{
		"top_keywords":  []string{},
		"top_density":   0.0,
		"keyword_score": 0.0,
	}
	if text == "" {
		return bag
	}

	freq := make(map[string]int)
	total := 0
	for _, w := range strings.Fields(strings.ToLower(text)) {
		w = strings.Trim(w, ".,!?;:\"'()[]")
		if len(w) < 3 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		freq[w]++
		total++
	}
	if total == 0 {
		return bag
	}

	type kv struct {
		word  string
		count int
	}
	ranked := make([]kv, 0, len(freq))
	for w, c := range freq {
		ranked = append(ranked, kv{w, c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].word < ranked[j].word
	})

	top := make([]string, 0, 5)
	for i := 0; i < len(ranked) && i < 5; i++ {
		top = append(top, ranked[i].word)
	}

	density := float64(ranked[0].count) / float64(total) * 100

	var score float64
	switch {
	case density >= 1 && density <= 3:
		score = MaxKeywordScore
	case density > 0.5 && density <= 5:
		score = 6
	default:
		score = 2
	}

	bag["top_keywords"] = top
	bag["top_density"] = density
	bag["keyword_score"] = score
	return bag
}
