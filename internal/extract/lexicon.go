package extract

import "regexp"

// Fixed lexicons for sentiment, interaction, and originality counting.
// Patterns are matched against lowercased text on word boundaries.
var (
	positiveWordsRe = regexp.MustCompile(`\b(great|excellent|amazing|love|perfect|wonderful|good|nice|awesome)\b`)
	negativeWordsRe = regexp.MustCompile(`\b(bad|terrible|awful|hate|worst|horrible|poor|disappointing)\b`)
	ctaWordsRe      = regexp.MustCompile(`\b(click|learn|discover|join|subscribe|download|sign up|get started)\b`)

	researchWordsRe       = regexp.MustCompile(`\b(research|study|survey|data|analysis|experiment|finding)\b`)
	firstPersonRe         = regexp.MustCompile(`\b(i|we|our|us|my|mine|ours)\b`)
	primaryResearchRe     = regexp.MustCompile(`\b(interview|surveyed|studied|analyzed|experimented|observed)\b`)
	lexicalDiversityWords = regexp.MustCompile(`\b[a-zA-Z]{4,}\b`)
)

// CountPositiveWords counts positive-sentiment lexicon hits in the
// lowercased text.
func CountPositiveWords(lower string) int {
	return len(positiveWordsRe.FindAllString(lower, -1))
}

// CountNegativeWords counts negative-sentiment lexicon hits.
func CountNegativeWords(lower string) int {
	return len(negativeWordsRe.FindAllString(lower, -1))
}

// CountCTAWords counts call-to-action phrase hits.
func CountCTAWords(lower string) int {
	return len(ctaWordsRe.FindAllString(lower, -1))
}

// CountResearchWords counts research-vocabulary hits.
func CountResearchWords(lower string) int {
	return len(researchWordsRe.FindAllString(lower, -1))
}

// CountFirstPersonWords counts first-person pronoun hits.
func CountFirstPersonWords(lower string) int {
	return len(firstPersonRe.FindAllString(lower, -1))
}

// CountPrimaryResearchWords counts primary-research vocabulary hits.
func CountPrimaryResearchWords(lower string) int {
	return len(primaryResearchRe.FindAllString(lower, -1))
}

// LexicalDiversity returns the distinct-to-total ratio among words of
// four or more letters, or zero for text with no qualifying words.
func LexicalDiversity(lower string) float64 {
	words := lexicalDiversityWords.FindAllString(lower, -1)
	if len(words) == 0 {
		return 0
	}
	distinct := make(map[string]struct{}, len(words))
	for _, w := range words {
		distinct[w] = struct{}{}
	}
	return float64(len(distinct)) / float64(len(words))
}
