package score

import (
	"strings"

	"github.com/krishirajsinh-p/WebBoost/internal/extract"
	"github.com/krishirajsinh-p/WebBoost/internal/model"
)

// Uniqueness scores originality signals in the text: research
// vocabulary, first-person voice, lexical diversity, and primary
// research vocabulary, each as a capped bonus on a base of 40.
// Empty text yields zero with an all-zero breakdown.
func Uniqueness(text string) model.CriterionResult {
	b := &model.UniquenessBreakdown{}

	if text == "" {
		b.Annotation = "missing text"
		return model.CriterionResult{Score: 0, Breakdown: b}
	}

	lower := strings.ToLower(text)
	b.ResearchWords = extract.CountResearchWords(lower)
	b.FirstPersonWords = extract.CountFirstPersonWords(lower)
	b.UniqueWordRatio = extract.LexicalDiversity(lower)
	b.PrimaryResearchWords = extract.CountPrimaryResearchWords(lower)

	b.BaseScore = 40
	b.ResearchBonus = min(20, float64(b.ResearchWords)*3)
	b.FirstPersonBonus = min(15, float64(b.FirstPersonWords)*0.8)
	b.UniquenessBonus = min(15, b.UniqueWordRatio*30)
	b.PrimaryResearchBonus = min(10, float64(b.PrimaryResearchWords)*2)

	final := clamp(b.BaseScore + b.ResearchBonus + b.FirstPersonBonus + b.UniquenessBonus + b.PrimaryResearchBonus)
	b.FinalScore = final
	return model.CriterionResult{Score: final, Breakdown: b}
}
