package score

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/krishirajsinh-p/WebBoost/internal/extract"
	"github.com/krishirajsinh-p/WebBoost/internal/model"
)

// Engagement scores reader involvement from three parts: a sentiment
// proxy over a fixed lexicon, a bounded interaction proxy counting
// questions, exclamations, and calls to action, and a skimming
// sub-score derived from markup structure. Empty text yields zero.
func Engagement(text string, doc *goquery.Document) model.CriterionResult {
	b := &model.EngagementBreakdown{}

	if text == "" {
		b.Annotation = "missing text"
		return model.CriterionResult{Score: 0, Breakdown: b}
	}

	lower := strings.ToLower(text)
	b.PositiveWords = extract.CountPositiveWords(lower)
	b.NegativeWords = extract.CountNegativeWords(lower)
	b.Questions = strings.Count(text, "?")
	b.Exclamations = strings.Count(text, "!")
	b.CTAWords = extract.CountCTAWords(lower)

	b.SentimentScore = clamp(50 + float64(b.PositiveWords-b.NegativeWords)*3)
	b.InteractionScore = min(30, float64(b.Questions)*2+float64(b.Exclamations)*1.5+float64(b.CTAWords)*2)
	b.SkimmingScore = extract.SkimmingOptimization(doc)

	final := clamp(b.SentimentScore + b.InteractionScore + b.SkimmingScore)
	b.FinalScore = final
	return model.CriterionResult{Score: final, Breakdown: b}
}
