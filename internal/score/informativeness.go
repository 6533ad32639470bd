package score

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/krishirajsinh-p/WebBoost/internal/extract"
	"github.com/krishirajsinh-p/WebBoost/internal/model"
)

// Informativeness scores content depth and richness from four capped
// sub-scores: word-count depth, header structure, media density, and
// the citation quality supplied by citation analysis. Missing text or
// markup yields zero with an empty breakdown.
func Informativeness(text string, doc *goquery.Document, citations model.DataBag) model.CriterionResult {
	b := &model.InformativenessBreakdown{}

	if text == "" || doc == nil {
		b.Annotation = "missing text or markup"
		return model.CriterionResult{Score: 0, Breakdown: b}
	}

	b.WordCount = len(strings.Fields(text))
	b.HeaderCount = extract.HeaderCount(doc)
	b.ImageCount = extract.ImageCount(doc)
	b.LinkCount = extract.LinkCount(doc)

	b.DepthScore = min(30, float64(b.WordCount)/100)
	b.StructureScore = min(25, float64(b.HeaderCount)*2)
	b.MediaScore = min(20, float64(b.ImageCount+b.LinkCount)*1.5)
	b.CitationScore = min(extract.MaxCitationScore, citations.Float("citation_score"))

	final := clamp(b.DepthScore + b.StructureScore + b.MediaScore + b.CitationScore)
	b.FinalScore = final
	return model.CriterionResult{Score: final, Breakdown: b}
}
