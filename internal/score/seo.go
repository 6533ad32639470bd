package score

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/krishirajsinh-p/WebBoost/internal/extract"
	"github.com/krishirajsinh-p/WebBoost/internal/model"
)

// seoBaselineBonus is a flat addition applied before the final clamp.
// It raises the floor of the SEO criterion relative to its siblings;
// kept deliberately for parity with the established scoring behavior.
const seoBaselineBonus = 15.0

// SEOKeywords scores search optimization from discrete on-page bonuses
// (title and meta-description length bands, a single H1, indexing,
// JSON-LD schema blocks) plus the keyword, linking, freshness, and
// URL-structure sub-scores supplied by extraction. Missing markup
// yields zero without the baseline bonus.
func SEOKeywords(doc *goquery.Document, seo, keywords, linking, freshness model.DataBag, url string) model.CriterionResult {
	b := &model.SEOBreakdown{}

	if doc == nil {
		b.Annotation = "missing markup"
		return model.CriterionResult{Score: 0, Breakdown: b}
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title != "" {
		b.HasTitle = true
		b.TitleLength = len(title)
		if b.TitleLength >= 30 && b.TitleLength <= 60 {
			b.TitleOptimal = true
			b.TitleScore = 10
		}
	}

	if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok && desc != "" {
		b.HasMetaDesc = true
		b.MetaDescLength = len(desc)
		if b.MetaDescLength >= 120 && b.MetaDescLength <= 160 {
			b.MetaDescOptimal = true
			b.MetaDescScore = 10
		}
	}

	b.H1Count = extract.H1Count(doc)
	if b.H1Count == 1 {
		b.H1Optimal = true
		b.H1Score = 5
	}

	if seo.Bool("indexed") {
		b.IsIndexed = true
		b.IndexingScore = 10
	}

	b.KeywordScore = keywords.Float("keyword_score")
	b.LinkingScore = linking.Float("linking_score")
	b.FreshnessScore = freshness.Float("freshness_score")

	b.SchemaMarkupCount = extract.SchemaMarkupCount(doc)
	b.SchemaScore = min(10, float64(b.SchemaMarkupCount)*3)

	b.URLScore = extract.URLStructure(url)
	b.BaselineBonus = seoBaselineBonus

	sum := b.TitleScore + b.MetaDescScore + b.H1Score + b.IndexingScore +
		b.KeywordScore + b.LinkingScore + b.FreshnessScore +
		b.SchemaScore + b.URLScore + b.BaselineBonus
	final := clamp(sum)
	b.FinalScore = final
	return model.CriterionResult{Score: final, Breakdown: b}
}
