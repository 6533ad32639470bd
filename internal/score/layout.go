package score

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/krishirajsinh-p/WebBoost/internal/extract"
	"github.com/krishirajsinh-p/WebBoost/internal/model"
)

// LayoutQuality scores page presentation from a base of 40 plus fixed
// bonuses for mobile readiness, HTTPS, a single H1, and the three
// design sub-scores taken verbatim from design analysis. Markup is
// optional; without it only the H1 bonus is lost.
func LayoutQuality(doc *goquery.Document, mobile, security, design model.DataBag) model.CriterionResult {
	b := &model.LayoutBreakdown{BaseScore: 40}

	b.HasViewport = mobile.Bool("has_viewport")
	b.HandheldFriendly = mobile.Bool("handheld_friendly")
	b.TouchOptimized = mobile.Bool("touch_optimized")
	b.HasHTTPS = security.Bool("https")

	if b.HasViewport {
		b.ViewportScore = 10
	}
	if b.HandheldFriendly {
		b.MobileScore += 5
	}
	if b.TouchOptimized {
		b.MobileScore += 5
	}
	if b.HasHTTPS {
		b.SecurityScore = 10
	}

	if doc != nil {
		b.H1Count = extract.H1Count(doc)
		if b.H1Count == 1 {
			b.H1Score = 5
		}
	}

	b.WhitespaceScore = design.Float("whitespace_score")
	b.TypographyScore = design.Float("typography_score")
	b.ColorContrastScore = design.Float("color_contrast_score")

	final := clamp(b.BaseScore + b.ViewportScore + b.MobileScore + b.SecurityScore +
		b.H1Score + b.WhitespaceScore + b.TypographyScore + b.ColorContrastScore)
	b.FinalScore = final
	return model.CriterionResult{Score: final, Breakdown: b}
}
