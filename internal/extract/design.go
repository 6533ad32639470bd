package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/krishirajsinh-p/WebBoost/internal/model"
)

// Sub-score ceilings for the design heuristics. Layout scoring adds
// these verbatim on top of its fixed bonuses, so the three caps keep a
// perfect page at exactly 100.
const (
	MaxWhitespaceScore    = 10.0
	MaxTypographyScore    = 10.0
	MaxColorContrastScore = 5.0
)

// DesignQuality estimates visual design quality from markup structure.
// Whitespace rewards text broken into paragraphs of moderate length,
// typography rewards a proper heading hierarchy, and color contrast
// gives credit for the presence of styling at all. These are
// coarse proxies; a headless renderer would do better but is out of
// reach for a static fetch.
func DesignQuality(doc *goquery.Document) model.DataBag {
	bag := model.DataBag{
		"paragraph_count":      0,
		"avg_paragraph_length": 0.0,
		"whitespace_score":     0.0,
		"typography_score":     0.0,
		"color_contrast_score": 0.0,
	}
	if doc == nil {
		return bag
	}

	paragraphs := doc.Find("p")
	pCount := paragraphs.Length()
	totalLen := 0
	paragraphs.Each(func(_ int, s *goquery.Selection) {
		totalLen += len(strings.TrimSpace(s.Text()))
	})

	avgLen := 0.0
	if pCount > 0 {
		avgLen = float64(totalLen) / float64(pCount)
	}

	var whitespace float64
	switch {
	case pCount == 0:
		whitespace = 0
	case avgLen > 0 && avgLen <= 500:
		whitespace = MaxWhitespaceScore
	case avgLen <= 1000:
		whitespace = 6
	default:
		whitespace = 3
	}

	typography := 0.0
	if H1Count(doc) > 0 {
		typography += 4
	}
	if doc.Find("h2").Length() > 0 {
		typography += 3
	}
	if doc.Find("h3, h4, h5, h6").Length() > 0 {
		typography += 3
	}

	contrast := 0.0
	if doc.Find(`link[rel="stylesheet"], style`).Length() > 0 {
		contrast = MaxColorContrastScore
	}

	bag["paragraph_count"] = pCount
	bag["avg_paragraph_length"] = avgLen
	bag["whitespace_score"] = whitespace
	bag["typography_score"] = min(MaxTypographyScore, typography)
	bag["color_contrast_score"] = contrast
	return bag
}
