package score

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/krishirajsinh-p/WebBoost/internal/extract"
	"github.com/krishirajsinh-p/WebBoost/internal/model"
)

// adIndicators groups case-insensitive HTML substring tokens by the ad
// technology they reveal. Every occurrence of every token contributes
// to the density penalty.
var adIndicators = map[string][]string{
	"Google Ads":    {"googleads", "adsbygoogle", "googlesyndication"},
	"DoubleClick":   {"doubleclick"},
	"General Ads":   {"advertisement", "ad-banner", "banner-ad"},
	"Popups/Modals": {"popup", "modal", "overlay"},
	"Ad Containers": {"ad-container", "ad-unit", "ad-slot", "ad-wrapper"},
	"Video Ads":     {"video-ad", "preroll", "midroll"},
	"Display Ads":   {"display-ad", "banner", "leaderboard"},
	"Sponsored":     {"sponsored", "promoted"},
}

// AdExperience scores how intrusive advertising is, starting from a
// perfect 100 and subtracting a density penalty of five points per ad
// indicator occurrence plus placement and autoplay penalties. Empty
// HTML scores a perfect 100: no evidence of ads is treated as no ads.
func AdExperience(html string, doc *goquery.Document) model.CriterionResult {
	b := &model.AdExperienceBreakdown{
		AdTypes:    map[string]int{},
		FinalScore: 100,
	}

	if html == "" {
		return model.CriterionResult{Score: 100, Breakdown: b}
	}

	lower := strings.ToLower(html)
	total := 0
	for category, tokens := range adIndicators {
		categoryCount := 0
		for _, token := range tokens {
			categoryCount += strings.Count(lower, token)
		}
		if categoryCount > 0 {
			b.AdTypes[category] = categoryCount
		}
		total += categoryCount
	}

	b.AdIndicatorCount = total
	b.AdDensityPenalty = float64(total) * 5
	b.PlacementPenalty = extract.AdPlacement(doc)
	b.AutoplayPenalty = extract.DetectAutoplayMedia(doc)

	final := clamp(100 - b.AdDensityPenalty - b.PlacementPenalty - b.AutoplayPenalty)
	b.FinalScore = final
	return model.CriterionResult{Score: final, Breakdown: b}
}
