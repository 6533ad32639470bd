package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/krishirajsinh-p/WebBoost/internal/model"
)

// MaxLinkingScore caps the internal-linking sub-score fed into SEO
// scoring.
const MaxLinkingScore = 10.0

// InternalLinking classifies the page's anchors as internal or external
// relative to the page's own domain. Relative links count as internal.
// The linking_score rewards internal links at half a point each, plus a
// small bonus for having any outbound links at all.
func InternalLinking(doc *goquery.Document, domain string) model.DataBag {
	bag := model.DataBag{
		"internal_links": 0,
		"external_links": 0,
		"linking_score":  0.0,
	}
	if doc == nil {
		return bag
	}

	domain = strings.ToLower(domain)
	internal, external := 0, 0
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		host := hostOf(href)
		switch {
		case host == "":
			// Relative links and fragments stay on the same domain.
			internal++
		case host == domain:
			internal++
		default:
			external++
		}
	})

	score := float64(internal) * 0.5
	if external > 0 {
		score += 2
	}

	bag["internal_links"] = internal
	bag["external_links"] = external
	bag["linking_score"] = min(MaxLinkingScore, score)
	return bag
}
