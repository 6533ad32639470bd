package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Class-name fragments that mark an element as an ad container.
var adClassTokens = []string{"ad-", "ads", "advert", "banner", "sponsor"}

func containsAdToken(class string) bool {
	lower := strings.ToLower(class)
	for _, token := range adClassTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}

// Penalty ceilings for intrusive ad behavior. Both are subtracted from
// the perfect ad-experience score alongside the indicator density
// penalty.
const (
	MaxPlacementPenalty = 15.0
	MaxAutoplayPenalty  = 20.0
)

// AdPlacement penalizes ad containers positioned where they interrupt
// reading: sticky or fixed elements and ad classes inside the page
// header or before the first heading. Five points per offending
// element, capped.
func AdPlacement(doc *goquery.Document) float64 {
	if doc == nil {
		return 0
	}

	offenders := countClassContaining(doc, "sticky") + countClassContaining(doc, "fixed")
	doc.Find("header, body > div:first-of-type").Each(func(_ int, s *goquery.Selection) {
		s.Find("[class]").Each(func(_ int, inner *goquery.Selection) {
			class, _ := inner.Attr("class")
			if containsAdToken(class) {
				offenders++
			}
		})
	})

	return min(MaxPlacementPenalty, float64(offenders)*5)
}

// DetectAutoplayMedia penalizes autoplaying video and audio, ten points
// per element, capped. Muted autoplay still counts; motion is the
// intrusion, not sound.
func DetectAutoplayMedia(doc *goquery.Document) float64 {
	if doc == nil {
		return 0
	}
	count := doc.Find("video[autoplay], audio[autoplay]").Length()
	return min(MaxAutoplayPenalty, float64(count)*10)
}
