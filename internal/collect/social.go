package collect

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/krishirajsinh-p/WebBoost/internal/model"
)

// Platforms probed for presence in page markup. The keys become boolean
// entries in the social bag.
var trackedPlatforms = []string{
	"facebook", "twitter", "instagram", "linkedin", "youtube", "pinterest", "tiktok",
}

// Class-name fragments marking social proof elements.
var socialProofTokens = map[string]string{
	"share_counts":    "share-count",
	"follower_counts": "follower",
	"testimonials":    "testimonial",
}

// SocialCollector derives social platform presence, sharing buttons,
// and social proof counts from page content.
type SocialCollector struct{}

// Source returns the signal source name.
func (c *SocialCollector) Source() string { return model.SignalSocial }

// Collect fills the social bag. Platform presence is a substring scan
// over the raw HTML so both profile links and embedded widgets count.
func (c *SocialCollector) Collect(_ context.Context, page *model.PageDocument) (model.DataBag, error) {
	if page == nil {
		return nil, ErrNoPage
	}

	bag := model.DataBag{"sharing_buttons": 0}
	lower := strings.ToLower(page.HTML)
	for _, platform := range trackedPlatforms {
		bag[platform] = strings.Contains(lower, platform)
	}

	proof := model.DataBag{
		"share_counts":    0,
		"follower_counts": 0,
		"testimonials":    0,
	}

	if page.HasMarkup() {
		sharing := 0
		page.Doc.Find("[class]").Each(func(_ int, s *goquery.Selection) {
			class, _ := s.Attr("class")
			classLower := strings.ToLower(class)
			if strings.Contains(classLower, "share") && strings.Contains(classLower, "button") {
				sharing++
			}
			for key, token := range socialProofTokens {
				if strings.Contains(classLower, token) {
					proof[key] = proof.Int(key) + 1
				}
			}
		})
		bag["sharing_buttons"] = sharing
	}

	bag["social_proof"] = proof
	return bag, nil
}
