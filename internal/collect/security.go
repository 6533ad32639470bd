package collect

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/krishirajsinh-p/WebBoost/internal/model"
)

// SecurityCollector derives transport security flags from the page URL
// and its resource references.
type SecurityCollector struct{}

// Source returns the signal source name.
func (c *SecurityCollector) Source() string { return model.SignalSecurity }

// Collect fills the security bag. Mixed content means plaintext
// sub-resources referenced from an HTTPS page.
func (c *SecurityCollector) Collect(_ context.Context, page *model.PageDocument) (model.DataBag, error) {
	if page == nil {
		return nil, ErrNoPage
	}

	https := page.IsHTTPS()
	bag := model.DataBag{
		"https":         https,
		"mixed_content": false,
	}

	if https && page.HasMarkup() {
		mixed := false
		page.Doc.Find("img[src], script[src], link[href], iframe[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			ref, ok := s.Attr("src")
			if !ok {
				ref, _ = s.Attr("href")
			}
			if strings.HasPrefix(strings.ToLower(ref), "http://") {
				mixed = true
				return false
			}
			return true
		})
		bag["mixed_content"] = mixed
	}

	return bag, nil
}
