package collect

import (
	"context"
	"strings"

	"github.com/krishirajsinh-p/WebBoost/internal/model"
)

// SEOCollector derives indexability signals from page markup.
type SEOCollector struct{}

// Source returns the signal source name.
func (c *SEOCollector) Source() string { return model.SignalSEO }

// Collect fills the seo bag. A page is considered indexed unless a
// robots meta tag says noindex; absence of the tag is the common case
// for indexable pages.
func (c *SEOCollector) Collect(_ context.Context, page *model.PageDocument) (model.DataBag, error) {
	if page == nil {
		return nil, ErrNoPage
	}

	bag := model.DataBag{
		"indexed":       false,
		"has_canonical": false,
	}
	if !page.HasMarkup() {
		return bag, nil
	}

	doc := page.Doc

	indexed := true
	if content, ok := doc.Find(`meta[name="robots"]`).First().Attr("content"); ok {
		if strings.Contains(strings.ToLower(content), "noindex") {
			indexed = false
		}
	}
	bag["indexed"] = indexed

	if doc.Find(`link[rel="canonical"]`).Length() > 0 {
		bag["has_canonical"] = true
	}

	return bag, nil
}
