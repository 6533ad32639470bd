package collect

import (
	"context"
	"strings"

	"github.com/krishirajsinh-p/WebBoost/internal/model"
)

// MobileCollector derives mobile-friendliness flags from page markup.
type MobileCollector struct{}

// Source returns the signal source name.
func (c *MobileCollector) Source() string { return model.SignalMobile }

// Collect fills the mobile bag. A page without parsed markup yields an
// all-false bag rather than an error; absent markup means absent
// evidence of mobile support.
func (c *MobileCollector) Collect(_ context.Context, page *model.PageDocument) (model.DataBag, error) {
	if page == nil {
		return nil, ErrNoPage
	}

	bag := model.DataBag{
		"has_viewport":      false,
		"handheld_friendly": false,
		"touch_optimized":   false,
	}
	if !page.HasMarkup() {
		return bag, nil
	}

	doc := page.Doc
	if doc.Find(`meta[name="viewport"]`).Length() > 0 {
		bag["has_viewport"] = true
	}
	if content, ok := doc.Find(`meta[name="HandheldFriendly"]`).First().Attr("content"); ok {
		bag["handheld_friendly"] = strings.EqualFold(strings.TrimSpace(content), "true")
	}
	if doc.Find(`link[rel="apple-touch-icon"], meta[name="apple-mobile-web-app-capable"]`).Length() > 0 {
		bag["touch_optimized"] = true
	}

	return bag, nil
}
