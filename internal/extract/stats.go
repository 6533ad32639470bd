package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/krishirajsinh-p/WebBoost/internal/model"
)

// ContentStats exports the basic content counts consumed by both the
// informativeness scorer and the report's raw data section.
func ContentStats(text string, doc *goquery.Document) model.DataBag {
	return model.DataBag{
		"word_count":   len(strings.Fields(text)),
		"header_count": HeaderCount(doc),
		"image_count":  ImageCount(doc),
		"link_count":   LinkCount(doc),
	}
}
