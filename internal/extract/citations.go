package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/krishirajsinh-p/WebBoost/internal/model"
)

// MaxCitationScore caps the citation sub-score fed into
// informativeness scoring.
const MaxCitationScore = 25.0

// Domain suffixes treated as authoritative citation targets.
var authoritativeSuffixes = []string{".gov", ".edu", ".org"}

// Citations counts reference signals on the page: links to
// authoritative domains, blockquote and cite elements, and reference
// sections. Each citation is worth five points toward a capped
// citation_score.
func Citations(doc *goquery.Document) model.DataBag {
	bag := model.DataBag{
		"authoritative_links": 0,
		"quote_elements":      0,
		"reference_sections":  0,
		"citation_count":      0,
		"citation_score":      0.0,
	}
	if doc == nil {
		return bag
	}

	authoritative := 0
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		host := hostOf(href)
		for _, suffix := range authoritativeSuffixes {
			if strings.HasSuffix(host, suffix) {
				authoritative++
				break
			}
		}
	})

	quotes := doc.Find("blockquote, cite").Length()
	references := countClassContaining(doc, "reference") + countClassContaining(doc, "citation")

	total := authoritative + quotes + references

	bag["authoritative_links"] = authoritative
	bag["quote_elements"] = quotes
	bag["reference_sections"] = references
	bag["citation_count"] = total
	bag["citation_score"] = min(MaxCitationScore, float64(total)*5)
	return bag
}

// hostOf extracts the lowercased host portion of an absolute URL,
// or "" for relative links.
func hostOf(href string) string {
	lower := strings.ToLower(href)
	rest, ok := strings.CutPrefix(lower, "https://")
	if !ok {
		rest, ok = strings.CutPrefix(lower, "http://")
	}
	if !ok {
		return ""
	}
	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, ':'); i >= 0 {
		rest = rest[:i]
	}
	return rest
}
