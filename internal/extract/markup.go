package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// classContains reports whether any element carries a class attribute
// containing the substring, matched case-insensitively.
func classContains(doc *goquery.Document, substr string) bool {
	return countClassContaining(doc, substr) > 0
}

// countClassContaining counts elements whose class attribute contains
// the substring, matched case-insensitively.
func countClassContaining(doc *goquery.Document, substr string) int {
	if doc == nil {
		return 0
	}
	count := 0
	doc.Find("[class]").Each(func(_ int, s *goquery.Selection) {
		class, _ := s.Attr("class")
		if strings.Contains(strings.ToLower(class), substr) {
			count++
		}
	})
	return count
}

// hrefContains reports whether any anchor's href contains the substring,
// matched case-insensitively.
func hrefContains(doc *goquery.Document, substr string) bool {
	if doc == nil {
		return false
	}
	found := false
	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		if strings.Contains(strings.ToLower(href), substr) {
			found = true
			return false
		}
		return true
	})
	return found
}

// HasSearchInput reports whether the page carries a search input field.
func HasSearchInput(doc *goquery.Document) bool {
	if doc == nil {
		return false
	}
	return doc.Find(`input[type="search"]`).Length() > 0
}

// NavCount returns the number of nav elements.
func NavCount(doc *goquery.Document) int {
	if doc == nil {
		return 0
	}
	return doc.Find("nav").Length()
}

// HasBreadcrumbs reports whether any element has a breadcrumb class.
func HasBreadcrumbs(doc *goquery.Document) bool {
	return classContains(doc, "breadcrumb")
}

// HasSitemapLink reports whether any anchor points at a sitemap.
func HasSitemapLink(doc *goquery.Document) bool {
	return hrefContains(doc, "sitemap")
}

// HeaderCount returns the number of h1 through h6 elements.
func HeaderCount(doc *goquery.Document) int {
	if doc == nil {
		return 0
	}
	return doc.Find("h1, h2, h3, h4, h5, h6").Length()
}

// H1Count returns the number of h1 elements.
func H1Count(doc *goquery.Document) int {
	if doc == nil {
		return 0
	}
	return doc.Find("h1").Length()
}

// ImageCount returns the number of img elements.
func ImageCount(doc *goquery.Document) int {
	if doc == nil {
		return 0
	}
	return doc.Find("img").Length()
}

// LinkCount returns the number of anchor elements.
func LinkCount(doc *goquery.Document) int {
	if doc == nil {
		return 0
	}
	return doc.Find("a").Length()
}

// SchemaMarkupCount returns the number of JSON-LD script blocks.
func SchemaMarkupCount(doc *goquery.Document) int {
	if doc == nil {
		return 0
	}
	return doc.Find(`script[type="application/ld+json"]`).Length()
}
