package loader

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// extractText pulls the visible prose out of a page.
// It prefers readability's article extraction, which strips navigation
// and boilerplate, and falls back to the full body text when the page
// has no identifiable article.
func extractText(html string, doc *goquery.Document, pageURL *url.URL) string {
	parser := readability.NewParser()
	if article, err := parser.Parse(strings.NewReader(html), pageURL); err == nil {
		if text := collapseWhitespace(article.TextContent); text != "" {
			return text
		}
	}
	return bodyText(doc)
}

// bodyText extracts the raw body text, skipping script and style
// content. It re-parses the markup so the removal does not mutate the
// document handed to the analysis.
func bodyText(doc *goquery.Document) string {
	if doc == nil {
		return ""
	}

	html, err := doc.Html()
	if err != nil {
		return ""
	}
	clone, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	clone.Find("script, style, noscript").Remove()
	return collapseWhitespace(clone.Find("body").Text())
}

// collapseWhitespace squeezes runs of whitespace into single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
