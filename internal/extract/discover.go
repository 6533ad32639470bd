package extract

import (
	"github.com/PuerkitoBio/goquery"
)

// MaxCategoryScore caps the category-organization sub-score fed into
// discoverability scoring.
const MaxCategoryScore = 25.0

// Class-name fragments marking promoted or highlighted content blocks.
var featuredClassTokens = []string{"featured", "highlight", "hero", "spotlight"}

// Class-name and href fragments marking taxonomy navigation.
var categoryTokens = []string{"category", "categories", "tag", "topic"}

// FeaturedContent counts content blocks the page promotes visually.
func FeaturedContent(doc *goquery.Document) int {
	count := 0
	for _, token := range featuredClassTokens {
		count += countClassContaining(doc, token)
	}
	return count
}

// CategoryOrganization grades how well content is organized into
// browsable categories: taxonomy-classed elements and category links
// each earn two points, capped.
func CategoryOrganization(doc *goquery.Document) float64 {
	if doc == nil {
		return 0
	}

	hits := 0
	for _, token := range categoryTokens {
		hits += countClassContaining(doc, token)
		if hrefContains(doc, token) {
			hits++
		}
	}

	return min(MaxCategoryScore, float64(hits)*2)
}
