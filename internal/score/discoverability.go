package score

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/krishirajsinh-p/WebBoost/internal/extract"
	"github.com/krishirajsinh-p/WebBoost/internal/model"
)

// Discoverability scores how easily a visitor finds related content:
// search input, navigation elements, breadcrumbs, a sitemap link,
// featured content blocks, and category organization. Missing markup
// yields zero.
func Discoverability(doc *goquery.Document) model.CriterionResult {
	b := &model.DiscoverabilityBreakdown{}

	if doc == nil {
		b.Annotation = "missing markup"
		return model.CriterionResult{Score: 0, Breakdown: b}
	}

	b.HasSearch = extract.HasSearchInput(doc)
	b.NavCount = extract.NavCount(doc)
	b.HasBreadcrumbs = extract.HasBreadcrumbs(doc)
	b.HasSitemap = extract.HasSitemapLink(doc)
	b.FeaturedPosts = extract.FeaturedContent(doc)

	if b.HasSearch {
		b.SearchScore = 15
	} else {
		b.SearchScore = 5
	}
	b.NavigationScore = min(20, float64(b.NavCount)*5)
	if b.HasBreadcrumbs {
		b.BreadcrumbScore = 15
	}
	if b.HasSitemap {
		b.SitemapScore = 10
	}
	b.FeaturedScore = min(15, float64(b.FeaturedPosts)*3)
	b.CategoryScore = min(extract.MaxCategoryScore, extract.CategoryOrganization(doc))

	final := clamp(b.SearchScore + b.NavigationScore + b.BreadcrumbScore + b.SitemapScore + b.FeaturedScore + b.CategoryScore)
	b.FinalScore = final
	return model.CriterionResult{Score: final, Breakdown: b}
}
