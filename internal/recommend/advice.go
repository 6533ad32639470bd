package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/krishirajsinh-p/WebBoost/internal/model"
)

func readabilityAdvice(b model.Breakdown) string {
	rb, ok := b.(*model.ReadabilityBreakdown)
	if !ok {
		return "Simplify your writing: shorter sentences and common words raise readability."
	}
	if rb.Note() != "" {
		return "Add more substantial text content; the page has too little prose to assess readability."
	}
	if rb.FleschKincaidGrade > 12 {
		return fmt.Sprintf("Your text reads at grade level %.1f. Break up long sentences and prefer simpler words to reach a grade 6-8 level.", rb.FleschKincaidGrade)
	}
	return "Shorten sentences and reduce jargon to make the text easier to read."
}

func informativenessAdvice(b model.Breakdown) string {
	ib, ok := b.(*model.InformativenessBreakdown)
	if !ok {
		return "Deepen the content: more substantive text, headings, and supporting media."
	}
	var gaps []string
	if ib.WordCount < 1000 {
		gaps = append(gaps, fmt.Sprintf("expand the content beyond %d words", ib.WordCount))
	}
	if ib.HeaderCount < 3 {
		gaps = append(gaps, "add section headings to structure the page")
	}
	if ib.CitationScore < 10 {
		gaps = append(gaps, "cite authoritative sources to back up claims")
	}
	if len(gaps) == 0 {
		gaps = append(gaps, "add images or supporting links to enrich the content")
	}
	return "To make the page more informative, " + strings.Join(gaps, "; ") + "."
}

func engagementAdvice(b model.Breakdown) string {
	eb, ok := b.(*model.EngagementBreakdown)
	if !ok {
		return "Make the page more engaging: address the reader directly and invite action."
	}
	if eb.CTAWords == 0 {
		return "Add a clear call to action; the page never invites the reader to do anything."
	}
	if eb.SkimmingScore < 10 {
		return "Make the page skimmable: add headings, bullet lists, and bold key phrases."
	}
	return "Use more positive, direct language and pose questions to draw readers in."
}

func uniquenessAdvice(b model.Breakdown) string {
	ub, ok := b.(*model.UniquenessBreakdown)
	if !ok {
		return "Add original insight: first-hand experience and research set content apart."
	}
	if ub.PrimaryResearchWords == 0 {
		return "Share original findings: interviews, surveys, or your own analysis differentiate the page from aggregated content."
	}
	return "Strengthen the first-person voice and reference more of your own research."
}

func discoverabilityAdvice(b model.Breakdown) string {
	db, ok := b.(*model.DiscoverabilityBreakdown)
	if !ok {
		return "Improve navigation: search, breadcrumbs, and category links help visitors explore."
	}
	var gaps []string
	if !db.HasSearch {
		gaps = append(gaps, "add a site search box")
	}
	if db.NavCount == 0 {
		gaps = append(gaps, "add a navigation menu")
	}
	if !db.HasBreadcrumbs {
		gaps = append(gaps, "show breadcrumbs so visitors know where they are")
	}
	if len(gaps) == 0 {
		gaps = append(gaps, "surface featured and related content more prominently")
	}
	return "Help visitors find content: " + strings.Join(gaps, "; ") + "."
}

func adExperienceAdvice(b model.Breakdown) string {
	ab, ok := b.(*model.AdExperienceBreakdown)
	if !ok || len(ab.AdTypes) == 0 {
		return "Reduce ad intrusion: fewer ad slots and no autoplaying media."
	}
	categories := make([]string, 0, len(ab.AdTypes))
	for category := range ab.AdTypes {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return fmt.Sprintf("Reduce advertising load (%d indicators detected: %s); heavy ad density drives readers away.",
		ab.AdIndicatorCount, strings.Join(categories, ", "))
}

func socialAdvice(b model.Breakdown) string {
	sb, ok := b.(*model.SocialBreakdown)
	if !ok || sb.PlatformCount == 0 {
		return "Link your social profiles and add sharing buttons so readers can spread your content."
	}
	if sb.SharingButtons == 0 {
		return "Add sharing buttons; social profiles are linked but readers have no one-click way to share."
	}
	return "Add social proof such as testimonials or follower counts to build trust."
}

func layoutAdvice(b model.Breakdown) string {
	lb, ok := b.(*model.LayoutBreakdown)
	if !ok {
		return "Improve the layout: mobile viewport, HTTPS, and a single clear H1."
	}
	var gaps []string
	if !lb.HasViewport {
		gaps = append(gaps, "add a viewport meta tag for mobile rendering")
	}
	if !lb.HasHTTPS {
		gaps = append(gaps, "serve the site over HTTPS")
	}
	if lb.H1Count != 1 {
		gaps = append(gaps, fmt.Sprintf("use exactly one H1 (found %d)", lb.H1Count))
	}
	if len(gaps) == 0 {
		gaps = append(gaps, "improve whitespace and typography for visual clarity")
	}
	return "Tighten the layout: " + strings.Join(gaps, "; ") + "."
}

func seoAdvice(b model.Breakdown) string {
	sb, ok := b.(*model.SEOBreakdown)
	if !ok {
		return "Improve on-page SEO: optimized title, meta description, and structured data."
	}
	var gaps []string
	if !sb.TitleOptimal {
		if sb.HasTitle {
			gaps = append(gaps, fmt.Sprintf("resize the title to 30-60 characters (currently %d)", sb.TitleLength))
		} else {
			gaps = append(gaps, "add a title tag")
		}
	}
	if !sb.MetaDescOptimal {
		if sb.HasMetaDesc {
			gaps = append(gaps, fmt.Sprintf("resize the meta description to 120-160 characters (currently %d)", sb.MetaDescLength))
		} else {
			gaps = append(gaps, "add a meta description")
		}
	}
	if sb.SchemaMarkupCount == 0 {
		gaps = append(gaps, "add JSON-LD structured data")
	}
	if len(gaps) == 0 {
		gaps = append(gaps, "strengthen keyword focus and internal linking")
	}
	return "Improve SEO: " + strings.Join(gaps, "; ") + "."
}
