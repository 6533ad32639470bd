package model

import "sort"

// BreakdownItem is one named intermediate value from a criterion breakdown.
// Items are ordered for stable report output.
type BreakdownItem struct {
	// Key is the sub-metric name.
	Key string

	// Value is the sub-metric value (bool, int, float64, string, or []string).
	Value any
}

// Breakdown is the structured record of the intermediate values that
// produced a criterion's final score.
//
// Design decision: Every criterion has its own typed struct rather than a
// generic map so the recommendation generator reads fields with compile-time
// safety; Items() provides the ordered generic view the report writers need.
type Breakdown interface {
	// Items returns the breakdown values in display order.
	Items() []BreakdownItem

	// Note returns an annotation explaining a default or fallback score,
	// or "" when the score was computed normally.
	Note() string
}

// ReadabilityBreakdown records the individual readability formula values.
type ReadabilityBreakdown struct {
	FleschReadingEase    float64 `json:"flesch_reading_ease"`
	FleschKincaidGrade   float64 `json:"flesch_kincaid_grade"`
	GunningFog           float64 `json:"gunning_fog"`
	SMOGIndex            float64 `json:"smog_index"`
	AutomatedReadability float64 `json:"automated_readability"`
	ColemanLiau          float64 `json:"coleman_liau"`
	MetricsUsed          int     `json:"metrics_used"`
	Language             string  `json:"language,omitempty"`
	FinalScore           float64 `json:"final_score"`
	Annotation           string  `json:"note,omitempty"`
}

// Items returns the breakdown values in display order.
func (b *ReadabilityBreakdown) Items() []BreakdownItem {
	return []BreakdownItem{
		{"flesch_reading_ease", b.FleschReadingEase},
		{"flesch_kincaid_grade", b.FleschKincaidGrade},
		{"gunning_fog", b.GunningFog},
		{"smog_index", b.SMOGIndex},
		{"automated_readability", b.AutomatedReadability},
		{"coleman_liau", b.ColemanLiau},
		{"metrics_used", b.MetricsUsed},
	}
}

// Note returns the annotation for degraded scores.
func (b *ReadabilityBreakdown) Note() string { return b.Annotation }

// InformativenessBreakdown records content depth and richness sub-scores.
type InformativenessBreakdown struct {
	WordCount      int     `json:"word_count"`
	HeaderCount    int     `json:"header_count"`
	ImageCount     int     `json:"image_count"`
	LinkCount      int     `json:"link_count"`
	DepthScore     float64 `json:"depth_score"`
	StructureScore float64 `json:"structure_score"`
	MediaScore     float64 `json:"media_score"`
	CitationScore  float64 `json:"citation_score"`
	FinalScore     float64 `json:"final_score"`
	Annotation     string  `json:"note,omitempty"`
}

// Items returns the breakdown values in display order.
func (b *InformativenessBreakdown) Items() []BreakdownItem {
	return []BreakdownItem{
		{"word_count", b.WordCount},
		{"header_count", b.HeaderCount},
		{"image_count", b.ImageCount},
		{"link_count", b.LinkCount},
		{"depth_score", b.DepthScore},
		{"structure_score", b.StructureScore},
		{"media_score", b.MediaScore},
		{"citation_score", b.CitationScore},
	}
}

// Note returns the annotation for degraded scores.
func (b *InformativenessBreakdown) Note() string { return b.Annotation }

// EngagementBreakdown records sentiment and interaction sub-scores.
type EngagementBreakdown struct {
	PositiveWords    int     `json:"positive_words"`
	NegativeWords    int     `json:"negative_words"`
	Questions        int     `json:"questions"`
	Exclamations     int     `json:"exclamations"`
	CTAWords         int     `json:"cta_words"`
	SentimentScore   float64 `json:"sentiment_score"`
	InteractionScore float64 `json:"interaction_score"`
	SkimmingScore    float64 `json:"skimming_score"`
	FinalScore       float64 `json:"final_score"`
	Annotation       string  `json:"note,omitempty"`
}

// Items returns the breakdown values in display order.
func (b *EngagementBreakdown) Items() []BreakdownItem {
	return []BreakdownItem{
		{"positive_words", b.PositiveWords},
		{"negative_words", b.NegativeWords},
		{"questions", b.Questions},
		{"exclamations", b.Exclamations},
		{"cta_words", b.CTAWords},
		{"sentiment_score", b.SentimentScore},
		{"interaction_score", b.InteractionScore},
		{"skimming_score", b.SkimmingScore},
	}
}

// Note returns the annotation for degraded scores.
func (b *EngagementBreakdown) Note() string { return b.Annotation }

// UniquenessBreakdown records originality bonuses.
type UniquenessBreakdown struct {
	ResearchWords        int     `json:"research_words"`
	FirstPersonWords     int     `json:"first_person_words"`
	UniqueWordRatio      float64 `json:"unique_word_ratio"`
	PrimaryResearchWords int     `json:"primary_research_words"`
	BaseScore            float64 `json:"base_score"`
	ResearchBonus        float64 `json:"research_bonus"`
	FirstPersonBonus     float64 `json:"first_person_bonus"`
	UniquenessBonus      float64 `json:"uniqueness_bonus"`
	PrimaryResearchBonus float64 `json:"primary_research_bonus"`
	FinalScore           float64 `json:"final_score"`
	Annotation           string  `json:"note,omitempty"`
}

// Items returns the breakdown values in display order.
func (b *UniquenessBreakdown) Items() []BreakdownItem {
	return []BreakdownItem{
		{"research_words", b.ResearchWords},
		{"first_person_words", b.FirstPersonWords},
		{"unique_word_ratio", b.UniqueWordRatio},
		{"primary_research_words", b.PrimaryResearchWords},
		{"base_score", b.BaseScore},
		{"research_bonus", b.ResearchBonus},
		{"first_person_bonus", b.FirstPersonBonus},
		{"uniqueness_bonus", b.UniquenessBonus},
		{"primary_research_bonus", b.PrimaryResearchBonus},
	}
}

// Note returns the annotation for degraded scores.
func (b *UniquenessBreakdown) Note() string { return b.Annotation }

// DiscoverabilityBreakdown records navigation affordance sub-scores.
type DiscoverabilityBreakdown struct {
	HasSearch       bool    `json:"has_search"`
	NavCount        int     `json:"nav_count"`
	HasBreadcrumbs  bool    `json:"has_breadcrumbs"`
	HasSitemap      bool    `json:"has_sitemap"`
	FeaturedPosts   int     `json:"featured_posts"`
	SearchScore     float64 `json:"search_score"`
	NavigationScore float64 `json:"navigation_score"`
	BreadcrumbScore float64 `json:"breadcrumb_score"`
	SitemapScore    float64 `json:"sitemap_score"`
	FeaturedScore   float64 `json:"featured_score"`
	CategoryScore   float64 `json:"category_score"`
	FinalScore      float64 `json:"final_score"`
	Annotation      string  `json:"note,omitempty"`
}

// Items returns the breakdown values in display order.
func (b *DiscoverabilityBreakdown) Items() []BreakdownItem {
	return []BreakdownItem{
		{"has_search", b.HasSearch},
		{"nav_count", b.NavCount},
		{"has_breadcrumbs", b.HasBreadcrumbs},
		{"has_sitemap", b.HasSitemap},
		{"featured_posts", b.FeaturedPosts},
		{"search_score", b.SearchScore},
		{"navigation_score", b.NavigationScore},
		{"breadcrumb_score", b.BreadcrumbScore},
		{"sitemap_score", b.SitemapScore},
		{"featured_score", b.FeaturedScore},
		{"category_score", b.CategoryScore},
	}
}

// Note returns the annotation for degraded scores.
func (b *DiscoverabilityBreakdown) Note() string { return b.Annotation }

// AdExperienceBreakdown records ad intrusion penalties.
// AdTypes names only the indicator categories with at least one hit so
// the recommendation layer can name the specific ad technology detected.
type AdExperienceBreakdown struct {
	AdIndicatorCount int            `json:"ad_indicator_count"`
	AdTypes          map[string]int `json:"ad_types"`
	PlacementPenalty float64        `json:"placement_penalty"`
	AutoplayPenalty  float64        `json:"autoplay_penalty"`
	AdDensityPenalty float64        `json:"ad_density_penalty"`
	FinalScore       float64        `json:"final_score"`
	Annotation       string         `json:"note,omitempty"`
}

// Items returns the breakdown values in display order.
// Ad categories are sorted by name for deterministic output.
func (b *AdExperienceBreakdown) Items() []BreakdownItem {
	items := []BreakdownItem{
		{"ad_indicator_count", b.AdIndicatorCount},
		{"ad_density_penalty", b.AdDensityPenalty},
		{"placement_penalty", b.PlacementPenalty},
		{"autoplay_penalty", b.AutoplayPenalty},
	}

	categories := make([]string, 0, len(b.AdTypes))
	for category := range b.AdTypes {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		items = append(items, BreakdownItem{"ad_type: " + category, b.AdTypes[category]})
	}

	return items
}

// Note returns the annotation for degraded scores.
func (b *AdExperienceBreakdown) Note() string { return b.Annotation }

// SocialBreakdown records platform presence and social proof sub-scores.
type SocialBreakdown struct {
	PlatformsFound   []string `json:"platforms_found"`
	PlatformCount    int      `json:"platform_count"`
	SharingButtons   int      `json:"sharing_buttons"`
	ShareCounts      int      `json:"share_counts"`
	FollowerCounts   int      `json:"follower_counts"`
	Testimonials     int      `json:"testimonials"`
	PlatformScore    float64  `json:"platform_score"`
	SharingScore     float64  `json:"sharing_score"`
	SocialProofScore float64  `json:"social_proof_score"`
	FinalScore       float64  `json:"final_score"`
	Annotation       string   `json:"note,omitempty"`
}

// Items returns the breakdown values in display order.
func (b *SocialBreakdown) Items() []BreakdownItem {
	return []BreakdownItem{
		{"platforms_found", b.PlatformsFound},
		{"platform_count", b.PlatformCount},
		{"sharing_buttons", b.SharingButtons},
		{"share_counts", b.ShareCounts},
		{"follower_counts", b.FollowerCounts},
		{"testimonials", b.Testimonials},
		{"platform_score", b.PlatformScore},
		{"sharing_score", b.SharingScore},
		{"social_proof_score", b.SocialProofScore},
	}
}

// Note returns the annotation for degraded scores.
func (b *SocialBreakdown) Note() string { return b.Annotation }

// LayoutBreakdown records mobile, security, and design sub-scores.
type LayoutBreakdown struct {
	BaseScore          float64 `json:"base_score"`
	HasViewport        bool    `json:"has_viewport"`
	HandheldFriendly   bool    `json:"handheld_friendly"`
	TouchOptimized     bool    `json:"touch_optimized"`
	HasHTTPS           bool    `json:"has_https"`
	H1Count            int     `json:"h1_count"`
	ViewportScore      float64 `json:"viewport_score"`
	MobileScore        float64 `json:"mobile_score"`
	SecurityScore      float64 `json:"security_score"`
	H1Score            float64 `json:"h1_score"`
	WhitespaceScore    float64 `json:"whitespace_score"`
	TypographyScore    float64 `json:"typography_score"`
	ColorContrastScore float64 `json:"color_contrast_score"`
	FinalScore         float64 `json:"final_score"`
	Annotation         string  `json:"note,omitempty"`
}

// Items returns the breakdown values in display order.
func (b *LayoutBreakdown) Items() []BreakdownItem {
	return []BreakdownItem{
		{"base_score", b.BaseScore},
		{"has_viewport", b.HasViewport},
		{"handheld_friendly", b.HandheldFriendly},
		{"touch_optimized", b.TouchOptimized},
		{"has_https", b.HasHTTPS},
		{"h1_count", b.H1Count},
		{"viewport_score", b.ViewportScore},
		{"mobile_score", b.MobileScore},
		{"security_score", b.SecurityScore},
		{"h1_score", b.H1Score},
		{"whitespace_score", b.WhitespaceScore},
		{"typography_score", b.TypographyScore},
		{"color_contrast_score", b.ColorContrastScore},
	}
}

// Note returns the annotation for degraded scores.
func (b *LayoutBreakdown) Note() string { return b.Annotation }

// SEOBreakdown records search optimization sub-scores.
type SEOBreakdown struct {
	HasTitle          bool    `json:"has_title"`
	TitleLength       int     `json:"title_length"`
	TitleOptimal      bool    `json:"title_optimal"`
	HasMetaDesc       bool    `json:"has_meta_desc"`
	MetaDescLength    int     `json:"meta_desc_length"`
	MetaDescOptimal   bool    `json:"meta_desc_optimal"`
	H1Count           int     `json:"h1_count"`
	H1Optimal         bool    `json:"h1_optimal"`
	IsIndexed         bool    `json:"is_indexed"`
	SchemaMarkupCount int     `json:"schema_markup_count"`
	TitleScore        float64 `json:"title_score"`
	MetaDescScore     float64 `json:"meta_desc_score"`
	H1Score           float64 `json:"h1_score"`
	IndexingScore     float64 `json:"indexing_score"`
	KeywordScore      float64 `json:"keyword_score"`
	LinkingScore      float64 `json:"linking_score"`
	FreshnessScore    float64 `json:"freshness_score"`
	SchemaScore       float64 `json:"schema_score"`
	URLScore          float64 `json:"url_score"`
	BaselineBonus     float64 `json:"baseline_bonus"`
	FinalScore        float64 `json:"final_score"`
	Annotation        string  `json:"note,omitempty"`
}

// Items returns the breakdown values in display order.
func (b *SEOBreakdown) Items() []BreakdownItem {
	return []BreakdownItem{
		{"has_title", b.HasTitle},
		{"title_length", b.TitleLength},
		{"title_optimal", b.TitleOptimal},
		{"has_meta_desc", b.HasMetaDesc},
		{"meta_desc_length", b.MetaDescLength},
		{"meta_desc_optimal", b.MetaDescOptimal},
		{"h1_count", b.H1Count},
		{"h1_optimal", b.H1Optimal},
		{"is_indexed", b.IsIndexed},
		{"schema_markup_count", b.SchemaMarkupCount},
		{"title_score", b.TitleScore},
		{"meta_desc_score", b.MetaDescScore},
		{"h1_score", b.H1Score},
		{"indexing_score", b.IndexingScore},
		{"keyword_score", b.KeywordScore},
		{"linking_score", b.LinkingScore},
		{"freshness_score", b.FreshnessScore},
		{"schema_score", b.SchemaScore},
		{"url_score", b.URLScore},
		{"baseline_bonus", b.BaselineBonus},
	}
}

// Note returns the annotation for degraded scores.
func (b *SEOBreakdown) Note() string { return b.Annotation }
