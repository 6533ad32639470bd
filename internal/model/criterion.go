package model

// Criterion identifies one of the nine independent quality dimensions
// scored for a page. The string value doubles as the JSON key in reports.
//
// Design decision: We use a string type rather than iota constants because
// criterion names are part of the report wire format (scores map keys,
// weight table keys) and must survive serialization unchanged.
type Criterion string

const (
	// CriterionReadability measures how easy the page text is to read.
	CriterionReadability Criterion = "readability"

	// CriterionInformativeness measures content depth, structure, media
	// richness, and citation quality.
	CriterionInformativeness Criterion = "informativeness"

	// CriterionEngagement measures sentiment, interaction prompts, and
	// skimming optimization.
	CriterionEngagement Criterion = "engagement"

	// CriterionUniqueness measures originality signals in the text.
	CriterionUniqueness Criterion = "uniqueness"

	// CriterionDiscoverability measures on-page navigation affordances.
	CriterionDiscoverability Criterion = "discoverability"

	// CriterionAdExperience measures how intrusive advertising is.
	CriterionAdExperience Criterion = "ad_experience"

	// CriterionSocialIntegration measures social platform presence and proof.
	CriterionSocialIntegration Criterion = "social_integration"

	// CriterionLayoutQuality measures mobile readiness, security, and design.
	CriterionLayoutQuality Criterion = "layout_quality"

	// CriterionSEOKeywords measures search engine optimization signals.
	CriterionSEOKeywords Criterion = "seo_keywords"
)

// AllCriteria lists every criterion in presentation order.
// Report writers iterate this slice so output ordering is stable.
var AllCriteria = []Criterion{
	CriterionReadability,
	CriterionInformativeness,
	CriterionEngagement,
	CriterionUniqueness,
	CriterionDiscoverability,
	CriterionAdExperience,
	CriterionSocialIntegration,
	CriterionLayoutQuality,
	CriterionSEOKeywords,
}

// String returns the criterion's wire name.
func (c Criterion) String() string {
	return string(c)
}

// DisplayName returns a human-readable name for report output.
func (c Criterion) DisplayName() string {
	switch c {
	case CriterionReadability:
		return "Readability"
	case CriterionInformativeness:
		return "Informativeness"
	case CriterionEngagement:
		return "Engagement"
	case CriterionUniqueness:
		return "Uniqueness"
	case CriterionDiscoverability:
		return "Discoverability"
	case CriterionAdExperience:
		return "Ad Experience"
	case CriterionSocialIntegration:
		return "Social Integration"
	case CriterionLayoutQuality:
		return "Layout Quality"
	case CriterionSEOKeywords:
		return "SEO & Keywords"
	default:
		return string(c)
	}
}

// WeightTable maps each criterion to its contribution multiplier in the
// overall score. Weights are non-negative and used as-is: the overall score
// is the sum of score*weight, not a normalized average. The default table
// happens to sum to 1.00 so the overall score stays on the 0-100 scale.
type WeightTable map[Criterion]float64

// DefaultWeights returns the fixed production weight table.
//
// Design decision: Readability and informativeness carry extra weight
// because they are the two criteria most directly tied to content quality;
// the remaining seven share the rest equally.
func DefaultWeights() WeightTable {
	return WeightTable{
		CriterionReadability:       0.15,
		CriterionInformativeness:   0.15,
		CriterionEngagement:        0.10,
		CriterionUniqueness:        0.10,
		CriterionDiscoverability:   0.10,
		CriterionAdExperience:      0.10,
		CriterionSocialIntegration: 0.10,
		CriterionLayoutQuality:     0.10,
		CriterionSEOKeywords:       0.10,
	}
}
