package model

import "time"

// CriterionResult is the output of one criterion scorer: the final
// clamped score plus the typed breakdown of how it was computed.
type CriterionResult struct {
	// Score is the final criterion score, clamped to [0, 100].
	Score float64 `json:"score"`

	// Breakdown holds the intermediate values behind the score.
	Breakdown Breakdown `json:"breakdown"`
}

// Contribution is one row of the aggregation ledger: what a single
// criterion added to the overall score.
type Contribution struct {
	// RawScore is the criterion score after validation and clamping.
	RawScore float64 `json:"raw_score"`

	// Weight is the multiplier applied to the raw score.
	Weight float64 `json:"weight"`

	// Contribution is RawScore * Weight.
	Contribution float64 `json:"contribution"`
}

// AnalysisReport is the complete result of analyzing one page.
type AnalysisReport struct {
	// URL is the analyzed page address.
	URL string `json:"url"`

	// AnalyzedAt is when the analysis ran.
	AnalyzedAt time.Time `json:"analyzed_at"`

	// Page is the snapshot the analysis ran against.
	Page *PageDocument `json:"page,omitempty"`

	// Scores maps each criterion to its validated score.
	Scores map[Criterion]float64 `json:"scores"`

	// Breakdowns maps each criterion to its scoring breakdown.
	Breakdowns map[Criterion]Breakdown `json:"breakdowns,omitempty"`

	// ScoreBreakdown is the aggregation ledger keyed by criterion.
	ScoreBreakdown map[Criterion]Contribution `json:"score_breakdown"`

	// OverallScore is the weighted sum of all criterion scores,
	// rounded to two decimal places.
	OverallScore float64 `json:"overall_score"`

	// FreeDataSources exports the raw collected and derived metrics so
	// callers can consume them without re-running extraction.
	FreeDataSources map[string]DataBag `json:"free_data_sources,omitempty"`

	// Recommendations lists improvement advice ordered by urgency.
	Recommendations []Recommendation `json:"recommendations,omitempty"`

	// Violations records invalid scorer outputs that were coerced during
	// aggregation. An empty slice means every score was well formed.
	Violations []string `json:"violations,omitempty"`

	// Warnings records non-fatal aggregation anomalies, such as a weighted
	// criterion with no score.
	Warnings []string `json:"warnings,omitempty"`

	// PerformedSteps lists the pipeline steps that ran, in order.
	PerformedSteps []string `json:"performed_steps,omitempty"`

	// TimedOut reports whether the analysis was cut short by
	// cancellation or deadline.
	TimedOut bool `json:"timed_out,omitempty"`

	// Error holds the failure that aborted the analysis, if any.
	// Excluded from JSON; ErrorMessage carries the serializable form.
	Error error `json:"-"`

	// ErrorMessage is the string form of Error for report output.
	ErrorMessage string `json:"error,omitempty"`
}

// NewAnalysisReport returns an empty report for the given URL with all
// maps initialized.
func NewAnalysisReport(url string) *AnalysisReport {
	return &AnalysisReport{
		URL:             url,
		AnalyzedAt:      time.Now(),
		Scores:          make(map[Criterion]float64),
		Breakdowns:      make(map[Criterion]Breakdown),
		ScoreBreakdown:  make(map[Criterion]Contribution),
		FreeDataSources: make(map[string]DataBag),
	}
}

// SetResult records one criterion's score and breakdown.
func (r *AnalysisReport) SetResult(c Criterion, res CriterionResult) {
	r.Scores[c] = res.Score
	if res.Breakdown != nil {
		r.Breakdowns[c] = res.Breakdown
	}
}

// Grade returns a letter classification of the overall score for
// human-readable output.
func (r *AnalysisReport) Grade() string {
	switch {
	case r.OverallScore >= 90:
		return "A"
	case r.OverallScore >= 80:
		return "B"
	case r.OverallScore >= 70:
		return "C"
	case r.OverallScore >= 60:
		return "D"
	default:
		return "F"
	}
}
