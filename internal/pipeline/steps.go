package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/krishirajsinh-p/WebBoost/internal/collect"
	"github.com/krishirajsinh-p/WebBoost/internal/extract"
	"github.com/krishirajsinh-p/WebBoost/internal/loader"
	"github.com/krishirajsinh-p/WebBoost/internal/model"
	"github.com/krishirajsinh-p/WebBoost/internal/recommend"
	"github.com/krishirajsinh-p/WebBoost/internal/score"
)

// ErrNoSnapshot is returned by steps that need a fetched page when the
// fetch step did not run or did not succeed.
var ErrNoSnapshot = errors.New("no page snapshot in report")

// FetchStep downloads the target page and attaches its snapshot to the
// report. It must run before any other step.
type FetchStep struct {
	// loader performs the HTTP fetch and snapshot construction.
	loader *loader.Loader
}

// NewFetchStep creates the fetch step around a configured loader.
func NewFetchStep(l *loader.Loader) *FetchStep {
	return &FetchStep{loader: l}
}

// Name returns the step name.
func (s *FetchStep) Name() string {
	return "fetch"
}

// Do fetches the page and stores the snapshot in the report.
func (s *FetchStep) Do(ctx context.Context, report *model.AnalysisReport) error {
	page, err := s.loader.Load(ctx, report.URL)
	if err != nil {
		return fmt.Errorf("fetch step: %w", err)
	}

	report.Page = page
	// The loader may have normalized the URL (added a scheme).
	report.URL = page.URL
	return nil
}

// CollectStep runs the signal collectors against the snapshot and
// exports their bags into the report's free data sources.
//
// Design decision: Collector output lands in FreeDataSources rather
// than a dedicated report field because the bags are part of the report
// wire format anyway; routing them through the report avoids a second
// channel between steps.
type CollectStep struct {
	// collectors are the signal sources to run. Defaults to the full set.
	collectors []collect.Collector

	// logger for structured logging.
	logger *slog.Logger
}

// CollectStepOption configures a CollectStep.
type CollectStepOption func(*CollectStep)

// WithCollectors replaces the default collector set.
func WithCollectors(collectors ...collect.Collector) CollectStepOption {
	return func(s *CollectStep) {
		s.collectors = collectors
	}
}

// WithCollectLogger sets a custom logger for the collect step.
func WithCollectLogger(logger *slog.Logger) CollectStepOption {
	return func(s *CollectStep) {
		s.logger = logger
	}
}

// NewCollectStep creates the signal collection step.
func NewCollectStep(opts ...CollectStepOption) *CollectStep {
	s := &CollectStep{
		collectors: collect.DefaultCollectors(),
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *CollectStep) Name() string {
	return "collect"
}

// Do gathers all signal bags and stores them under their source names.
func (s *CollectStep) Do(ctx context.Context, report *model.AnalysisReport) error {
	if report.Page == nil {
		return ErrNoSnapshot
	}

	signals := collect.Gather(ctx, report.Page, s.logger, s.collectors...)

	report.FreeDataSources[model.SignalPerformance] = signals.Performance
	report.FreeDataSources[model.SignalMobile] = signals.Mobile
	report.FreeDataSources[model.SignalSEO] = signals.SEO
	report.FreeDataSources[model.SignalSecurity] = signals.Security
	report.FreeDataSources[model.SignalSocial] = signals.Social
	return nil
}

// ScoreStep runs every criterion scorer against the snapshot and the
// collected signals, then aggregates the scores into the overall score.
type ScoreStep struct {
	// weights is the criterion weight table used for aggregation.
	weights model.WeightTable

	// now supplies the current time for freshness analysis.
	// Overridable for deterministic tests.
	now func() time.Time
}

// ScoreStepOption configures a ScoreStep.
type ScoreStepOption func(*ScoreStep)

// WithWeights replaces the default criterion weight table.
func WithWeights(weights model.WeightTable) ScoreStepOption {
	return func(s *ScoreStep) {
		if weights != nil {
			s.weights = weights
		}
	}
}

// WithClock sets the time source for freshness analysis.
func WithClock(now func() time.Time) ScoreStepOption {
	return func(s *ScoreStep) {
		if now != nil {
			s.now = now
		}
	}
}

// NewScoreStep creates the scoring step with the default weight table.
func NewScoreStep(opts ...ScoreStepOption) *ScoreStep {
	s := &ScoreStep{
		weights: model.DefaultWeights(),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *ScoreStep) Name() string {
	return "score"
}

// Do computes the nine criterion scores, the derived analysis bags,
// and the weighted overall score.
func (s *ScoreStep) Do(_ context.Context, report *model.AnalysisReport) error {
	page := report.Page
	if page == nil {
		return ErrNoSnapshot
	}

	// Derived analyses shared between scorers and the report output.
	keywords := extract.Keywords(page.Text)
	citations := extract.Citations(page.Doc)
	linking := extract.InternalLinking(page.Doc, page.Domain)
	freshness := extract.ContentFreshness(page.Doc, s.now())
	design := extract.DesignQuality(page.Doc)

	report.FreeDataSources["keyword_analysis"] = keywords
	report.FreeDataSources["citation_analysis"] = citations
	report.FreeDataSources["internal_linking"] = linking
	report.FreeDataSources["content_freshness"] = freshness
	report.FreeDataSources["design"] = design
	report.FreeDataSources["content_stats"] = extract.ContentStats(page.Text, page.Doc)

	mobile := report.FreeDataSources[model.SignalMobile]
	security := report.FreeDataSources[model.SignalSecurity]
	seo := report.FreeDataSources[model.SignalSEO]
	social := report.FreeDataSources[model.SignalSocial]

	report.SetResult(model.CriterionReadability, score.Readability(page.Text, page.Language))
	report.SetResult(model.CriterionInformativeness, score.Informativeness(page.Text, page.Doc, citations))
	report.SetResult(model.CriterionEngagement, score.Engagement(page.Text, page.Doc))
	report.SetResult(model.CriterionUniqueness, score.Uniqueness(page.Text))
	report.SetResult(model.CriterionDiscoverability, score.Discoverability(page.Doc))
	report.SetResult(model.CriterionAdExperience, score.AdExperience(page.HTML, page.Doc))
	report.SetResult(model.CriterionSocialIntegration, score.SocialIntegration(social))
	report.SetResult(model.CriterionLayoutQuality, score.LayoutQuality(page.Doc, mobile, security, design))
	report.SetResult(model.CriterionSEOKeywords, score.SEOKeywords(page.Doc, seo, keywords, linking, freshness, page.URL))

	// Per-criterion detail bags mirror the breakdowns in bag form so
	// consumers of free_data_sources need not know the breakdown types.
	report.FreeDataSources["readability_details"] = bagFromBreakdown(report.Breakdowns[model.CriterionReadability])
	report.FreeDataSources["engagement_details"] = bagFromBreakdown(report.Breakdowns[model.CriterionEngagement])
	report.FreeDataSources["uniqueness_details"] = bagFromBreakdown(report.Breakdowns[model.CriterionUniqueness])
	report.FreeDataSources["ad_details"] = bagFromBreakdown(report.Breakdowns[model.CriterionAdExperience])

	agg := score.Aggregate(report.Scores, s.weights)
	report.OverallScore = agg.Overall
	report.ScoreBreakdown = agg.Ledger
	report.Violations = agg.Violations
	report.Warnings = agg.Warnings
	return nil
}

// bagFromBreakdown flattens a typed breakdown into a data bag.
func bagFromBreakdown(b model.Breakdown) model.DataBag {
	bag := model.DataBag{}
	if b == nil {
		return bag
	}
	for _, item := range b.Items() {
		bag[item.Key] = item.Value
	}
	if note := b.Note(); note != "" {
		bag["note"] = note
	}
	return bag
}

// RecommendStep turns the criterion scores into prioritized
// improvement advice.
type RecommendStep struct{}

// NewRecommendStep creates the recommendation step.
func NewRecommendStep() *RecommendStep {
	return &RecommendStep{}
}

// Name returns the step name.
func (s *RecommendStep) Name() string {
	return "recommend"
}

// Do generates recommendations from the scores and breakdowns.
func (s *RecommendStep) Do(_ context.Context, report *model.AnalysisReport) error {
	if len(report.Scores) == 0 {
		return errors.New("no scores to recommend on; score step must run first")
	}

	report.Recommendations = recommend.Generate(report.Scores, report.Breakdowns)
	return nil
}
