package recommend

import (
	"strings"
	"testing"

	"github.com/krishirajsinh-p/WebBoost/internal/model"
)

func TestGenerateOrdering(t *testing.T) {
	t.Parallel()

	scores := map[model.Criterion]float64{
		model.CriterionReadability:  85, // doing great
		model.CriterionEngagement:   15, // critical
		model.CriterionAdExperience: 55, // medium
		model.CriterionSEOKeywords:  70, // low
	}

	recs := Generate(scores, nil)

	if len(recs) != 4 {
		t.Fatalf("got %d recommendations, want 4", len(recs))
	}

	wantOrder := []model.Priority{
		model.PriorityCritical,
		model.PriorityMedium,
		model.PriorityLow,
		model.PriorityDoingGreat,
	}
	for i, want := range wantOrder {
		if recs[i].Priority != want {
			t.Errorf("recs[%d].Priority = %v, want %v", i, recs[i].Priority, want)
		}
	}
	if recs[0].Criterion != model.CriterionEngagement {
		t.Errorf("most urgent criterion = %q, want engagement", recs[0].Criterion)
	}
}

func TestGenerateSkipsMissingCriteria(t *testing.T) {
	t.Parallel()

	recs := Generate(map[model.Criterion]float64{model.CriterionUniqueness: 30}, nil)
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}
	if recs[0].Criterion != model.CriterionUniqueness {
		t.Errorf("Criterion = %q, want uniqueness", recs[0].Criterion)
	}
}

func TestGenerateDoingGreatText(t *testing.T) {
	t.Parallel()

	recs := Generate(map[model.Criterion]float64{model.CriterionReadability: 92}, nil)
	if got := recs[0].Text; !strings.Contains(got, "Readability is strong") {
		t.Errorf("Text = %q, want a confirmation message", got)
	}
}

func TestAdviceUsesBreakdownDetail(t *testing.T) {
	t.Parallel()

	t.Run("ad experience names detected categories", func(t *testing.T) {
		t.Parallel()

		breakdowns := map[model.Criterion]model.Breakdown{
			model.CriterionAdExperience: &model.AdExperienceBreakdown{
				AdIndicatorCount: 7,
				AdTypes:          map[string]int{"Google Ads": 4, "Popups/Modals": 3},
			},
		}
		recs := Generate(map[model.Criterion]float64{model.CriterionAdExperience: 30}, breakdowns)

		text := recs[0].Text
		if !strings.Contains(text, "Google Ads") || !strings.Contains(text, "Popups/Modals") {
			t.Errorf("Text = %q, want detected ad categories named", text)
		}
	})

	t.Run("seo reports actual title length", func(t *testing.T) {
		t.Parallel()

		breakdowns := map[model.Criterion]model.Breakdown{
			model.CriterionSEOKeywords: &model.SEOBreakdown{
				HasTitle:          true,
				TitleLength:       85,
				MetaDescOptimal:   true,
				SchemaMarkupCount: 1,
			},
		}
		recs := Generate(map[model.Criterion]float64{model.CriterionSEOKeywords: 45}, breakdowns)

		if !strings.Contains(recs[0].Text, "currently 85") {
			t.Errorf("Text = %q, want the actual title length cited", recs[0].Text)
		}
	})

	t.Run("layout counts duplicate H1s", func(t *testing.T) {
		t.Parallel()

		breakdowns := map[model.Criterion]model.Breakdown{
			model.CriterionLayoutQuality: &model.LayoutBreakdown{
				HasViewport: true,
				HasHTTPS:    true,
				H1Count:     3,
			},
		}
		recs := Generate(map[model.Criterion]float64{model.CriterionLayoutQuality: 50}, breakdowns)

		if !strings.Contains(recs[0].Text, "found 3") {
			t.Errorf("Text = %q, want duplicate H1 count cited", recs[0].Text)
		}
	})

	t.Run("missing breakdown falls back to generic advice", func(t *testing.T) {
		t.Parallel()

		recs := Generate(map[model.Criterion]float64{model.CriterionEngagement: 30}, nil)
		if recs[0].Text == "" {
			t.Error("Text is empty, want generic advice without a breakdown")
		}
	})
}
