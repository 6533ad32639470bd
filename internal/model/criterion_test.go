package model

import (
	"math"
	"testing"
)

func TestCriterionDisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		criterion Criterion
		want      string
	}{
		{name: "readability", criterion: CriterionReadability, want: "Readability"},
		{name: "ad experience", criterion: CriterionAdExperience, want: "Ad Experience"},
		{name: "seo keywords", criterion: CriterionSEOKeywords, want: "SEO & Keywords"},
		{name: "unknown falls back to wire name", criterion: Criterion("custom"), want: "custom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.criterion.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDefaultWeights(t *testing.T) {
	t.Parallel()

	weights := DefaultWeights()

	if len(weights) != len(AllCriteria) {
		t.Fatalf("DefaultWeights() has %d entries, want %d", len(weights), len(AllCriteria))
	}

	sum := 0.0
	for _, c := range AllCriteria {
		w, ok := weights[c]
		if !ok {
			t.Errorf("DefaultWeights() missing criterion %q", c)
			continue
		}
		if w < 0 {
			t.Errorf("DefaultWeights()[%q] = %v, want non-negative", c, w)
		}
		sum += w
	}

	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("DefaultWeights() sum = %v, want 1.0", sum)
	}
}

func TestAllCriteriaUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[Criterion]bool, len(AllCriteria))
	for _, c := range AllCriteria {
		if seen[c] {
			t.Errorf("AllCriteria contains duplicate %q", c)
		}
		seen[c] = true
	}
}
