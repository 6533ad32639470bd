package score

import (
	"fmt"
	"math"
	"sort"

	"github.com/krishirajsinh-p/WebBoost/internal/model"
)

// Aggregation combines validated criterion scores into one overall
// score with a per-criterion contribution ledger.
type Aggregation struct {
	// Overall is the weighted sum of all criterion scores, rounded to
	// two decimal places.
	Overall float64

	// Ledger records each weighted criterion's raw score, weight, and
	// contribution.
	Ledger map[model.Criterion]model.Contribution

	// Violations records scores that had to be coerced: non-finite
	// values become zero, out-of-range values are clamped.
	Violations []string

	// Warnings records weighted criteria missing from the score set.
	// A missing criterion contributes nothing; the run under-reports
	// instead of failing.
	Warnings []string
}

// Aggregate validates every criterion score, applies the weight table,
// and builds the contribution ledger. Weights are used as-is; the
// overall score is the plain weighted sum, not a normalized average.
func Aggregate(scores map[model.Criterion]float64, weights model.WeightTable) *Aggregation {
	agg := &Aggregation{
		Ledger: make(map[model.Criterion]model.Contribution, len(weights)),
	}

	// Sorted iteration keeps warning and violation order deterministic.
	ordered := make([]model.Criterion, 0, len(weights))
	for criterion := range weights {
		ordered = append(ordered, criterion)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	overall := 0.0
	for _, criterion := range ordered {
		weight := weights[criterion]

		raw, ok := scores[criterion]
		if !ok {
			agg.Warnings = append(agg.Warnings,
				fmt.Sprintf("missing score for criterion %q", criterion))
			continue
		}

		if math.IsNaN(raw) || math.IsInf(raw, 0) {
			agg.Violations = append(agg.Violations,
				fmt.Sprintf("criterion %q produced non-numeric score; coerced to 0.0", criterion))
			raw = 0
		} else if raw < 0 || raw > 100 {
			agg.Violations = append(agg.Violations,
				fmt.Sprintf("criterion %q score %.2f out of range; clamped", criterion, raw))
			raw = clamp(raw)
		}

		contribution := raw * weight
		overall += contribution
		agg.Ledger[criterion] = model.Contribution{
			RawScore:     raw,
			Weight:       weight,
			Contribution: contribution,
		}
	}

	agg.Overall = math.Round(overall*100) / 100
	return agg
}
