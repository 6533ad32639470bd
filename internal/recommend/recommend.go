package recommend

import (
	"fmt"
	"sort"

	"github.com/krishirajsinh-p/WebBoost/internal/model"
)

// Generate builds the ordered recommendation list for a scored page.
// Every scored criterion yields exactly one recommendation; the list is
// sorted most urgent first, with ties broken by canonical criterion
// order so output is deterministic.
func Generate(scores map[model.Criterion]float64, breakdowns map[model.Criterion]model.Breakdown) []model.Recommendation {
	recs := make([]model.Recommendation, 0, len(scores))

	for _, criterion := range model.AllCriteria {
		s, ok := scores[criterion]
		if !ok {
			continue
		}
		priority := model.PriorityForScore(s)
		recs = append(recs, model.Recommendation{
			Priority:  priority,
			Criterion: criterion,
			Text:      adviceFor(criterion, s, priority, breakdowns[criterion]),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority < recs[j].Priority
	})
	return recs
}

// adviceFor picks the advice text for one criterion. High scores get a
// short confirmation; everything else gets guidance shaped by the
// breakdown details when they are available.
func adviceFor(c model.Criterion, score float64, priority model.Priority, b model.Breakdown) string {
	if priority == model.PriorityDoingGreat {
		return fmt.Sprintf("%s is strong (%.0f/100). Keep doing what you're doing.", c.DisplayName(), score)
	}

	switch c {
	case model.CriterionReadability:
		return readabilityAdvice(b)
	case model.CriterionInformativeness:
		return informativenessAdvice(b)
	case model.CriterionEngagement:
		return engagementAdvice(b)
	case model.CriterionUniqueness:
		return uniquenessAdvice(b)
	case model.CriterionDiscoverability:
		return discoverabilityAdvice(b)
	case model.CriterionAdExperience:
		return adExperienceAdvice(b)
	case model.CriterionSocialIntegration:
		return socialAdvice(b)
	case model.CriterionLayoutQuality:
		return layoutAdvice(b)
	case model.CriterionSEOKeywords:
		return seoAdvice(b)
	default:
		return fmt.Sprintf("Improve %s (currently %.0f/100).", c.DisplayName(), score)
	}
}
