package score

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/krishirajsinh-p/WebBoost/internal/model"
	"github.com/krishirajsinh-p/WebBoost/internal/textstat"
)

// minReadableChars is the shortest text the readability formulas are
// trusted on. Shorter text gets the neutral default instead.
const minReadableChars = 100

// neutralReadability is returned when no formula can be computed.
const neutralReadability = 50.0

// Readability scores how easy the visible text is to read by averaging
// up to six normalized readability formulas. A formula producing a
// non-positive or non-finite value is excluded rather than failing the
// score; if none survive, the neutral default applies. Text under 100
// characters short-circuits to the neutral default with a note.
func Readability(text, language string) model.CriterionResult {
	b := &model.ReadabilityBreakdown{
		Language:   language,
		FinalScore: neutralReadability,
	}

	if utf8.RuneCountInString(strings.TrimSpace(text)) < minReadableChars {
		b.Annotation = "text too short (< 100 chars)"
		return model.CriterionResult{Score: neutralReadability, Breakdown: b}
	}

	stats, err := textstat.Analyze(text)
	if err != nil {
		b.Annotation = "no scorable words"
		return model.CriterionResult{Score: neutralReadability, Breakdown: b}
	}

	b.FleschReadingEase = sanitize(stats.FleschReadingEase())
	b.FleschKincaidGrade = sanitize(stats.FleschKincaidGrade())
	b.GunningFog = sanitize(stats.GunningFog())
	b.SMOGIndex = sanitize(stats.SMOGIndex())
	b.AutomatedReadability = sanitize(stats.AutomatedReadability())
	b.ColemanLiau = sanitize(stats.ColemanLiau())

	total, count := 0.0, 0
	use := func(normalized float64) {
		total += normalized
		count++
	}

	// Flesch Reading Ease is already on a 0-100 scale; the grade-level
	// formulas are mapped through their ideal bands.
	if b.FleschReadingEase > 0 {
		use(clamp(b.FleschReadingEase))
	}
	if b.FleschKincaidGrade > 0 {
		use(normalizeGrade(b.FleschKincaidGrade, 6, 8, 20))
	}
	if b.GunningFog > 0 {
		use(normalizeGrade(b.GunningFog, 0, 12, 20))
	}
	if b.SMOGIndex > 0 {
		use(normalizeGrade(b.SMOGIndex, 8, 10, 20))
	}
	if b.AutomatedReadability > 0 {
		use(normalizeGrade(b.AutomatedReadability, 6, 8, 20))
	}
	if b.ColemanLiau > 0 {
		use(normalizeGrade(b.ColemanLiau, 6, 8, 20))
	}

	b.MetricsUsed = count
	if count == 0 {
		b.Annotation = "no readability metric computed"
		return model.CriterionResult{Score: neutralReadability, Breakdown: b}
	}

	final := clamp(total / float64(count))
	b.FinalScore = final
	return model.CriterionResult{Score: final, Breakdown: b}
}

// sanitize coerces non-finite formula output to zero so it is excluded
// from the average like any other failed metric.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
