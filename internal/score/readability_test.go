package score

import (
	"reflect"
	"strings"
	"testing"

	"github.com/krishirajsinh-p/WebBoost/internal/model"
)

func TestReadabilityShortText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
	}{
		{name: "empty text", text: ""},
		{name: "under 100 chars", text: "Short but real text."},
		{name: "whitespace padding does not count", text: strings.Repeat(" ", 200) + "tiny"},
		// 50 runes of CJK text exceed 100 bytes in UTF-8; the limit
		// counts characters, not bytes.
		{name: "multi-byte runes counted as characters", text: strings.Repeat("日本語の文。", 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := Readability(tt.text, "en")
			if res.Score != 50.0 {
				t.Errorf("Score = %v, want exactly 50.0", res.Score)
			}
			if res.Breakdown.Note() == "" {
				t.Error("expected a short-text note in the breakdown")
			}
		})
	}
}

func TestReadabilitySimpleProse(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("The cat sat on the mat. The dog ran to the park. ", 5)
	res := Readability(text, "en")

	if res.Score < 0 || res.Score > 100 {
		t.Fatalf("Score = %v, want within [0, 100]", res.Score)
	}

	b, ok := res.Breakdown.(*model.ReadabilityBreakdown)
	if !ok {
		t.Fatalf("Breakdown is %T, want *model.ReadabilityBreakdown", res.Breakdown)
	}
	if b.MetricsUsed == 0 {
		t.Error("MetricsUsed = 0, want at least one formula to compute")
	}
	if b.FleschReadingEase == 0 {
		t.Error("FleschReadingEase = 0, want a computed value for simple prose")
	}
	if b.FinalScore != res.Score {
		t.Errorf("FinalScore = %v, want %v", b.FinalScore, res.Score)
	}
}

func TestReadabilityDeterministic(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("We studied readability formulas and analyzed their behavior on real pages. ", 4)

	first := Readability(text, "en")
	second := Readability(text, "en")

	if first.Score != second.Score {
		t.Errorf("scores differ across runs: %v vs %v", first.Score, second.Score)
	}
	if !reflect.DeepEqual(first.Breakdown, second.Breakdown) {
		t.Error("breakdowns differ across identical runs")
	}
}
