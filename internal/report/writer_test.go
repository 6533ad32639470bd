package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/krishirajsinh-p/WebBoost/internal/model"
)

// createTestReport creates a report with sample data for testing.
func createTestReport() *model.AnalysisReport {
	report := model.NewAnalysisReport("https://example.com/article")
	report.AnalyzedAt = time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC)

	report.Scores = map[model.Criterion]float64{
		model.CriterionReadability:       85,
		model.CriterionInformativeness:   62,
		model.CriterionEngagement:        55,
		model.CriterionUniqueness:        48,
		model.CriterionDiscoverability:   30,
		model.CriterionAdExperience:      95,
		model.CriterionSocialIntegration: 10,
		model.CriterionLayoutQuality:     75,
		model.CriterionSEOKeywords:       68,
	}
	report.Breakdowns[model.CriterionSocialIntegration] = &model.SocialBreakdown{
		FinalScore: 10,
	}

	weights := model.DefaultWeights()
	var overall float64
	for c, s := range report.Scores {
		w := weights[c]
		report.ScoreBreakdown[c] = model.Contribution{
			RawScore:     s,
			Weight:       w,
			Contribution: s * w,
		}
		overall += s * w
	}
	report.OverallScore = overall

	report.Recommendations = []model.Recommendation{
		{Priority: model.PriorityCritical, Criterion: model.CriterionSocialIntegration, Text: "Add social platform links."},
		{Priority: model.PriorityHigh, Criterion: model.CriterionDiscoverability, Text: "Add site navigation and breadcrumbs."},
		{Priority: model.PriorityDoingGreat, Criterion: model.CriterionAdExperience, Text: "Ad Experience is strong (95/100)."},
	}

	return report
}

// TestSimpleWriter tests the human-readable report writer.
func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes report header", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "WEBBOOST REPORT") {
			t.Error("expected output to contain header")
		}
		if !strings.Contains(output, "https://example.com/article") {
			t.Error("expected output to contain page URL")
		}
		if !strings.Contains(output, "Status:        Complete") {
			t.Error("expected complete status")
		}
	})

	t.Run("writes overall score and grade", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "OVERALL SCORE") {
			t.Error("expected output to contain overall score section")
		}
		if !strings.Contains(output, "Grade") {
			t.Error("expected output to contain grade")
		}
	})

	t.Run("writes criterion scores with contributions", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "CRITERION SCORES") {
			t.Error("expected output to contain criterion section")
		}
		if !strings.Contains(output, "Readability") {
			t.Error("expected output to contain criterion name")
		}
		if !strings.Contains(output, "weight 0.15") {
			t.Error("expected output to contain weight from ledger")
		}
	})

	t.Run("groups recommendations by priority", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		criticalIdx := strings.Index(output, "[!!!] CRITICAL")
		highIdx := strings.Index(output, "[!!] HIGH")
		greatIdx := strings.Index(output, "[+] DOING GREAT")
		if criticalIdx < 0 || highIdx < 0 || greatIdx < 0 {
			t.Fatalf("missing priority sections in output:\n%s", output)
		}
		if !(criticalIdx < highIdx && highIdx < greatIdx) {
			t.Error("priority sections out of order")
		}
	})

	t.Run("verbose includes breakdown items", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithVerbose(true))

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "platform_score") {
			t.Error("expected verbose output to include breakdown keys")
		}
	})

	t.Run("reports error status", func(t *testing.T) {
		t.Parallel()

		report := model.NewAnalysisReport("https://example.com")
		report.ErrorMessage = "fetch failed"

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)
		if _, err := w.Write(report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "ERROR - fetch failed") {
			t.Error("expected error status in output")
		}
	})
}

// TestJSONWriter tests JSON report output.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes valid JSON", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var decoded map[string]any
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if decoded["url"] != "https://example.com/article" {
			t.Errorf("url = %v, want the page URL", decoded["url"])
		}
		if _, ok := decoded["scores"]; !ok {
			t.Error("expected scores field in JSON output")
		}
	})

	t.Run("pretty print produces indented output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, WithPrettyPrint())

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "\n  \"") {
			t.Error("expected indented JSON output")
		}
	})

	t.Run("full writer wraps with version", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewFullJSONWriter(&buf, "1.2.3")

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var wrapped struct {
			Version string                `json:"version"`
			Report  *model.AnalysisReport `json:"report"`
		}
		if err := json.Unmarshal(buf.Bytes(), &wrapped); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if wrapped.Version != "1.2.3" {
			t.Errorf("version = %q, want %q", wrapped.Version, "1.2.3")
		}
		if wrapped.Report == nil || wrapped.Report.URL != "https://example.com/article" {
			t.Error("wrapped report missing or wrong URL")
		}
	})

	t.Run("priorities serialize as labels", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), `"priority":"CRITICAL"`) {
			t.Error("expected priority labels in JSON output")
		}
	})
}

// TestMarkdownWriter tests Markdown report output.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes header and score table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "# WebBoost Report") {
			t.Error("expected markdown H1 header")
		}
		if !strings.Contains(output, "## Criterion Scores") {
			t.Error("expected criterion scores section")
		}
		if !strings.Contains(output, "| Readability") {
			t.Error("expected criterion table row")
		}
	})

	t.Run("includes contribution pie chart", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "```mermaid") {
			t.Error("expected mermaid code block")
		}
		if !strings.Contains(output, "Score Contribution by Criterion") {
			t.Error("expected pie chart title")
		}
	})

	t.Run("groups recommendations by priority", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "### 🔴 Critical") {
			t.Error("expected critical recommendation section")
		}
		if !strings.Contains(output, "### 🟢 Doing Great") {
			t.Error("expected doing-great section")
		}
	})
}

// failWriter always fails, for MultiWriter error propagation tests.
type failWriter struct{}

func (f *failWriter) Write(_ *model.AnalysisReport) (int, error) {
	return 0, errors.New("write failed")
}

// TestMultiWriter tests writing to multiple destinations.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes to all destinations", func(t *testing.T) {
		t.Parallel()

		var text, jsonBuf bytes.Buffer
		mw := NewMultiWriter(
			NewSimpleWriter(&text),
			NewJSONWriter(&jsonBuf),
		)

		if _, err := mw.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if text.Len() == 0 {
			t.Error("text writer got no output")
		}
		if jsonBuf.Len() == 0 {
			t.Error("json writer got no output")
		}
	})

	t.Run("stops on first error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		mw := NewMultiWriter(&failWriter{}, NewSimpleWriter(&buf))

		if _, err := mw.Write(createTestReport()); err == nil {
			t.Fatal("expected error from failing writer")
		}
		if buf.Len() != 0 {
			t.Error("expected no output after failing writer")
		}
	})
}

func TestScoreBar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score float64
		want  string
	}{
		{0, "[....................]"},
		{50, "[##########..........]"},
		{100, "[####################]"},
	}

	for _, tt := range tests {
		if got := scoreBar(tt.score); got != tt.want {
			t.Errorf("scoreBar(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestPriorityLabel(t *testing.T) {
	t.Parallel()

	if got := priorityLabel(model.PriorityDoingGreat); got != "Doing Great" {
		t.Errorf("priorityLabel(DoingGreat) = %q, want %q", got, "Doing Great")
	}
	if got := priorityLabel(model.PriorityCritical); got != "Critical" {
		t.Errorf("priorityLabel(Critical) = %q, want %q", got, "Critical")
	}
}
