package report

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/krishirajsinh-p/WebBoost/internal/model"
)

// scoreBarWidth is the character width of the score bars in the
// criterion section.
const scoreBarWidth = 20

// titleCaser renders priority labels in title case for section headers.
var titleCaser = cases.Title(language.English)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with score bars and
// clear section formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// showEmpty controls whether sections with no content are shown.
	showEmpty bool

	// verbose enables additional detail in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowEmpty configures the writer to show empty sections.
func WithShowEmpty(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showEmpty = show
	}
}

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		showEmpty:  false,
		verbose:    false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the full report in human-readable format.
func (w *SimpleWriter) Write(report *model.AnalysisReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeOverall(&sb, report)
	w.writeCriteria(&sb, report)
	w.writeAnomalies(&sb, report)
	w.writeRecommendations(&sb, report)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with page information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.AnalysisReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                         WEBBOOST REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Page URL:      %s\n", report.URL))
	sb.WriteString(fmt.Sprintf("Analyzed:      %s\n", report.AnalyzedAt.Format("2006-01-02 15:04:05 MST")))
	if report.Page != nil {
		if report.Page.Language != "" {
			sb.WriteString(fmt.Sprintf("Language:      %s\n", report.Page.Language))
		}
		if report.Page.LoadTime > 0 {
			sb.WriteString(fmt.Sprintf("Load Time:     %.2fs\n", report.Page.LoadTime.Seconds()))
		}
	}

	if report.TimedOut {
		sb.WriteString("Status:        TIMED OUT (partial results)\n")
	} else if report.ErrorMessage != "" {
		sb.WriteString(fmt.Sprintf("Status:        ERROR - %s\n", report.ErrorMessage))
	} else {
		sb.WriteString("Status:        Complete\n")
	}

	sb.WriteString("\n")
}

// writeOverall writes the overall score section.
func (w *SimpleWriter) writeOverall(sb *strings.Builder, report *model.AnalysisReport) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("OVERALL SCORE\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  %s %.2f / 100  (Grade %s)\n",
		scoreBar(report.OverallScore), report.OverallScore, report.Grade()))
	sb.WriteString("\n")
}

// writeCriteria writes the per-criterion score table with the
// aggregation ledger.
func (w *SimpleWriter) writeCriteria(sb *strings.Builder, report *model.AnalysisReport) {
	if len(report.Scores) == 0 && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("CRITERION SCORES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for _, c := range model.AllCriteria {
		score, ok := report.Scores[c]
		if !ok {
			if w.showEmpty {
				sb.WriteString(fmt.Sprintf("  %-20s not scored\n", c.DisplayName()))
			}
			continue
		}

		sb.WriteString(fmt.Sprintf("  %-20s %s %6.1f", c.DisplayName(), scoreBar(score), score))
		if contrib, ok := report.ScoreBreakdown[c]; ok {
			sb.WriteString(fmt.Sprintf("  (weight %.2f, contributes %.2f)", contrib.Weight, contrib.Contribution))
		}
		sb.WriteString("\n")

		if w.verbose {
			if b, ok := report.Breakdowns[c]; ok {
				for _, item := range b.Items() {
					sb.WriteString(fmt.Sprintf("      %s: %v\n", item.Key, item.Value))
				}
				if note := b.Note(); note != "" {
					sb.WriteString(fmt.Sprintf("      note: %s\n", note))
				}
			}
		}
	}
	sb.WriteString("\n")
}

// writeAnomalies writes aggregation violations and warnings.
func (w *SimpleWriter) writeAnomalies(sb *strings.Builder, report *model.AnalysisReport) {
	if len(report.Violations) == 0 && len(report.Warnings) == 0 && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("SCORING ANOMALIES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if len(report.Violations) == 0 && len(report.Warnings) == 0 {
		sb.WriteString("  None\n")
	}
	for _, v := range report.Violations {
		sb.WriteString(fmt.Sprintf("  [violation] %s\n", v))
	}
	for _, warning := range report.Warnings {
		sb.WriteString(fmt.Sprintf("  [warning] %s\n", warning))
	}
	sb.WriteString("\n")
}

// writeRecommendations writes advice grouped by priority.
func (w *SimpleWriter) writeRecommendations(sb *strings.Builder, report *model.AnalysisReport) {
	if len(report.Recommendations) == 0 && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("RECOMMENDATIONS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if len(report.Recommendations) == 0 {
		sb.WriteString("  No recommendations\n\n")
		return
	}

	priorities := []model.Priority{
		model.PriorityCritical,
		model.PriorityHigh,
		model.PriorityMedium,
		model.PriorityLow,
		model.PriorityDoingGreat,
	}

	for _, priority := range priorities {
		recs := recommendationsFor(report, priority)
		if len(recs) == 0 && !w.showEmpty {
			continue
		}

		indicator := priorityIndicator(priority)
		sb.WriteString(fmt.Sprintf("[%s] %s\n", indicator, priority.String()))

		if len(recs) == 0 {
			sb.WriteString("  None\n\n")
			continue
		}
		for _, rec := range recs {
			sb.WriteString(fmt.Sprintf("  * %s: %s\n", rec.Criterion.DisplayName(), rec.Text))
		}
		sb.WriteString("\n")
	}
}

// recommendationsFor filters recommendations by priority, keeping order.
func recommendationsFor(report *model.AnalysisReport, priority model.Priority) []model.Recommendation {
	var recs []model.Recommendation
	for _, rec := range report.Recommendations {
		if rec.Priority == priority {
			recs = append(recs, rec)
		}
	}
	return recs
}

// priorityIndicator returns a visual indicator for the priority band.
func priorityIndicator(priority model.Priority) string {
	switch priority {
	case model.PriorityCritical:
		return "!!!"
	case model.PriorityHigh:
		return "!!"
	case model.PriorityMedium:
		return "!"
	case model.PriorityLow:
		return "-"
	case model.PriorityDoingGreat:
		return "+"
	default:
		return "?"
	}
}

// priorityLabel returns the priority label in title case, e.g.
// "Doing Great", for markdown headers.
func priorityLabel(priority model.Priority) string {
	return titleCaser.String(strings.ToLower(priority.String()))
}

// scoreBar renders a fixed-width bar proportional to a 0-100 score.
func scoreBar(score float64) string {
	filled := int(score / 100 * scoreBarWidth)
	if filled < 0 {
		filled = 0
	}
	if filled > scoreBarWidth {
		filled = scoreBarWidth
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", scoreBarWidth-filled) + "]"
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by WebBoost\n")
	sb.WriteString("https://github.com/krishirajsinh-p/WebBoost\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
