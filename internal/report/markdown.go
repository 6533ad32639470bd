package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/krishirajsinh-p/WebBoost/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the full report in Markdown format.
func (w *MarkdownWriter) Write(report *model.AnalysisReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeScores(md, report)
	w.writeAnomalies(md, report)
	w.writeRecommendations(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with page information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H1("WebBoost Report")
	md.PlainText("")

	rows := [][]string{
		{"Page URL", "`" + report.URL + "`"},
		{"Analyzed", report.AnalyzedAt.Format("2006-01-02 15:04:05 MST")},
		{"Overall Score", fmt.Sprintf("**%.2f / 100** (Grade %s)", report.OverallScore, report.Grade())},
		{"Status", w.getStatusText(report)},
	}
	if report.Page != nil && report.Page.Language != "" {
		rows = append(rows, []string{"Language", report.Page.Language})
	}
	if report.Page != nil && report.Page.LoadTime > 0 {
		rows = append(rows, []string{"Load Time", fmt.Sprintf("%.2fs", report.Page.LoadTime.Seconds())})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")

	w.writeAlert(md, report)
}

// getStatusText returns the status text based on report state.
func (w *MarkdownWriter) getStatusText(report *model.AnalysisReport) string {
	if report.TimedOut {
		return "⚠️ Timed Out (partial results)"
	}
	if report.ErrorMessage != "" {
		return "❌ Error - " + report.ErrorMessage
	}
	return "✅ Complete"
}

// writeAlert writes an appropriate alert based on the overall score.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.AnalysisReport) {
	switch {
	case report.ErrorMessage != "":
		md.Cautionf("The analysis did not complete: %s", report.ErrorMessage)
	case report.OverallScore < 40:
		md.Cautionf(
			"This page scores %.2f/100. It needs substantial work across several quality dimensions.",
			report.OverallScore,
		)
	case report.OverallScore < 60:
		md.Warningf(
			"This page scores %.2f/100. Several quality dimensions have room for improvement.",
			report.OverallScore,
		)
	case report.OverallScore < 80:
		md.Importantf(
			"This page scores %.2f/100. A few focused improvements would raise it further.",
			report.OverallScore,
		)
	default:
		md.Tip(fmt.Sprintf("This page scores %.2f/100. Keep doing what you are doing.", report.OverallScore))
	}
	md.PlainText("")
}

// writeScores writes the per-criterion score table and the contribution
// pie chart.
func (w *MarkdownWriter) writeScores(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H2("Criterion Scores")
	md.PlainText("")

	if len(report.Scores) == 0 {
		md.PlainText("No criteria were scored.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(model.AllCriteria))
	for _, c := range model.AllCriteria {
		score, ok := report.Scores[c]
		if !ok {
			continue
		}

		weight, contribution := "-", "-"
		if contrib, ok := report.ScoreBreakdown[c]; ok {
			weight = strconv.FormatFloat(contrib.Weight, 'f', 2, 64)
			contribution = strconv.FormatFloat(contrib.Contribution, 'f', 2, 64)
		}

		rows = append(rows, []string{
			c.DisplayName(),
			strconv.FormatFloat(score, 'f', 1, 64),
			weight,
			contribution,
			priorityLabel(model.PriorityForScore(score)),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Criterion", "Score", "Weight", "Contribution", "Priority"},
		Rows:   rows,
	})
	md.PlainText("")

	w.writePieChart(md, report)
}

// writePieChart writes a mermaid pie chart of score contributions.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, report *model.AnalysisReport) {
	if len(report.ScoreBreakdown) == 0 {
		return
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Score Contribution by Criterion"),
		piechart.WithShowData(true),
	)

	plotted := false
	for _, c := range model.AllCriteria {
		contrib, ok := report.ScoreBreakdown[c]
		if !ok {
			continue
		}
		// Contributions are plotted in hundredths to keep two decimal
		// places through the integer-valued chart API.
		value := uint64(math.Round(contrib.Contribution * 100))
		if value == 0 {
			continue
		}
		chart.LabelAndIntValue(c.DisplayName(), value)
		plotted = true
	}
	if !plotted {
		return
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAnomalies writes aggregation violations and warnings.
func (w *MarkdownWriter) writeAnomalies(md *markdown.Markdown, report *model.AnalysisReport) {
	if len(report.Violations) == 0 && len(report.Warnings) == 0 {
		return
	}

	md.H2("Scoring Anomalies")
	md.PlainText("")

	if len(report.Violations) > 0 {
		md.PlainText("### Violations")
		md.PlainText("")
		md.BulletList(report.Violations...)
		md.PlainText("")
	}
	if len(report.Warnings) > 0 {
		md.PlainText("### Warnings")
		md.PlainText("")
		md.BulletList(report.Warnings...)
		md.PlainText("")
	}
}

// writeRecommendations writes advice grouped by priority.
func (w *MarkdownWriter) writeRecommendations(md *markdown.Markdown, report *model.AnalysisReport) {
	md.H2("Recommendations")
	md.PlainText("")

	if len(report.Recommendations) == 0 {
		md.PlainText("No recommendations.")
		md.PlainText("")
		return
	}

	priorities := []struct {
		level  model.Priority
		header string
	}{
		{model.PriorityCritical, "### 🔴 Critical"},
		{model.PriorityHigh, "### 🟠 High"},
		{model.PriorityMedium, "### 🟡 Medium"},
		{model.PriorityLow, "### 🔵 Low"},
		{model.PriorityDoingGreat, "### 🟢 Doing Great"},
	}

	for _, priority := range priorities {
		recs := recommendationsFor(report, priority.level)
		if len(recs) == 0 {
			continue
		}

		md.PlainText(priority.header)
		md.PlainText("")

		items := make([]string, len(recs))
		for i, rec := range recs {
			items[i] = "**" + rec.Criterion.DisplayName() + "**: " + rec.Text
		}
		md.BulletList(items...)
		md.PlainText("")
	}
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [WebBoost](https://github.com/krishirajsinh-p/WebBoost)*")
}
