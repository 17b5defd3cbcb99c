// Package report renders a completed analysis state as Markdown. Rendering
// is deterministic: map-backed sections are emitted in sorted key order.
package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/prepsage/examlens/internal/exam"
)

// Render formats the final analysis state into a readable Markdown report.
func Render(state exam.State) string {
	var b strings.Builder

	b.WriteString("# Exam Performance Analysis Report\n\n---\n\n")

	writeKeyMetrics(&b, state)
	writeSubjectPerformance(&b, state.SubjectPerformance)
	writeMindsetInsights(&b, state.MindsetInsights)
	writeUnattempted(&b, state.UnattemptedReasons)
	writeReferences(&b, state.References)

	return b.String()
}

func writeKeyMetrics(b *strings.Builder, state exam.State) {
	c := state.Counts()

	b.WriteString("## Key Performance Metrics\n\n")
	fmt.Fprintf(b, "- **Total Questions:** %d\n", c.Total)
	fmt.Fprintf(b, "- **Attempted:** %d\n", c.Attempted)
	fmt.Fprintf(b, "- **Correct:** %d\n", c.Correct)
	fmt.Fprintf(b, "- **Wrong:** %d\n", c.Wrong)
	fmt.Fprintf(b, "- **Unattempted:** %d\n", c.Unattempted)
	b.WriteString("\n---\n\n")
}

func writeSubjectPerformance(b *strings.Builder, perf exam.SubjectPerformance) {
	b.WriteString("## Subject-wise Performance Breakdown\n\n")

	switch {
	case perf.Failed():
		fmt.Fprintf(b, "Subject performance analysis unavailable: %s\n", perf.Error)
	case perf.OverallInsights == "" && len(perf.SubjectBreakdown) == 0:
		b.WriteString("No subject performance data available.\n")
	default:
		fmt.Fprintf(b, "**Overall Subject Insights:** %s\n\n", orNA(perf.OverallInsights))

		if len(perf.SubjectBreakdown) > 0 {
			b.WriteString("### Detailed Subject Breakdown\n\n")
			subjects := make([]string, 0, len(perf.SubjectBreakdown))
			for s := range perf.SubjectBreakdown {
				subjects = append(subjects, s)
			}
			sort.Strings(subjects)

			for _, subject := range subjects {
				d := perf.SubjectBreakdown[subject]
				fmt.Fprintf(b, "#### %s\n\n", subject)
				fmt.Fprintf(b, "- Total Questions: %d\n", d.TotalQuestions)
				fmt.Fprintf(b, "- Correct: %d\n", d.Correct)
				fmt.Fprintf(b, "- Wrong: %d\n", d.Wrong)
				fmt.Fprintf(b, "- Unattempted: %d\n", d.Unattempted)
				fmt.Fprintf(b, "- Accuracy: %s%%\n", formatAccuracy(d.Accuracy))
				fmt.Fprintf(b, "- Status: **%s**\n\n", orNA(d.Status))
			}
		}

		fmt.Fprintf(b, "**Behavioral Patterns across Subjects:** %s\n", orNA(perf.BehavioralPatterns))
	}
	b.WriteString("\n---\n\n")
}

func writeMindsetInsights(b *strings.Builder, insights []exam.MindsetInsight) {
	b.WriteString("## Detailed Mindset Insights (Wrong Answers)\n\n")

	if len(insights) == 0 {
		b.WriteString("No specific mindset insights for wrong answers.\n")
	}
	for i, in := range insights {
		fmt.Fprintf(b, "### Question ID: %s\n\n", in.QuestionID)
		fmt.Fprintf(b, "- **Chosen Option Analysis:** %s\n", orNA(in.ChosenOptionAnalysis))
		fmt.Fprintf(b, "- **Depth of Knowledge Assessment:** %s\n", orNA(in.DepthOfKnowledgeAssessment))

		if len(in.DistractorAnalysis) > 0 {
			b.WriteString("- **Distractor Analysis:**\n")
			labels := make([]string, 0, len(in.DistractorAnalysis))
			for l := range in.DistractorAnalysis {
				labels = append(labels, l)
			}
			sort.Strings(labels)
			for _, l := range labels {
				fmt.Fprintf(b, "  - **Option %s:** %s\n", l, in.DistractorAnalysis[l])
			}
		}

		fmt.Fprintf(b, "- **Improvement Suggestion:** %s\n", orNA(in.ImprovementSuggestion))
		if i < len(insights)-1 {
			b.WriteString("\n---\n\n")
		}
	}
	b.WriteString("\n---\n\n")
}

func writeUnattempted(b *strings.Builder, reasons exam.UnattemptedReasons) {
	b.WriteString("## Unattempted Questions Analysis\n\n")

	if reasons.OverallSummary == "" && len(reasons.IndividualReasons) == 0 {
		b.WriteString("No unattempted questions analysis available.\n")
	} else {
		fmt.Fprintf(b, "**Overall Summary:** %s\n", orNA(reasons.OverallSummary))
		if len(reasons.IndividualReasons) > 0 {
			b.WriteString("\n### Individual Reasons for Skipping\n\n")
			for _, r := range reasons.IndividualReasons {
				fmt.Fprintf(b, "- **QID %s:** %s\n", r.QuestionID, r.ReasonForSkipping)
			}
		}
	}
	b.WriteString("\n---\n\n")
}

func writeReferences(b *strings.Builder, refs []string) {
	if len(refs) == 0 {
		b.WriteString("No additional references provided.\n")
		return
	}
	b.WriteString("## Additional References\n\n")
	for _, ref := range refs {
		fmt.Fprintf(b, "- %s\n", ref)
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// formatAccuracy prints an accuracy percentage without trailing zeros,
// so 100 renders as "100" and 77.78 as "77.78".
func formatAccuracy(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
