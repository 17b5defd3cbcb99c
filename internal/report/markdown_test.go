package report

import (
	"strings"
	"testing"

	"github.com/prepsage/examlens/internal/exam"
)

func finalState() exam.State {
	state := exam.NewState("Analyze my mock test", []exam.Question{
		{ID: "q1", Subject: "Geography"},
		{ID: "q2", Subject: "Polity"},
		{ID: "q3", Subject: "Economy"},
	}, []string{"NCERT Economy", "Laxmikanth"})
	state.CurrentQuestionIndex = 3
	state.EvaluationResults = []exam.EvaluationResult{
		{QID: "q1", Status: exam.StatusCorrect, Subject: "Geography"},
		{QID: "q2", Status: exam.StatusWrong, Subject: "Polity"},
		{QID: "q3", Status: exam.StatusUnattempted, Subject: "Economy"},
	}
	state.MindsetInsights = []exam.MindsetInsight{{
		QuestionID:                 "q2",
		ChosenOptionAnalysis:       "Confused constitutional roles.",
		DepthOfKnowledgeAssessment: "Superficial.",
		DistractorAnalysis: map[string]string{
			"B": "Plausible but wrong.",
			"A": "Unrelated.",
			"D": "The chosen wrong answer.",
			"C": "The correct answer.",
		},
		ImprovementSuggestion: "Revise the executive chapter.",
	}}
	state.SubjectPerformance = exam.SubjectPerformance{
		OverallInsights: "Strong in Geography.",
		SubjectBreakdown: map[string]exam.SubjectBreakdown{
			"Polity":    {TotalQuestions: 1, Wrong: 1, Accuracy: 0, Status: "Weak"},
			"Geography": {TotalQuestions: 1, Correct: 1, Accuracy: 100, Status: "Strong"},
		},
		BehavioralPatterns: "Skips economy questions.",
	}
	state.UnattemptedReasons = exam.UnattemptedReasons{
		IndividualReasons: []exam.UnattemptedReason{
			{QuestionID: "q3", ReasonForSkipping: "Unfamiliar topic."},
		},
		OverallSummary: "Avoids economy.",
	}
	state.FinalSummaryReport = "A promising attempt."
	return state
}

func TestRender_AllSections(t *testing.T) {
	out := Render(finalState())

	for _, want := range []string{
		"# Exam Performance Analysis Report",
		"## Key Performance Metrics",
		"- **Total Questions:** 3",
		"- **Attempted:** 2",
		"- **Correct:** 1",
		"- **Wrong:** 1",
		"- **Unattempted:** 1",
		"## Subject-wise Performance Breakdown",
		"**Overall Subject Insights:** Strong in Geography.",
		"#### Geography",
		"- Accuracy: 100%",
		"- Status: **Strong**",
		"**Behavioral Patterns across Subjects:** Skips economy questions.",
		"## Detailed Mindset Insights (Wrong Answers)",
		"### Question ID: q2",
		"  - **Option A:** Unrelated.",
		"- **Improvement Suggestion:** Revise the executive chapter.",
		"## Unattempted Questions Analysis",
		"**Overall Summary:** Avoids economy.",
		"- **QID q3:** Unfamiliar topic.",
		"## Additional References",
		"- NCERT Economy",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestRender_Deterministic(t *testing.T) {
	state := finalState()
	if Render(state) != Render(state) {
		t.Error("rendering the same state twice must produce identical output")
	}

	// Map-backed sections come out sorted.
	out := Render(state)
	if strings.Index(out, "#### Geography") > strings.Index(out, "#### Polity") {
		t.Error("subjects must render in sorted order")
	}
	if strings.Index(out, "**Option A:**") > strings.Index(out, "**Option B:**") {
		t.Error("distractor options must render in sorted order")
	}
}

func TestRender_EmptyState(t *testing.T) {
	out := Render(exam.NewState("task", nil, nil))

	for _, want := range []string{
		"- **Total Questions:** 0",
		"No subject performance data available.",
		"No specific mindset insights for wrong answers.",
		"No unattempted questions analysis available.",
		"No additional references provided.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("empty-state report missing %q", want)
		}
	}
}

func TestRender_FailedSubjectAnalysis(t *testing.T) {
	state := finalState()
	state.SubjectPerformance = exam.SubjectPerformance{
		Error:       "Failed to parse subject analysis",
		RawResponse: "not json",
	}

	out := Render(state)
	if !strings.Contains(out, "Subject performance analysis unavailable: Failed to parse subject analysis") {
		t.Error("failed analysis must surface its error")
	}
	if strings.Contains(out, "not json") {
		t.Error("raw model response must not leak into the report")
	}
}
