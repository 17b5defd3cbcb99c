package analysis

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/prepsage/examlens/internal/exam"
	"github.com/prepsage/examlens/internal/llm"
)

func newTestAnalyzer(mock *llm.MockProvider) *Analyzer {
	return New(mock, nil, DefaultConfig())
}

// sampleQuestions returns three pre-tagged questions: one answered
// correctly, one wrongly, one skipped.
func sampleQuestions() []exam.Question {
	return []exam.Question{
		{
			ID:   "q1",
			Text: "Which river is known as the Sorrow of Bengal?",
			Options: map[string]string{
				"A": "Ganga", "B": "Damodar", "C": "Kosi", "D": "Teesta",
			},
			CorrectOption: "B",
			ChosenOption:  "B",
			Subject:       "Geography",
		},
		{
			ID:   "q2",
			Text: "Who administers the oath of office to the President?",
			Options: map[string]string{
				"A": "Prime Minister", "B": "Speaker", "C": "Chief Justice", "D": "Vice President",
			},
			CorrectOption: "C",
			ChosenOption:  "D",
			Subject:       "Polity",
		},
		{
			ID:   "q3",
			Text: "Which index measures wholesale price inflation?",
			Options: map[string]string{
				"A": "CPI", "B": "WPI", "C": "GDP deflator", "D": "IIP",
			},
			CorrectOption: "B",
			Subject:       "Economy",
		},
	}
}

func evalResponse(qid, status, subject string) llm.MockResponse {
	return llm.MockResponse{
		Content: json.RawMessage(fmt.Sprintf(`{"qid": %q, "status": %q, "subject": %q}`, qid, status, subject)),
	}
}

func mindsetResponse(qid string) llm.MockResponse {
	return llm.MockResponse{
		Content: json.RawMessage(fmt.Sprintf(`{
			"question_id": %q,
			"chosen_option_analysis": "Confused the Vice President's role with the Chief Justice's.",
			"depth_of_knowledge_assessment": "Superficial familiarity with constitutional offices.",
			"distractor_analysis": {
				"A": "Not a constitutional role in oath-taking.",
				"B": "Presides over the Lok Sabha, not oaths.",
				"C": "This is the correct answer.",
				"D": "This is the chosen incorrect answer."
			},
			"improvement_suggestion": "Revise Articles 52-62 on the executive."
		}`, qid)),
	}
}

func subjectAnalysisResponse() llm.MockResponse {
	return llm.MockResponse{
		Content: json.RawMessage(`{
			"overall_insights": "Solid in Geography, shaky in Polity.",
			"subject_breakdown": {
				"Geography": {"total_questions": 1, "correct": 1, "wrong": 0, "unattempted": 0, "accuracy": 100, "status": "Strong"},
				"Polity": {"total_questions": 1, "correct": 0, "wrong": 1, "unattempted": 0, "accuracy": 0, "status": "Weak"},
				"Economy": {"total_questions": 1, "correct": 0, "wrong": 0, "unattempted": 1, "accuracy": 0, "status": "Weak"}
			},
			"behavioral_patterns": "Skips economy questions."
		}`),
	}
}

func unattemptedResponse() llm.MockResponse {
	return llm.MockResponse{
		Content: json.RawMessage(`{
			"individual_reasons": [
				{"question_id": "q3", "reason_for_skipping": "Likely unfamiliar with inflation indices."}
			],
			"overall_summary": "Avoids economy questions when unsure."
		}`),
	}
}

func textResponse(s string) llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(s)}
}

func TestPipelineCompiles(t *testing.T) {
	a := newTestAnalyzer(llm.NewMockProvider())
	if _, err := a.Pipeline(); err != nil {
		t.Fatalf("pipeline did not compile: %v", err)
	}
}

func TestAnalyze_FullRun(t *testing.T) {
	mock := llm.NewMockProvider(
		textResponse("First classify each response, then analyze mindset and subjects."),
		evalResponse("q1", "Correct", "Geography"),
		evalResponse("q2", "Wrong", "Polity"),
		evalResponse("q3", "Unattempted", "Economy"),
		mindsetResponse("q2"),
		subjectAnalysisResponse(),
		unattemptedResponse(),
		textResponse("## Overall Performance Summary\nA promising attempt."),
	)
	a := newTestAnalyzer(mock)

	state, err := a.Analyze(t.Context(), "Analyze my mock test", sampleQuestions(), []string{"NCERT Economy"})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	counts := state.Counts()
	if counts.Total != 3 || counts.Attempted != 2 || counts.Correct != 1 || counts.Wrong != 1 || counts.Unattempted != 1 {
		t.Errorf("unexpected counts: %+v", counts)
	}
	if state.CurrentQuestionIndex != 3 {
		t.Errorf("cursor should rest past the last question, got %d", state.CurrentQuestionIndex)
	}
	if len(state.EvaluationResults) != state.CurrentQuestionIndex {
		t.Errorf("results (%d) must track the cursor (%d)",
			len(state.EvaluationResults), state.CurrentQuestionIndex)
	}

	if state.Plan == "" || state.Plan == planFallback {
		t.Errorf("expected a real plan, got %q", state.Plan)
	}
	if len(state.MindsetInsights) != 1 || state.MindsetInsights[0].QuestionID != "q2" {
		t.Errorf("expected exactly one insight for q2, got %+v", state.MindsetInsights)
	}
	if state.SubjectPerformance.Failed() {
		t.Errorf("subject analysis unexpectedly failed: %+v", state.SubjectPerformance)
	}
	if got := state.SubjectPerformance.SubjectBreakdown["Polity"].Status; got != "Weak" {
		t.Errorf("expected Polity marked Weak, got %q", got)
	}
	if len(state.UnattemptedReasons.IndividualReasons) != 1 {
		t.Errorf("expected one skip reason, got %+v", state.UnattemptedReasons)
	}
	if state.FinalSummaryReport == "" || state.FinalSummaryReport == reportFallback {
		t.Errorf("expected a real summary, got %q", state.FinalSummaryReport)
	}

	// Pre-tagged questions mean classify made no calls: plan, 3 evals,
	// 1 mindset, subjects, unattempted, summary.
	if mock.CallCount() != 8 {
		t.Errorf("expected 8 provider calls, got %d", mock.CallCount())
	}
}

func TestAnalyze_NoQuestions(t *testing.T) {
	mock := llm.NewMockProvider(
		textResponse("Plan for an empty paper."),
		textResponse("Nothing to report."),
	)
	a := newTestAnalyzer(mock)

	state, err := a.Analyze(t.Context(), "Analyze", nil, nil)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if len(state.EvaluationResults) != 0 || state.CurrentQuestionIndex != 0 {
		t.Errorf("zero-question run must not evaluate anything: %+v", state)
	}
	if !state.SubjectPerformance.Failed() {
		t.Error("subject analysis should record an error marker with no data")
	}
	if state.UnattemptedReasons.OverallSummary != exam.NoUnattemptedSummary {
		t.Errorf("expected fixed unattempted summary, got %q", state.UnattemptedReasons.OverallSummary)
	}
	// Only the plan and the summary reach the provider.
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 provider calls, got %d", mock.CallCount())
	}
}

func TestAnalyze_DegradedEvaluationStillCompletes(t *testing.T) {
	questions := sampleQuestions()[:2]
	mock := llm.NewMockProvider(
		textResponse("Plan."),
		evalResponse("q1", "Correct", "Geography"),
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		// No wrong results survive, so mindset makes no call.
		subjectAnalysisResponse(),
		// No unattempted results either.
		textResponse("Summary despite the hiccup."),
	)
	a := newTestAnalyzer(mock)

	state, err := a.Analyze(t.Context(), "Analyze", questions, nil)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if len(state.EvaluationResults) != 2 {
		t.Fatalf("expected 2 results, got %d", len(state.EvaluationResults))
	}
	degraded := state.EvaluationResults[1]
	if degraded.Status != exam.StatusUnknown || degraded.Error == "" {
		t.Errorf("expected degraded Unknown result with error, got %+v", degraded)
	}
	if degraded.Subject != "Polity" {
		t.Errorf("degraded result should keep the pre-tagged subject, got %q", degraded.Subject)
	}
	if state.FinalSummaryReport != "Summary despite the hiccup." {
		t.Errorf("run should still reach the report, got %q", state.FinalSummaryReport)
	}
}

func TestPlan_FallbackOnError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	a := newTestAnalyzer(mock)

	state, err := a.plan(t.Context(), exam.NewState("task", nil, nil))
	if err != nil {
		t.Fatalf("plan stage must absorb provider errors: %v", err)
	}
	if state.Plan != planFallback {
		t.Errorf("expected plan fallback, got %q", state.Plan)
	}
}

func TestSummarize_FallbackOnError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	a := newTestAnalyzer(mock)

	state, err := a.summarize(t.Context(), exam.NewState("task", sampleQuestions(), nil))
	if err != nil {
		t.Fatalf("summarize stage must absorb provider errors: %v", err)
	}
	if state.FinalSummaryReport != reportFallback {
		t.Errorf("expected report fallback, got %q", state.FinalSummaryReport)
	}
}
