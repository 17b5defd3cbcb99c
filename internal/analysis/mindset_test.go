package analysis

import (
	"testing"

	"github.com/prepsage/examlens/internal/exam"
	"github.com/prepsage/examlens/internal/llm"
)

func stateWithResults() exam.State {
	state := exam.NewState("task", sampleQuestions(), nil)
	state.CurrentQuestionIndex = 3
	state.EvaluationResults = []exam.EvaluationResult{
		{QID: "q1", Status: exam.StatusCorrect, Subject: "Geography"},
		{QID: "q2", Status: exam.StatusWrong, Subject: "Polity"},
		{QID: "q3", Status: exam.StatusUnattempted, Subject: "Economy"},
	}
	return state
}

func TestInferMindset_WrongAnswersOnly(t *testing.T) {
	mock := llm.NewMockProvider(mindsetResponse("q2"))
	a := newTestAnalyzer(mock)

	state, err := a.inferMindset(t.Context(), stateWithResults())
	if err != nil {
		t.Fatalf("inferMindset: %v", err)
	}

	if len(state.MindsetInsights) != 1 {
		t.Fatalf("expected 1 insight, got %d", len(state.MindsetInsights))
	}
	in := state.MindsetInsights[0]
	if in.QuestionID != "q2" {
		t.Errorf("expected insight for q2, got %q", in.QuestionID)
	}
	if len(in.DistractorAnalysis) != 4 {
		t.Errorf("expected all four options analyzed, got %d", len(in.DistractorAnalysis))
	}
	if mock.CallCount() != 1 {
		t.Errorf("only the wrong answer should reach the provider, got %d calls", mock.CallCount())
	}
	if mock.Calls[0].Schema != MindsetSchema {
		t.Error("mindset analysis must be schema-constrained")
	}
}

func TestInferMindset_Idempotent(t *testing.T) {
	mock := llm.NewMockProvider(mindsetResponse("q2"))
	a := newTestAnalyzer(mock)

	state, err := a.inferMindset(t.Context(), stateWithResults())
	if err != nil {
		t.Fatalf("inferMindset: %v", err)
	}
	state, err = a.inferMindset(t.Context(), state)
	if err != nil {
		t.Fatalf("inferMindset rerun: %v", err)
	}

	if len(state.MindsetInsights) != 1 {
		t.Errorf("rerun must not duplicate insights, got %d", len(state.MindsetInsights))
	}
	if mock.CallCount() != 1 {
		t.Errorf("rerun must not call the provider again, got %d calls", mock.CallCount())
	}
}

func TestInferMindset_SkipsMalformedQuestion(t *testing.T) {
	mock := llm.NewMockProvider()
	a := newTestAnalyzer(mock)

	state := stateWithResults()
	// Strip the options so the wrong question fails the completeness check.
	state.AllQuestions[1].Options = nil

	state, err := a.inferMindset(t.Context(), state)
	if err != nil {
		t.Fatalf("inferMindset: %v", err)
	}
	if len(state.MindsetInsights) != 0 {
		t.Errorf("malformed question must be skipped, got %+v", state.MindsetInsights)
	}
	if mock.CallCount() != 0 {
		t.Errorf("no provider call expected, got %d", mock.CallCount())
	}
}

func TestInferMindset_FailedCallSkipsQuestion(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	a := newTestAnalyzer(mock)

	state, err := a.inferMindset(t.Context(), stateWithResults())
	if err != nil {
		t.Fatalf("inferMindset must absorb provider errors: %v", err)
	}
	if len(state.MindsetInsights) != 0 {
		t.Errorf("failed question gets no insight, got %+v", state.MindsetInsights)
	}
}
