package analysis

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/prepsage/examlens/internal/exam"
	"github.com/prepsage/examlens/internal/llm"
)

func TestEvaluate_AppendsResultAndAdvances(t *testing.T) {
	mock := llm.NewMockProvider(evalResponse("q1", "Correct", "Geography"))
	a := newTestAnalyzer(mock)
	state := exam.NewState("task", sampleQuestions(), nil)

	state, err := a.evaluate(t.Context(), state)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	if state.CurrentQuestionIndex != 1 {
		t.Errorf("expected cursor at 1, got %d", state.CurrentQuestionIndex)
	}
	if len(state.EvaluationResults) != 1 {
		t.Fatalf("expected 1 result, got %d", len(state.EvaluationResults))
	}
	r := state.EvaluationResults[0]
	if r.QID != "q1" || r.Status != exam.StatusCorrect || r.Subject != "Geography" || r.Error != "" {
		t.Errorf("unexpected result: %+v", r)
	}
	if state.CurrentQuestion == nil || state.CurrentQuestion.ID != "q1" {
		t.Errorf("CurrentQuestion should point at the evaluated question")
	}
}

func TestEvaluate_SendsUnattemptedSentinel(t *testing.T) {
	mock := llm.NewMockProvider(evalResponse("q3", "Unattempted", "Economy"))
	a := newTestAnalyzer(mock)
	state := exam.NewState("task", sampleQuestions()[2:], nil)

	if _, err := a.evaluate(t.Context(), state); err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	msg := mock.Calls[0].Messages[0].Content
	if want := "Chosen Option: " + exam.UnattemptedSentinel + "\n"; !strings.Contains(msg, want) {
		t.Errorf("prompt should carry the sentinel line %q:\n%s", want, msg)
	}
	if mock.Calls[0].Schema != EvaluationSchema {
		t.Error("evaluation must be schema-constrained")
	}
}

func TestEvaluate_DegradedOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	a := newTestAnalyzer(mock)
	state := exam.NewState("task", sampleQuestions(), nil)

	state, err := a.evaluate(t.Context(), state)
	if err != nil {
		t.Fatalf("evaluate must absorb provider errors: %v", err)
	}

	if state.CurrentQuestionIndex != 1 {
		t.Error("cursor must advance past a failed question")
	}
	r := state.EvaluationResults[0]
	if r.Status != exam.StatusUnknown || r.Error == "" {
		t.Errorf("expected Unknown result with error, got %+v", r)
	}
	if r.Subject != "Geography" {
		t.Errorf("degraded result keeps the question's subject, got %q", r.Subject)
	}
}

func TestEvaluate_DegradedOnUnparseableResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	a := newTestAnalyzer(mock)
	state := exam.NewState("task", sampleQuestions(), nil)

	state, err := a.evaluate(t.Context(), state)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	r := state.EvaluationResults[0]
	if r.Status != exam.StatusUnknown || r.Error == "" {
		t.Errorf("expected Unknown result with parse error, got %+v", r)
	}
}

func TestEvaluate_PastEndIsNoOp(t *testing.T) {
	mock := llm.NewMockProvider()
	a := newTestAnalyzer(mock)
	state := exam.NewState("task", nil, nil)

	state, err := a.evaluate(t.Context(), state)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(state.EvaluationResults) != 0 || state.CurrentQuestionIndex != 0 {
		t.Errorf("no-op expected, got %+v", state)
	}
	if mock.CallCount() != 0 {
		t.Errorf("no provider call expected, got %d", mock.CallCount())
	}
}

func TestNextAfterEvaluation(t *testing.T) {
	state := exam.NewState("task", sampleQuestions(), nil)

	if got := nextAfterEvaluation(state); got != StageEvaluate {
		t.Errorf("cursor before the end should loop back, got %q", got)
	}

	state.CurrentQuestionIndex = len(state.AllQuestions)
	if got := nextAfterEvaluation(state); got != StageMindset {
		t.Errorf("cursor at the end should hand off to mindset, got %q", got)
	}
}
