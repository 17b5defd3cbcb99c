package analysis

import (
	"encoding/json"
	"testing"

	"github.com/prepsage/examlens/internal/exam"
	"github.com/prepsage/examlens/internal/llm"
)

func TestClassify_TagsOnlyMissingSubjects(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`History`)},
	)
	a := newTestAnalyzer(mock)

	questions := sampleQuestions()
	questions[1].Subject = ""
	state := exam.NewState("task", questions, nil)

	state, err := a.classifySubjects(t.Context(), state)
	if err != nil {
		t.Fatalf("classifySubjects: %v", err)
	}

	if got := state.AllQuestions[1].Subject; got != "History" {
		t.Errorf("expected backfilled subject History, got %q", got)
	}
	if got := state.AllQuestions[0].Subject; got != "Geography" {
		t.Errorf("pre-tagged subject must not change, got %q", got)
	}
	if mock.CallCount() != 1 {
		t.Errorf("only the untagged question reaches the provider, got %d calls", mock.CallCount())
	}
}

func TestClassify_StripsQuotes(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`"Polity"` + "\n")},
	)
	a := newTestAnalyzer(mock)

	questions := sampleQuestions()[:1]
	questions[0].Subject = ""

	state, err := a.classifySubjects(t.Context(), exam.NewState("task", questions, nil))
	if err != nil {
		t.Fatalf("classifySubjects: %v", err)
	}
	if got := state.AllQuestions[0].Subject; got != "Polity" {
		t.Errorf("expected quotes stripped, got %q", got)
	}
}

func TestClassify_FallsBackToGeneral(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	a := newTestAnalyzer(mock)

	questions := sampleQuestions()[:1]
	questions[0].Subject = ""

	state, err := a.classifySubjects(t.Context(), exam.NewState("task", questions, nil))
	if err != nil {
		t.Fatalf("classifySubjects must absorb provider errors: %v", err)
	}
	if got := state.AllQuestions[0].Subject; got != "General" {
		t.Errorf("expected General fallback, got %q", got)
	}
}
