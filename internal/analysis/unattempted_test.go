package analysis

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/prepsage/examlens/internal/exam"
	"github.com/prepsage/examlens/internal/llm"
)

func TestAnalyzeUnattempted_NoneShortCircuits(t *testing.T) {
	mock := llm.NewMockProvider()
	a := newTestAnalyzer(mock)

	state := stateWithResults()
	state.EvaluationResults[2].Status = exam.StatusCorrect

	state, err := a.analyzeUnattempted(t.Context(), state)
	if err != nil {
		t.Fatalf("analyzeUnattempted: %v", err)
	}

	if state.UnattemptedReasons.OverallSummary != exam.NoUnattemptedSummary {
		t.Errorf("expected fixed summary, got %q", state.UnattemptedReasons.OverallSummary)
	}
	if len(state.UnattemptedReasons.IndividualReasons) != 0 {
		t.Errorf("expected no individual reasons, got %+v", state.UnattemptedReasons.IndividualReasons)
	}
	if mock.CallCount() != 0 {
		t.Errorf("the fixed result must not touch the provider, got %d calls", mock.CallCount())
	}
}

func TestAnalyzeUnattempted_Parses(t *testing.T) {
	mock := llm.NewMockProvider(unattemptedResponse())
	a := newTestAnalyzer(mock)

	state, err := a.analyzeUnattempted(t.Context(), stateWithResults())
	if err != nil {
		t.Fatalf("analyzeUnattempted: %v", err)
	}

	reasons := state.UnattemptedReasons
	if len(reasons.IndividualReasons) != 1 || reasons.IndividualReasons[0].QuestionID != "q3" {
		t.Errorf("unexpected reasons: %+v", reasons)
	}
	if reasons.OverallSummary == "" {
		t.Error("expected an overall summary")
	}

	// The prompt carries the skipped question with its evaluated subject.
	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, `"question_id": "q3"`) || !strings.Contains(msg, `"subject": "Economy"`) {
		t.Errorf("prompt missing unattempted question data:\n%s", msg)
	}
}

func TestAnalyzeUnattempted_MissingKeyFallback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"individual_reasons": []}`),
	})
	a := newTestAnalyzer(mock)

	state, err := a.analyzeUnattempted(t.Context(), stateWithResults())
	if err != nil {
		t.Fatalf("analyzeUnattempted: %v", err)
	}

	summary := state.UnattemptedReasons.OverallSummary
	if !strings.HasPrefix(summary, "Failed to parse unattempted analysis.") {
		t.Errorf("expected fallback summary, got %q", summary)
	}
	if !strings.Contains(summary, `{"individual_reasons": []}`) {
		t.Errorf("fallback must embed the raw response, got %q", summary)
	}
	if len(state.UnattemptedReasons.IndividualReasons) != 0 {
		t.Error("fallback carries no individual reasons")
	}
}

func TestAnalyzeUnattempted_UnknownQIDSkipped(t *testing.T) {
	mock := llm.NewMockProvider()
	a := newTestAnalyzer(mock)

	state := stateWithResults()
	state.EvaluationResults[2].QID = "ghost"

	state, err := a.analyzeUnattempted(t.Context(), state)
	if err != nil {
		t.Fatalf("analyzeUnattempted: %v", err)
	}

	// The only unattempted result has no matching question, so the stage
	// behaves as if nothing was skipped.
	if state.UnattemptedReasons.OverallSummary != exam.NoUnattemptedSummary {
		t.Errorf("expected fixed summary, got %q", state.UnattemptedReasons.OverallSummary)
	}
	if mock.CallCount() != 0 {
		t.Errorf("no provider call expected, got %d", mock.CallCount())
	}
}

func TestParseUnattemptedResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"individual_reasons": [], "overall_summary": "ok"}`, false},
		{"missing summary", `{"individual_reasons": []}`, true},
		{"missing reasons", `{"overall_summary": "ok"}`, true},
		{"not json", `nope`, true},
		{"null reasons accepted", `{"individual_reasons": null, "overall_summary": "ok"}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reasons, err := parseUnattemptedResponse(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if reasons.IndividualReasons == nil {
				t.Error("IndividualReasons must never be nil on success")
			}
		})
	}
}
