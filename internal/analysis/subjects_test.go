package analysis

import (
	"encoding/json"
	"testing"

	"github.com/prepsage/examlens/internal/llm"
)

func TestAnalyzeSubjects_EmptyResults(t *testing.T) {
	mock := llm.NewMockProvider()
	a := newTestAnalyzer(mock)

	empty := stateWithResults()
	empty.EvaluationResults = nil

	out, err := a.analyzeSubjects(t.Context(), empty)
	if err != nil {
		t.Fatalf("analyzeSubjects: %v", err)
	}
	if !out.SubjectPerformance.Failed() {
		t.Errorf("expected error marker, got %+v", out.SubjectPerformance)
	}
	if mock.CallCount() != 0 {
		t.Errorf("no provider call expected with no data, got %d", mock.CallCount())
	}
}

func TestAnalyzeSubjects_ParsesBreakdown(t *testing.T) {
	mock := llm.NewMockProvider(subjectAnalysisResponse())
	a := newTestAnalyzer(mock)

	state, err := a.analyzeSubjects(t.Context(), stateWithResults())
	if err != nil {
		t.Fatalf("analyzeSubjects: %v", err)
	}

	perf := state.SubjectPerformance
	if perf.Failed() {
		t.Fatalf("unexpected error marker: %+v", perf)
	}
	if perf.OverallInsights == "" || perf.BehavioralPatterns == "" {
		t.Errorf("expected qualitative fields populated: %+v", perf)
	}
	geo := perf.SubjectBreakdown["Geography"]
	if geo.Correct != 1 || geo.Accuracy != 100 {
		t.Errorf("unexpected Geography breakdown: %+v", geo)
	}

	// The prompt embeds the locally computed stats, one entry per subject.
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].Schema != nil {
		t.Error("subject analysis is a free-text call")
	}
}

func TestAnalyzeSubjects_ParseFailureKeepsRaw(t *testing.T) {
	raw := "I cannot produce JSON today."
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(raw)})
	a := newTestAnalyzer(mock)

	state, err := a.analyzeSubjects(t.Context(), stateWithResults())
	if err != nil {
		t.Fatalf("analyzeSubjects: %v", err)
	}

	perf := state.SubjectPerformance
	if !perf.Failed() {
		t.Fatal("expected error marker for unparseable response")
	}
	if perf.RawResponse != raw {
		t.Errorf("raw response must be preserved, got %q", perf.RawResponse)
	}
	if perf.SubjectBreakdown != nil || perf.OverallInsights != "" {
		t.Errorf("error marker must not carry partial data: %+v", perf)
	}
}

func TestAnalyzeSubjects_ProviderErrorMarker(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	a := newTestAnalyzer(mock)

	state, err := a.analyzeSubjects(t.Context(), stateWithResults())
	if err != nil {
		t.Fatalf("analyzeSubjects must absorb provider errors: %v", err)
	}
	if !state.SubjectPerformance.Failed() {
		t.Error("expected error marker after provider failure")
	}
}
