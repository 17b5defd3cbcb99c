package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prepsage/examlens/internal/exam"
	"github.com/prepsage/examlens/internal/store"
)

// fakeAnalyzer returns a fixed state or error without touching a model.
type fakeAnalyzer struct {
	state exam.State
	err   error
}

func (f *fakeAnalyzer) Analyze(_ context.Context, task string, questions []exam.Question, references []string) (exam.State, error) {
	if f.err != nil {
		return exam.State{}, f.err
	}
	state := f.state
	state.Task = task
	state.AllQuestions = questions
	state.References = references
	return state, nil
}

func analyzedState() exam.State {
	state := exam.State{
		CurrentQuestionIndex: 1,
		EvaluationResults: []exam.EvaluationResult{
			{QID: "q1", Status: exam.StatusCorrect, Subject: "Polity"},
		},
		FinalSummaryReport: "Well done overall.",
	}
	state.UnattemptedReasons = exam.UnattemptedReasons{
		IndividualReasons: []exam.UnattemptedReason{},
		OverallSummary:    exam.NoUnattemptedSummary,
	}
	return state
}

func validBody() string {
	return `{
		"task": "Analyze my mock test",
		"all_questions": [
			{"id": "q1", "text": "Q?", "options": {"A": "1", "B": "2", "C": "3", "D": "4"}, "correct_option": "A", "chosen_option": "A"}
		],
		"references": ["NCERT"]
	}`
}

func postAnalyze(t *testing.T, srv *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze_exam", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeExam_OK(t *testing.T) {
	srv := NewServer(&fakeAnalyzer{state: analyzedState()}, nil, nil)

	rec := postAnalyze(t, srv, validBody())
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Report     string `json:"report"`
		FinalState string `json:"final_state"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Report != "Well done overall." {
		t.Errorf("unexpected report: %q", resp.Report)
	}
	if !strings.Contains(resp.FinalState, "# Exam Performance Analysis Report") {
		t.Errorf("final_state should be the Markdown rendering, got %q", resp.FinalState)
	}
	if !strings.Contains(resp.FinalState, "- **Correct:** 1") {
		t.Errorf("final_state missing metrics:\n%s", resp.FinalState)
	}
}

func TestAnalyzeExam_BadJSON(t *testing.T) {
	srv := NewServer(&fakeAnalyzer{state: analyzedState()}, nil, nil)

	rec := postAnalyze(t, srv, `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid JSON data provided") {
		t.Errorf("unexpected error body: %s", rec.Body.String())
	}
}

func TestAnalyzeExam_NoQuestions(t *testing.T) {
	srv := NewServer(&fakeAnalyzer{state: analyzedState()}, nil, nil)

	rec := postAnalyze(t, srv, `{"task": "Analyze", "all_questions": []}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No exam questions provided") {
		t.Errorf("unexpected error body: %s", rec.Body.String())
	}
}

func TestAnalyzeExam_InternalError(t *testing.T) {
	srv := NewServer(&fakeAnalyzer{err: errors.New("pipeline exploded")}, nil, nil)

	rec := postAnalyze(t, srv, validBody())
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "An error occurred during analysis") {
		t.Errorf("unexpected error body: %s", rec.Body.String())
	}
}

func TestAnalyzeExam_RecordsRun(t *testing.T) {
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()

	srv := NewServer(&fakeAnalyzer{state: analyzedState()}, st.EventRepo(), nil)

	if rec := postAnalyze(t, srv, validBody()); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	runs, err := st.EventRepo().QueryAnalysisRuns(context.Background(), store.QueryOpts{Source: "api"})
	if err != nil {
		t.Fatalf("query runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(runs))
	}
	run := runs[0]
	if !run.Success || run.QuestionCount != 1 || run.Correct != 1 || run.RunID == "" {
		t.Errorf("unexpected run event: %+v", run)
	}
}

func TestHealthz(t *testing.T) {
	srv := NewServer(&fakeAnalyzer{state: analyzedState()}, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}
