package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/prepsage/examlens/internal/exam"
	"github.com/prepsage/examlens/internal/report"
	"github.com/prepsage/examlens/internal/store"
)

// defaultTask is used when the request omits a task description.
const defaultTask = "Analyze exam performance."

type analyzeRequest struct {
	Task         string          `json:"task"`
	AllQuestions []exam.Question `json:"all_questions"`
	References   []string        `json:"references"`
}

type analyzeResponse struct {
	Report     string `json:"report"`
	FinalState string `json:"final_state"`
}

func (s *Server) handleAnalyzeExam(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON data provided")
		return
	}
	if len(req.AllQuestions) == 0 {
		writeError(w, http.StatusBadRequest, "No exam questions provided for analysis.")
		return
	}

	task := req.Task
	if task == "" {
		task = defaultTask
	}

	runID := uuid.NewString()
	s.log.Info("analysis started",
		zap.String("run_id", runID),
		zap.Int("questions", len(req.AllQuestions)))

	started := time.Now()
	state, err := s.analyzer.Analyze(r.Context(), task, req.AllQuestions, req.References)
	s.recordRun(r, runID, state, time.Since(started), err)

	if err != nil {
		s.log.Error("analysis failed", zap.String("run_id", runID), zap.Error(err))
		writeError(w, http.StatusInternalServerError,
			fmt.Sprintf("An error occurred during analysis: %v", err))
		return
	}

	reportText := state.FinalSummaryReport
	if reportText == "" {
		reportText = "Analysis report could not be generated."
	}

	s.log.Info("analysis completed",
		zap.String("run_id", runID),
		zap.Duration("took", time.Since(started)))
	writeJSON(w, http.StatusOK, analyzeResponse{
		Report:     reportText,
		FinalState: report.Render(state),
	})
}

func (s *Server) recordRun(r *http.Request, runID string, state exam.State, took time.Duration, runErr error) {
	if s.events == nil {
		return
	}

	counts := state.Counts()
	data := store.AnalysisRunEventData{
		RunID:         runID,
		Source:        "api",
		QuestionCount: counts.Total,
		Correct:       counts.Correct,
		Wrong:         counts.Wrong,
		Unattempted:   counts.Unattempted,
		Unknown:       len(state.EvaluationResults) - counts.Correct - counts.Wrong - counts.Unattempted,
		DurationMs:    took.Milliseconds(),
		Success:       runErr == nil,
	}
	if runErr != nil {
		data.ErrorMessage = runErr.Error()
	}

	if err := s.events.AppendAnalysisRun(r.Context(), data); err != nil {
		s.log.Warn("failed to record analysis run",
			zap.String("run_id", runID), zap.Error(err))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
