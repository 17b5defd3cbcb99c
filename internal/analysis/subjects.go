package analysis

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/prepsage/examlens/internal/exam"
	"github.com/prepsage/examlens/internal/llm"
)

// analyzeSubjects computes the deterministic per-subject tallies locally and
// asks the model for the qualitative read on top of them. The stage output
// replaces SubjectPerformance wholesale; a failed call or unparseable
// response leaves an error marker carrying the raw text instead of partial
// data.
func (a *Analyzer) analyzeSubjects(ctx context.Context, state exam.State) (exam.State, error) {
	if len(state.EvaluationResults) == 0 {
		state.SubjectPerformance = exam.SubjectPerformance{Error: "No evaluation data available."}
		a.log.Warn("subject analysis skipped, no evaluation data")
		return state, nil
	}

	stats := exam.AggregateBySubject(state.EvaluationResults)

	ctx = llm.WithPurpose(ctx, "subject-analysis")
	resp, err := a.provider.Generate(ctx,
		a.userRequest(subjectAnalysisSystemPrompt, buildSubjectAnalysisMessage(stats), nil, a.cfg.AnalysisMaxTokens))
	if err != nil {
		a.log.Warn("subject analysis failed", zap.Error(err))
		state.SubjectPerformance = exam.SubjectPerformance{Error: err.Error()}
		return state, nil
	}

	raw := strings.TrimSpace(resp.Text())
	var perf exam.SubjectPerformance
	if err := json.Unmarshal([]byte(raw), &perf); err != nil {
		a.log.Warn("subject analysis response unreadable", zap.Error(err))
		state.SubjectPerformance = exam.SubjectPerformance{
			Error:       "Failed to parse subject analysis",
			RawResponse: raw,
		}
		return state, nil
	}

	state.SubjectPerformance = perf
	a.log.Debug("subject analysis complete", zap.Int("subjects", len(perf.SubjectBreakdown)))
	return state, nil
}
