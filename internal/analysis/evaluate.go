package analysis

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/prepsage/examlens/internal/exam"
	"github.com/prepsage/examlens/internal/llm"
	"github.com/prepsage/examlens/internal/pipeline"
)

type evaluationOutput struct {
	QID     string `json:"qid"`
	Status  string `json:"status"`
	Subject string `json:"subject"`
}

// evaluate classifies the question at the cursor and advances it. A failed
// call records a degraded result with status Unknown; either way exactly one
// result is appended and the index moves forward, so a run can never stall
// on a bad question. With the cursor already past the end (the zero-question
// exam) this is a no-op.
func (a *Analyzer) evaluate(ctx context.Context, state exam.State) (exam.State, error) {
	if state.CurrentQuestionIndex >= len(state.AllQuestions) {
		return state, nil
	}

	q := state.AllQuestions[state.CurrentQuestionIndex]
	state.CurrentQuestion = &q

	subject := q.Subject
	if subject == "" {
		subject = "General"
	}

	ctx = llm.WithPurpose(ctx, "evaluation")
	resp, err := a.provider.Generate(ctx,
		a.userRequest(evaluateSystemPrompt, buildEvaluateMessage(q), EvaluationSchema, a.cfg.EvaluateMaxTokens))

	result := exam.EvaluationResult{QID: q.ID, Status: exam.StatusUnknown, Subject: subject}
	if err != nil {
		a.log.Warn("evaluation failed", zap.String("qid", q.ID), zap.Error(err))
		result.Error = err.Error()
	} else {
		var out evaluationOutput
		if perr := json.Unmarshal(resp.Content, &out); perr != nil {
			a.log.Warn("evaluation response unreadable",
				zap.String("qid", q.ID), zap.Error(perr))
			result.Error = perr.Error()
		} else {
			result.Status = exam.ParseStatus(out.Status)
			if out.Subject != "" {
				result.Subject = out.Subject
			}
		}
	}

	state.EvaluationResults = append(state.EvaluationResults, result)
	state.CurrentQuestionIndex++

	a.log.Debug("evaluated question",
		zap.String("qid", q.ID),
		zap.String("status", string(result.Status)),
		zap.Int("index", state.CurrentQuestionIndex))
	return state, nil
}

// nextAfterEvaluation decides whether the evaluate stage loops back for the
// next question or hands off to mindset inference. Pure function of the
// cursor position.
func nextAfterEvaluation(state exam.State) pipeline.StageID {
	if state.CurrentQuestionIndex < len(state.AllQuestions) {
		return StageEvaluate
	}
	return StageMindset
}
