package analysis

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/prepsage/examlens/internal/exam"
	"github.com/prepsage/examlens/internal/llm"
)

// inferMindset produces one diagnostic insight per wrong answer that does
// not already have one. Malformed questions and failed calls are skipped
// with a warning; skipped questions get no insight and the loop continues.
// Re-running the stage over a state that already carries insights adds
// nothing for those questions.
func (a *Analyzer) inferMindset(ctx context.Context, state exam.State) (exam.State, error) {
	ctx = llm.WithPurpose(ctx, "mindset")

	for _, r := range state.EvaluationResults {
		if r.Status != exam.StatusWrong || state.HasInsight(r.QID) {
			continue
		}

		q, ok := state.QuestionByID(r.QID)
		if !ok || !q.Complete() {
			a.log.Warn("skipping malformed question for mindset analysis",
				zap.String("qid", r.QID))
			continue
		}

		subject := state.SubjectFor(q.ID)
		resp, err := a.provider.Generate(ctx,
			a.userRequest(mindsetSystemPrompt, buildMindsetMessage(q, subject), MindsetSchema, a.cfg.MindsetMaxTokens))
		if err != nil {
			a.log.Warn("mindset analysis failed",
				zap.String("qid", q.ID), zap.Error(err))
			continue
		}

		var insight exam.MindsetInsight
		if err := json.Unmarshal(resp.Content, &insight); err != nil {
			a.log.Warn("mindset response unreadable",
				zap.String("qid", q.ID), zap.Error(err))
			continue
		}
		// Key the insight by the evaluated question, whatever id the model
		// echoed back.
		insight.QuestionID = q.ID

		state.MindsetInsights = append(state.MindsetInsights, insight)
		a.log.Info("generated mindset insight", zap.String("qid", q.ID))
	}

	return state, nil
}
