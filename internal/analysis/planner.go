package analysis

import (
	"context"

	"go.uber.org/zap"

	"github.com/prepsage/examlens/internal/exam"
	"github.com/prepsage/examlens/internal/llm"
)

// planFallback stands in for the plan when the model call fails. The plan is
// advisory only, so a missing one never stops the run.
const planFallback = "Analysis plan unavailable."

// plan asks the model to outline the analysis approach for this task.
func (a *Analyzer) plan(ctx context.Context, state exam.State) (exam.State, error) {
	ctx = llm.WithPurpose(ctx, "plan")
	a.log.Info("planning analysis",
		zap.Int("questions", len(state.AllQuestions)),
		zap.Int("references", len(state.References)))

	resp, err := a.provider.Generate(ctx, a.userRequest(planSystemPrompt, state.Task, nil, a.cfg.PlanMaxTokens))
	if err != nil {
		a.log.Warn("plan generation failed", zap.Error(err))
		state.Plan = planFallback
		return state, nil
	}

	state.Plan = resp.Text()
	return state, nil
}
