package analysis

import (
	"context"

	"go.uber.org/zap"

	"github.com/prepsage/examlens/internal/exam"
	"github.com/prepsage/examlens/internal/llm"
)

// reportFallback is stored when the summary call itself fails. The rest of
// the state is still intact and renderable.
const reportFallback = "Error generating summary report from LLM."

// summarize writes the final natural-language report over everything the
// earlier stages accumulated. The model's text is stored verbatim.
func (a *Analyzer) summarize(ctx context.Context, state exam.State) (exam.State, error) {
	ctx = llm.WithPurpose(ctx, "summary")
	a.log.Info("generating summary report",
		zap.Int("results", len(state.EvaluationResults)),
		zap.Int("insights", len(state.MindsetInsights)))

	resp, err := a.provider.Generate(ctx,
		a.userRequest(summarySystemPrompt, buildSummaryMessage(state), nil, a.cfg.ReportMaxTokens))
	if err != nil {
		a.log.Warn("summary generation failed", zap.Error(err))
		state.FinalSummaryReport = reportFallback
		return state, nil
	}

	state.FinalSummaryReport = resp.Text()
	return state, nil
}
