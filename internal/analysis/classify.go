package analysis

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/prepsage/examlens/internal/exam"
	"github.com/prepsage/examlens/internal/llm"
)

// classifySubjects backfills a subject for every question that arrived
// without one. Questions that already carry a subject are left untouched.
// A failed classification falls back to "General" and never aborts the batch.
func (a *Analyzer) classifySubjects(ctx context.Context, state exam.State) (exam.State, error) {
	ctx = llm.WithPurpose(ctx, "subject-tagging")

	for i := range state.AllQuestions {
		q := &state.AllQuestions[i]
		if q.Subject != "" {
			continue
		}

		resp, err := a.provider.Generate(ctx,
			a.userRequest(classifySystemPrompt, buildClassifyMessage(q.Text), nil, a.cfg.ClassifyMaxTokens))
		if err != nil {
			a.log.Warn("subject classification failed",
				zap.String("qid", q.ID), zap.Error(err))
			q.Subject = "General"
			continue
		}

		subject := strings.Trim(strings.TrimSpace(resp.Text()), `"`)
		if subject == "" {
			subject = "General"
		}
		q.Subject = subject
		a.log.Debug("tagged subject",
			zap.String("qid", q.ID), zap.String("subject", subject))
	}

	return state, nil
}
