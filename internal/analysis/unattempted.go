package analysis

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/prepsage/examlens/internal/exam"
	"github.com/prepsage/examlens/internal/llm"
)

// analyzeUnattempted explains why the skipped questions were likely skipped.
// When nothing was skipped the stage records a fixed result without touching
// the model. A response missing either required key is replaced wholesale by
// a fallback that embeds the raw text.
func (a *Analyzer) analyzeUnattempted(ctx context.Context, state exam.State) (exam.State, error) {
	var items []unattemptedItem
	for _, r := range state.EvaluationResults {
		if r.Status != exam.StatusUnattempted {
			continue
		}
		q, ok := state.QuestionByID(r.QID)
		if !ok {
			a.log.Warn("unattempted question not found", zap.String("qid", r.QID))
			continue
		}
		items = append(items, unattemptedItem{
			QuestionID:   q.ID,
			QuestionText: q.Text,
			Subject:      state.SubjectFor(q.ID),
		})
	}

	if len(items) == 0 {
		state.UnattemptedReasons = exam.UnattemptedReasons{
			IndividualReasons: []exam.UnattemptedReason{},
			OverallSummary:    exam.NoUnattemptedSummary,
		}
		return state, nil
	}

	ctx = llm.WithPurpose(ctx, "unattempted")
	resp, err := a.provider.Generate(ctx,
		a.userRequest(unattemptedSystemPrompt, buildUnattemptedMessage(items), nil, a.cfg.AnalysisMaxTokens))
	if err != nil {
		a.log.Warn("unattempted analysis failed", zap.Error(err))
		state.UnattemptedReasons = unattemptedFallback(err.Error())
		return state, nil
	}

	raw := strings.TrimSpace(resp.Text())
	reasons, perr := parseUnattemptedResponse(raw)
	if perr != nil {
		a.log.Warn("unattempted analysis response unreadable", zap.Error(perr))
		state.UnattemptedReasons = unattemptedFallback(raw)
		return state, nil
	}

	state.UnattemptedReasons = reasons
	a.log.Debug("unattempted analysis complete", zap.Int("questions", len(items)))
	return state, nil
}

// parseUnattemptedResponse requires both keys to be present, not merely
// zero-valued, before accepting the response.
func parseUnattemptedResponse(raw string) (exam.UnattemptedReasons, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &keys); err != nil {
		return exam.UnattemptedReasons{}, err
	}
	if _, ok := keys["individual_reasons"]; !ok {
		return exam.UnattemptedReasons{}, errMissingKey("individual_reasons")
	}
	if _, ok := keys["overall_summary"]; !ok {
		return exam.UnattemptedReasons{}, errMissingKey("overall_summary")
	}

	var reasons exam.UnattemptedReasons
	if err := json.Unmarshal([]byte(raw), &reasons); err != nil {
		return exam.UnattemptedReasons{}, err
	}
	if reasons.IndividualReasons == nil {
		reasons.IndividualReasons = []exam.UnattemptedReason{}
	}
	return reasons, nil
}

type errMissingKey string

func (e errMissingKey) Error() string { return "response JSON missing required key " + string(e) }

func unattemptedFallback(raw string) exam.UnattemptedReasons {
	return exam.UnattemptedReasons{
		IndividualReasons: []exam.UnattemptedReason{},
		OverallSummary:    "Failed to parse unattempted analysis. Raw LLM response: " + raw,
	}
}
