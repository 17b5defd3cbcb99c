package store

import (
	"context"
	"fmt"

	"github.com/prepsage/examlens/ent"
	"github.com/prepsage/examlens/ent/analysisrunevent"
)

func (r *eventRepo) AppendAnalysisRun(ctx context.Context, data AnalysisRunEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnalysisRunEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetSource(data.Source).
		SetQuestionCount(data.QuestionCount).
		SetCorrect(data.Correct).
		SetWrong(data.Wrong).
		SetUnattempted(data.Unattempted).
		SetUnknown(data.Unknown).
		SetDurationMs(data.DurationMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save analysis run event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryAnalysisRuns(ctx context.Context, opts QueryOpts) ([]AnalysisRunEvent, error) {
	q := r.client.AnalysisRunEvent.Query().
		Order(ent.Desc(analysisrunevent.FieldSequence))
	if opts.Source != "" {
		q = q.Where(analysisrunevent.Source(opts.Source))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query analysis runs: %w", err)
	}

	out := make([]AnalysisRunEvent, len(rows))
	for i, row := range rows {
		out[i] = AnalysisRunEvent{
			ID:        row.ID,
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			AnalysisRunEventData: AnalysisRunEventData{
				RunID:         row.RunID,
				Source:        row.Source,
				QuestionCount: row.QuestionCount,
				Correct:       row.Correct,
				Wrong:         row.Wrong,
				Unattempted:   row.Unattempted,
				Unknown:       row.Unknown,
				DurationMs:    row.DurationMs,
				Success:       row.Success,
				ErrorMessage:  row.ErrorMessage,
			},
		}
	}
	return out, nil
}
