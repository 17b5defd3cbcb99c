package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // filter LLM events by purpose label ("" = all)
	Source  string // filter analysis runs by trigger source ("" = all)
}

// LLMRequestEventData captures one LLM API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request event.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// AnalysisRunEventData captures one completed pipeline run.
type AnalysisRunEventData struct {
	RunID         string
	Source        string // "api" or "cli"
	QuestionCount int
	Correct       int
	Wrong         int
	Unattempted   int
	Unknown       int
	DurationMs    int64
	Success       bool
	ErrorMessage  string
}

// AnalysisRunEvent is a stored analysis run event.
type AnalysisRunEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	AnalysisRunEventData
}

// PurposeUsage aggregates LLM usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns a single LLM request event by ID.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// AppendAnalysisRun records a completed analysis pipeline run.
	AppendAnalysisRun(ctx context.Context, data AnalysisRunEventData) error

	// QueryAnalysisRuns returns analysis run events, newest first.
	QueryAnalysisRuns(ctx context.Context, opts QueryOpts) ([]AnalysisRunEvent, error)
}
