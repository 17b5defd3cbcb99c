package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "mock", Model: "mock", Purpose: "evaluation", InputTokens: 100, OutputTokens: 20, Success: true},
		{Provider: "mock", Model: "mock", Purpose: "mindset", InputTokens: 200, OutputTokens: 80, Success: true},
		{Provider: "mock", Model: "mock", Purpose: "evaluation", Success: false, ErrorMessage: "boom"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}
	// Newest first.
	if all[0].Purpose != "evaluation" || all[0].Success {
		t.Fatalf("expected the failed evaluation event first, got %+v", all[0])
	}
	if all[0].Sequence <= all[1].Sequence {
		t.Fatal("sequences should be strictly decreasing in query order")
	}

	evals, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "mindset"})
	if err != nil {
		t.Fatalf("query filtered: %v", err)
	}
	if len(evals) != 1 {
		t.Fatalf("expected 1 mindset event, got %d", len(evals))
	}

	got, err := repo.GetLLMEvent(ctx, all[1].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Purpose != "mindset" {
		t.Fatalf("get returned wrong event: %+v", got)
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "evaluation", InputTokens: 100, OutputTokens: 20, LatencyMs: 400, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "evaluation", InputTokens: 120, OutputTokens: 30, LatencyMs: 600, Success: true},
		{Provider: "openai", Model: "gpt-4o", Purpose: "summary", InputTokens: 900, OutputTokens: 400, LatencyMs: 2000, Success: true},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(byPurpose))
	}
	eval := byPurpose[0] // sorted, "evaluation" < "summary"
	if eval.Purpose != "evaluation" || eval.Calls != 2 || eval.InputTokens != 220 || eval.AvgLatencyMs != 500 {
		t.Errorf("unexpected evaluation usage: %+v", eval)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("expected 2 models, got %d", len(byModel))
	}
	if byModel[1].Model != "gpt-4o-mini" || byModel[1].OutputTokens != 50 {
		t.Errorf("unexpected model usage: %+v", byModel[1])
	}
}

func TestAppendAndQueryAnalysisRuns(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAnalysisRun(ctx, AnalysisRunEventData{
		RunID:         "run-1",
		Source:        "cli",
		QuestionCount: 3,
		Correct:       1,
		Wrong:         1,
		Unattempted:   1,
		DurationMs:    1234,
		Success:       true,
	})
	if err != nil {
		t.Fatalf("append run: %v", err)
	}

	runs, err := repo.QueryAnalysisRuns(ctx, QueryOpts{Source: "cli"})
	if err != nil {
		t.Fatalf("query runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	r := runs[0]
	if r.RunID != "run-1" || r.Correct != 1 || r.QuestionCount != 3 || !r.Success {
		t.Fatalf("unexpected run event: %+v", r)
	}

	none, err := repo.QueryAnalysisRuns(ctx, QueryOpts{Source: "api"})
	if err != nil {
		t.Fatalf("query runs: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no api runs, got %d", len(none))
	}
}
