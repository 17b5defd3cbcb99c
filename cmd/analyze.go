package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prepsage/examlens/internal/analysis"
	"github.com/prepsage/examlens/internal/exam"
	"github.com/prepsage/examlens/internal/llm"
	"github.com/prepsage/examlens/internal/report"
	"github.com/prepsage/examlens/internal/store"
)

// analyzePayload is the JSON file format accepted by the analyze command,
// the same shape as the HTTP endpoint's request body.
type analyzePayload struct {
	Task         string          `json:"task"`
	AllQuestions []exam.Question `json:"all_questions"`
	References   []string        `json:"references"`
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.json>",
	Short: "Run the analysis pipeline on a local exam payload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read payload: %w", err)
		}
		var payload analyzePayload
		if err := json.Unmarshal(data, &payload); err != nil {
			return fmt.Errorf("parse payload: %w", err)
		}
		if len(payload.AllQuestions) == 0 {
			return fmt.Errorf("payload has no questions under all_questions")
		}
		if payload.Task == "" {
			payload.Task = "Analyze exam performance."
		}

		log, err := newLogger(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		analyzer := analysis.New(provider, log, analysis.DefaultConfig())

		runID := uuid.NewString()
		started := time.Now()
		state, runErr := analyzer.Analyze(cmd.Context(), payload.Task, payload.AllQuestions, payload.References)

		counts := state.Counts()
		event := store.AnalysisRunEventData{
			RunID:         runID,
			Source:        "cli",
			QuestionCount: counts.Total,
			Correct:       counts.Correct,
			Wrong:         counts.Wrong,
			Unattempted:   counts.Unattempted,
			Unknown:       len(state.EvaluationResults) - counts.Correct - counts.Wrong - counts.Unattempted,
			DurationMs:    time.Since(started).Milliseconds(),
			Success:       runErr == nil,
		}
		if runErr != nil {
			event.ErrorMessage = runErr.Error()
		}
		if err := st.EventRepo().AppendAnalysisRun(cmd.Context(), event); err != nil {
			log.Warn("failed to record analysis run", zap.Error(err))
		}

		if runErr != nil {
			return fmt.Errorf("analysis: %w", runErr)
		}

		if asJSON {
			out, err := json.MarshalIndent(state, "", "  ")
			if err != nil {
				return fmt.Errorf("encode final state: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Println(report.Render(state))
		fmt.Println("## Summary Report")
		fmt.Println()
		fmt.Println(state.FinalSummaryReport)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().Bool("json", false, "Print the full final state as JSON instead of Markdown")
}
