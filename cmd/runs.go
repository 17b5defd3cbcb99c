package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prepsage/examlens/internal/store"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded analysis runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		source, _ := cmd.Flags().GetString("source")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		runs, err := s.EventRepo().QueryAnalysisRuns(ctx, store.QueryOpts{Limit: limit, Source: source})
		if err != nil {
			return fmt.Errorf("query runs: %w", err)
		}

		if len(runs) == 0 {
			fmt.Println("No analysis runs recorded.")
			return nil
		}

		fmt.Printf("%-19s  %-8s  %-6s  %-4s  %-4s  %-6s  %-8s  %-3s  %s\n",
			"Timestamp", "Source", "Qs", "C", "W", "Unatt", "Took", "OK", "Run ID")
		fmt.Println(strings.Repeat("─", 104))

		for _, r := range runs {
			ok := "✓"
			if !r.Success {
				ok = "✗"
			}
			fmt.Printf("%-19s  %-8s  %-6d  %-4d  %-4d  %-6d  %-8s  %-3s  %s\n",
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				r.Source,
				r.QuestionCount,
				r.Correct,
				r.Wrong,
				r.Unattempted,
				fmt.Sprintf("%dms", r.DurationMs),
				ok,
				r.RunID,
			)
		}
		return nil
	},
}

func init() {
	runsCmd.Flags().IntP("limit", "n", 20, "Number of runs to show")
	runsCmd.Flags().StringP("source", "s", "", "Filter by source (api or cli)")
}
