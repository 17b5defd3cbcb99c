package analysis

// Config holds generation settings for the analysis stages. The structured
// stages run cool and short; the free-text stages get more room.
type Config struct {
	// PlanMaxTokens caps the planning outline.
	PlanMaxTokens int

	// ClassifyMaxTokens caps the one-word subject classification.
	ClassifyMaxTokens int

	// EvaluateMaxTokens caps one per-question evaluation.
	EvaluateMaxTokens int

	// MindsetMaxTokens caps one wrong-answer mindset analysis.
	MindsetMaxTokens int

	// AnalysisMaxTokens caps the subject and unattempted analyses.
	AnalysisMaxTokens int

	// ReportMaxTokens caps the final summary report.
	ReportMaxTokens int

	Temperature float64
}

// DefaultConfig returns sensible defaults for exam analysis.
func DefaultConfig() Config {
	return Config{
		PlanMaxTokens:     512,
		ClassifyMaxTokens: 16,
		EvaluateMaxTokens: 256,
		MindsetMaxTokens:  1024,
		AnalysisMaxTokens: 1024,
		ReportMaxTokens:   2048,
		Temperature:       0.2,
	}
}
