package exam

import (
	"math"
	"sort"
	"strings"
)

// Status classifies one evaluated response.
type Status string

const (
	StatusCorrect     Status = "Correct"
	StatusWrong       Status = "Wrong"
	StatusUnattempted Status = "Unattempted"

	// StatusUnknown marks a degraded result recorded when the evaluation
	// call itself failed.
	StatusUnknown Status = "Unknown"
)

// ParseStatus normalizes an LLM-provided status string. Anything that is not
// a recognized status maps to StatusUnknown.
func ParseStatus(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "correct":
		return StatusCorrect
	case "wrong":
		return StatusWrong
	case "unattempted":
		return StatusUnattempted
	default:
		return StatusUnknown
	}
}

// EvaluationResult is the outcome of evaluating one question. Error is set
// only on degraded results where the evaluation call failed.
type EvaluationResult struct {
	QID     string `json:"qid"`
	Status  Status `json:"status"`
	Subject string `json:"subject"`
	Error   string `json:"error,omitempty"`
}

// MindsetInsight is the structured diagnostic produced for one wrong answer.
type MindsetInsight struct {
	QuestionID                 string            `json:"question_id"`
	ChosenOptionAnalysis       string            `json:"chosen_option_analysis"`
	DepthOfKnowledgeAssessment string            `json:"depth_of_knowledge_assessment"`
	DistractorAnalysis         map[string]string `json:"distractor_analysis,omitempty"`
	ImprovementSuggestion      string            `json:"improvement_suggestion"`
}

// SubjectStats is the deterministic per-subject tally computed locally before
// the qualitative breakdown is requested from the LLM.
type SubjectStats struct {
	Subject        string  `json:"subject"`
	TotalQuestions int     `json:"total_questions"`
	Correct        int     `json:"correct"`
	Wrong          int     `json:"wrong"`
	Unattempted    int     `json:"unattempted"`
	Accuracy       float64 `json:"accuracy"`
}

// AggregateBySubject groups evaluation results by subject and computes
// counts and accuracy. Results with an empty subject fall into "General".
// Output is sorted by subject name for deterministic ordering.
func AggregateBySubject(results []EvaluationResult) []SubjectStats {
	byName := make(map[string]*SubjectStats)
	for _, r := range results {
		subject := r.Subject
		if subject == "" {
			subject = "General"
		}
		st, ok := byName[subject]
		if !ok {
			st = &SubjectStats{Subject: subject}
			byName[subject] = st
		}
		st.TotalQuestions++
		switch r.Status {
		case StatusCorrect:
			st.Correct++
		case StatusWrong:
			st.Wrong++
		case StatusUnattempted:
			st.Unattempted++
		}
	}

	out := make([]SubjectStats, 0, len(byName))
	for _, st := range byName {
		st.Accuracy = Accuracy(st.Correct, st.Wrong)
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Subject < out[j].Subject })
	return out
}

// Accuracy returns correct/(correct+wrong)*100 rounded to 2 decimals,
// or 0 when nothing was attempted.
func Accuracy(correct, wrong int) float64 {
	attempted := correct + wrong
	if attempted == 0 {
		return 0
	}
	pct := float64(correct) / float64(attempted) * 100
	return math.Round(pct*100) / 100
}

// SubjectBreakdown is the LLM's qualitative read on one subject.
type SubjectBreakdown struct {
	TotalQuestions int     `json:"total_questions"`
	Correct        int     `json:"correct"`
	Wrong          int     `json:"wrong"`
	Unattempted    int     `json:"unattempted"`
	Accuracy       float64 `json:"accuracy"`
	Status         string  `json:"status"`
}

// SubjectPerformance holds either the parsed qualitative breakdown or an
// explicit error marker with the raw response kept for diagnosis. Exactly one
// of the two shapes is populated.
type SubjectPerformance struct {
	OverallInsights    string                      `json:"overall_insights,omitempty"`
	SubjectBreakdown   map[string]SubjectBreakdown `json:"subject_breakdown,omitempty"`
	BehavioralPatterns string                      `json:"behavioral_patterns,omitempty"`

	Error       string `json:"error,omitempty"`
	RawResponse string `json:"raw_llm_response,omitempty"`
}

// Failed reports whether this value is an error marker rather than a
// successful breakdown.
func (p SubjectPerformance) Failed() bool { return p.Error != "" }

// UnattemptedReason explains why one question was likely skipped.
type UnattemptedReason struct {
	QuestionID        string `json:"question_id"`
	ReasonForSkipping string `json:"reason_for_skipping"`
}

// UnattemptedReasons is the unattempted-analysis stage output. When the
// LLM response could not be used, OverallSummary embeds the raw text and
// IndividualReasons is empty.
type UnattemptedReasons struct {
	IndividualReasons []UnattemptedReason `json:"individual_reasons"`
	OverallSummary    string              `json:"overall_summary"`
}

// NoUnattemptedSummary is the fixed result used when every question was
// attempted; the LLM is not consulted in that case.
const NoUnattemptedSummary = "No questions were left unattempted."
