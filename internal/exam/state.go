package exam

// State is the single mutable record threaded through every pipeline stage.
// It is owned by exactly one pipeline run at a time: stages receive it by
// value and return the updated copy, and no two stages ever touch the same
// run's state concurrently.
type State struct {
	Task                 string             `json:"task"`
	AllQuestions         []Question         `json:"all_questions"`
	CurrentQuestionIndex int                `json:"current_question_index"`
	CurrentQuestion      *Question          `json:"current_question,omitempty"`
	EvaluationResults    []EvaluationResult `json:"evaluation_results"`
	MindsetInsights      []MindsetInsight   `json:"mindset_insights"`
	SubjectPerformance   SubjectPerformance `json:"subject_performance"`
	UnattemptedReasons   UnattemptedReasons `json:"unattempted_reasons"`
	References           []string           `json:"references"`
	Plan                 string             `json:"plan"`
	FinalSummaryReport   string             `json:"final_summary_report"`
}

// NewState builds the initial state for one analysis run: cursor at zero,
// all result collections empty.
func NewState(task string, questions []Question, references []string) State {
	return State{
		Task:         task,
		AllQuestions: questions,
		References:   references,
	}
}

// Counts are the headline result totals derived from evaluation results.
type Counts struct {
	Total       int `json:"total"`
	Attempted   int `json:"attempted"`
	Correct     int `json:"correct"`
	Wrong       int `json:"wrong"`
	Unattempted int `json:"unattempted"`
}

// Counts tallies the evaluation results. Total is the question count, not
// the result count, so degraded runs still report the full exam size.
func (s State) Counts() Counts {
	c := Counts{Total: len(s.AllQuestions)}
	for _, r := range s.EvaluationResults {
		switch r.Status {
		case StatusCorrect:
			c.Correct++
		case StatusWrong:
			c.Wrong++
		case StatusUnattempted:
			c.Unattempted++
		}
	}
	c.Attempted = c.Correct + c.Wrong
	return c
}

// QuestionByID looks up a question in AllQuestions.
func (s State) QuestionByID(id string) (Question, bool) {
	for _, q := range s.AllQuestions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// SubjectFor resolves a question's subject from its evaluation result,
// falling back to "Unknown" when no result carries one.
func (s State) SubjectFor(qid string) string {
	for _, r := range s.EvaluationResults {
		if r.QID == qid && r.Subject != "" {
			return r.Subject
		}
	}
	return "Unknown"
}

// HasInsight reports whether a mindset insight already exists for the
// question id. Checked before appending, which keeps the mindset stage
// idempotent across re-runs.
func (s State) HasInsight(qid string) bool {
	for _, in := range s.MindsetInsights {
		if in.QuestionID == qid {
			return true
		}
	}
	return false
}
