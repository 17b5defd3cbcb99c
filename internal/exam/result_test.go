package exam

import "testing"

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"Correct", StatusCorrect},
		{"correct", StatusCorrect},
		{" WRONG ", StatusWrong},
		{"Unattempted", StatusUnattempted},
		{"maybe", StatusUnknown},
		{"", StatusUnknown},
	}
	for _, tt := range tests {
		if got := ParseStatus(tt.in); got != tt.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAccuracy(t *testing.T) {
	tests := []struct {
		correct, wrong int
		want           float64
	}{
		{0, 0, 0},
		{7, 2, 77.78},
		{5, 8, 38.46},
		{1, 0, 100},
		{1, 2, 33.33},
	}
	for _, tt := range tests {
		if got := Accuracy(tt.correct, tt.wrong); got != tt.want {
			t.Errorf("Accuracy(%d, %d) = %v, want %v", tt.correct, tt.wrong, got, tt.want)
		}
	}
}

func TestAggregateBySubject(t *testing.T) {
	results := []EvaluationResult{
		{QID: "q1", Status: StatusCorrect, Subject: "History"},
		{QID: "q2", Status: StatusWrong, Subject: "History"},
		{QID: "q3", Status: StatusUnattempted, Subject: "History"},
		{QID: "q4", Status: StatusCorrect, Subject: ""},
		{QID: "q5", Status: StatusUnknown, Subject: "Economy"},
	}

	stats := AggregateBySubject(results)
	if len(stats) != 3 {
		t.Fatalf("expected 3 subjects, got %d: %+v", len(stats), stats)
	}

	// Sorted: Economy, General, History.
	if stats[0].Subject != "Economy" || stats[1].Subject != "General" || stats[2].Subject != "History" {
		t.Errorf("unexpected subject order: %+v", stats)
	}

	hist := stats[2]
	if hist.TotalQuestions != 3 || hist.Correct != 1 || hist.Wrong != 1 || hist.Unattempted != 1 {
		t.Errorf("unexpected History counts: %+v", hist)
	}
	if hist.Accuracy != 50 {
		t.Errorf("History accuracy = %v, want 50", hist.Accuracy)
	}

	// Unknown results count toward the total but not toward accuracy.
	econ := stats[0]
	if econ.TotalQuestions != 1 || econ.Accuracy != 0 {
		t.Errorf("unexpected Economy stats: %+v", econ)
	}

	// Empty subject lands in General.
	if stats[1].Correct != 1 || stats[1].Accuracy != 100 {
		t.Errorf("unexpected General stats: %+v", stats[1])
	}
}

func TestQuestionAttempted(t *testing.T) {
	q := Question{ChosenOption: "A"}
	if !q.Attempted() {
		t.Error("chosen option A should count as attempted")
	}

	for _, chosen := range []string{"", UnattemptedSentinel} {
		q := Question{ChosenOption: chosen}
		if q.Attempted() {
			t.Errorf("chosen %q should not count as attempted", chosen)
		}
		if q.ChosenOrSentinel() != UnattemptedSentinel {
			t.Errorf("ChosenOrSentinel() = %q, want sentinel", q.ChosenOrSentinel())
		}
	}
}

func TestQuestionComplete(t *testing.T) {
	full := Question{
		ID:            "q1",
		Text:          "?",
		Options:       map[string]string{"A": "1"},
		CorrectOption: "A",
		ChosenOption:  "B",
	}
	if !full.Complete() {
		t.Error("fully populated question should be complete")
	}

	missingOptions := full
	missingOptions.Options = nil
	if missingOptions.Complete() {
		t.Error("question without options is not complete")
	}

	skipped := full
	skipped.ChosenOption = ""
	if skipped.Complete() {
		t.Error("question without a chosen option is not complete")
	}
}

func TestStateCounts(t *testing.T) {
	state := NewState("task", make([]Question, 4), nil)
	state.EvaluationResults = []EvaluationResult{
		{Status: StatusCorrect},
		{Status: StatusWrong},
		{Status: StatusUnattempted},
		{Status: StatusUnknown},
	}

	c := state.Counts()
	if c.Total != 4 || c.Attempted != 2 || c.Correct != 1 || c.Wrong != 1 || c.Unattempted != 1 {
		t.Errorf("unexpected counts: %+v", c)
	}
}

func TestSubjectFor(t *testing.T) {
	state := NewState("task", nil, nil)
	state.EvaluationResults = []EvaluationResult{
		{QID: "q1", Subject: "Polity"},
		{QID: "q2", Subject: ""},
	}

	if got := state.SubjectFor("q1"); got != "Polity" {
		t.Errorf("SubjectFor(q1) = %q", got)
	}
	if got := state.SubjectFor("q2"); got != "Unknown" {
		t.Errorf("empty subject should fall back to Unknown, got %q", got)
	}
	if got := state.SubjectFor("missing"); got != "Unknown" {
		t.Errorf("missing qid should fall back to Unknown, got %q", got)
	}
}
