package exam

// OptionLabels are the four answer labels every question carries.
var OptionLabels = []string{"A", "B", "C", "D"}

// UnattemptedSentinel is the value sent to the LLM when a question has no
// chosen option.
const UnattemptedSentinel = "UNATTEMPTED"

// Question is a single multiple-choice exam question together with the
// student's response. ChosenOption is empty when the question was skipped.
// Subject may be empty on input; the classification stage backfills it.
type Question struct {
	ID            string            `json:"id"`
	Text          string            `json:"text"`
	Options       map[string]string `json:"options"`
	CorrectOption string            `json:"correct_option"`
	ChosenOption  string            `json:"chosen_option,omitempty"`
	Subject       string            `json:"subject,omitempty"`
}

// Attempted reports whether the student chose an option.
func (q Question) Attempted() bool {
	return q.ChosenOption != "" && q.ChosenOption != UnattemptedSentinel
}

// ChosenOrSentinel returns the chosen option label, or the unattempted
// sentinel when the question was skipped.
func (q Question) ChosenOrSentinel() string {
	if !q.Attempted() {
		return UnattemptedSentinel
	}
	return q.ChosenOption
}

// Complete reports whether the question carries every field the mindset
// inference stage needs. Questions failing this check are skipped, not fatal.
func (q Question) Complete() bool {
	return q.ID != "" &&
		q.Text != "" &&
		len(q.Options) > 0 &&
		q.CorrectOption != "" &&
		q.ChosenOption != ""
}

// Option returns the text for an option label, or "" when absent.
func (q Question) Option(label string) string {
	return q.Options[label]
}
