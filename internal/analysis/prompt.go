package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prepsage/examlens/internal/exam"
)

const planSystemPrompt = `You are an expert exam analyst tasked with evaluating a student's competitive exam performance. Begin by outlining the overall approach you will take to analyze the student's answers. Your outline should cover how you will classify responses (correct, wrong, unattempted), how you will infer mindset for wrong answers, identify patterns in unattempted questions, and how subject-wise performance will be measured. Include any relevant notes or instructions that help guide this analysis process.`

const classifySystemPrompt = `You are a subject classifier for competitive exam questions. Respond with only the subject name (e.g., History, Geography, Polity, Economy, Environment, Science & Tech, General Knowledge, Current Affairs).`

func buildClassifyMessage(questionText string) string {
	var b strings.Builder

	b.WriteString("Given the following multiple-choice question, identify the most relevant subject it belongs to.\n\n")
	b.WriteString(fmt.Sprintf("Question:\n%q\n\n", questionText))
	b.WriteString(`Return the subject as a single word or short phrase, e.g., "History", "Polity", "Environment".`)

	return b.String()
}

const evaluateSystemPrompt = `You are an expert examiner tasked with classifying a student's answer to a multiple-choice exam question. Given the question, the available options, the correct answer, and the chosen answer, determine whether the student's response is Correct, Wrong, or Unattempted.`

func writeQuestionBlock(b *strings.Builder, q exam.Question) {
	b.WriteString(fmt.Sprintf("Question ID: %s\n", q.ID))
	b.WriteString(fmt.Sprintf("Question: %s\n", q.Text))
	b.WriteString("Options:\n")
	for _, label := range exam.OptionLabels {
		b.WriteString(fmt.Sprintf("%s) %s\n", label, q.Option(label)))
	}
	b.WriteString(fmt.Sprintf("Correct Option: %s\n", q.CorrectOption))
}

func buildEvaluateMessage(q exam.Question) string {
	var b strings.Builder

	writeQuestionBlock(&b, q)
	b.WriteString(fmt.Sprintf("Chosen Option: %s\n", q.ChosenOrSentinel()))

	return b.String()
}

const mindsetSystemPrompt = `You are a highly analytical cognitive expert tasked with deeply assessing a student's understanding when they answer a multiple-choice exam question incorrectly. Your analysis should be diagnostic and reveal the nuances of the student's knowledge.`

func buildMindsetMessage(q exam.Question, subject string) string {
	var b strings.Builder

	writeQuestionBlock(&b, q)
	b.WriteString(fmt.Sprintf("Chosen Option (Incorrect): %s\n", q.ChosenOption))
	b.WriteString(fmt.Sprintf("Subject: %s\n", subject))

	b.WriteString(`
Provide a comprehensive analysis covering:
1. Why the student likely chose the incorrect option, including the probable thought process, common confusions, and specific conceptual gaps.
2. The student's perceived depth of knowledge on this topic. Consider whether they have a superficial understanding or a fundamental misconception.
3. For each of the four options (A, B, C, D), explain its relevance or why it is incorrect and what it implies about the student's knowledge.
4. Specific actionable advice to improve their understanding of this topic, directly addressing the identified gaps.`)

	return b.String()
}

const subjectAnalysisSystemPrompt = `You are a subject-level performance analyst reviewing a student's exam results. Your response MUST be a JSON object as specified in the prompt.`

func buildSubjectAnalysisMessage(stats []exam.SubjectStats) string {
	var b strings.Builder

	b.WriteString(`You will be given per-subject counts of a student's evaluated responses. Identify strong subjects, weak subjects (low accuracy or many unattempted questions), and any patterns in skipping or guessing behavior. This analysis will be used in the final report to provide actionable feedback to the student.

Here is the per-subject evaluation data:
`)
	b.WriteString(jsonBlock(stats))

	b.WriteString(`

Provide your analysis in a structured JSON format. You MUST include the "overall_insights", "subject_breakdown", and "behavioral_patterns" keys.
The "subject_breakdown" value MUST be an object where keys are subject names and values are objects with 'total_questions', 'correct', 'wrong', 'unattempted', 'accuracy', and 'status'.
Example JSON structure:
{
    "overall_insights": "Student shows strong performance in X, but struggles in Y.",
    "subject_breakdown": {
        "History": {
            "total_questions": 10,
            "correct": 7,
            "wrong": 2,
            "unattempted": 1,
            "accuracy": 77.78,
            "status": "Strong"
        }
    },
    "behavioral_patterns": "Tends to skip questions on economics."
}
Respond with the JSON object only, no surrounding prose or code fences.`)

	return b.String()
}

const unattemptedSystemPrompt = `You are an analyst. Your response MUST be a JSON object as specified in the prompt, with 'individual_reasons' (array of objects) and 'overall_summary' (string).`

// unattemptedItem is the per-question payload sent for skip analysis.
type unattemptedItem struct {
	QuestionID   string `json:"question_id"`
	QuestionText string `json:"question_text"`
	Subject      string `json:"subject"`
}

func buildUnattemptedMessage(items []unattemptedItem) string {
	var b strings.Builder

	b.WriteString(`You are explaining why a student might skip certain exam questions. Given a list of unattempted questions (including question ID, text, and subject), provide a short, concise reason for skipping for each question. Then generate a brief summary covering common patterns or themes across all unattempted questions.

Return your analysis in a structured JSON object with the following keys:
- "individual_reasons": An array of objects, each with "question_id" and "reason_for_skipping".
- "overall_summary": A string providing the brief summary of patterns.
Respond with the JSON object only, no surrounding prose or code fences.

Unattempted Questions Data (JSON array):
`)
	b.WriteString(jsonBlock(items))

	return b.String()
}

const summarySystemPrompt = `You are an expert exam analyst. Generate a comprehensive performance summary and an actionable plan based on the provided data and instructions. Ensure all requested sections are present and filled with content.`

func buildSummaryMessage(state exam.State) string {
	var b strings.Builder
	counts := state.Counts()

	b.WriteString(`Write a clear, motivating, and realistic summary report for the student that includes:
- A high-level overview of the student's performance
- Strengths and subjects where the student excelled
- Weaknesses and subjects needing improvement
- Behavioral patterns noticed (e.g., tendency to skip certain topics, common misconceptions)
- Suggestions for focused study and improvement strategies
- If available, up-to-date relevant references or resources to support preparation
- FINALLY, a crucial 'Actionable Plan for Next Time' section. This final section is paramount. It MUST be detailed and provide clear guidance on areas like conceptual clarity, revision techniques, time management, and subject-specific focus.
Write the full summary in an encouraging tone suitable for a serious aspirant.

Here is the detailed data for your analysis:

`)
	b.WriteString(fmt.Sprintf("Total Questions: %d\n", counts.Total))
	b.WriteString(fmt.Sprintf("Attempted: %d\n", counts.Attempted))
	b.WriteString(fmt.Sprintf("Correct: %d\n", counts.Correct))
	b.WriteString(fmt.Sprintf("Wrong: %d\n", counts.Wrong))
	b.WriteString(fmt.Sprintf("Unattempted: %d\n", counts.Unattempted))

	b.WriteString("\nSubject-wise Performance:\n")
	b.WriteString(jsonBlock(state.SubjectPerformance))

	b.WriteString("\n\nMindset Insights on Wrong Answers:\n")
	b.WriteString(jsonBlock(state.MindsetInsights))

	b.WriteString("\n\nUnattempted Questions Analysis:\n")
	b.WriteString(jsonBlock(state.UnattemptedReasons))

	b.WriteString("\n\nAdditional References:\n")
	b.WriteString(jsonBlock(state.References))

	return b.String()
}

// jsonBlock renders a value as indented JSON for inclusion in a prompt.
func jsonBlock(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
