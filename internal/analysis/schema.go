package analysis

import "github.com/prepsage/examlens/internal/llm"

// EvaluationSchema defines the JSON schema for a single question evaluation.
var EvaluationSchema = &llm.Schema{
	Name:        "question-evaluation",
	Description: "Classification of one exam response as Correct, Wrong, or Unattempted",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"qid": map[string]any{
				"type":        "string",
				"description": "The question ID being evaluated",
			},
			"status": map[string]any{
				"type": "string",
				"enum": []any{"Correct", "Wrong", "Unattempted"},
			},
			"subject": map[string]any{
				"type":        "string",
				"description": "The subject of the question (e.g., History, Polity, Economy)",
			},
		},
		"required":             []any{"qid", "status", "subject"},
		"additionalProperties": false,
	},
}

// MindsetSchema defines the JSON schema for a wrong-answer mindset analysis.
// distractor_analysis must cover all four option labels.
var MindsetSchema = &llm.Schema{
	Name:        "mindset-insight",
	Description: "Diagnostic analysis of why a student chose a wrong answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_id": map[string]any{
				"type":        "string",
				"description": "The ID of the question",
			},
			"chosen_option_analysis": map[string]any{
				"type":        "string",
				"description": "Why the student likely chose the incorrect option, including the probable thought process and conceptual gaps",
			},
			"depth_of_knowledge_assessment": map[string]any{
				"type":        "string",
				"description": "Assessment of the student's depth of knowledge on the topic: superficial understanding vs. fundamental misconception",
			},
			"distractor_analysis": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"A": map[string]any{"type": "string"},
					"B": map[string]any{"type": "string"},
					"C": map[string]any{"type": "string"},
					"D": map[string]any{"type": "string"},
				},
				"required":             []any{"A", "B", "C", "D"},
				"additionalProperties": false,
				"description":          "Per-option explanation of its relevance or incorrectness and what it implies about the student's knowledge",
			},
			"improvement_suggestion": map[string]any{
				"type":        "string",
				"description": "Specific actionable advice addressing the identified gaps",
			},
		},
		"required": []any{
			"question_id",
			"chosen_option_analysis",
			"depth_of_knowledge_assessment",
			"distractor_analysis",
			"improvement_suggestion",
		},
		"additionalProperties": false,
	},
}
