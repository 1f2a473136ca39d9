package quiz

import "github.com/adasgupta/skillbridge/internal/llm"

// QuizSchema is the JSON schema for quiz generation responses.
var QuizSchema = &llm.Schema{
	Name:        "skill-quiz",
	Description: "A multiple-choice mastery quiz for one technical skill",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":        "array",
				"description": "The quiz questions, in presentation order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_text": map[string]any{
							"type":        "string",
							"description": "The question prompt, plain ASCII text, self-contained",
						},
						"choices": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 options, exactly one correct",
						},
						"answer_index": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     3,
							"description": "Zero-based index of the correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "One or two sentences on why the answer is correct",
						},
					},
					"required":             []any{"question_text", "choices", "answer_index", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
