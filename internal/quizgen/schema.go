package quizgen

import "github.com/abhisek/apptitude/internal/llm"

// QuestionSchema defines the JSON schema for question generation responses.
var QuestionSchema = &llm.Schema{
	Name:        "math-question",
	Description: "A single mental math question with answer and explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question text shown to the player, in plain ASCII",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The numerical answer as a string",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Step-by-step solution",
			},
		},
		"required":             []any{"question", "answer", "explanation"},
		"additionalProperties": false,
	},
}

// VerdictSchema defines the JSON schema for answer grading responses.
var VerdictSchema = &llm.Schema{
	Name:        "answer-verdict",
	Description: "An evaluation of a player's answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"is_correct": map[string]any{
				"type":        "boolean",
				"description": "Whether the player's answer is correct",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Why the answer is correct or incorrect",
			},
			"correct_answer": map[string]any{
				"type":        "string",
				"description": "The expected answer",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Step-by-step solution",
			},
		},
		"required":             []any{"is_correct", "feedback", "correct_answer", "explanation"},
		"additionalProperties": false,
	},
}
