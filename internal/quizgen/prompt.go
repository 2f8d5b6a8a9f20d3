package quizgen

import "fmt"

const generateSystemPrompt = `You are APPtitude, an intelligent math teacher. Generate a mental math question suitable for the given difficulty level (1-5).

Rules:
- Use plain ASCII text for all math. No LaTeX, no Unicode symbols.
- The question must be solvable mentally in under a minute at the given level.
- The answer must be a single number, given as a string.
- The explanation should show the solution step by step.`

const gradeSystemPrompt = `You are APPtitude, an intelligent math teacher evaluating student answers. Accept mathematically equivalent forms (ignore currency symbols, trailing zeros, and surrounding whitespace).`

// buildGeneratePrompt constructs the user message for question generation.
func buildGeneratePrompt(level int) string {
	return fmt.Sprintf("Generate a mental math question for difficulty level %d (1=easiest, 5=hardest).", level)
}

// buildGradePrompt constructs the user message for answer evaluation.
func buildGradePrompt(question, userAnswer, correctAnswer string) string {
	return fmt.Sprintf("Question: %s\nUser's answer: %s\nCorrect answer: %s\n\nEvaluate if the user's answer is correct.",
		question, userAnswer, correctAnswer)
}
