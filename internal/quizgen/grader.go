package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/apptitude/internal/llm"
	"github.com/abhisek/apptitude/internal/quiz"
)

// Feedback strings used by local grading.
const (
	FeedbackCorrect = "Correct! Well done!"
	FeedbackWrong   = "Sorry, that's not correct."
)

// floatTolerance is the allowed numeric drift when comparing answers.
const floatTolerance = 0.01

// Grader evaluates answers using a model provider, falling back to a
// local comparison when the provider fails.
type Grader struct {
	provider llm.Provider
	config   Config
	log      *zap.Logger
}

// NewGrader creates a Grader with the given provider and config.
func NewGrader(provider llm.Provider, cfg Config, log *zap.Logger) *Grader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Grader{provider: provider, config: cfg, log: log}
}

// verdictOutput is the raw model response before conversion.
type verdictOutput struct {
	IsCorrect   bool   `json:"is_correct"`
	Feedback    string `json:"feedback"`
	Explanation string `json:"explanation"`
}

// Grade evaluates a player's answer against the question. Provider
// failures are absorbed: the caller always gets a verdict.
func (g *Grader) Grade(ctx context.Context, q quiz.Question, userAnswer string) quiz.Verdict {
	v, err := g.grade(ctx, q, userAnswer)
	if err != nil {
		g.log.Warn("model grading failed, grading locally",
			zap.Error(err))
		return LocalVerdict(q, userAnswer)
	}
	return v
}

func (g *Grader) grade(ctx context.Context, q quiz.Question, userAnswer string) (quiz.Verdict, error) {
	ctx = llm.WithPurpose(ctx, "answer-grade")

	req := llm.Request{
		System: gradeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGradePrompt(q.Text, userAnswer, q.Answer)},
		},
		Schema:    VerdictSchema,
		MaxTokens: g.config.MaxTokens,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return quiz.Verdict{}, fmt.Errorf("model grading failed: %w", err)
	}

	var raw verdictOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return quiz.Verdict{}, fmt.Errorf("parse model response: %w", err)
	}
	if raw.Feedback == "" {
		return quiz.Verdict{}, fmt.Errorf("model returned empty feedback")
	}

	explanation := raw.Explanation
	if explanation == "" {
		explanation = q.Explanation
	}

	return quiz.Verdict{
		IsCorrect:   raw.IsCorrect,
		Feedback:    raw.Feedback,
		Explanation: explanation,
	}, nil
}

// LocalVerdict grades without a model: numeric comparison with a small
// tolerance when both answers parse as numbers, case-insensitive string
// comparison otherwise. Currency symbols are stripped first.
func LocalVerdict(q quiz.Question, userAnswer string) quiz.Verdict {
	isCorrect := answersMatch(userAnswer, q.Answer)

	feedback := FeedbackWrong
	if isCorrect {
		feedback = FeedbackCorrect
	}

	return quiz.Verdict{
		IsCorrect:   isCorrect,
		Feedback:    feedback,
		Explanation: q.Explanation,
	}
}

func answersMatch(user, correct string) bool {
	userNum, uerr := parseAnswer(user)
	correctNum, cerr := parseAnswer(correct)
	if uerr == nil && cerr == nil {
		return math.Abs(userNum-correctNum) < floatTolerance
	}
	return strings.EqualFold(strings.TrimSpace(user), strings.TrimSpace(correct))
}

func parseAnswer(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "$", ""))
	return strconv.ParseFloat(s, 64)
}
