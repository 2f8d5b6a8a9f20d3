package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/apptitude/internal/llm"
	"github.com/abhisek/apptitude/internal/quiz"
)

// Generator produces math questions using a model provider, falling back
// to a built-in question bank when the provider fails.
type Generator struct {
	provider llm.Provider
	config   Config
	log      *zap.Logger
}

// NewGenerator creates a Generator with the given provider and config.
func NewGenerator(provider llm.Provider, cfg Config, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{provider: provider, config: cfg, log: log}
}

// questionOutput is the raw model response before conversion.
type questionOutput struct {
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	Explanation string `json:"explanation"`
}

// Generate produces a question for the given difficulty level. Provider
// failures are absorbed: the caller always gets a servable question.
func (g *Generator) Generate(ctx context.Context, level int) (quiz.Question, error) {
	if !quiz.ValidLevel(level) {
		return quiz.Question{}, fmt.Errorf("level must be between %d and %d, got %d", quiz.MinLevel, quiz.MaxLevel, level)
	}

	q, err := g.generate(ctx, level)
	if err != nil {
		g.log.Warn("question generation failed, serving fallback",
			zap.Int("level", level),
			zap.Error(err))
		return fallbackFor(level), nil
	}
	return q, nil
}

func (g *Generator) generate(ctx context.Context, level int) (quiz.Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: generateSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGeneratePrompt(level)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return quiz.Question{}, fmt.Errorf("model generation failed: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return quiz.Question{}, fmt.Errorf("parse model response: %w", err)
	}

	q := quiz.Question{
		Text:        strings.TrimSpace(raw.Question),
		Answer:      strings.TrimSpace(raw.Answer),
		Explanation: strings.TrimSpace(raw.Explanation),
	}
	if q.Text == "" || q.Answer == "" {
		return quiz.Question{}, fmt.Errorf("model returned incomplete question")
	}

	return q, nil
}
