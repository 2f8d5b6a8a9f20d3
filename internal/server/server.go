// Package server implements the HTTP question service: two POST endpoints
// that generate math questions and grade answers.
package server

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/abhisek/apptitude/internal/api"
	"github.com/abhisek/apptitude/internal/quiz"
	"github.com/abhisek/apptitude/internal/quizgen"
)

// Server serves the question-service HTTP API.
type Server struct {
	app    *fiber.App
	gen    *quizgen.Generator
	grader *quizgen.Grader
	log    *zap.Logger
}

// New creates a Server wired to the given generator and grader.
func New(gen *quizgen.Generator, grader *quizgen.Grader, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		app: fiber.New(fiber.Config{
			AppName:               "apptitude-question-service",
			DisableStartupMessage: true,
		}),
		gen:    gen,
		grader: grader,
		log:    log,
	}

	s.app.Get("/health", s.handleHealth)
	s.app.Post("/get_question", s.handleGetQuestion)
	s.app.Post("/check_answer", s.handleCheckAnswer)

	return s
}

// App exposes the underlying fiber app for testing.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen starts serving on the given port and blocks.
func (s *Server) Listen(port int) error {
	return s.app.Listen(fmt.Sprintf(":%d", port))
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) handleGetQuestion(c *fiber.Ctx) error {
	var req api.QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		s.log.Warn("malformed question request", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(api.Error("invalid request body"))
	}

	// An absent level defaults to the easiest.
	level := req.Level
	if level == 0 {
		level = quiz.MinLevel
	}
	if !quiz.ValidLevel(level) {
		return c.Status(fiber.StatusBadRequest).JSON(
			api.Error(fmt.Sprintf("level must be between %d and %d", quiz.MinLevel, quiz.MaxLevel)))
	}

	q, err := s.gen.Generate(c.Context(), level)
	if err != nil {
		s.log.Error("question generation failed", zap.Int("level", level), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(api.Error(err.Error()))
	}

	env, err := api.OK(api.QuestionPayload{
		Question:    q.Text,
		Answer:      q.Answer,
		Explanation: q.Explanation,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(api.Error("encode response"))
	}

	s.log.Info("question served", zap.Int("level", level))
	return c.JSON(env)
}

func (s *Server) handleCheckAnswer(c *fiber.Ctx) error {
	var req api.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		s.log.Warn("malformed answer request", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(api.Error("invalid request body"))
	}

	if strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.CorrectAnswer) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(api.Error("question and correct_answer are required"))
	}
	if strings.TrimSpace(req.UserAnswer) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(api.Error("user_answer is required"))
	}

	q := quiz.Question{
		Text:        req.Question,
		Answer:      req.CorrectAnswer,
		Explanation: req.Explanation,
	}
	v := s.grader.Grade(c.Context(), q, req.UserAnswer)

	env, err := api.OK(api.VerdictPayload{
		IsCorrect:   v.IsCorrect,
		Feedback:    v.Feedback,
		Explanation: v.Explanation,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(api.Error("encode response"))
	}

	s.log.Info("answer graded", zap.Bool("is_correct", v.IsCorrect))
	return c.JSON(env)
}
