// Package client talks to the question service over its two JSON
// exchanges. It normalizes the service's loose response envelope into
// domain types and classifies failures so the session controller can keep
// the user unblocked.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/apptitude/internal/api"
	"github.com/abhisek/apptitude/internal/quiz"
)

// DefaultBaseURL matches the serve command's default listen address.
const DefaultBaseURL = "http://localhost:5001"

const defaultTimeout = 90 * time.Second

// Client is a thin HTTP client for the question service.
type Client struct {
	baseURL string
	http    *http.Client // reused across calls
	log     *zap.Logger
}

// New creates a client for the service at baseURL. An empty baseURL falls
// back to DefaultBaseURL.
func New(baseURL string) *Client {
	return NewWithLogger(baseURL, nil)
}

// NewWithLogger creates a client that records every exchange on log. TUI
// processes hand in a file-backed logger so output stays off the terminal.
func NewWithLogger(baseURL string, log *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
		log: log,
	}
}

// GetQuestion requests a question for the given difficulty level.
// Network failures, error envelopes, and malformed payloads all come back
// as a FetchError.
func (c *Client) GetQuestion(ctx context.Context, level int) (*quiz.Question, error) {
	env, err := c.post(ctx, "/get_question", api.QuestionRequest{Level: level})
	if err != nil {
		return nil, &FetchError{Err: err}
	}

	var payload api.QuestionPayload
	if err := env.DecodeData(&payload); err != nil {
		return nil, &FetchError{Err: err}
	}
	q, err := payload.Domain()
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	return q, nil
}

// CheckAnswer submits the user's answer for grading. The question material
// is echoed back so the service stays stateless. Failures come back as a
// GradingError.
func (c *Client) CheckAnswer(ctx context.Context, q *quiz.Question, userAnswer string) (*quiz.Verdict, error) {
	req := api.AnswerRequest{
		Question:      q.Text,
		UserAnswer:    userAnswer,
		CorrectAnswer: q.Answer,
		Explanation:   q.Explanation,
	}

	env, err := c.post(ctx, "/check_answer", req)
	if err != nil {
		return nil, &GradingError{Err: err}
	}

	var payload api.VerdictPayload
	if err := env.DecodeData(&payload); err != nil {
		return nil, &GradingError{Err: err}
	}
	return payload.Domain(), nil
}

// post sends a JSON body and decodes the response envelope. An envelope
// with status "error" is returned as an error carrying the service's
// message.
func (c *Client) post(ctx context.Context, path string, body any) (*api.Envelope, error) {
	start := time.Now()

	buf, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("exchange failed", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	var env api.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		c.log.Warn("exchange failed", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if env.Status == api.StatusError {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("service returned HTTP %d", resp.StatusCode)
		}
		c.log.Warn("exchange rejected",
			zap.String("path", path),
			zap.Int("http_status", resp.StatusCode),
			zap.String("message", msg),
		)
		return nil, fmt.Errorf("service error: %s", msg)
	}

	c.log.Debug("exchange completed",
		zap.String("path", path),
		zap.Int("http_status", resp.StatusCode),
		zap.Int64("latency_ms", time.Since(start).Milliseconds()),
	)
	return &env, nil
}
