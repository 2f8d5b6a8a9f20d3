// Package api defines the wire format of the two question-service
// exchanges. Both sides of the app speak it: the client decodes envelopes,
// the server encodes them.
package api

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/apptitude/internal/quiz"
)

// Envelope statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// QuestionRequest is the body of POST /get_question.
type QuestionRequest struct {
	Level int `json:"level"`
}

// AnswerRequest is the body of POST /check_answer. The client echoes the
// question material back so the service stays stateless.
type AnswerRequest struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
}

// Envelope wraps every response. On success Data carries the payload; on
// error Message says what went wrong. Data may arrive either as a
// structured object or as a JSON-encoded string; DecodeData accepts both.
type Envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// QuestionPayload is the Data of a /get_question response.
type QuestionPayload struct {
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	Explanation string `json:"explanation"`
}

// VerdictPayload is the Data of a /check_answer response.
type VerdictPayload struct {
	IsCorrect   bool   `json:"is_correct"`
	Feedback    string `json:"feedback"`
	Explanation string `json:"explanation"`
}

// OK builds a success envelope around v.
func OK(v any) (*Envelope, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return &Envelope{Status: StatusOK, Data: data}, nil
}

// Error builds an error envelope with the given message.
func Error(message string) *Envelope {
	return &Envelope{Status: StatusError, Message: message}
}

// DecodeData unmarshals the envelope's Data into v, normalizing the two
// shapes the service may produce: a structured object, or that same object
// serialized again as a JSON string. A payload that fits neither shape is a
// FormatError.
func (e *Envelope) DecodeData(v any) error {
	if len(e.Data) == 0 {
		return &FormatError{Err: fmt.Errorf("response has no data")}
	}

	raw := e.Data
	var inner string
	if err := json.Unmarshal(raw, &inner); err == nil {
		// String-encoded JSON: parse the inner document instead.
		raw = json.RawMessage(inner)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return &FormatError{Err: fmt.Errorf("unexpected data shape: %w", err)}
	}
	return nil
}

// Domain converts the payload into the domain type, rejecting payloads
// with an empty question or answer.
func (p *QuestionPayload) Domain() (*quiz.Question, error) {
	if p.Question == "" || p.Answer == "" {
		return nil, &FormatError{Err: fmt.Errorf("question payload is incomplete")}
	}
	return &quiz.Question{
		Text:        p.Question,
		Answer:      p.Answer,
		Explanation: p.Explanation,
	}, nil
}

// Domain converts the payload into the domain type.
func (p *VerdictPayload) Domain() *quiz.Verdict {
	return &quiz.Verdict{
		IsCorrect:   p.IsCorrect,
		Feedback:    p.Feedback,
		Explanation: p.Explanation,
	}
}
