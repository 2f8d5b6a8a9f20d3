package api

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestDecodeData_StructuredObject(t *testing.T) {
	env := &Envelope{
		Status: StatusOK,
		Data:   json.RawMessage(`{"question":"2+2?","answer":"4","explanation":"count"}`),
	}

	var p QuestionPayload
	if err := env.DecodeData(&p); err != nil {
		t.Fatalf("DecodeData: %v", err)
	}
	if p.Question != "2+2?" || p.Answer != "4" {
		t.Fatalf("payload = %+v", p)
	}
}

func TestDecodeData_StringEncodedJSON(t *testing.T) {
	// The service may double-encode data, as the original backend did.
	env := &Envelope{
		Status: StatusOK,
		Data:   json.RawMessage(`"{\"is_correct\":true,\"feedback\":\"nice\",\"explanation\":\"x\"}"`),
	}

	var p VerdictPayload
	if err := env.DecodeData(&p); err != nil {
		t.Fatalf("DecodeData: %v", err)
	}
	if !p.IsCorrect || p.Feedback != "nice" {
		t.Fatalf("payload = %+v", p)
	}
}

func TestDecodeData_UnparseableStringIsFormatError(t *testing.T) {
	env := &Envelope{
		Status: StatusOK,
		Data:   json.RawMessage(`"this is not json"`),
	}

	var p VerdictPayload
	err := env.DecodeData(&p)
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("error = %v, want FormatError", err)
	}
}

func TestDecodeData_MissingData(t *testing.T) {
	env := &Envelope{Status: StatusOK}

	var p QuestionPayload
	var fe *FormatError
	if err := env.DecodeData(&p); !errors.As(err, &fe) {
		t.Fatalf("error = %v, want FormatError", err)
	}
}

func TestQuestionPayload_DomainValidation(t *testing.T) {
	cases := []struct {
		name    string
		payload QuestionPayload
		wantErr bool
	}{
		{"complete", QuestionPayload{Question: "q", Answer: "a", Explanation: "e"}, false},
		{"no question", QuestionPayload{Answer: "a"}, true},
		{"no answer", QuestionPayload{Question: "q"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := tc.payload.Domain()
			if tc.wantErr {
				var fe *FormatError
				if !errors.As(err, &fe) {
					t.Fatalf("error = %v, want FormatError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Domain: %v", err)
			}
			if q.Text != "q" || q.Answer != "a" {
				t.Fatalf("question = %+v", q)
			}
		})
	}
}

func TestOK_RoundTrip(t *testing.T) {
	env, err := OK(VerdictPayload{IsCorrect: false, Feedback: "no"})
	if err != nil {
		t.Fatalf("OK: %v", err)
	}
	if env.Status != StatusOK {
		t.Fatalf("status = %q", env.Status)
	}

	var p VerdictPayload
	if err := env.DecodeData(&p); err != nil {
		t.Fatalf("DecodeData: %v", err)
	}
	if p.IsCorrect || p.Feedback != "no" {
		t.Fatalf("payload = %+v", p)
	}
}
