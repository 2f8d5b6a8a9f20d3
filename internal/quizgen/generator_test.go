package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/apptitude/internal/llm"
)

func TestGenerator_ValidResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question":"What is 7 x 8?","answer":"56","explanation":"7 x 8 = 56"}`),
	})
	g := NewGenerator(mock, DefaultConfig(), nil)

	q, err := g.Generate(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Text != "What is 7 x 8?" {
		t.Errorf("unexpected question: %q", q.Text)
	}
	if q.Answer != "56" {
		t.Errorf("unexpected answer: %q", q.Answer)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestGenerator_InvalidLevel(t *testing.T) {
	g := NewGenerator(llm.NewMockProvider(), DefaultConfig(), nil)

	for _, level := range []int{0, 6, -1, 100} {
		if _, err := g.Generate(context.Background(), level); err == nil {
			t.Errorf("level %d: expected error", level)
		}
	}
}

func TestGenerator_ProviderFailureFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	g := NewGenerator(mock, DefaultConfig(), nil)

	q, err := g.Generate(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := fallbackFor(3)
	if q.Text != want.Text || q.Answer != want.Answer {
		t.Errorf("expected fallback question for level 3, got %q", q.Text)
	}
}

func TestGenerator_MalformedResponseFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json at all`),
	})
	g := NewGenerator(mock, DefaultConfig(), nil)

	q, err := g.Generate(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := fallbackFor(1)
	if q.Text != want.Text {
		t.Errorf("expected fallback question, got %q", q.Text)
	}
}

func TestGenerator_IncompleteResponseFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question":"","answer":"","explanation":""}`),
	})
	g := NewGenerator(mock, DefaultConfig(), nil)

	q, err := g.Generate(context.Background(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := fallbackFor(4)
	if q.Text != want.Text {
		t.Errorf("expected fallback question, got %q", q.Text)
	}
}

func TestGenerator_PromptCarriesLevel(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question":"q","answer":"1","explanation":"e"}`),
	})
	g := NewGenerator(mock, DefaultConfig(), nil)

	if _, err := g.Generate(context.Background(), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 recorded call, got %d", len(mock.Calls))
	}
	msg := mock.Calls[0].Messages[0].Content
	if msg != buildGeneratePrompt(5) {
		t.Errorf("unexpected prompt: %q", msg)
	}
}

func TestFallbackFor_Deterministic(t *testing.T) {
	for level := 1; level <= 5; level++ {
		a := fallbackFor(level)
		b := fallbackFor(level)
		if a.Text != b.Text {
			t.Errorf("level %d: fallback not deterministic", level)
		}
		if a.Text == "" || a.Answer == "" || a.Explanation == "" {
			t.Errorf("level %d: incomplete fallback question", level)
		}
	}
}
