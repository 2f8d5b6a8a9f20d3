package llm

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

// deadlineProbe records whether the context it saw carried a deadline.
type deadlineProbe struct {
	sawDeadline bool
}

func (d *deadlineProbe) Generate(ctx context.Context, _ Request) (*Response, error) {
	_, d.sawDeadline = ctx.Deadline()
	return &Response{Content: json.RawMessage(`{}`), Model: "probe-model"}, nil
}

func (d *deadlineProbe) ModelID() string { return "probe-model" }

func TestWithTimeout_AppliesDeadline(t *testing.T) {
	probe := &deadlineProbe{}
	p := WithTimeout(probe, time.Minute)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !probe.sawDeadline {
		t.Fatal("expected the request context to carry a deadline")
	}
	if p.ModelID() != "probe-model" {
		t.Fatalf("ModelID = %q, want delegation to the wrapped provider", p.ModelID())
	}
}

func TestWithTimeout_NonPositiveLeavesUnwrapped(t *testing.T) {
	probe := &deadlineProbe{}
	p := WithTimeout(probe, 0)

	if p != Provider(probe) {
		t.Fatal("zero timeout should return the provider unchanged")
	}
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if probe.sawDeadline {
		t.Fatal("no deadline expected without a timeout")
	}
}

func TestNewProvider_RejectsMissingAPIKey(t *testing.T) {
	cfg := DefaultConfig() // xai selected, no key set
	if _, err := NewProvider(context.Background(), cfg, nil); err == nil {
		t.Fatal("expected NewProvider to reject a config without an API key")
	}
}

func TestNewProvider_TimeoutEnforced(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "xai"
	cfg.XAI.APIKey = "test-key"
	cfg.Timeout = time.Minute

	p, err := NewProvider(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if _, ok := p.(*TimeoutProvider); !ok {
		t.Fatalf("provider = %T, want the timeout wrapper outermost", p)
	}
}
