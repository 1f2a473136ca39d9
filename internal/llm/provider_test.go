package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

// quizJSON is the shape the quiz generator asks every provider for.
var quizJSON = json.RawMessage(`{"questions":[{"question_text":"What does docker build do?","choices":["It builds an image","It starts a container","It pushes to a registry","It lists volumes"],"answer_index":0,"explanation":"Build produces an image from a Dockerfile."}]}`)

func quizRequest() Request {
	return Request{
		System:   "You are a senior engineering interviewer.",
		Messages: []Message{{Role: RoleUser, Content: "Write 1 question about docker."}},
	}
}

func TestMockProviderPlaysQueueInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: quizJSON, Usage: Usage{InputTokens: 120, OutputTokens: 80, TotalTokens: 200}},
		MockResponse{Content: json.RawMessage(`{"questions":[]}`)},
	)

	first, err := mock.Generate(context.Background(), quizRequest())
	if err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	if string(first.Content) != string(quizJSON) {
		t.Fatalf("first content = %s", first.Content)
	}
	if first.Usage.TotalTokens != 200 {
		t.Fatalf("total tokens = %d, want 200", first.Usage.TotalTokens)
	}
	if first.StopReason != "end" {
		t.Fatalf("stop reason = %q, want end", first.StopReason)
	}

	second, err := mock.Generate(context.Background(), quizRequest())
	if err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	if string(second.Content) != `{"questions":[]}` {
		t.Fatalf("second content = %s", second.Content)
	}
}

func TestMockProviderQueue(t *testing.T) {
	t.Run("drained queue fails as unavailable", func(t *testing.T) {
		mock := NewMockProvider()
		_, err := mock.Generate(context.Background(), quizRequest())
		var unavail *ErrProviderUnavailable
		if !errors.As(err, &unavail) {
			t.Fatalf("err = %T, want *ErrProviderUnavailable", err)
		}
	})

	t.Run("queued error surfaces typed", func(t *testing.T) {
		mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})
		_, err := mock.Generate(context.Background(), quizRequest())
		var rl *ErrRateLimit
		if !errors.As(err, &rl) {
			t.Fatalf("err = %T, want *ErrRateLimit", err)
		}
	})
}

func TestMockProviderRecordsRequests(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: quizJSON})

	req := quizRequest()
	if _, err := mock.Generate(context.Background(), req); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("CallCount() = %d, want 1", mock.CallCount())
	}
	if got := mock.Calls[0].System; got != req.System {
		t.Fatalf("recorded system = %q, want %q", got, req.System)
	}
	if mock.ModelID() != "mock" {
		t.Fatalf("ModelID() = %q", mock.ModelID())
	}
}

func TestPurposeTravelsOnContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("bare context purpose = %q, want unknown", p)
	}
	if p := PurposeFrom(WithPurpose(ctx, "quiz-gen")); p != "quiz-gen" {
		t.Fatalf("purpose = %q, want quiz-gen", p)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic needs a key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"openai needs a key", Config{Provider: "openai"}, true},
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}}, false},
		{"mock is keyless", Config{Provider: "mock"}, false},
		{"unknown provider rejected", Config{Provider: "grok"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
