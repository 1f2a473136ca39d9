// Package llm abstracts the hosted model providers behind a single
// Provider interface. The quiz generator is the only consumer; it always
// asks for schema-constrained JSON so that a malformed completion can be
// rejected before it reaches the learner.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates structured completions.
type Provider interface {
	// Generate sends one request and returns the model's output. When the
	// request carries a Schema the returned Content is JSON validated
	// against it; otherwise Content is the raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Request is a single generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Quiz generation is single-turn, so
	// this is normally one user message.
	Messages []Message

	// Schema, when set, selects the provider's native structured-output
	// mechanism and enables response validation.
	Schema *Schema

	// MaxTokens caps the completion length.
	MaxTokens int

	// Temperature in [0,1]; zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema describes the JSON shape the model must produce.
type Schema struct {
	// Name is kebab-case, e.g. "skill-quiz". Anthropic sees it as a tool
	// name, OpenAI as the response-format name.
	Name string

	// Description guides the model toward the intended content.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the model's output plus accounting.
type Response struct {
	// Content is validated JSON when the request carried a Schema,
	// raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage is the token accounting for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
