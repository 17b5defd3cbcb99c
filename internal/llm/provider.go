package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single abstraction the analysis stages talk to. A call is
// either free-text (Schema nil) or schema-constrained (Schema set), in which
// case the returned Content is JSON validated against that schema.
type Provider interface {
	// Generate sends one request to the model and returns its output.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request is a role-tagged message sequence plus generation settings.
type Request struct {
	// System sets the model's role and constraints for this call.
	System string

	// Messages is the conversation. Every call in ExamLens is single-turn,
	// so this is one user message in practice.
	Messages []Message

	// Schema, when set, makes this a schema-constrained call: the provider
	// uses its native structured-output mechanism and the response is
	// validated before being returned.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0. Zero means deterministic.
	Temperature float64
}

// Message is one entry in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role tags the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema declares the JSON shape a structured call must return.
type Schema struct {
	// Name identifies the schema to the provider (tool name for Anthropic,
	// schema name for OpenAI). Kebab-case, e.g. "question-evaluation".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response is the model's output for one request.
type Response struct {
	// Content is validated JSON for schema-constrained calls, or the raw
	// text for free-text calls.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Text returns the response content as a plain string. Free-text responses
// come back from providers as raw text, so no unquoting is needed.
func (r *Response) Text() string {
	return string(r.Content)
}
