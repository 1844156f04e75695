package oreum

import "context"

// Model is the generative-model service the gateway talks to.
// Implementations are bound to one credential at construction.
type Model interface {
	// Generate performs a single stateless completion and returns its text.
	Generate(ctx context.Context, req GenerateRequest) (string, error)

	// NewChat starts a conversation seeded with systemPrompt. It must not
	// perform network I/O; turns are exchanged through Chat.Send.
	NewChat(ctx context.Context, systemPrompt string) (Chat, error)
}

// Chat is an append-only conversation held by the model service.
// Send appends the user turn, awaits one model turn and returns its text.
type Chat interface {
	Send(ctx context.Context, text string) (string, error)
}

// Connector builds a Model bound to credential.
type Connector func(ctx context.Context, credential string) (Model, error)

// GenerateRequest carries a one-shot prompt.
// The model uses its own defaults when fields are zero.
type GenerateRequest struct {
	Model  string // empty = provider default
	Prompt string
	JSON   bool // ask the service for a strict application/json response
}
