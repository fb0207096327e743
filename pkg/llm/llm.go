package llm

import "context"

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
// It intentionally hides concrete providers to preserve dependency direction.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	// Configured reports whether the model can be called at all (credential
	// present). Callers that must fail closed check this before building a request.
	Configured() bool
}
