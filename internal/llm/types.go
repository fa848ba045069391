package llm

import "context"

type Config struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

type Message struct {
	Role    string // "user" or "assistant"
	Content string
}

// LLM is a text-completion capability. An empty API key constructs fine;
// the call fails at request time instead.
type LLM interface {
	Chat(ctx context.Context, systemPrompt string, messages []Message) (string, error)
}
