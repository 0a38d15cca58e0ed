package providers

import (
	"context"
	"fmt"

	"github.com/Sushil2209/AI--Powered-code-review-Assistant/internal/schema"
)

// Request contains one prompt sent to an LLM along with the response
// contract the model must satisfy.
type Request struct {
	SystemPrompt string
	UserPrompt   string
	Schema       *schema.Object
	MaxTokens    int
	Temperature  float64
}

// Response contains the raw response from an LLM. Content is untrusted
// text; the caller must validate it against the contract.
type Response struct {
	Content    string
	TokensUsed int
}

// Client is the model invocation boundary.
type Client interface {
	Generate(ctx context.Context, req Request) (Response, error)
	Name() string
}

// New creates a provider client by name.
func New(ctx context.Context, provider, model string) (Client, error) {
	switch provider {
	case "gemini", "google":
		return NewGemini(ctx, model)
	case "anthropic":
		return NewAnthropic(model)
	case "openai":
		return NewOpenAI(model)
	case "ollama", "lmstudio":
		return NewOllama(model)
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}
