package driven

import (
	"context"

	"github.com/tutoria-labs/lessonsmith-cli/internal/core/domain"
)

// LLMService is the sole boundary to the external generative service.
// It takes one prompt and returns one generated text; everything else
// about the provider is an implementation detail.
//
// Implementations may include:
//   - OpenAI (GPT models)
//   - Anthropic (Claude)
//   - Ollama (local models)
//
// The service must be injectable so the retry controller can be tested
// against stub implementations.
type LLMService interface {
	// Generate produces text completion from a prompt.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName returns the name of the LLM model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// test request. Used at startup before committing to generation.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// AIConfigValidator validates AI provider configurations by reaching
// out to the provider. Used by the settings command before persisting.
type AIConfigValidator interface {
	// ValidateLLM validates an LLM configuration by pinging the provider.
	ValidateLLM(config *domain.LLMSettings) error
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64

	// StopWords are sequences that stop generation when encountered.
	StopWords []string
}
