package domain

import "time"

const unknownDescription = "Unknown"

// AIProvider identifies an LLM service provider.
type AIProvider string

// Available AI providers.
const (
	// AIProviderOllama is a local Ollama instance.
	AIProviderOllama AIProvider = "ollama"

	// AIProviderOpenAI is the OpenAI cloud API.
	AIProviderOpenAI AIProvider = "openai"

	// AIProviderAnthropic is the Anthropic cloud API.
	AIProviderAnthropic AIProvider = "anthropic"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderOllama, AIProviderOpenAI, AIProviderAnthropic:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p == AIProviderOpenAI || p == AIProviderAnthropic
}

// IsLocal returns true if this provider runs locally.
func (p AIProvider) IsLocal() bool {
	return p == AIProviderOllama
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderOllama:
		return "Ollama (local)"
	case AIProviderOpenAI:
		return "OpenAI (cloud)"
	case AIProviderAnthropic:
		return "Anthropic (cloud)"
	default:
		return unknownDescription
	}
}

// AllLLMProviders returns the providers that can serve lesson generation.
func AllLLMProviders() []AIProvider {
	return []AIProvider{
		AIProviderOllama,
		AIProviderOpenAI,
		AIProviderAnthropic,
	}
}

// DefaultLLMModels maps each provider to a sensible default model.
func DefaultLLMModels() map[AIProvider]string {
	return map[AIProvider]string{
		AIProviderOllama:    "llama3.2",
		AIProviderOpenAI:    "gpt-4o-mini",
		AIProviderAnthropic: "claude-3-5-sonnet-latest",
	}
}

// LLMSettings holds LLM provider configuration.
type LLMSettings struct {
	// Provider is the LLM service provider.
	Provider AIProvider

	// Model is the LLM model name.
	Model string

	// BaseURL is the API endpoint (for Ollama).
	BaseURL string

	// APIKey is the API key (for OpenAI/Anthropic).
	APIKey string
}

// IsConfigured returns true if the LLM provider is set up.
func (l LLMSettings) IsConfigured() bool {
	if !l.Provider.IsValid() {
		return false
	}
	if l.Provider.RequiresAPIKey() && l.APIKey == "" {
		return false
	}
	return true
}

// RankingSettings holds the tunable thresholds and weights of the
// relevance ranking engine. The defaults are the reference values; they
// are configuration, not a load-bearing contract.
type RankingSettings struct {
	// SubjectWeight scales the subject sub-score in the total.
	SubjectWeight float64

	// ThemeWeight scales the theme sub-score in the total.
	ThemeWeight float64

	// GradeWeight scales the grade sub-score in the total.
	GradeWeight float64

	// GradeFloor excludes documents whose grade score falls below it
	// before any other scoring happens.
	GradeFloor float64

	// MinTotalScore excludes documents whose combined score falls
	// below it, preventing barely-related filler.
	MinTotalScore float64

	// MaxDocuments caps the number of retained documents.
	MaxDocuments int
}

// DefaultRankingSettings returns the reference ranking configuration.
func DefaultRankingSettings() RankingSettings {
	return RankingSettings{
		SubjectWeight: 0.4,
		ThemeWeight:   0.4,
		GradeWeight:   0.2,
		GradeFloor:    0.4,
		MinTotalScore: 0.3,
		MaxDocuments:  4,
	}
}

// RetrySettings holds the generation retry policy.
type RetrySettings struct {
	// MaxAttempts bounds the number of generation calls per request.
	MaxAttempts int

	// MinQualityScore is the compliance score a text must reach,
	// together with all required elements, to be accepted.
	MinQualityScore float64

	// Backoff is the fixed delay between attempts.
	Backoff time.Duration
}

// DefaultRetrySettings returns the reference retry policy.
func DefaultRetrySettings() RetrySettings {
	return RetrySettings{
		MaxAttempts:     3,
		MinQualityScore: 0.6,
		Backoff:         2 * time.Second,
	}
}

// AppSettings aggregates all configurable application settings.
type AppSettings struct {
	// LLM holds the generation provider configuration.
	LLM LLMSettings

	// Ranking holds the relevance ranking thresholds and weights.
	Ranking RankingSettings

	// Retry holds the generation retry policy.
	Retry RetrySettings
}

// DefaultAppSettings returns settings with all defaults applied.
// The default LLM provider is Ollama so the tool works without an
// API key out of the box.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		LLM: LLMSettings{
			Provider: AIProviderOllama,
			Model:    DefaultLLMModels()[AIProviderOllama],
			BaseURL:  "http://localhost:11434",
		},
		Ranking: DefaultRankingSettings(),
		Retry:   DefaultRetrySettings(),
	}
}
