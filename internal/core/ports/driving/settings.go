package driving

import "github.com/tutoria-labs/lessonsmith-cli/internal/core/domain"

// SettingsService manages persisted application settings.
type SettingsService interface {
	// Get retrieves current application settings with defaults applied.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetLLMProvider configures the LLM provider.
	SetLLMProvider(provider domain.AIProvider, model, apiKey string) error

	// Validate checks if current settings are internally consistent.
	Validate() error

	// ValidateLLMConfig validates the current LLM configuration by
	// pinging the provider.
	ValidateLLMConfig() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
