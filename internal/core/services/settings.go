package services

import (
	"fmt"
	"time"

	"github.com/tutoria-labs/lessonsmith-cli/internal/core/domain"
	"github.com/tutoria-labs/lessonsmith-cli/internal/core/ports/driven"
	"github.com/tutoria-labs/lessonsmith-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyLLMProvider = "llm.provider"
	keyLLMModel    = "llm.model"
	keyLLMBaseURL  = "llm.base_url"
	keyLLMAPIKey   = "llm.api_key"

	keyRankSubjectWeight = "ranking.subject_weight"
	keyRankThemeWeight   = "ranking.theme_weight"
	keyRankGradeWeight   = "ranking.grade_weight"
	keyRankGradeFloor    = "ranking.grade_floor"
	keyRankMinTotal      = "ranking.min_total_score"
	keyRankMaxDocuments  = "ranking.max_documents"

	keyRetryMaxAttempts = "retry.max_attempts"
	keyRetryMinQuality  = "retry.min_quality_score"
	keyRetryBackoff     = "retry.backoff"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	aiValidator driven.AIConfigValidator
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore, aiValidator driven.AIConfigValidator) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		aiValidator: aiValidator,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		LLM: domain.LLMSettings{
			Provider: s.getProvider(keyLLMProvider, defaults.LLM.Provider),
			Model:    s.getString(keyLLMModel, defaults.LLM.Model),
			BaseURL:  s.getString(keyLLMBaseURL, defaults.LLM.BaseURL),
			APIKey:   s.configStore.GetString(keyLLMAPIKey),
		},
		Ranking: domain.RankingSettings{
			SubjectWeight: s.getFloat(keyRankSubjectWeight, defaults.Ranking.SubjectWeight),
			ThemeWeight:   s.getFloat(keyRankThemeWeight, defaults.Ranking.ThemeWeight),
			GradeWeight:   s.getFloat(keyRankGradeWeight, defaults.Ranking.GradeWeight),
			GradeFloor:    s.getFloat(keyRankGradeFloor, defaults.Ranking.GradeFloor),
			MinTotalScore: s.getFloat(keyRankMinTotal, defaults.Ranking.MinTotalScore),
			MaxDocuments:  s.getInt(keyRankMaxDocuments, defaults.Ranking.MaxDocuments),
		},
		Retry: domain.RetrySettings{
			MaxAttempts:     s.getInt(keyRetryMaxAttempts, defaults.Retry.MaxAttempts),
			MinQualityScore: s.getFloat(keyRetryMinQuality, defaults.Retry.MinQualityScore),
			Backoff:         s.getDuration(keyRetryBackoff, defaults.Retry.Backoff),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	// Save LLM settings
	if err := s.configStore.Set(keyLLMProvider, settings.LLM.Provider.String()); err != nil {
		return fmt.Errorf("save llm provider: %w", err)
	}
	if err := s.configStore.Set(keyLLMModel, settings.LLM.Model); err != nil {
		return fmt.Errorf("save llm model: %w", err)
	}
	if err := s.configStore.Set(keyLLMBaseURL, settings.LLM.BaseURL); err != nil {
		return fmt.Errorf("save llm base_url: %w", err)
	}
	if settings.LLM.APIKey != "" {
		if err := s.configStore.Set(keyLLMAPIKey, settings.LLM.APIKey); err != nil {
			return fmt.Errorf("save llm api_key: %w", err)
		}
	}

	// Save ranking settings
	rankingKeys := map[string]any{
		keyRankSubjectWeight: settings.Ranking.SubjectWeight,
		keyRankThemeWeight:   settings.Ranking.ThemeWeight,
		keyRankGradeWeight:   settings.Ranking.GradeWeight,
		keyRankGradeFloor:    settings.Ranking.GradeFloor,
		keyRankMinTotal:      settings.Ranking.MinTotalScore,
		keyRankMaxDocuments:  settings.Ranking.MaxDocuments,
	}
	for key, val := range rankingKeys {
		if err := s.configStore.Set(key, val); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	}

	// Save retry settings
	if err := s.configStore.Set(keyRetryMaxAttempts, settings.Retry.MaxAttempts); err != nil {
		return fmt.Errorf("save retry max_attempts: %w", err)
	}
	if err := s.configStore.Set(keyRetryMinQuality, settings.Retry.MinQualityScore); err != nil {
		return fmt.Errorf("save retry min_quality_score: %w", err)
	}
	if err := s.configStore.Set(keyRetryBackoff, settings.Retry.Backoff.String()); err != nil {
		return fmt.Errorf("save retry backoff: %w", err)
	}

	return nil
}

// SetLLMProvider configures the LLM provider.
func (s *SettingsService) SetLLMProvider(provider domain.AIProvider, model, apiKey string) error {
	if !provider.IsValid() {
		return fmt.Errorf("invalid LLM provider: %s", provider)
	}

	// Validate API key if required
	if provider.RequiresAPIKey() && apiKey == "" {
		return fmt.Errorf("API key required for %s", provider)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.LLM.Provider = provider

	// Set model - use provided or default
	if model != "" {
		settings.LLM.Model = model
	} else {
		defaults := domain.DefaultLLMModels()
		if defaultModel, ok := defaults[provider]; ok {
			settings.LLM.Model = defaultModel
		}
	}

	// Set base URL based on provider type
	if provider.IsLocal() {
		// Local providers need a base URL
		if settings.LLM.BaseURL == "" {
			settings.LLM.BaseURL = "http://localhost:11434"
		}
	} else {
		// Cloud providers don't need a custom base URL
		settings.LLM.BaseURL = ""
	}

	// Set API key
	settings.LLM.APIKey = apiKey

	return s.Save(settings)
}

// Validate checks if current settings are internally consistent.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if !settings.LLM.Provider.IsValid() {
		return fmt.Errorf("invalid LLM provider: %s", settings.LLM.Provider)
	}

	r := settings.Ranking
	if r.SubjectWeight < 0 || r.ThemeWeight < 0 || r.GradeWeight < 0 {
		return fmt.Errorf("ranking weights must not be negative")
	}
	if r.GradeFloor < 0 || r.GradeFloor > 1 {
		return fmt.Errorf("grade floor must be in [0,1], got %g", r.GradeFloor)
	}
	if r.MinTotalScore < 0 || r.MinTotalScore > 1 {
		return fmt.Errorf("minimum total score must be in [0,1], got %g", r.MinTotalScore)
	}
	if r.MaxDocuments < 1 {
		return fmt.Errorf("max documents must be at least 1, got %d", r.MaxDocuments)
	}

	if settings.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry max attempts must be at least 1, got %d", settings.Retry.MaxAttempts)
	}
	if settings.Retry.MinQualityScore < 0 || settings.Retry.MinQualityScore > 1 {
		return fmt.Errorf("minimum quality score must be in [0,1], got %g", settings.Retry.MinQualityScore)
	}

	return nil
}

// ValidateLLMConfig validates the current LLM configuration by pinging the provider.
func (s *SettingsService) ValidateLLMConfig() error {
	if s.aiValidator == nil {
		return nil
	}
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return s.aiValidator.ValidateLLM(&settings.LLM)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}

func (s *SettingsService) getProvider(key string, defaultVal domain.AIProvider) domain.AIProvider {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	provider := domain.AIProvider(val)
	if !provider.IsValid() {
		return defaultVal
	}
	return provider
}
