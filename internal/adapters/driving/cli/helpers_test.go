package cli

import (
	"context"

	"github.com/tutoria-labs/lessonsmith-cli/internal/adapters/driven/ai"
	configmem "github.com/tutoria-labs/lessonsmith-cli/internal/adapters/driven/config/memory"
	"github.com/tutoria-labs/lessonsmith-cli/internal/adapters/driven/corpus/memory"
	"github.com/tutoria-labs/lessonsmith-cli/internal/core/ports/driven"
	"github.com/tutoria-labs/lessonsmith-cli/internal/core/services"
)

// compliantLesson clears every rubric check: required terms, vocabulary,
// length, heading, and list.
const compliantLesson = `# Forest Animals Lesson

Objective: students learn to identify common woodland animals and their
habitats through observation and discussion.

Materials: picture cards, chart paper, field guide.

Activity:
- Students explore animal picture cards in small groups.
- Groups discuss where each animal lives and share their reasoning.
- The class creates a habitat wall chart together.

Assessment: each student names two animals and their habitats, matched
to the grade level expectations. Review the chart as a class.`

// mockLLM is a driven.LLMService stub that always returns a compliant
// lesson text.
type mockLLM struct {
	text string
	err  error
}

func (m *mockLLM) Generate(_ context.Context, _ string, _ driven.GenerateOptions) (string, error) {
	return m.text, m.err
}

func (m *mockLLM) ModelName() string { return "mock-model" }

func (m *mockLLM) Ping(_ context.Context) error { return m.err }

func (m *mockLLM) Close() error { return nil }

// setupTestServices wires the command globals to in-memory services and
// returns a cleanup that restores the previous wiring.
func setupTestServices() func() {
	oldRanking := rankingService
	oldLesson := lessonService
	oldCompliance := complianceService
	oldSettings := settingsService
	oldCorpus := corpusStore
	oldLLM := llmService

	store, err := memory.NewSeededStore()
	if err != nil {
		panic(err)
	}

	settings := services.NewSettingsService(configmem.NewConfigStore(), ai.NewConfigValidator())
	appSettings, err := settings.Get()
	if err != nil {
		panic(err)
	}

	llm := &mockLLM{text: compliantLesson}

	corpusStore = store
	settingsService = settings
	rankingService = services.NewRankingService(store, services.DefaultAssociations(), appSettings.Ranking)
	complianceService = services.NewValidator(services.DefaultRubric())
	lessonService = services.NewLessonService(rankingService, complianceService, llm, appSettings.Retry)
	llmService = llm

	return func() {
		rankingService = oldRanking
		lessonService = oldLesson
		complianceService = oldCompliance
		settingsService = oldSettings
		corpusStore = oldCorpus
		llmService = oldLLM
	}
}
