// Package cli provides the command-line interface for Lessonsmith.
// Commands are thin adapters: they parse flags, call core services
// through driving ports, and format output.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tutoria-labs/lessonsmith-cli/internal/adapters/driven/ai"
	configfile "github.com/tutoria-labs/lessonsmith-cli/internal/adapters/driven/config/file"
	"github.com/tutoria-labs/lessonsmith-cli/internal/adapters/driven/corpus/memory"
	corpussqlite "github.com/tutoria-labs/lessonsmith-cli/internal/adapters/driven/corpus/sqlite"
	"github.com/tutoria-labs/lessonsmith-cli/internal/core/ports/driven"
	"github.com/tutoria-labs/lessonsmith-cli/internal/core/ports/driving"
	"github.com/tutoria-labs/lessonsmith-cli/internal/core/services"
	"github.com/tutoria-labs/lessonsmith-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services wired at startup and consumed by commands.
var (
	rankingService    driving.RankingService
	lessonService     driving.LessonService
	complianceService driving.ComplianceService
	settingsService   driving.SettingsService
	corpusStore       driven.CorpusStore
	llmService        driven.LLMService
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "lessonsmith",
	Short: "Reference-grounded lesson plan generation",
	Long: `Lessonsmith turns a lesson request into a generated lesson plan that is
grounded in a ranked set of curriculum reference documents and validated
against a quality rubric before it is accepted.`,
	SilenceUsage: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"enable verbose logging to stderr")
}

// Execute wires services and runs the root command.
// Returns the process exit code.
func Execute() int {
	if err := initServices(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeServices()

	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

// initServices builds the service graph behind the commands.
// The LLM service is created lazily by the generate command, so a
// missing provider configuration does not break ranking-only use.
func initServices() error {
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	settingsService = services.NewSettingsService(configStore, ai.NewConfigValidator())

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	// Prefer an imported SQLite corpus; fall back to the embedded seed set.
	corpusStore, err = openCorpus()
	if err != nil {
		return fmt.Errorf("opening corpus: %w", err)
	}

	promptStore, err := configfile.NewPromptStore("")
	if err != nil {
		return fmt.Errorf("opening prompt store: %w", err)
	}

	rankingService = services.NewRankingService(corpusStore, services.DefaultAssociations(), settings.Ranking)
	complianceService = services.NewValidator(services.DefaultRubric())

	lesson := services.NewLessonService(
		rankingService,
		complianceService,
		nil, // LLM attached on demand by the generate command
		settings.Retry,
	)
	lesson.SetPromptStore(promptStore)
	lessonService = lesson

	return nil
}

// openCorpus opens the SQLite corpus when one has been imported,
// otherwise serves the embedded seed corpus.
func openCorpus() (driven.CorpusStore, error) {
	store, err := corpussqlite.NewStore("")
	if err != nil {
		logger.Debug("sqlite corpus unavailable, using embedded seed: %v", err)
		return memory.NewSeededStore()
	}

	count, err := store.Count(context.Background())
	if err != nil || count == 0 {
		store.Close()
		return memory.NewSeededStore()
	}

	sqliteCorpus = store
	return store, nil
}

// sqliteCorpus holds the open SQLite store so closeServices can release it.
var sqliteCorpus *corpussqlite.Store

func closeServices() {
	if llmService != nil {
		llmService.Close()
	}
	if sqliteCorpus != nil {
		sqliteCorpus.Close()
	}
}

// attachLLM creates and validates the configured LLM service, and
// attaches it to the lesson service. Idempotent.
func attachLLM() error {
	if llmService != nil {
		return nil
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	svc, err := ai.CreateAndValidateLLMService(&settings.LLM)
	if err != nil {
		return err
	}
	if svc == nil {
		return fmt.Errorf("LLM provider not configured; run 'lessonsmith settings llm'")
	}

	llmService = svc
	if lesson, ok := lessonService.(*services.LessonService); ok {
		lesson.SetLLM(svc)
	}
	return nil
}
