package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tutoria-labs/lessonsmith-cli/internal/core/domain"
)

var (
	generateGrade    string
	generateSubjects []string
	generateNotes    string
	generateJSON     bool
	generateDryRun   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [topic]",
	Short: "Generate a reference-grounded lesson plan",
	Long: `Ranks the reference corpus against the request, assembles the matched
references into the generation prompt, and drives the configured LLM
until an attempt passes the quality rubric or the attempt budget runs
out. When every attempt falls short, the best attempt is printed with
its honest score and outstanding issues.

Use --dry-run to print the prompt that would be sent without calling
the LLM.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateGrade, "grade", "g", "", "target grade (kindergarten or 1-6)")
	generateCmd.Flags().StringSliceVarP(&generateSubjects, "subject", "s", nil, "subject filter (repeatable)")
	generateCmd.Flags().StringVar(&generateNotes, "notes", "", "free-text notes passed to the prompt")
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "output result as JSON")
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "print the prompt without calling the LLM")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if lessonService == nil {
		return errors.New("lesson service not configured")
	}
	if generateGrade == "" {
		return errors.New("--grade is required")
	}

	req := domain.LessonRequest{
		Topic:    args[0],
		Grade:    generateGrade,
		Subjects: generateSubjects,
		Notes:    generateNotes,
	}

	if generateDryRun {
		prompt, err := lessonService.BuildPrompt(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("building prompt: %w", err)
		}
		cmd.Println(prompt)
		return nil
	}

	if err := attachLLM(); err != nil {
		return err
	}

	result, err := lessonService.Generate(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if generateJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	return outputGenerationResult(cmd, result)
}

func outputGenerationResult(cmd *cobra.Command, result domain.GenerationResult) error {
	cmd.Println(result.Text)
	cmd.Println()
	cmd.Printf("--- quality %.2f | attempts %d | relevance %.3f", result.Score, result.Attempts, result.AggregateRelevance)
	if result.Model != "" {
		cmd.Printf(" | model %s", result.Model)
	}
	cmd.Println(" ---")

	if !result.Accepted {
		cmd.Println("Warning: no attempt cleared the quality floor; showing the best attempt.")
		for _, issue := range result.Issues {
			cmd.Printf("  - %s\n", issue)
		}
	}

	return nil
}
