package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tutoria-labs/lessonsmith-cli/internal/core/domain"
)

var (
	rankGrade    string
	rankSubjects []string
	rankJSON     bool
	rankExplain  bool
)

var rankCmd = &cobra.Command{
	Use:   "rank [topic]",
	Short: "Rank reference documents against a lesson request",
	Long: `Scores every corpus document against the requested topic, grade, and
subjects, and prints the top matches with their relevance scores.
An empty result means no document cleared the relevance floors.`,
	Args: cobra.ExactArgs(1),
	RunE: runRank,
}

func init() {
	rankCmd.Flags().StringVarP(&rankGrade, "grade", "g", "", "target grade (kindergarten or 1-6)")
	rankCmd.Flags().StringSliceVarP(&rankSubjects, "subject", "s", nil, "subject filter (repeatable)")
	rankCmd.Flags().BoolVar(&rankJSON, "json", false, "output results as JSON")
	rankCmd.Flags().BoolVar(&rankExplain, "explain", false, "show per-document sub-scores")
	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	if rankingService == nil {
		return errors.New("ranking service not configured")
	}
	if rankGrade == "" {
		return errors.New("--grade is required")
	}

	req := domain.LessonRequest{
		Topic:    args[0],
		Grade:    rankGrade,
		Subjects: rankSubjects,
	}

	result, err := rankingService.Rank(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("ranking failed: %w", err)
	}

	if rankJSON {
		return outputRankJSON(cmd, result)
	}

	return outputRankTable(cmd, result)
}

func outputRankJSON(cmd *cobra.Command, result domain.RankingResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputRankTable(cmd *cobra.Command, result domain.RankingResult) error {
	if result.IsEmpty() {
		cmd.Println("No references matched.")
		return nil
	}

	cmd.Printf("References (aggregate relevance %.3f):\n", result.AggregateRelevance)
	cmd.Println()
	for i, scored := range result.Documents {
		doc := scored.Document
		cmd.Printf("  [%d] #%d %s (%.2f)\n", i+1, doc.ID, doc.SubjectCategory, scored.TotalScore)
		cmd.Printf("      Grades: %s\n", strings.Join(doc.ApplicableGrades, ", "))
		if doc.SourceCitation != "" {
			cmd.Printf("      Source: %s\n", doc.SourceCitation)
		}
		if rankExplain {
			cmd.Printf("      subject=%.2f theme=%.2f grade=%.2f\n",
				scored.SubjectScore, scored.ThemeScore, scored.GradeScore)
		}
		cmd.Println()
	}

	return nil
}
