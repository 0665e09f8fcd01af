package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tutoria-labs/lessonsmith-cli/internal/core/domain"
)

var validateJSON bool

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Score a lesson text against the quality rubric",
	Long: `Scores an existing lesson text against the same rubric used during
generation and lists any violations. Reads from the given file, or
from stdin when no file is provided.

Exits non-zero when the text misses a required structural element.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "output report as JSON")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if complianceService == nil {
		return errors.New("compliance service not configured")
	}

	text, err := readValidateInput(cmd, args)
	if err != nil {
		return err
	}

	report := complianceService.Validate(text)

	if validateJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		cmd.Println(string(data))
	} else {
		outputComplianceReport(cmd, report)
	}

	if !report.MeetsRequiredElements {
		return errors.New("text is missing required elements")
	}
	return nil
}

func readValidateInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func outputComplianceReport(cmd *cobra.Command, report domain.ComplianceReport) {
	cmd.Printf("Quality score: %.2f\n", report.Score)
	if len(report.Issues) == 0 {
		cmd.Println("No issues found.")
		return
	}
	cmd.Println("Issues:")
	for _, issue := range report.Issues {
		cmd.Printf("  - %s\n", issue)
	}
}
