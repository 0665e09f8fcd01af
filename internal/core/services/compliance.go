package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tutoria-labs/lessonsmith-cli/internal/core/domain"
	"github.com/tutoria-labs/lessonsmith-cli/internal/core/ports/driving"
)

// Ensure Validator implements the interface.
var _ driving.ComplianceService = (*Validator)(nil)

// Rubric penalties. Each violation subtracts a fixed amount from the
// starting score of 1.0; the final score is floored at 0.
const (
	missingTermPenalty  = 0.15
	vocabularyPenalty   = 0.1
	lengthPenalty       = 0.2
	structurePenalty    = 0.1
	defaultMinLength    = 200
	defaultMinVocabHits = 3
)

// Structural markers: a Markdown heading of one to three leading hashes,
// and a bullet or numbered list item.
var (
	headingPattern = regexp.MustCompile(`(?m)^#{1,3} `)
	listPattern    = regexp.MustCompile(`(?m)^\s*(?:[-*+] |\d+[.)] )`)
)

// Rubric defines the compliance checks applied to generated text.
// Term lists are fixed to one target language's educational vocabulary;
// the checks themselves are language-agnostic.
type Rubric struct {
	// RequiredTerms must each appear (case-insensitive substring) in
	// the text. Every miss costs missingTermPenalty and is named in
	// the issue list.
	RequiredTerms []string

	// VocabularyTerms measure domain vocabulary richness. Fewer than
	// MinVocabularyHits present costs vocabularyPenalty once.
	VocabularyTerms []string

	// MinVocabularyHits is the minimum number of vocabulary terms.
	MinVocabularyHits int

	// MinLength is the minimum character length of acceptable text.
	MinLength int
}

// DefaultRubric returns the built-in lesson-plan rubric.
func DefaultRubric() Rubric {
	return Rubric{
		RequiredTerms: []string{
			"objective", "materials", "activity", "assessment", "grade",
		},
		VocabularyTerms: []string{
			"learn", "students", "explore", "discuss", "practice",
			"create", "observe", "share", "review",
		},
		MinVocabularyHits: defaultMinVocabHits,
		MinLength:         defaultMinLength,
	}
}

// Validator scores generated text against a fixed compliance rubric.
// Validation is pure, deterministic, and synchronous.
type Validator struct {
	rubric Rubric
}

// NewValidator creates a validator with the given rubric.
func NewValidator(rubric Rubric) *Validator {
	return &Validator{rubric: rubric}
}

// Validate scores the text. The score starts at 1.0 and loses a fixed
// penalty per violation; adding violations to a text can never raise
// its score.
func (v *Validator) Validate(text string) domain.ComplianceReport {
	lower := strings.ToLower(text)
	score := 1.0
	var issues []string

	missing := 0
	for _, term := range v.rubric.RequiredTerms {
		if !strings.Contains(lower, strings.ToLower(term)) {
			score -= missingTermPenalty
			issues = append(issues, fmt.Sprintf("missing required term %q", term))
			missing++
		}
	}

	vocabHits := 0
	for _, term := range v.rubric.VocabularyTerms {
		if strings.Contains(lower, strings.ToLower(term)) {
			vocabHits++
		}
	}
	if vocabHits < v.rubric.MinVocabularyHits {
		score -= vocabularyPenalty
		issues = append(issues, fmt.Sprintf(
			"limited domain vocabulary: %d of %d expected terms present (minimum %d)",
			vocabHits, len(v.rubric.VocabularyTerms), v.rubric.MinVocabularyHits))
	}

	if len(text) < v.rubric.MinLength {
		score -= lengthPenalty
		issues = append(issues, fmt.Sprintf(
			"text too short: %d characters, %d required", len(text), v.rubric.MinLength))
	}

	hasHeading := headingPattern.MatchString(text)
	hasList := listPattern.MatchString(text)
	if !hasHeading || !hasList {
		score -= structurePenalty
		issues = append(issues, "missing structural markers: expected at least one heading and one list")
	}

	if score < 0 {
		score = 0
	}

	return domain.ComplianceReport{
		Score:                 score,
		Issues:                issues,
		MeetsRequiredElements: missing == 0,
	}
}
