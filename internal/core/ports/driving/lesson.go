package driving

import (
	"context"

	"github.com/tutoria-labs/lessonsmith-cli/internal/core/domain"
)

// LessonService runs the full generate-validate-retry pipeline.
type LessonService interface {
	// Generate ranks the corpus, assembles reference context, and drives
	// the generation callable until an attempt clears the quality floor
	// or the attempt budget is exhausted. When every attempt falls short
	// but at least one produced text, the best attempt is returned with
	// its honest score and issue list.
	Generate(ctx context.Context, req domain.LessonRequest) (domain.GenerationResult, error)

	// BuildPrompt returns the exact prompt Generate would send for the
	// request, without invoking the LLM. Used by dry runs.
	BuildPrompt(ctx context.Context, req domain.LessonRequest) (string, error)
}

// ComplianceService scores generated text against the quality rubric.
type ComplianceService interface {
	// Validate scores the text. Pure and deterministic.
	Validate(text string) domain.ComplianceReport
}
