package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tutoria-labs/lessonsmith-cli/internal/core/domain"
	"github.com/tutoria-labs/lessonsmith-cli/internal/core/ports/driven"
	"github.com/tutoria-labs/lessonsmith-cli/internal/core/ports/driving"
	"github.com/tutoria-labs/lessonsmith-cli/internal/logger"
)

// Ensure LessonService implements the interface.
var _ driving.LessonService = (*LessonService)(nil)

// Generation parameters for lesson content.
const (
	lessonMaxTokens   = 1500
	lessonTemperature = 0.7
)

// defaultLessonPrompt is the embedded lesson template, used when no
// prompt store is configured. Placeholders: topic, grade, subjects,
// notes, assembled reference context.
const defaultLessonPrompt = `Write a lesson plan about %q for grade %s (%s).
%s
Structure the plan in Markdown with headings and at least one list.
State the learning objective, required materials, a main activity, and how
the lesson is assessed for the grade level.

Reference material:
%s`

// defaultLessonSystemPrompt frames the generation task for the model.
const defaultLessonSystemPrompt = `You are an experienced curriculum writer. ` +
	`You produce complete, age-appropriate lesson plans grounded in the reference ` +
	`material you are given, and you never invent citations.`

// attemptRecord tracks the best-scoring generation attempt seen so far.
// It is call-local state, owned exclusively by one Generate invocation.
type attemptRecord struct {
	text   string
	score  float64
	issues []string
}

// LessonService orchestrates the generate-validate-retry pipeline:
// rank references, assemble context, build the prompt once, then drive
// the LLM until an attempt clears the quality floor or the attempt
// budget is exhausted. Attempts are strictly sequential - each one is a
// paid generative call, never multiplied by speculative parallelism.
type LessonService struct {
	ranking     driving.RankingService
	validator   driving.ComplianceService
	llm         driven.LLMService
	promptStore driven.PromptStore
	settings    domain.RetrySettings
}

// NewLessonService creates a lesson service.
// The llm parameter is optional (can be nil); attach one later with
// SetLLM before calling Generate.
func NewLessonService(
	ranking driving.RankingService,
	validator driving.ComplianceService,
	llm driven.LLMService,
	settings domain.RetrySettings,
) *LessonService {
	return &LessonService{
		ranking:   ranking,
		validator: validator,
		llm:       llm,
		settings:  settings,
	}
}

// SetPromptStore sets the prompt store for loading customisable prompts.
// If not set, the service uses hardcoded default prompts.
func (s *LessonService) SetPromptStore(store driven.PromptStore) {
	s.promptStore = store
}

// SetLLM attaches the generation service. Callers that only need
// BuildPrompt can leave it unset.
func (s *LessonService) SetLLM(llm driven.LLMService) {
	s.llm = llm
}

// BuildPrompt returns the exact prompt Generate would send, without
// invoking the LLM.
func (s *LessonService) BuildPrompt(ctx context.Context, req domain.LessonRequest) (string, error) {
	req = req.Normalised()
	result, err := s.ranking.Rank(ctx, req)
	if err != nil {
		return "", fmt.Errorf("rank references: %w", err)
	}
	return s.buildPrompt(req, AssembleContext(result, req)), nil
}

// Generate runs the full pipeline for one request.
func (s *LessonService) Generate(ctx context.Context, req domain.LessonRequest) (domain.GenerationResult, error) {
	if s.llm == nil {
		return domain.GenerationResult{}, domain.ErrLLMUnavailable
	}

	requestID := uuid.NewString()
	logger.Section("Lesson Generation")
	logger.Debug("Request %s: topic %q, grade %q", requestID, req.Topic, req.Grade)

	req = req.Normalised()
	ranked, err := s.ranking.Rank(ctx, req)
	if err != nil {
		return domain.GenerationResult{}, fmt.Errorf("rank references: %w", err)
	}
	if ranked.IsEmpty() {
		logger.Warn("No reference documents cleared the relevance floors, using fallback guidance")
	}

	// The prompt is a deterministic function of the assembled context
	// and request fields. It is built once and never rebuilt per attempt.
	prompt := s.buildPrompt(req, AssembleContext(ranked, req))

	opts := driven.GenerateOptions{
		MaxTokens:   lessonMaxTokens,
		Temperature: lessonTemperature,
	}

	var best *attemptRecord
	for attempt := 1; attempt <= s.settings.MaxAttempts; attempt++ {
		logger.Debug("Request %s: attempt %d/%d", requestID, attempt, s.settings.MaxAttempts)

		text, err := s.llm.Generate(ctx, prompt, opts)
		if err != nil {
			logger.Warn("Request %s: attempt %d failed: %v", requestID, attempt, err)
			if attempt == s.settings.MaxAttempts {
				if best != nil {
					// An earlier attempt produced text; the tracked best
					// beats surfacing the transport failure.
					break
				}
				// Out of budget and no attempt ever produced text, so
				// surface the failure.
				return domain.GenerationResult{}, fmt.Errorf("%w: %w", domain.ErrGenerationFailed, err)
			}
			if err := s.wait(ctx); err != nil {
				return domain.GenerationResult{}, err
			}
			continue
		}

		report := s.validator.Validate(text)
		logger.Debug("Request %s: attempt %d scored %.2f (%d issues)",
			requestID, attempt, report.Score, len(report.Issues))

		if report.IsAcceptable(s.settings.MinQualityScore) {
			logger.Info("Request %s: accepted on attempt %d", requestID, attempt)
			return domain.GenerationResult{
				RequestID:          requestID,
				Text:               text,
				Score:              report.Score,
				Issues:             report.Issues,
				Attempts:           attempt,
				Accepted:           true,
				AggregateRelevance: ranked.AggregateRelevance,
				Model:              s.llm.ModelName(),
			}, nil
		}

		// Keep the first-seen best; replace only on strict improvement.
		if best == nil || report.Score > best.score {
			best = &attemptRecord{text: text, score: report.Score, issues: report.Issues}
		}

		if attempt < s.settings.MaxAttempts {
			if err := s.wait(ctx); err != nil {
				return domain.GenerationResult{}, err
			}
		}
	}

	if best != nil {
		// Best-effort fallback: sub-threshold content with an honest
		// score and issue list beats a hard failure.
		logger.Warn("Request %s: quality floor not reached, returning best attempt (%.2f)",
			requestID, best.score)
		return domain.GenerationResult{
			RequestID:          requestID,
			Text:               best.text,
			Score:              best.score,
			Issues:             best.issues,
			Attempts:           s.settings.MaxAttempts,
			Accepted:           false,
			AggregateRelevance: ranked.AggregateRelevance,
			Model:              s.llm.ModelName(),
		}, nil
	}

	// Unreachable through the normal flow: every failure path either
	// retried or propagated. Handled defensively with its own error kind
	// so callers can message it differently from a service outage.
	return domain.GenerationResult{}, domain.ErrQualityUnattainable
}

// wait sleeps for the fixed backoff, honouring context cancellation.
func (s *LessonService) wait(ctx context.Context) error {
	if s.settings.Backoff <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.settings.Backoff):
		return nil
	}
}

// buildPrompt renders the lesson prompt from the request and assembled
// reference context.
func (s *LessonService) buildPrompt(req domain.LessonRequest, assembled string) string {
	template := defaultLessonPrompt
	if s.promptStore != nil {
		if loaded, err := s.promptStore.Load(driven.PromptLesson); err == nil && loaded != "" {
			template = loaded
		}
	}

	subjects := "any subject"
	if len(req.Subjects) > 0 {
		subjects = strings.Join(req.Subjects, ", ")
	}
	notes := ""
	if req.Notes != "" {
		notes = "Caller notes: " + req.Notes + "\n"
	}

	system := defaultLessonSystemPrompt
	if s.promptStore != nil {
		if loaded, err := s.promptStore.Load(driven.PromptLessonSystem); err == nil && loaded != "" {
			system = loaded
		}
	}

	body := fmt.Sprintf(template, req.Topic, req.Grade, subjects, notes, assembled)
	return system + "\n\n" + body
}
