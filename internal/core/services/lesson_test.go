package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutoria-labs/lessonsmith-cli/internal/core/domain"
	"github.com/tutoria-labs/lessonsmith-cli/internal/core/ports/driven"
)

// mockLLMService implements driven.LLMService for testing.
type mockLLMService struct {
	text    string
	err     error
	calls   int
	prompts []string
}

func (m *mockLLMService) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	m.calls++
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}

func (m *mockLLMService) ModelName() string { return "mock-model" }

func (m *mockLLMService) Ping(_ context.Context) error { return nil }

func (m *mockLLMService) Close() error { return nil }

// faultyLLMService returns text for the first succeedFor calls, then
// fails every call after them.
type faultyLLMService struct {
	text       string
	err        error
	succeedFor int
	calls      int
}

func (m *faultyLLMService) Generate(_ context.Context, _ string, _ driven.GenerateOptions) (string, error) {
	m.calls++
	if m.calls > m.succeedFor {
		return "", m.err
	}
	return m.text, nil
}

func (m *faultyLLMService) ModelName() string { return "mock-model" }

func (m *faultyLLMService) Ping(_ context.Context) error { return nil }

func (m *faultyLLMService) Close() error { return nil }

// lowQualityText misses every rubric element, so it can never clear the
// quality floor.
const lowQualityText = "Some vague text without any of the rubric elements in it."

func testRetrySettings() domain.RetrySettings {
	s := domain.DefaultRetrySettings()
	s.Backoff = 0
	return s
}

func newLessonService(t *testing.T, llm driven.LLMService) *LessonService {
	t.Helper()
	return NewLessonService(
		newSeededRanking(t),
		NewValidator(DefaultRubric()),
		llm,
		testRetrySettings(),
	)
}

func forestRequest() domain.LessonRequest {
	return domain.LessonRequest{
		Topic:    "forest animals",
		Grade:    "2",
		Subjects: []string{"Science"},
	}
}

func TestLessonService_Generate_AcceptsFirstCompliantAttempt(t *testing.T) {
	llm := &mockLLMService{text: compliantLesson}
	svc := newLessonService(t, llm)

	result, err := svc.Generate(context.Background(), forestRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, llm.calls, "a compliant first attempt must not be retried")
	assert.True(t, result.Accepted)
	assert.Equal(t, 1, result.Attempts)
	assert.Equal(t, compliantLesson, result.Text)
	assert.InDelta(t, 1.0, result.Score, 1e-9)
	assert.Empty(t, result.Issues)
	assert.Equal(t, "mock-model", result.Model)
	assert.NotEmpty(t, result.RequestID)
	assert.Greater(t, result.AggregateRelevance, 0.0)
}

func TestLessonService_Generate_ExhaustsBudgetAndFallsBack(t *testing.T) {
	llm := &mockLLMService{text: lowQualityText}
	svc := newLessonService(t, llm)

	result, err := svc.Generate(context.Background(), forestRequest())
	require.NoError(t, err, "a quality shortfall with text in hand is never an error")

	assert.Equal(t, 3, llm.calls)
	assert.Equal(t, 3, result.Attempts)
	assert.False(t, result.Accepted)
	assert.Equal(t, lowQualityText, result.Text)
	assert.Less(t, result.Score, 0.6)
	assert.NotEmpty(t, result.Issues)
}

func TestLessonService_Generate_TransportFailurePropagates(t *testing.T) {
	llm := &mockLLMService{err: errors.New("connection refused")}
	svc := newLessonService(t, llm)

	_, err := svc.Generate(context.Background(), forestRequest())

	assert.Equal(t, 3, llm.calls, "every budgeted attempt is spent before giving up")
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
	assert.NotErrorIs(t, err, domain.ErrQualityUnattainable)
}

func TestLessonService_Generate_FinalAttemptFailureKeepsBestText(t *testing.T) {
	// Attempt 1 yields sub-threshold text, attempts 2 and 3 fail at the
	// transport. The tracked best attempt wins over the late failure.
	llm := &faultyLLMService{
		text:       lowQualityText,
		err:        errors.New("connection refused"),
		succeedFor: 1,
	}
	svc := newLessonService(t, llm)

	result, err := svc.Generate(context.Background(), forestRequest())
	require.NoError(t, err, "text from an earlier attempt beats a late transport failure")

	assert.Equal(t, 3, llm.calls, "every budgeted attempt is still spent")
	assert.Equal(t, 3, result.Attempts)
	assert.False(t, result.Accepted)
	assert.Equal(t, lowQualityText, result.Text)
	assert.NotEmpty(t, result.Issues)
}

func TestLessonService_Generate_NoLLMConfigured(t *testing.T) {
	svc := newLessonService(t, nil)

	_, err := svc.Generate(context.Background(), forestRequest())
	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
}

func TestLessonService_Generate_PromptBuiltOnce(t *testing.T) {
	llm := &mockLLMService{text: lowQualityText}
	svc := newLessonService(t, llm)

	_, err := svc.Generate(context.Background(), forestRequest())
	require.NoError(t, err)

	require.Len(t, llm.prompts, 3)
	assert.Equal(t, llm.prompts[0], llm.prompts[1])
	assert.Equal(t, llm.prompts[1], llm.prompts[2])
}

func TestLessonService_Generate_ContextCancelledDuringBackoff(t *testing.T) {
	llm := &mockLLMService{text: lowQualityText}
	settings := testRetrySettings()
	settings.Backoff = 50 * time.Millisecond
	svc := NewLessonService(newSeededRanking(t), NewValidator(DefaultRubric()), llm, settings)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Generate(ctx, forestRequest())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, llm.calls)
}

func TestLessonService_BuildPrompt(t *testing.T) {
	llm := &mockLLMService{text: compliantLesson}
	svc := newLessonService(t, llm)
	req := forestRequest()

	prompt, err := svc.BuildPrompt(context.Background(), req)
	require.NoError(t, err)

	assert.Contains(t, prompt, "forest animals")
	assert.Contains(t, prompt, "grade 2")
	assert.Contains(t, prompt, "science")
	// The top-ranked wildlife document's citation is part of the context.
	assert.Contains(t, prompt, "State Science Framework, Life Science strand, unit 3")

	// Generate sends exactly the prompt BuildPrompt reports.
	_, err = svc.Generate(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, llm.prompts, 1)
	assert.Equal(t, prompt, llm.prompts[0])
}

func TestLessonService_Generate_NotesFlowIntoPrompt(t *testing.T) {
	llm := &mockLLMService{text: compliantLesson}
	svc := newLessonService(t, llm)

	req := forestRequest()
	req.Notes = "focus on nocturnal species"

	_, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, llm.prompts, 1)
	assert.Contains(t, llm.prompts[0], "focus on nocturnal species")
}
