package mcp

import (
	"context"

	"github.com/tutoria-labs/lessonsmith-cli/internal/core/domain"
)

// mockRankingService is a mock implementation of driving.RankingService.
type mockRankingService struct {
	result domain.RankingResult
	err    error
}

func (m *mockRankingService) Rank(
	_ context.Context,
	_ domain.LessonRequest,
) (domain.RankingResult, error) {
	return m.result, m.err
}

// mockLessonService is a mock implementation of driving.LessonService.
type mockLessonService struct {
	result domain.GenerationResult
	prompt string
	err    error
}

func (m *mockLessonService) Generate(
	_ context.Context,
	_ domain.LessonRequest,
) (domain.GenerationResult, error) {
	return m.result, m.err
}

func (m *mockLessonService) BuildPrompt(_ context.Context, _ domain.LessonRequest) (string, error) {
	return m.prompt, m.err
}

// mockCorpusStore is a mock implementation of driven.CorpusStore.
type mockCorpusStore struct {
	docs []domain.ReferenceDocument
	doc  *domain.ReferenceDocument
	err  error
}

func (m *mockCorpusStore) All(_ context.Context) ([]domain.ReferenceDocument, error) {
	return m.docs, m.err
}

func (m *mockCorpusStore) Get(_ context.Context, _ int) (*domain.ReferenceDocument, error) {
	return m.doc, m.err
}

func (m *mockCorpusStore) Count(_ context.Context) (int, error) {
	return len(m.docs), m.err
}
