package services

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/tutoria-labs/lessonsmith-cli/internal/core/domain"
	"github.com/tutoria-labs/lessonsmith-cli/internal/core/ports/driven"
	"github.com/tutoria-labs/lessonsmith-cli/internal/core/ports/driving"
	"github.com/tutoria-labs/lessonsmith-cli/internal/logger"
)

// Ensure RankingService implements the interface.
var _ driving.RankingService = (*RankingService)(nil)

// RankingService selects and scores reference documents for a request.
// Ranking is deterministic and idempotent: identical requests against
// the static corpus yield identical results.
type RankingService struct {
	corpus   driven.CorpusStore
	scorer   *Scorer
	settings domain.RankingSettings
}

// NewRankingService creates a ranking service over the given corpus.
// Pass nil assoc to disable related-term matching.
func NewRankingService(corpus driven.CorpusStore, assoc Associations, settings domain.RankingSettings) *RankingService {
	return &RankingService{
		corpus:   corpus,
		scorer:   NewScorer(assoc, settings),
		settings: settings,
	}
}

// Rank scores the full corpus against the request and returns the top
// documents. An empty result is valid: it means no document cleared the
// grade and relevance floors, and the caller is expected to fall back
// to generic guidance.
func (s *RankingService) Rank(ctx context.Context, req domain.LessonRequest) (domain.RankingResult, error) {
	logger.Section("Relevance Ranking")
	req = req.Normalised()
	logger.Debug("Topic: %q, grade: %q, subjects: %v", req.Topic, req.Grade, req.Subjects)

	docs, err := s.corpus.All(ctx)
	if err != nil {
		return domain.RankingResult{}, fmt.Errorf("load corpus: %w", err)
	}
	if len(docs) == 0 {
		return domain.RankingResult{}, domain.ErrCorpusEmpty
	}
	logger.Debug("Corpus size: %d documents", len(docs))

	// Grade pre-filter is a hard floor: a document wildly mismatched in
	// grade is excluded before subject and theme strength can rescue it.
	scored := make([]domain.ScoredDocument, 0, len(docs))
	for _, doc := range docs {
		if s.scorer.GradeScore(doc, req.Grade) < s.settings.GradeFloor {
			logger.Debug("Document %d excluded by grade floor", doc.ID)
			continue
		}
		sd := s.scorer.Score(doc, req)
		if sd.TotalScore < s.settings.MinTotalScore {
			logger.Debug("Document %d below relevance floor (%.3f)", doc.ID, sd.TotalScore)
			continue
		}
		scored = append(scored, sd)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].TotalScore != scored[j].TotalScore {
			return scored[i].TotalScore > scored[j].TotalScore
		}
		return scored[i].Document.ID < scored[j].Document.ID
	})

	if len(scored) > s.settings.MaxDocuments {
		scored = scored[:s.settings.MaxDocuments]
	}

	result := domain.RankingResult{
		Documents:          scored,
		AggregateRelevance: aggregateRelevance(scored),
	}
	logger.Info("Retained %d documents, aggregate relevance %.3f",
		len(result.Documents), result.AggregateRelevance)
	return result, nil
}

// aggregateRelevance is the mean total score rounded to three decimal
// places, or 0 for an empty set.
func aggregateRelevance(docs []domain.ScoredDocument) float64 {
	if len(docs) == 0 {
		return 0
	}
	var sum float64
	for _, d := range docs {
		sum += d.TotalScore
	}
	return math.Round(sum/float64(len(docs))*1000) / 1000
}
