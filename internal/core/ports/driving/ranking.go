package driving

import (
	"context"

	"github.com/tutoria-labs/lessonsmith-cli/internal/core/domain"
)

// RankingService selects and scores reference documents against a request.
type RankingService interface {
	// Rank scores the full corpus against the request and returns the
	// top documents. An empty result is valid and means no document
	// cleared the relevance floors.
	Rank(ctx context.Context, req domain.LessonRequest) (domain.RankingResult, error)
}
