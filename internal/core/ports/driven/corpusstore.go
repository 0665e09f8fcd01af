package driven

import (
	"context"

	"github.com/tutoria-labs/lessonsmith-cli/internal/core/domain"
)

// CorpusStore provides read-only access to the reference document corpus.
// The corpus is loaded once at startup and never mutated afterwards, so
// implementations need no write synchronisation beyond initial load.
type CorpusStore interface {
	// All returns every reference document in the corpus, ordered by ID.
	All(ctx context.Context) ([]domain.ReferenceDocument, error)

	// Get retrieves a single document by ID.
	// Returns domain.ErrNotFound if no document has that ID.
	Get(ctx context.Context, id int) (*domain.ReferenceDocument, error)

	// Count returns the number of documents in the corpus.
	Count(ctx context.Context) (int, error)
}
