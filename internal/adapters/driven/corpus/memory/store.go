// Package memory provides an in-memory implementation of the corpus store.
// The corpus is validated and indexed once at construction and is
// immutable afterwards, so reads need no locking.
package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/tutoria-labs/lessonsmith-cli/internal/core/domain"
	"github.com/tutoria-labs/lessonsmith-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.CorpusStore = (*Store)(nil)

// Store is an in-memory, read-only corpus of reference documents.
type Store struct {
	docs []domain.ReferenceDocument
	byID map[int]int
}

// NewStore creates a corpus store from the given documents.
// Documents are validated against the corpus invariants and sorted by ID.
func NewStore(docs []domain.ReferenceDocument) (*Store, error) {
	if len(docs) == 0 {
		return nil, domain.ErrCorpusEmpty
	}

	sorted := make([]domain.ReferenceDocument, len(docs))
	copy(sorted, docs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	byID := make(map[int]int, len(sorted))
	for i, doc := range sorted {
		if err := validate(doc); err != nil {
			return nil, err
		}
		if _, ok := byID[doc.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate id %d", domain.ErrInvalidDocument, doc.ID)
		}
		byID[doc.ID] = i
	}

	return &Store{docs: sorted, byID: byID}, nil
}

// NewSeededStore creates a corpus store holding the embedded reference set.
func NewSeededStore() (*Store, error) {
	return NewStore(Seed())
}

// All returns every reference document, ordered by ID.
func (s *Store) All(_ context.Context) ([]domain.ReferenceDocument, error) {
	out := make([]domain.ReferenceDocument, len(s.docs))
	copy(out, s.docs)
	return out, nil
}

// Get retrieves a single document by ID.
func (s *Store) Get(_ context.Context, id int) (*domain.ReferenceDocument, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	doc := s.docs[i]
	return &doc, nil
}

// Count returns the number of documents in the corpus.
func (s *Store) Count(_ context.Context) (int, error) {
	return len(s.docs), nil
}

// validate enforces the corpus invariants: a document must carry at
// least one applicable grade, and must be matchable through keywords or
// body. A document with no way to match is a defect.
func validate(doc domain.ReferenceDocument) error {
	if len(doc.ApplicableGrades) == 0 {
		return fmt.Errorf("%w: document %d has no applicable grades", domain.ErrInvalidDocument, doc.ID)
	}
	if len(doc.Keywords) == 0 && doc.Body == "" {
		return fmt.Errorf("%w: document %d has neither keywords nor body", domain.ErrInvalidDocument, doc.ID)
	}
	return nil
}
