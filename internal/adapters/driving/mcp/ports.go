package mcp

import (
	"github.com/tutoria-labs/lessonsmith-cli/internal/core/ports/driven"
	"github.com/tutoria-labs/lessonsmith-cli/internal/core/ports/driving"
)

// Ports aggregates all port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Ranking scores reference documents against lesson requests.
	Ranking driving.RankingService

	// Lesson runs the generate-validate-retry pipeline.
	Lesson driving.LessonService

	// Corpus exposes the reference documents as resources.
	Corpus driven.CorpusStore
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Ranking == nil {
		return ErrMissingRankingService
	}
	// Lesson and Corpus are optional; their tools and resources degrade gracefully
	return nil
}
