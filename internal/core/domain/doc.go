// Package domain defines the core business entities for Lessonsmith.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ReferenceDocument: An immutable curriculum reference record
//   - ScoredDocument: A reference document with relevance sub-scores
//   - RankingResult: The top-scored documents for one request
//   - ComplianceReport: The rubric score for one generated text
//   - GenerationResult: The final text handed back to the caller
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
