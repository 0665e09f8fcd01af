package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidDocument indicates a reference document violates a corpus
	// invariant (no applicable grades, or neither keywords nor body).
	ErrInvalidDocument = errors.New("invalid reference document")

	// ErrCorpusEmpty indicates the reference corpus holds no documents.
	ErrCorpusEmpty = errors.New("reference corpus is empty")

	// ErrLLMUnavailable indicates the LLM service is not configured.
	// Generation is disabled; ranking and validation still work.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrGenerationFailed indicates the generation service failed on
	// every attempt without producing any text. This is a transport
	// failure, distinct from a quality shortfall.
	ErrGenerationFailed = errors.New("generation failed")

	// ErrQualityUnattainable indicates no attempt produced any text at
	// all and no transport error was surfaced. Degenerate by
	// construction, but reported distinctly so callers can message it
	// differently from a plain service error.
	ErrQualityUnattainable = errors.New("quality unattainable")
)
