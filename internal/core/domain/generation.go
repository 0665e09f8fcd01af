package domain

// GenerationResult is the final output of the generate-validate-retry
// pipeline, handed back to the caller for presentation. When no attempt
// cleared the quality floor it carries the best attempt seen, annotated
// with its real score and issue list.
type GenerationResult struct {
	// RequestID uniquely identifies the generation run, for log correlation.
	RequestID string

	// Text is the generated lesson content.
	Text string

	// Score is the compliance score of Text, in [0,1].
	Score float64

	// Issues lists the rubric violations still present in Text.
	Issues []string

	// Attempts is the number of generation calls made.
	Attempts int

	// Accepted is true if Text cleared the quality floor, false when
	// the best-effort fallback was returned instead.
	Accepted bool

	// AggregateRelevance is the relevance of the reference context the
	// text was grounded on, in [0,1]. Zero when the fallback context
	// notice was used.
	AggregateRelevance float64

	// Model names the LLM that produced the text, when known.
	Model string
}
