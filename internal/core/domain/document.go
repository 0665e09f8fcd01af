package domain

// PedagogicalLevel describes how a reference document presents its material.
// It is informational only and does not participate in relevance scoring.
type PedagogicalLevel string

// Available pedagogical levels.
const (
	// LevelConcrete uses hands-on, tangible examples.
	LevelConcrete PedagogicalLevel = "concrete"

	// LevelAbstract uses conceptual, theory-first framing.
	LevelAbstract PedagogicalLevel = "abstract"

	// LevelMixed combines concrete and abstract presentation.
	LevelMixed PedagogicalLevel = "mixed"
)

// IsValid returns true if the pedagogical level is recognised.
func (l PedagogicalLevel) IsValid() bool {
	switch l {
	case LevelConcrete, LevelAbstract, LevelMixed:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (l PedagogicalLevel) String() string {
	return string(l)
}

// ReferenceDocument is an immutable record of curriculum reference content.
// Documents are loaded once at startup and never mutated afterwards.
type ReferenceDocument struct {
	// ID is the stable unique identifier for the document.
	ID int

	// SubjectCategory names the broad subject area (e.g. "Science").
	SubjectCategory string

	// ApplicableGrades lists the grade labels this document targets.
	// Mixes the non-numeric "kindergarten" label with numeric labels "1".."6".
	// Never empty.
	ApplicableGrades []string

	// Keywords are free-text terms signalling topical relevance.
	Keywords []string

	// Body is the reference passage injected into generation prompts.
	// Keywords and Body are never both empty.
	Body string

	// SourceCitation is a human-readable provenance string.
	// It is displayed verbatim and never parsed.
	SourceCitation string

	// SuggestedActivities are activity descriptions included verbatim
	// in assembled context.
	SuggestedActivities []string

	// ConceptTags are secondary topical terms, weighted differently
	// from Keywords during theme scoring.
	ConceptTags []string

	// PedagogicalLevel describes the presentation style. Informational only.
	PedagogicalLevel PedagogicalLevel

	// CrossLinks hints at related subject areas. Informational only.
	CrossLinks []string
}

// ScoredDocument pairs a reference document with its relevance sub-scores.
// Instances are transient: created during a single ranking call and
// discarded once the result is consumed.
type ScoredDocument struct {
	// Document is the scored reference document.
	Document ReferenceDocument

	// SubjectScore measures subject-filter affinity, in [0,1].
	SubjectScore float64

	// ThemeScore measures lexical topic overlap, in [0,1].
	// This is the only sub-score that may be exactly 0.
	ThemeScore float64

	// GradeScore measures grade proximity, in [0,1].
	GradeScore float64

	// TotalScore is the weighted combination of the sub-scores, in [0,1].
	TotalScore float64
}

// RankingResult is the outcome of ranking the corpus against a request.
// It is constructed once per request and consumed immediately; an empty
// document list is a valid outcome, not an error.
type RankingResult struct {
	// Documents holds at most four scored documents, sorted by
	// TotalScore descending with ID-ascending tie-break.
	Documents []ScoredDocument

	// AggregateRelevance is the mean TotalScore of the retained
	// documents rounded to three decimal places, or 0 when empty.
	AggregateRelevance float64
}

// IsEmpty returns true if no documents survived ranking.
func (r RankingResult) IsEmpty() bool {
	return len(r.Documents) == 0
}
