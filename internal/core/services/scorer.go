package services

import (
	"strconv"
	"strings"

	"github.com/tutoria-labs/lessonsmith-cli/internal/core/domain"
)

// Contribution weights for theme-score hits.
const (
	keywordHitWeight    = 1.0
	bodyHitWeight       = 0.5
	conceptTagHitWeight = 0.7
	associatedHitWeight = 0.3
)

// Discrete grade proximity scores. Grade distance maps onto a fixed
// ladder rather than a continuous scale; the floor is never 0 so a
// one-off grade mismatch cannot erase an otherwise relevant document.
const (
	gradeExact    = 1.0
	gradeAdjacent = 0.8
	gradeNear     = 0.6
	gradeFar      = 0.4
	gradeFloor    = 0.2
)

// neutralSubjectScore is returned when the caller supplied no subject
// filters: absence of a filter must not penalise any document.
const neutralSubjectScore = 0.5

// mismatchSubjectScore keeps unmatched documents reachable through
// theme and grade signals alone.
const mismatchSubjectScore = 0.2

// Scorer computes per-document relevance sub-scores and combines them
// with the configured weights. All methods are pure; inputs are expected
// to be normalised (lower-case, trimmed) via LessonRequest.Normalised.
type Scorer struct {
	assoc    Associations
	settings domain.RankingSettings
}

// NewScorer creates a scorer with the given association table and settings.
// A nil association table disables related-term matching.
func NewScorer(assoc Associations, settings domain.RankingSettings) *Scorer {
	return &Scorer{assoc: assoc, settings: settings}
}

// Score computes all sub-scores and the weighted total for one document.
func (s *Scorer) Score(doc domain.ReferenceDocument, req domain.LessonRequest) domain.ScoredDocument {
	scored := domain.ScoredDocument{
		Document:     doc,
		SubjectScore: s.SubjectScore(doc, req.Subjects),
		ThemeScore:   s.ThemeScore(doc, req.Topic),
		GradeScore:   s.GradeScore(doc, req.Grade),
	}
	scored.TotalScore = clamp01(s.settings.SubjectWeight*scored.SubjectScore +
		s.settings.ThemeWeight*scored.ThemeScore +
		s.settings.GradeWeight*scored.GradeScore)
	return scored
}

// SubjectScore measures subject-filter affinity.
// No filters is neutral (0.5); a case-insensitive substring match in
// either direction scores 1.0; a mismatch scores 0.2, never 0.
func (s *Scorer) SubjectScore(doc domain.ReferenceDocument, subjects []string) float64 {
	if len(subjects) == 0 {
		return neutralSubjectScore
	}

	category := strings.ToLower(doc.SubjectCategory)
	for _, subject := range subjects {
		subject = strings.ToLower(subject)
		if subject == "" {
			continue
		}
		if strings.Contains(category, subject) || strings.Contains(subject, category) {
			return 1.0
		}
	}
	return mismatchSubjectScore
}

// ThemeScore measures lexical overlap between the topic and the
// document's keywords, body, and concept tags, plus reduced-weight hits
// through the association table. The accumulated weight is averaged over
// the hit count and clamped to [0,1]. This is the only sub-score that
// may be exactly 0 - it is the primary discriminator.
func (s *Scorer) ThemeScore(doc domain.ReferenceDocument, topic string) float64 {
	words := strings.Fields(strings.ToLower(topic))
	if len(words) == 0 {
		return 0
	}

	body := strings.ToLower(doc.Body)
	var weight float64
	var hits int

	for _, word := range words {
		for _, keyword := range doc.Keywords {
			if containsEither(strings.ToLower(keyword), word) {
				weight += keywordHitWeight
				hits++
			}
		}
		if strings.Contains(body, word) {
			weight += bodyHitWeight
			hits++
		}
		for _, tag := range doc.ConceptTags {
			if containsEither(strings.ToLower(tag), word) {
				weight += conceptTagHitWeight
				hits++
			}
		}

		for _, related := range s.assoc.Lookup(word) {
			for _, keyword := range doc.Keywords {
				if containsEither(strings.ToLower(keyword), related) {
					weight += associatedHitWeight
					hits++
				}
			}
			if strings.Contains(body, related) {
				weight += associatedHitWeight
				hits++
			}
			for _, tag := range doc.ConceptTags {
				if containsEither(strings.ToLower(tag), related) {
					weight += associatedHitWeight
					hits++
				}
			}
		}
	}

	if hits == 0 {
		return 0
	}
	return clamp01(weight / float64(hits))
}

// GradeScore measures grade proximity on the fixed ladder.
// Exact membership scores 1.0. The kindergarten label and grade "1" are
// mutually adjacent at 0.8. Numeric grades score by minimum absolute
// distance. Anything unparseable falls through to the 0.2 floor rather
// than erroring - a deliberate robustness choice.
func (s *Scorer) GradeScore(doc domain.ReferenceDocument, grade string) float64 {
	grade = strings.ToLower(strings.TrimSpace(grade))

	best := gradeFloor
	for _, g := range doc.ApplicableGrades {
		g = strings.ToLower(strings.TrimSpace(g))
		if g == grade {
			return gradeExact
		}
		if score := gradePairScore(grade, g); score > best {
			best = score
		}
	}
	return best
}

// gradePairScore scores a non-equal query/document grade pair.
func gradePairScore(query, docGrade string) float64 {
	// Kindergarten and grade 1 are adjacent in both directions.
	if (query == domain.GradeKindergarten && docGrade == "1") ||
		(query == "1" && docGrade == domain.GradeKindergarten) {
		return gradeAdjacent
	}

	q, err := strconv.Atoi(query)
	if err != nil {
		return gradeFloor
	}
	d, err := strconv.Atoi(docGrade)
	if err != nil {
		return gradeFloor
	}

	dist := q - d
	if dist < 0 {
		dist = -dist
	}
	switch {
	case dist <= 1:
		return gradeAdjacent
	case dist <= 2:
		return gradeNear
	case dist <= 3:
		return gradeFar
	default:
		return gradeFloor
	}
}

// containsEither reports whether either string contains the other.
func containsEither(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// clamp01 clamps v to [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
