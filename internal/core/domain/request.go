package domain

import "strings"

// GradeKindergarten is the non-numeric lowest grade label.
// It is treated as adjacent to grade "1" during grade scoring.
const GradeKindergarten = "kindergarten"

// LessonRequest describes what the caller wants generated.
// Fields arrive pre-validated for non-emptiness by the surrounding
// application; an empty Subjects list is legal and means "no filter".
type LessonRequest struct {
	// Topic is the free-text theme of the request (e.g. "forest animals").
	Topic string

	// Grade is the target grade label ("kindergarten" or "1".."6").
	Grade string

	// Subjects optionally restricts results to broad subject areas.
	Subjects []string

	// Notes carries optional free-form guidance passed through to the
	// generation prompt. Never scored.
	Notes string
}

// Normalised returns a copy with topic, grade, and subjects lower-cased
// and whitespace-trimmed, ready for lexical matching.
func (r LessonRequest) Normalised() LessonRequest {
	out := LessonRequest{
		Topic: strings.ToLower(strings.TrimSpace(r.Topic)),
		Grade: strings.ToLower(strings.TrimSpace(r.Grade)),
		Notes: strings.TrimSpace(r.Notes),
	}
	for _, s := range r.Subjects {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out.Subjects = append(out.Subjects, s)
		}
	}
	return out
}
