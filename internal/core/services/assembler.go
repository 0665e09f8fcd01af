package services

import (
	"fmt"
	"strings"

	"github.com/tutoria-labs/lessonsmith-cli/internal/core/domain"
)

// AssembleContext renders ranked reference documents into a single text
// block for inclusion in a generation prompt. Pure: its only failure mode
// is propagating the shape of its input.
//
// An empty ranking result produces a fallback notice naming the request
// fields and directing the model to rely on generic curriculum guidance
// instead of a specific citation.
func AssembleContext(result domain.RankingResult, req domain.LessonRequest) string {
	if result.IsEmpty() {
		return fallbackNotice(req)
	}

	blocks := make([]string, 0, len(result.Documents))
	for _, sd := range result.Documents {
		doc := sd.Document
		var b strings.Builder
		fmt.Fprintf(&b, "Subject: %s\n", doc.SubjectCategory)
		fmt.Fprintf(&b, "Grades: %s\n", strings.Join(doc.ApplicableGrades, ", "))
		fmt.Fprintf(&b, "Reference: %s\n", doc.Body)
		if len(doc.SuggestedActivities) > 0 {
			fmt.Fprintf(&b, "Suggested activities: %s\n", strings.Join(doc.SuggestedActivities, ", "))
		}
		fmt.Fprintf(&b, "Source: %s", doc.SourceCitation)
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}

// fallbackNotice is emitted when no reference document cleared the
// relevance floors.
func fallbackNotice(req domain.LessonRequest) string {
	subjects := "any subject"
	if len(req.Subjects) > 0 {
		subjects = strings.Join(req.Subjects, ", ")
	}
	return fmt.Sprintf(
		"No specific reference material was found for topic %q (grade %s, %s). "+
			"Rely on generally accepted curriculum guidelines for this grade level "+
			"instead of citing a specific source.",
		req.Topic, req.Grade, subjects)
}
