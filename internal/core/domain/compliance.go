package domain

// ComplianceReport is the outcome of scoring a generated text against the
// quality rubric. One report is produced per generation attempt.
type ComplianceReport struct {
	// Score is the rubric score in [0,1]. Starts at 1.0 and loses a
	// fixed penalty per violation, floored at 0.
	Score float64

	// Issues lists human-readable rubric violations in the order they
	// were detected. Empty for a fully compliant text.
	Issues []string

	// MeetsRequiredElements is true iff every mandatory rubric term
	// appears in the text.
	MeetsRequiredElements bool
}

// IsAcceptable returns true if the report clears the given quality floor
// and all required elements are present.
func (r ComplianceReport) IsAcceptable(minScore float64) bool {
	return r.Score >= minScore && r.MeetsRequiredElements
}
