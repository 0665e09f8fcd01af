package services

// Associations maps common topic words to semantically related terms.
// Related-term hits contribute a reduced weight to the theme score,
// letting a topic like "animals" reach documents tagged "ecology" or
// "habitat" without any shared literal term.
//
// The table is injectable so it can be extended or localised without
// touching the scoring logic.
type Associations map[string][]string

// Lookup returns the related terms for a topic word, or nil.
func (a Associations) Lookup(word string) []string {
	if a == nil {
		return nil
	}
	return a[word]
}

// DefaultAssociations returns the built-in association table. Terms are
// lower-case; callers are expected to normalise topic words before lookup.
func DefaultAssociations() Associations {
	return Associations{
		"animals": {"nature", "biology", "ecology", "habitat", "species", "observation"},
		"space":   {"astronomy", "planets", "stars", "solar system", "orbit"},
		"plants":  {"botany", "seeds", "growth", "photosynthesis", "garden"},
		"weather": {"climate", "seasons", "temperature", "clouds", "rain"},
		"water":   {"ocean", "river", "cycle", "liquid", "conservation"},
		"numbers": {"counting", "arithmetic", "addition", "subtraction", "patterns"},
		"shapes":  {"geometry", "angles", "symmetry", "patterns"},
		"history": {"past", "timeline", "events", "culture", "heritage"},
		"music":   {"rhythm", "instruments", "melody", "sound", "singing"},
		"body":    {"health", "anatomy", "nutrition", "exercise", "senses"},
	}
}
