// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package quality

// defaultBiasedWords lists promotional or superlative terms in English,
// Arabic and French. Matches are reported in this order.
var defaultBiasedWords = []string{
	"best", "greatest", "most famous", "amazing", "unique",
	"الأفضل", "الأعظم", "الأشهر", "الرائع",
	"le meilleur", "le plus célèbre", "incroyable",
}

// defaultMediaMarkers open a file or image link in wikitext. The last one is
// the Arabic-wiki namespace alias for File.
var defaultMediaMarkers = []string{"[[File:", "[[Image:", "[[ملف:"}

// Rules holds the thresholds and term lists the heuristics are evaluated
// against. A Rules value is never mutated after construction; the With
// methods return modified copies.
type Rules struct {
	MinWords          int
	MinSectionMarkers int
	MinReferences     int

	SectionMarker   string
	ReferenceMarker string

	mediaMarkers []string
	biasedWords  []string
}

// DefaultRules returns the built-in rule set.
func DefaultRules() Rules {
	return Rules{
		MinWords:          3000,
		MinSectionMarkers: 10,
		MinReferences:     20,
		SectionMarker:     "==",
		ReferenceMarker:   "<ref",
		mediaMarkers:      append([]string(nil), defaultMediaMarkers...),
		biasedWords:       append([]string(nil), defaultBiasedWords...),
	}
}

// WithBiasedWords returns a copy of r using words as the promotional term
// list. An empty list keeps the current one.
func (r Rules) WithBiasedWords(words []string) Rules {
	if len(words) == 0 {
		return r
	}
	r.biasedWords = append([]string(nil), words...)
	return r
}

// WithMediaMarkers returns a copy of r using markers to detect media.
func (r Rules) WithMediaMarkers(markers []string) Rules {
	if len(markers) == 0 {
		return r
	}
	r.mediaMarkers = append([]string(nil), markers...)
	return r
}
