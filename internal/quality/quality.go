// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package quality scores raw wikitext with five independent pass/fail
// heuristics and turns the result into a Report.
//
// Each heuristic awards its full points or nothing, and contributes exactly
// one finding: a strength when it passes, a weakness when it fails. The
// points sum to MaxScore, 90; the console report still reads "/ 100".
package quality

import (
	"strings"

	"github.com/pdiddy/wiki-quality/pkg/types"
)

// Point values per heuristic.
const (
	LengthPoints     = 20
	StructurePoints  = 20
	ReferencePoints  = 25
	MediaPoints      = 10
	NeutralityPoints = 15

	MaxScore = LengthPoints + StructurePoints + ReferencePoints + MediaPoints + NeutralityPoints
)

// Tier thresholds, inclusive lower bounds.
const (
	FeaturedThreshold  = 80
	NeedsWorkThreshold = 60
)

const promotionalPrefix = "Potential promotional language: "

// heuristic is one scoring rule. check reports whether the measured text
// passes and, on failure, the weakness to record.
type heuristic struct {
	points   int
	strength string
	check    func(sig types.Signals) (pass bool, weakness string)
}

// Scorer evaluates wikitext against a fixed Rules value. It holds no
// per-call state and is safe for concurrent use.
type Scorer struct {
	rules      Rules
	heuristics []heuristic
}

// NewScorer returns a Scorer for rules.
func NewScorer(rules Rules) *Scorer {
	return &Scorer{rules: rules, heuristics: buildHeuristics(rules)}
}

func buildHeuristics(r Rules) []heuristic {
	return []heuristic{
		{
			points:   LengthPoints,
			strength: "Sufficient article length",
			check: func(sig types.Signals) (bool, string) {
				return sig.WordCount >= r.MinWords, "Article is relatively short"
			},
		},
		{
			points:   StructurePoints,
			strength: "Well-structured with multiple sections",
			check: func(sig types.Signals) (bool, string) {
				return sig.SectionMarkers >= r.MinSectionMarkers, "Insufficient number of sections"
			},
		},
		{
			points:   ReferencePoints,
			strength: "Well-referenced with reliable sources",
			check: func(sig types.Signals) (bool, string) {
				return sig.References >= r.MinReferences, "Not enough references"
			},
		},
		{
			points:   MediaPoints,
			strength: "Includes illustrative media",
			check: func(sig types.Signals) (bool, string) {
				return sig.HasMedia, "No images or media found"
			},
		},
		{
			points:   NeutralityPoints,
			strength: "Neutral and encyclopedic tone",
			check: func(sig types.Signals) (bool, string) {
				terms := sig.BiasedTerms
				return len(terms) == 0, promotionalPrefix + strings.Join(terms, ", ")
			},
		},
	}
}

// Measure computes the raw signals for text under the scorer's rules.
func (s *Scorer) Measure(text string) types.Signals {
	r := s.rules
	return types.Signals{
		WordCount:      len(strings.Fields(text)),
		SectionMarkers: strings.Count(text, r.SectionMarker),
		References:     strings.Count(text, r.ReferenceMarker),
		HasMedia:       containsAny(text, r.mediaMarkers),
		BiasedTerms:    matchTerms(text, r.biasedWords),
	}
}

// Analyze scores text and returns the report for q. It performs no I/O and
// returns an identical Report for identical input.
func (s *Scorer) Analyze(q types.ArticleQuery, text string) types.Report {
	sig := s.Measure(text)

	rep := types.Report{
		Title:      q.Title,
		Language:   q.Language,
		Strengths:  []string{},
		Weaknesses: []string{},
		Signals:    sig,
	}
	for _, h := range s.heuristics {
		pass, weakness := h.check(sig)
		if pass {
			rep.Score += h.points
			rep.Strengths = append(rep.Strengths, h.strength)
		} else {
			rep.Weaknesses = append(rep.Weaknesses, weakness)
		}
	}
	rep.Tier = TierFor(rep.Score)
	return rep
}

// TierFor maps a score onto its recommendation tier.
func TierFor(score int) types.Tier {
	switch {
	case score >= FeaturedThreshold:
		return types.TierFeaturedCandidate
	case score >= NeedsWorkThreshold:
		return types.TierNeedsImprovement
	default:
		return types.TierNotReady
	}
}

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

// matchTerms returns every term found in text, case-insensitively, in the
// order of terms rather than the order of appearance.
func matchTerms(text string, terms []string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, t := range terms {
		if strings.Contains(lower, strings.ToLower(t)) {
			found = append(found, t)
		}
	}
	return found
}
