// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for wiki-quality: the article
// query handed to the fetcher, and the report produced by the scorer.
package types

import "strings"

// DefaultLanguage is the wiki used when the caller leaves the language blank.
const DefaultLanguage = "en"

// ArticleQuery identifies one article on one language edition of Wikipedia.
type ArticleQuery struct {
	// Title is the exact page title (e.g. "Alan Turing").
	Title string `json:"title" yaml:"title"`

	// Language is the wiki language code, e.g. "en", "ar", "fr".
	Language string `json:"language" yaml:"language"`
}

// Normalize returns a copy with surrounding whitespace removed, the language
// code lower-cased, and the default language applied when it is blank.
func (q ArticleQuery) Normalize() ArticleQuery {
	q.Title = strings.TrimSpace(q.Title)
	q.Language = strings.ToLower(strings.TrimSpace(q.Language))
	if q.Language == "" {
		q.Language = DefaultLanguage
	}
	return q
}

// Tier is the qualitative recommendation derived from a score.
type Tier string

const (
	TierFeaturedCandidate Tier = "featured-candidate"
	TierNeedsImprovement  Tier = "needs-improvement"
	TierNotReady          Tier = "not-ready"
)

// Recommendation returns the console line printed for the tier.
func (t Tier) Recommendation() string {
	switch t {
	case TierFeaturedCandidate:
		return "⭐ Recommendation: Strong candidate for Featured Article"
	case TierNeedsImprovement:
		return "🟡 Recommendation: Good article, needs improvements"
	default:
		return "🔴 Recommendation: Not ready for Featured status"
	}
}

// Signals holds the raw measurements the heuristics were evaluated on.
type Signals struct {
	WordCount      int      `json:"word_count" yaml:"word_count"`
	SectionMarkers int      `json:"section_markers" yaml:"section_markers"`
	References     int      `json:"references" yaml:"references"`
	HasMedia       bool     `json:"has_media" yaml:"has_media"`
	BiasedTerms    []string `json:"biased_terms,omitempty" yaml:"biased_terms,omitempty"`
}

// Report is the outcome of analyzing one article.
type Report struct {
	Title    string `json:"title" yaml:"title"`
	Language string `json:"language" yaml:"language"`

	// Score is the sum of the points awarded by passing heuristics (0-90).
	// It is still printed out of 100.
	Score int `json:"score" yaml:"score"`

	// Strengths and Weaknesses are listed in heuristic evaluation order.
	// Together they always hold exactly one finding per heuristic.
	Strengths  []string `json:"strengths" yaml:"strengths"`
	Weaknesses []string `json:"weaknesses" yaml:"weaknesses"`

	Tier    Tier    `json:"tier" yaml:"tier"`
	Signals Signals `json:"signals" yaml:"signals"`
}
