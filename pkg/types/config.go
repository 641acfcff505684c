package types

import "time"

// HTTPConfig holds HTTP settings for the MediaWiki request.
type HTTPConfig struct {
	// Timeout bounds the whole request, including reading the body.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header identifying this client to Wikipedia
	// (e.g. "WikiQualityAnalyzer/1.0 (personal project)").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ScoringConfig holds optional overrides for the scorer's fixed rules.
type ScoringConfig struct {
	// BiasedWords replaces the built-in promotional term list when non-empty.
	// Order matters: matches are reported in list order.
	BiasedWords []string `json:"biased_words,omitempty" yaml:"biased_words,omitempty"`

	// MediaMarkers replaces the built-in file/image link markers when non-empty.
	MediaMarkers []string `json:"media_markers,omitempty" yaml:"media_markers,omitempty"`
}

// OutputFormat selects how a report is rendered.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// Config groups all settings read from the config file and environment.
// The tags mirror the config file keys, e.g. http.timeout.
type Config struct {
	// Language is the wiki used when a query carries none (default "en").
	Language string        `json:"language" yaml:"language"`
	HTTP     HTTPConfig    `json:"http" yaml:"http"`
	Scoring  ScoringConfig `json:"scoring" yaml:"scoring"`
	Format   OutputFormat  `json:"format" yaml:"format"`
}
