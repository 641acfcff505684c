// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the wiki-quality CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/wiki-quality/internal/mediawiki"
	"github.com/pdiddy/wiki-quality/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the wiki-quality CLI. Run without a
// subcommand it behaves like "analyze" with no arguments and prompts for
// the article.
var rootCmd = &cobra.Command{
	Use:   "wiki-quality",
	Short: "Score a Wikipedia article against featured-article heuristics",
	Long: `wiki-quality fetches the latest wikitext of a Wikipedia article through the
MediaWiki API and scores it on length, structure, references, media and
neutral tone. The report lists strengths, weaknesses and a recommendation.`,
	SilenceUsage: true,
	RunE:         runAnalyze,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./wiki-quality.yaml or ~/.config/wiki-quality/wiki-quality.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "print fetch diagnostics to stderr")
	addAnalyzeFlags(rootCmd)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("wiki-quality")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "wiki-quality"))
		}
	}

	setConfigDefaults()

	viper.SetEnvPrefix("WIKI_QUALITY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func setConfigDefaults() {
	viper.SetDefault("language", types.DefaultLanguage)
	viper.SetDefault("format", string(types.OutputText))
	viper.SetDefault("http.timeout", mediawiki.DefaultTimeout)
	viper.SetDefault("http.user_agent", mediawiki.DefaultUserAgent)
}

// loadConfig assembles the typed configuration from viper's merged view of
// defaults, config file and environment. Flags are applied by the caller.
func loadConfig() types.Config {
	return types.Config{
		Language: viper.GetString("language"),
		HTTP: types.HTTPConfig{
			Timeout:   viper.GetDuration("http.timeout"),
			UserAgent: viper.GetString("http.user_agent"),
		},
		Scoring: types.ScoringConfig{
			BiasedWords:  viper.GetStringSlice("scoring.biased_words"),
			MediaMarkers: viper.GetStringSlice("scoring.media_markers"),
		},
		Format: types.OutputFormat(viper.GetString("format")),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
