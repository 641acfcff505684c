// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/wiki-quality/internal/mediawiki"
	"github.com/pdiddy/wiki-quality/internal/quality"
	"github.com/pdiddy/wiki-quality/pkg/types"
)

// stubFetcher returns canned content and records the queries it received.
type stubFetcher struct {
	text    string
	err     error
	queries []types.ArticleQuery
}

func (s *stubFetcher) FetchWikitext(_ context.Context, q types.ArticleQuery) (string, error) {
	s.queries = append(s.queries, q)
	return s.text, s.err
}

func newTestAnalysis(f wikitextFetcher, out, diag io.Writer) analysis {
	return analysis{
		fetcher: f,
		scorer:  quality.NewScorer(quality.DefaultRules()),
		format:  types.OutputText,
		out:     out,
		diag:    diag,
	}
}

func TestAnalysisRun_PrintsReport(t *testing.T) {
	f := &stubFetcher{text: "this is the best and most famous example"}
	var out bytes.Buffer

	q := types.ArticleQuery{Title: "Example", Language: "en"}
	require.NoError(t, newTestAnalysis(f, &out, io.Discard).run(context.Background(), q))

	got := out.String()
	assert.Contains(t, got, "📄 Article Title : Example\n")
	assert.Contains(t, got, "📊 Final Score   : 0 / 100\n")
	assert.Contains(t, got, "🔴 Recommendation: Not ready for Featured status\n")
	assert.Contains(t, got, "  • Potential promotional language: best, most famous\n")
	assert.Equal(t, []types.ArticleQuery{q}, f.queries)
}

func TestAnalysisRun_FetchFailuresPrintOneMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"missing page", &mediawiki.FetchError{Kind: mediawiki.KindNotFound, Title: "X", Language: "en", Err: errors.New("page is missing")}},
		{"http 503", &mediawiki.FetchError{Kind: mediawiki.KindTransport, Title: "X", Language: "en", Err: errors.New("GET returned HTTP 503")}},
		{"bad json", &mediawiki.FetchError{Kind: mediawiki.KindParse, Title: "X", Language: "en", Err: errors.New("unexpected EOF")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &stubFetcher{err: tt.err}
			var out, diag bytes.Buffer

			err := newTestAnalysis(f, &out, &diag).run(context.Background(), types.ArticleQuery{Title: "X", Language: "en"})
			require.NoError(t, err)

			assert.Equal(t, "❌ Article not found or could not be retrieved.\n", out.String())
			assert.Contains(t, diag.String(), "warning: ")
		})
	}
}

func TestAnalysisRun_JSONFormat(t *testing.T) {
	f := &stubFetcher{text: ""}
	var out bytes.Buffer

	a := newTestAnalysis(f, &out, io.Discard)
	a.format = types.OutputJSON
	require.NoError(t, a.run(context.Background(), types.ArticleQuery{Title: "Empty", Language: "fr"}))

	assert.Contains(t, out.String(), `"score": 15`)
	assert.Contains(t, out.String(), `"tier": "not-ready"`)
	assert.Contains(t, out.String(), `"language": "fr"`)
}

func TestPromptQuery(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.ArticleQuery
	}{
		{"title and language", "Alan Turing\nfr\n", types.ArticleQuery{Title: "Alan Turing", Language: "fr"}},
		{"blank language", "  Paris  \n\n", types.ArticleQuery{Title: "Paris", Language: "en"}},
		{"no trailing newline", "Cairo\nar", types.ArticleQuery{Title: "Cairo", Language: "ar"}},
		{"input ends after title", "Berlin\n", types.ArticleQuery{Title: "Berlin", Language: "en"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := promptQuery(strings.NewReader(tt.input), &out, "en")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			assert.Equal(t, "Wikipedia Article Quality Analyzer\n"+
				"----------------------------------\n"+
				"Enter article title: "+
				"Enter Wikipedia language code (en, ar, fr): ", out.String())
		})
	}
}

func TestPromptQuery_ConfiguredDefaultLanguage(t *testing.T) {
	got, err := promptQuery(strings.NewReader("Louvre\n\n"), io.Discard, "fr")
	require.NoError(t, err)
	assert.Equal(t, "fr", got.Language)
}

func TestLoadConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	setConfigDefaults()
	cfg := loadConfig()
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, mediawiki.DefaultTimeout, cfg.HTTP.Timeout)
	assert.Equal(t, mediawiki.DefaultUserAgent, cfg.HTTP.UserAgent)
	assert.Equal(t, types.OutputText, cfg.Format)
	assert.Empty(t, cfg.Scoring.BiasedWords)
	assert.Empty(t, cfg.Scoring.MediaMarkers)

	viper.Set("language", "ar")
	viper.Set("http.timeout", "3s")
	viper.Set("format", "yaml")
	viper.Set("scoring.biased_words", []string{"legendary", "iconic"})
	cfg = loadConfig()
	assert.Equal(t, "ar", cfg.Language)
	assert.Equal(t, 3*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, types.OutputYAML, cfg.Format)
	assert.Equal(t, []string{"legendary", "iconic"}, cfg.Scoring.BiasedWords)
}

func TestLoadConfig_FileMatchesConfigTags(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	want := types.Config{
		Language: "fr",
		HTTP:     types.HTTPConfig{Timeout: 4 * time.Second, UserAgent: "custom/2.0"},
		Scoring: types.ScoringConfig{
			BiasedWords:  []string{"incroyable"},
			MediaMarkers: []string{"[[Fichier:"},
		},
		Format: types.OutputJSON,
	}
	data, err := yaml.Marshal(want)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "wiki-quality.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	setConfigDefaults()
	viper.SetConfigFile(path)
	require.NoError(t, viper.ReadInConfig())

	assert.Equal(t, want, loadConfig())
}

func TestAnalysisRun_OtherErrorsAreReturned(t *testing.T) {
	boom := errors.New("boom")
	var out bytes.Buffer

	err := newTestAnalysis(&stubFetcher{err: boom}, &out, io.Discard).run(context.Background(), types.ArticleQuery{Title: "X", Language: "en"})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, out.String())
}

// resetFlags restores every flag on cmd and its children to its default so
// consecutive Execute calls do not leak values.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestRootCommand(t *testing.T) {
	const neutralText = "[[File:Map.png]] a short neutral article"

	tests := []struct {
		name     string
		args     []string
		stdin    string
		settings map[string]any
		text     string
		fetchErr error

		wantErr     string
		wantQuery   types.ArticleQuery
		wantTimeout time.Duration
		wantOut     []string
		wantStderr  string
	}{
		{
			name:        "title args joined with config language",
			args:        []string{"analyze", "Alan", "Turing"},
			settings:    map[string]any{"language": "ar"},
			text:        neutralText,
			wantQuery:   types.ArticleQuery{Title: "Alan Turing", Language: "ar"},
			wantTimeout: mediawiki.DefaultTimeout,
			wantOut:     []string{"📄 Article Title : Alan Turing\n", "🌐 Language      : ar\n", "📊 Final Score   : 25 / 100\n"},
		},
		{
			name:        "lang flag beats config",
			args:        []string{"analyze", "Paris", "--lang", "fr"},
			settings:    map[string]any{"language": "ar"},
			text:        neutralText,
			wantQuery:   types.ArticleQuery{Title: "Paris", Language: "fr"},
			wantTimeout: mediawiki.DefaultTimeout,
			wantOut:     []string{"🌐 Language      : fr\n"},
		},
		{
			name:        "format flag beats config",
			args:        []string{"analyze", "Paris", "--format", "json"},
			settings:    map[string]any{"format": "yaml"},
			text:        neutralText,
			wantQuery:   types.ArticleQuery{Title: "Paris", Language: "en"},
			wantTimeout: mediawiki.DefaultTimeout,
			wantOut:     []string{`"score": 25`, `"has_media": true`},
		},
		{
			name:        "config format",
			args:        []string{"analyze", "Paris"},
			settings:    map[string]any{"format": "yaml"},
			text:        neutralText,
			wantQuery:   types.ArticleQuery{Title: "Paris", Language: "en"},
			wantTimeout: mediawiki.DefaultTimeout,
			wantOut:     []string{"score: 25\n", "tier: not-ready\n"},
		},
		{
			name:    "unknown format is an error",
			args:    []string{"analyze", "Paris", "--format", "xml"},
			text:    neutralText,
			wantErr: `unsupported format "xml"`,
		},
		{
			name:        "timeout flag beats config",
			args:        []string{"analyze", "Paris", "--timeout", "3s"},
			settings:    map[string]any{"http.timeout": "7s"},
			text:        neutralText,
			wantQuery:   types.ArticleQuery{Title: "Paris", Language: "en"},
			wantTimeout: 3 * time.Second,
		},
		{
			name:        "config timeout",
			args:        []string{"analyze", "Paris"},
			settings:    map[string]any{"http.timeout": "7s"},
			text:        neutralText,
			wantQuery:   types.ArticleQuery{Title: "Paris", Language: "en"},
			wantTimeout: 7 * time.Second,
		},
		{
			name:        "config media markers",
			args:        []string{"analyze", "Louvre", "--format", "json"},
			settings:    map[string]any{"scoring.media_markers": []string{"[[Fichier:"}},
			text:        "[[Fichier:Louvre.jpg]]",
			wantQuery:   types.ArticleQuery{Title: "Louvre", Language: "en"},
			wantTimeout: mediawiki.DefaultTimeout,
			wantOut:     []string{`"has_media": true`},
		},
		{
			name:        "verbose prints diagnostics",
			args:        []string{"analyze", "Nowhere", "--verbose"},
			fetchErr:    &mediawiki.FetchError{Kind: mediawiki.KindTransport, Title: "Nowhere", Language: "en", Err: errors.New("GET returned HTTP 503")},
			wantQuery:   types.ArticleQuery{Title: "Nowhere", Language: "en"},
			wantTimeout: mediawiki.DefaultTimeout,
			wantOut:     []string{"❌ Article not found or could not be retrieved.\n"},
			wantStderr:  "warning: fetching \"Nowhere\" from en wiki (transport): GET returned HTTP 503\n",
		},
		{
			name:        "quiet failure without verbose",
			args:        []string{"analyze", "Nowhere"},
			fetchErr:    &mediawiki.FetchError{Kind: mediawiki.KindNotFound, Title: "Nowhere", Language: "en", Err: errors.New("page is missing")},
			wantQuery:   types.ArticleQuery{Title: "Nowhere", Language: "en"},
			wantTimeout: mediawiki.DefaultTimeout,
			wantOut:     []string{"❌ Article not found or could not be retrieved.\n"},
		},
		{
			name:        "root prompts interactively",
			args:        []string{},
			stdin:       "  Alan Turing \n\n",
			text:        neutralText,
			wantQuery:   types.ArticleQuery{Title: "Alan Turing", Language: "en"},
			wantTimeout: mediawiki.DefaultTimeout,
			wantOut: []string{
				"Wikipedia Article Quality Analyzer\n----------------------------------\nEnter article title: Enter Wikipedia language code (en, ar, fr): ",
				"📄 Article Title : Alan Turing\n",
			},
		},
		{
			name:        "prompt language uses config default",
			args:        []string{},
			stdin:       "Louvre\n\n",
			settings:    map[string]any{"language": "fr"},
			text:        neutralText,
			wantQuery:   types.ArticleQuery{Title: "Louvre", Language: "fr"},
			wantTimeout: mediawiki.DefaultTimeout,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			resetFlags(rootCmd)

			f := &stubFetcher{text: tt.text, err: tt.fetchErr}
			var gotHTTP types.HTTPConfig
			oldFactory := newFetcher
			newFetcher = func(cfg types.HTTPConfig) wikitextFetcher {
				gotHTTP = cfg
				return f
			}

			var out, errOut bytes.Buffer
			rootCmd.SetArgs(tt.args)
			rootCmd.SetIn(strings.NewReader(tt.stdin))
			rootCmd.SetOut(&out)
			rootCmd.SetErr(&errOut)
			t.Cleanup(func() {
				newFetcher = oldFactory
				rootCmd.SetArgs(nil)
				rootCmd.SetIn(nil)
				rootCmd.SetOut(nil)
				rootCmd.SetErr(nil)
				resetFlags(rootCmd)
				viper.Reset()
			})

			for k, v := range tt.settings {
				viper.Set(k, v)
			}

			err := rootCmd.Execute()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Empty(t, f.queries)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, []types.ArticleQuery{tt.wantQuery}, f.queries)
			assert.Equal(t, tt.wantTimeout, gotHTTP.Timeout)
			assert.Equal(t, mediawiki.DefaultUserAgent, gotHTTP.UserAgent)
			for _, want := range tt.wantOut {
				assert.Contains(t, out.String(), want)
			}
			assert.Equal(t, tt.wantStderr, errOut.String())
		})
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	t.Cleanup(func() { versionCmd.SetOut(nil) })

	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "wiki-quality dev\n", out.String())
}

func TestConfigFlagUsageNamesSearchedFiles(t *testing.T) {
	usage := rootCmd.PersistentFlags().Lookup("config").Usage
	assert.Contains(t, usage, "./wiki-quality.yaml")
	assert.Contains(t, usage, "~/.config/wiki-quality/wiki-quality.yaml")
	assert.NotContains(t, usage, "config.yaml)")
}
