// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/wiki-quality/internal/mediawiki"
	"github.com/pdiddy/wiki-quality/internal/quality"
	"github.com/pdiddy/wiki-quality/internal/report"
	"github.com/pdiddy/wiki-quality/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [title...]",
	Short: "Fetch an article and print its quality report",
	Long: `Analyze fetches the latest revision of a Wikipedia article and scores it.
Title words are joined with spaces. Without a title the command prompts for
the title and the language code; a blank language code means English.`,
	SilenceUsage: true,
	RunE:         runAnalyze,
}

func init() {
	addAnalyzeFlags(analyzeCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func addAnalyzeFlags(cmd *cobra.Command) {
	cmd.Flags().String("lang", "", "Wikipedia language code, e.g. en, ar, fr (default from config, else en)")
	cmd.Flags().String("format", "", "output format: text, json, or yaml (default text)")
	cmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 10s)")
}

// wikitextFetcher retrieves the raw wikitext of one article.
type wikitextFetcher interface {
	FetchWikitext(ctx context.Context, q types.ArticleQuery) (string, error)
}

// newFetcher builds the fetcher for a run. Declared as a var so tests can
// substitute a stub.
var newFetcher = func(cfg types.HTTPConfig) wikitextFetcher {
	return mediawiki.NewClient(cfg)
}

// analysis is one run of fetch, score and print.
type analysis struct {
	fetcher wikitextFetcher
	scorer  *quality.Scorer
	format  types.OutputFormat
	out     io.Writer
	// diag receives fetch diagnostics; io.Discard unless --verbose.
	diag io.Writer
}

// run analyzes q. An article that could not be retrieved prints the
// retrieval-failure line and is not an error; any other failure is returned.
func (a analysis) run(ctx context.Context, q types.ArticleQuery) error {
	text, err := a.fetcher.FetchWikitext(ctx, q)
	if mediawiki.IsAbsent(err) {
		fmt.Fprintf(a.diag, "warning: %v\n", err)
		return report.WriteNotRetrieved(a.out)
	}
	if err != nil {
		return err
	}
	return report.Write(a.out, a.scorer.Analyze(q, text), a.format)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	if cmd.Flags().Changed("lang") {
		cfg.Language, _ = cmd.Flags().GetString("lang")
	}
	if cmd.Flags().Changed("format") {
		f, _ := cmd.Flags().GetString("format")
		cfg.Format = types.OutputFormat(f)
	}
	if timeout, _ := cmd.Flags().GetDuration("timeout"); timeout > 0 {
		cfg.HTTP.Timeout = timeout
	}

	format, err := report.ParseFormat(string(cfg.Format))
	if err != nil {
		return err
	}

	var q types.ArticleQuery
	if len(args) > 0 {
		q = types.ArticleQuery{Title: strings.Join(args, " "), Language: cfg.Language}
	} else {
		q, err = promptQuery(cmd.InOrStdin(), cmd.OutOrStdout(), cfg.Language)
		if err != nil {
			return err
		}
	}
	q = q.Normalize()

	diag := io.Discard
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		diag = cmd.ErrOrStderr()
	}

	a := analysis{
		fetcher: newFetcher(cfg.HTTP),
		scorer:  quality.NewScorer(rulesFor(cfg.Scoring)),
		format:  format,
		out:     cmd.OutOrStdout(),
		diag:    diag,
	}
	return a.run(cmd.Context(), q)
}

// rulesFor applies configured overrides to the default rules.
func rulesFor(cfg types.ScoringConfig) quality.Rules {
	return quality.DefaultRules().
		WithBiasedWords(cfg.BiasedWords).
		WithMediaMarkers(cfg.MediaMarkers)
}

// promptQuery asks for the article title and language code on out and reads
// the answers from in. A blank language falls back to defaultLang.
func promptQuery(in io.Reader, out io.Writer, defaultLang string) (types.ArticleQuery, error) {
	fmt.Fprintln(out, "Wikipedia Article Quality Analyzer")
	fmt.Fprintln(out, "----------------------------------")

	r := bufio.NewReader(in)

	fmt.Fprint(out, "Enter article title: ")
	title, err := readLine(r)
	if err != nil {
		return types.ArticleQuery{}, fmt.Errorf("reading article title: %w", err)
	}

	fmt.Fprint(out, "Enter Wikipedia language code (en, ar, fr): ")
	lang, err := readLine(r)
	if err != nil {
		return types.ArticleQuery{}, fmt.Errorf("reading language code: %w", err)
	}
	if lang == "" {
		lang = defaultLang
	}

	return types.ArticleQuery{Title: title, Language: lang}.Normalize(), nil
}

// readLine returns the next line without surrounding whitespace. A final
// line without a newline is accepted; EOF before any input yields "".
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
