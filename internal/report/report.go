// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders quality reports for the console, or as JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/wiki-quality/pkg/types"
)

// NotRetrievedMessage is printed when the article could not be fetched.
const NotRetrievedMessage = "❌ Article not found or could not be retrieved."

var rule = strings.Repeat("=", 60)

// ParseFormat validates a --format value. An empty value selects text.
func ParseFormat(s string) (types.OutputFormat, error) {
	switch f := types.OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "", types.OutputText:
		return types.OutputText, nil
	case types.OutputJSON, types.OutputYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use text, json, or yaml", s)
	}
}

// Write renders rep to w in the given format.
func Write(w io.Writer, rep types.Report, format types.OutputFormat) error {
	switch format {
	case types.OutputText, "":
		return WriteText(w, rep)
	case types.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case types.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encoding YAML report: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// WriteText renders the console block: header, score, recommendation and the
// strengths and weaknesses lists, framed by 60-character rules.
func WriteText(w io.Writer, rep types.Report) error {
	var b strings.Builder
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "📄 Article Title : %s\n", rep.Title)
	fmt.Fprintf(&b, "🌐 Language      : %s\n", rep.Language)
	fmt.Fprintf(&b, "📊 Final Score   : %d / 100\n", rep.Score)
	fmt.Fprintln(&b, rep.Tier.Recommendation())

	fmt.Fprintln(&b, "\n✅ Strengths:")
	for _, s := range rep.Strengths {
		fmt.Fprintf(&b, "  • %s\n", s)
	}

	fmt.Fprintln(&b, "\n❌ Weaknesses:")
	for _, s := range rep.Weaknesses {
		fmt.Fprintf(&b, "  • %s\n", s)
	}
	fmt.Fprintln(&b, rule)

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteNotRetrieved prints the single retrieval-failure line.
func WriteNotRetrieved(w io.Writer) error {
	_, err := fmt.Fprintln(w, NotRetrievedMessage)
	return err
}
