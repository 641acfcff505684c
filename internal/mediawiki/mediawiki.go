// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mediawiki retrieves raw article wikitext from the MediaWiki API
// of a Wikipedia language edition.
package mediawiki

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/pdiddy/wiki-quality/internal/httputil"
	"github.com/pdiddy/wiki-quality/pkg/types"
)

// apiEndpointFormat is expanded with the language code. Declared as a var so
// tests can substitute an httptest server.
var apiEndpointFormat = "https://%s.wikipedia.org/w/api.php"

// languageCode matches wiki subdomains such as "en", "ar", "zh-yue" or
// "simple". Anything else never reaches the endpoint host.
var languageCode = regexp.MustCompile(`^[a-z][a-z0-9-]{0,15}$`)

const (
	// DefaultUserAgent identifies this client to the Wikimedia servers.
	DefaultUserAgent = "WikiQualityAnalyzer/1.0 (personal project)"

	// DefaultTimeout bounds a single API call.
	DefaultTimeout = 10 * time.Second
)

// Client fetches article content. It holds no state between calls.
type Client struct {
	HTTP      *http.Client
	UserAgent string
}

// NewClient returns a Client configured from cfg, falling back to
// DefaultTimeout and DefaultUserAgent for zero values.
func NewClient(cfg types.HTTPConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	return &Client{
		HTTP:      &http.Client{Timeout: timeout},
		UserAgent: ua,
	}
}

// ValidLanguage reports whether code can name a Wikipedia language edition.
func ValidLanguage(code string) bool {
	return languageCode.MatchString(code)
}

// Endpoint returns the api.php URL for a language edition. The code is not
// checked; see ValidLanguage.
func Endpoint(language string) string {
	return fmt.Sprintf(apiEndpointFormat, language)
}

// FetchWikitext returns the raw wikitext of the latest revision's main slot
// for q.Title. It makes exactly one request. Any failure, including a page
// that does not exist, is reported as a *FetchError.
func (c *Client) FetchWikitext(ctx context.Context, q types.ArticleQuery) (string, error) {
	q = q.Normalize()
	if !ValidLanguage(q.Language) {
		return "", newFetchError(q, KindNotFound, fmt.Errorf("%w %q", errInvalidLanguage, q.Language))
	}

	params := url.Values{
		"action":        {"query"},
		"prop":          {"revisions"},
		"rvslots":       {"main"},
		"rvprop":        {"content"},
		"format":        {"json"},
		"formatversion": {"2"},
		"titles":        {q.Title},
	}

	var qr queryResponse
	if err := httputil.GetJSON(ctx, c.HTTP, Endpoint(q.Language), params, c.UserAgent, &qr); err != nil {
		return "", newFetchError(q, classify(err), err)
	}

	pages := qr.Query.Pages
	if len(pages) == 0 {
		return "", newFetchError(q, KindNotFound, errNoPages)
	}
	page := pages[0]
	if page.Missing || page.Invalid {
		return "", newFetchError(q, KindNotFound, errPageMissing)
	}
	if len(page.Revisions) == 0 {
		return "", newFetchError(q, KindNotFound, errNoRevision)
	}

	content := page.Revisions[0].Slots.Main.Content
	if content == "" {
		return "", newFetchError(q, KindNotFound, errEmptyContent)
	}
	return content, nil
}

// classify maps a transport-layer error onto a fetch error kind.
func classify(err error) Kind {
	var de *httputil.DecodeError
	if errors.As(err, &de) {
		return KindParse
	}
	return KindTransport
}

// MediaWiki API JSON structures (formatversion=2).
type queryResponse struct {
	Query struct {
		Pages []wikiPage `json:"pages"`
	} `json:"query"`
}

type wikiPage struct {
	Missing   bool       `json:"missing"`
	Invalid   bool       `json:"invalid"`
	Revisions []revision `json:"revisions"`
}

type revision struct {
	Slots struct {
		Main struct {
			Content string `json:"content"`
		} `json:"main"`
	} `json:"slots"`
}
