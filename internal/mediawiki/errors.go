// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mediawiki

import (
	"errors"
	"fmt"

	"github.com/pdiddy/wiki-quality/pkg/types"
)

// Kind classifies why an article could not be retrieved. Callers that only
// need "got it or not" can ignore the kind entirely.
type Kind int

const (
	// KindTransport covers network failures, timeouts and non-200 statuses.
	KindTransport Kind = iota
	// KindParse means the response body was not valid JSON.
	KindParse
	// KindNotFound means the wiki has no usable content for the title.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindParse:
		return "parse"
	case KindNotFound:
		return "not found"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

var (
	errNoPages      = errors.New("response contained no pages")
	errPageMissing  = errors.New("page is missing")
	errNoRevision   = errors.New("page has no revisions")
	errEmptyContent = errors.New("revision content is empty")

	errInvalidLanguage = errors.New("invalid language code")
)

// FetchError is returned by FetchWikitext for every failure.
type FetchError struct {
	Kind     Kind
	Title    string
	Language string
	Err      error
}

func newFetchError(q types.ArticleQuery, kind Kind, err error) *FetchError {
	return &FetchError{Kind: kind, Title: q.Title, Language: q.Language, Err: err}
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %q from %s wiki (%s): %v", e.Title, e.Language, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// IsAbsent reports whether err means the article could not be retrieved.
// All fetch error kinds collapse to the same outcome for callers.
func IsAbsent(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}
