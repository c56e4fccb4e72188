// Package elemq provides a fluent API for selecting, filtering, sorting, and
// paginating elements of an HTML document by their text.
//
// Basic usage:
//
//	texts, err := elemq.Open("page.html").Select("li").OrderAsc().Limit(5).Texts()
//	if err != nil {
//	    // handle error
//	}
//
// With an extractor and filters:
//
//	links, err := elemq.Open("page.html").
//	    Select("a").
//	    By(dom.Attr("href")).
//	    StartsWith("https://").
//	    OrderDesc().
//	    Elements()
//
// For advanced use cases, the lower-level query and dom packages are also
// available.
package elemq

import (
	"io"

	"github.com/tsawler/elemq/dom"
	"github.com/tsawler/elemq/query"
)

// Open returns a Query over the HTML file filename. The file is read by the
// terminal operation.
//
// Example:
//
//	n, err := elemq.Open("page.html").Select("p").Count()
func Open(filename string) *Query {
	return &Query{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader parses HTML from r and returns a Query over it. A parse error is
// reported by the terminal operation.
//
// Example:
//
//	texts, err := elemq.FromReader(resp.Body).Select("h2").Texts()
func FromReader(r io.Reader) *Query {
	q := &Query{options: defaultOptions()}
	q.root, q.err = dom.Parse(r)
	return q
}

// FromElements returns a Query over an existing collection. Select and
// Within have no effect on such a query. The collection is copied by each terminal
// operation, so elems itself is never modified.
func FromElements(elems query.Elements) *Query {
	return &Query{
		source:    append(query.Elements(nil), elems...),
		hasSource: true,
		options:   defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	texts := elemq.Must(elemq.Open("page.html").Select("li").Texts())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
