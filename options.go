package elemq

import (
	"golang.org/x/text/language"

	"github.com/tsawler/elemq/dom"
	"github.com/tsawler/elemq/query"
)

// QueryOptions holds the configuration accumulated by a Query.
type QueryOptions struct {
	// Element selection; "" selects every element
	tag    string
	within string // first element with this tag scopes the selection

	// Key extraction for subsequent commands
	extractor query.TextExtractor
	collation *language.Tag

	pipeline query.Pipeline
}

// defaultOptions returns the default query options.
func defaultOptions() QueryOptions {
	return QueryOptions{
		tag:       "",
		within:    "",
		extractor: dom.Text,
		collation: nil,
		pipeline:  nil,
	}
}

// clone creates a deep copy of QueryOptions.
func (o QueryOptions) clone() QueryOptions {
	newOpts := QueryOptions{
		tag:       o.tag,
		within:    o.within,
		extractor: o.extractor,
		collation: o.collation,
	}

	// Commands are immutable, so copying the slice is enough
	if o.pipeline != nil {
		newOpts.pipeline = make(query.Pipeline, len(o.pipeline))
		copy(newOpts.pipeline, o.pipeline)
	}

	return newOpts
}

func (o QueryOptions) orderOptions() []query.OrderOption {
	if o.collation == nil {
		return nil
	}
	return []query.OrderOption{query.WithCollation(*o.collation)}
}
