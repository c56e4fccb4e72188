package elemq

import (
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/text/language"

	"github.com/tsawler/elemq/dom"
	"github.com/tsawler/elemq/query"
)

// Query provides a fluent interface for selecting and reshaping elements.
// Each configuration method returns a new Query instance, so a partially
// configured Query can be shared and extended independently.
type Query struct {
	// Source (only one is used)
	filename  string
	root      *html.Node
	source    query.Elements
	hasSource bool

	// Configuration
	options QueryOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Query with a deep copy of options.
func (q *Query) clone() *Query {
	return &Query{
		filename:  q.filename,
		root:      q.root,
		source:    q.source,
		hasSource: q.hasSource,
		options:   q.options.clone(),
		err:       q.err,
	}
}

// then returns a clone with cmd appended to the pipeline.
func (q *Query) then(cmd query.Command) *Query {
	newQ := q.clone()
	newQ.options.pipeline = append(newQ.options.pipeline, cmd)
	return newQ
}

// ============================================================================
// Configuration Methods (return new Query instance)
// ============================================================================

// Select restricts the query to elements with the given tag name.
//
// Example:
//
//	texts, err := elemq.Open("page.html").Select("td").Texts()
func (q *Query) Select(tag string) *Query {
	newQ := q.clone()
	newQ.options.tag = tag
	return newQ
}

// Within restricts selection to the descendants of the first element with
// the given tag name. If there is no such element the query selects nothing.
//
// Example:
//
//	cells, err := elemq.Open("page.html").Within("table").Select("td").Texts()
func (q *Query) Within(tag string) *Query {
	newQ := q.clone()
	newQ.options.within = tag
	return newQ
}

// By sets the extractor used by the commands added after it.
// The default is dom.Text.
//
// Example:
//
//	q := elemq.Open("page.html").Select("img").By(dom.Attr("alt")).OrderAsc()
func (q *Query) By(ext query.TextExtractor) *Query {
	newQ := q.clone()
	if ext == nil {
		newQ.err = fmt.Errorf("nil extractor")
		return newQ
	}
	newQ.options.extractor = ext
	return newQ
}

// Collate makes the orderings added after it compare non-numeric text by
// the collation rules of a language.
//
// Example:
//
//	q := elemq.Open("page.html").Select("li").Collate(language.German).OrderAsc()
func (q *Query) Collate(tag language.Tag) *Query {
	newQ := q.clone()
	newQ.options.collation = &tag
	return newQ
}

// OrderAsc sorts elements in ascending order of their text. Integers sort
// numerically when both sides are integers.
func (q *Query) OrderAsc() *Query {
	return q.then(query.NewOrderByTextAsc(q.options.extractor, q.options.orderOptions()...))
}

// OrderDesc sorts elements in descending order of their text.
func (q *Query) OrderDesc() *Query {
	return q.then(query.NewOrderByTextDesc(q.options.extractor, q.options.orderOptions()...))
}

// StartsWith keeps elements whose text starts with prefix.
func (q *Query) StartsWith(prefix string) *Query {
	return q.then(query.NewStartsWithText(q.options.extractor, prefix))
}

// EndsWith keeps elements whose text ends with suffix.
func (q *Query) EndsWith(suffix string) *Query {
	return q.then(query.NewEndsWithText(q.options.extractor, suffix))
}

// AtLeast keeps elements whose text is an integer >= n. The terminal
// operation fails if an element's text is not an integer.
func (q *Query) AtLeast(n int) *Query {
	return q.then(query.NewGTEByText(q.options.extractor, n))
}

// AtMost keeps elements whose text is an integer <= n. The terminal
// operation fails if an element's text is not an integer.
func (q *Query) AtMost(n int) *Query {
	return q.then(query.NewLTEByText(q.options.extractor, n))
}

// Limit keeps at most the first count elements.
//
// Example:
//
//	top, err := elemq.Open("scores.html").Select("td").OrderDesc().Limit(3).Texts()
func (q *Query) Limit(count int) *Query {
	return q.then(query.NewLimit(count))
}

// Slice skips index elements and keeps at most count of the rest.
//
// Example:
//
//	page2, err := elemq.Open("list.html").Select("li").Slice(20, 20).Texts()
func (q *Query) Slice(index, count int) *Query {
	return q.then(query.NewLimitAt(index, count))
}

// Plan appends the commands of a pipeline, such as one loaded with
// query.LoadPlan.
func (q *Query) Plan(p query.Pipeline) *Query {
	newQ := q.clone()
	newQ.options.pipeline = append(newQ.options.pipeline, p...)
	return newQ
}

// ============================================================================
// Terminal Operations (execute the query and return results)
// ============================================================================

// Elements runs the query and returns the resulting elements.
//
// Example:
//
//	elems, err := elemq.Open("page.html").Select("li").EndsWith("!").Elements()
func (q *Query) Elements() (query.Elements, error) {
	if q.err != nil {
		return nil, q.err
	}

	elems, err := q.selectElements()
	if err != nil {
		return nil, err
	}

	if err := q.options.pipeline.Run(&elems); err != nil {
		return nil, fmt.Errorf("running query: %w", err)
	}
	return elems, nil
}

// Texts runs the query and returns the text of each resulting element, as
// produced by the current extractor.
func (q *Query) Texts() ([]string, error) {
	elems, err := q.Elements()
	if err != nil {
		return nil, err
	}

	texts := make([]string, len(elems))
	for i, n := range elems {
		texts[i] = q.options.extractor(n)
	}
	return texts, nil
}

// Count runs the query and returns the number of resulting elements.
func (q *Query) Count() (int, error) {
	elems, err := q.Elements()
	if err != nil {
		return 0, err
	}
	return len(elems), nil
}

// selectElements produces a fresh collection for one run.
func (q *Query) selectElements() (query.Elements, error) {
	if q.hasSource {
		return append(query.Elements(nil), q.source...), nil
	}

	root := q.root
	if root == nil {
		if q.filename == "" {
			return nil, fmt.Errorf("no filename specified")
		}
		var err error
		root, err = dom.ParseFile(q.filename)
		if err != nil {
			return nil, fmt.Errorf("failed to open HTML: %w", err)
		}
	}

	if q.options.within != "" {
		root = dom.FindElement(root, q.options.within)
		if root == nil {
			return query.Elements{}, nil
		}
	}

	return dom.ElementsByTag(root, q.options.tag), nil
}
