package query

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// OrderOption configures an ordering command.
type OrderOption func(*orderConfig)

type orderConfig struct {
	collation *language.Tag
}

// WithCollation compares non-numeric texts using the collation rules of the
// given language instead of code point order.
func WithCollation(tag language.Tag) OrderOption {
	return func(c *orderConfig) {
		c.collation = &tag
	}
}

// OrderByTextAsc sorts elements in ascending order of their text.
// The sort is stable.
type OrderByTextAsc struct {
	textCommand
	config orderConfig
}

// NewOrderByTextAsc creates an ascending sort keyed by ext.
func NewOrderByTextAsc(ext TextExtractor, opts ...OrderOption) *OrderByTextAsc {
	return &OrderByTextAsc{textCommand: textCommand{extractor: ext}, config: newOrderConfig(opts)}
}

// Execute sorts elems in place.
func (c *OrderByTextAsc) Execute(elems *Elements) error {
	sortElements(*elems, c.extractor, c.config, false)
	return nil
}

func (*OrderByTextAsc) command() {}

// OrderByTextDesc sorts elements in descending order of their text.
// The sort is stable: elements with equal text keep their input order.
type OrderByTextDesc struct {
	textCommand
	config orderConfig
}

// NewOrderByTextDesc creates a descending sort keyed by ext.
func NewOrderByTextDesc(ext TextExtractor, opts ...OrderOption) *OrderByTextDesc {
	return &OrderByTextDesc{textCommand: textCommand{extractor: ext}, config: newOrderConfig(opts)}
}

// Execute sorts elems in place.
func (c *OrderByTextDesc) Execute(elems *Elements) error {
	sortElements(*elems, c.extractor, c.config, true)
	return nil
}

func (*OrderByTextDesc) command() {}

func newOrderConfig(opts []OrderOption) orderConfig {
	var cfg orderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// keyedElement pairs an element with its key so the extractor runs once per
// element rather than once per comparison.
type keyedElement struct {
	node *html.Node
	key  sortKey
}

func sortElements(elems Elements, ext TextExtractor, cfg orderConfig, descending bool) {
	if len(elems) < 2 {
		return
	}

	keyed := make([]keyedElement, len(elems))
	for i, n := range elems {
		keyed[i] = keyedElement{node: n, key: newSortKey(ext(n))}
	}

	cmpText := strings.Compare
	if cfg.collation != nil {
		// A Collator keeps internal buffers, so each execution gets its own.
		cmpText = collate.New(*cfg.collation).CompareString
	}

	slices.SortStableFunc(keyed, func(a, b keyedElement) int {
		if descending {
			return compareKeys(b.key, a.key, cmpText)
		}
		return compareKeys(a.key, b.key, cmpText)
	})

	for i, k := range keyed {
		elems[i] = k.node
	}
}
