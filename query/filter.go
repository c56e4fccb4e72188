package query

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// StartsWithText keeps only the elements whose text starts with a prefix.
// Matching is case-sensitive and the text is not trimmed.
type StartsWithText struct {
	textCommand
	prefix string
}

// NewStartsWithText creates a prefix filter. An empty prefix keeps everything.
func NewStartsWithText(ext TextExtractor, prefix string) *StartsWithText {
	return &StartsWithText{textCommand: textCommand{extractor: ext}, prefix: prefix}
}

// Execute removes non-matching elements from elems.
func (c *StartsWithText) Execute(elems *Elements) error {
	return compact(elems, func(_ int, n *html.Node) (bool, error) {
		return strings.HasPrefix(c.extractor(n), c.prefix), nil
	})
}

func (*StartsWithText) command() {}

// EndsWithText keeps only the elements whose text ends with a suffix.
// Matching is case-sensitive and the text is not trimmed.
type EndsWithText struct {
	textCommand
	suffix string
}

// NewEndsWithText creates a suffix filter. An empty suffix keeps everything.
func NewEndsWithText(ext TextExtractor, suffix string) *EndsWithText {
	return &EndsWithText{textCommand: textCommand{extractor: ext}, suffix: suffix}
}

// Execute removes non-matching elements from elems.
func (c *EndsWithText) Execute(elems *Elements) error {
	return compact(elems, func(_ int, n *html.Node) (bool, error) {
		return strings.HasSuffix(c.extractor(n), c.suffix), nil
	})
}

func (*EndsWithText) command() {}

// GTEByText keeps only the elements whose text, parsed as an integer, is
// greater than or equal to a threshold.
type GTEByText struct {
	textCommand
	number int
}

// NewGTEByText creates a lower-bound filter.
func NewGTEByText(ext TextExtractor, number int) *GTEByText {
	return &GTEByText{textCommand: textCommand{extractor: ext}, number: number}
}

// Execute removes elements below the threshold. It stops at the first
// element whose text is not an integer.
func (c *GTEByText) Execute(elems *Elements) error {
	return compact(elems, func(i int, n *html.Node) (bool, error) {
		v, err := parseInteger(i, c.extractor(n))
		if err != nil {
			return false, err
		}
		return v >= c.number, nil
	})
}

func (*GTEByText) command() {}

// LTEByText keeps only the elements whose text, parsed as an integer, is
// less than or equal to a threshold.
type LTEByText struct {
	textCommand
	number int
}

// NewLTEByText creates an upper-bound filter.
func NewLTEByText(ext TextExtractor, number int) *LTEByText {
	return &LTEByText{textCommand: textCommand{extractor: ext}, number: number}
}

// Execute removes elements above the threshold. It stops at the first
// element whose text is not an integer.
func (c *LTEByText) Execute(elems *Elements) error {
	return compact(elems, func(i int, n *html.Node) (bool, error) {
		v, err := parseInteger(i, c.extractor(n))
		if err != nil {
			return false, err
		}
		return v <= c.number, nil
	})
}

func (*LTEByText) command() {}

// parseInteger parses untrimmed text as a base-10 integer.
func parseInteger(index int, text string) (int, error) {
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("element %d: %w: %w", index, ErrMalformedNumber, err)
	}
	return v, nil
}
