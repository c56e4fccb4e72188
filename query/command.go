package query

import (
	"errors"

	"golang.org/x/net/html"
)

// ErrMalformedNumber is returned by the threshold filters when an element's
// text is not a base-10 integer.
var ErrMalformedNumber = errors.New("text is not an integer")

// Elements is an ordered, mutable collection of element nodes.
// Duplicates are allowed and insertion order is significant.
type Elements []*html.Node

// TextExtractor maps an element to the string used as its sort or filter key.
// It must be deterministic for a given element within one Execute call.
type TextExtractor func(n *html.Node) string

// Command is one filter, sort, or limit step. Execute mutates elems in place;
// it never adds elements that were not already present.
//
// The implementations in this package are the only ones; the interface
// cannot be satisfied outside it.
type Command interface {
	Execute(elems *Elements) error
	command()
}

// textCommand is embedded by every command keyed on extracted text.
type textCommand struct {
	extractor TextExtractor
}

// compact keeps the elements for which keep reports true, preserving their
// order. It visits each element exactly once. If keep fails or panics, the
// elements not yet visited (the failing one included) are kept after the
// survivors; an error is returned and a panic continues unwinding.
func compact(elems *Elements, keep func(i int, n *html.Node) (bool, error)) error {
	s := *elems
	w, i := 0, 0
	defer func() {
		w += copy(s[w:], s[i:])
		clear(s[w:])
		*elems = s[:w]
	}()

	for ; i < len(s); i++ {
		ok, err := keep(i, s[i])
		if err != nil {
			return err
		}
		if ok {
			s[w] = s[i]
			w++
		}
	}
	return nil
}
