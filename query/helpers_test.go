package query

import (
	"golang.org/x/net/html"
)

// newElements builds one <li> per text.
func newElements(texts ...string) Elements {
	elems := make(Elements, len(texts))
	for i, t := range texts {
		li := &html.Node{Type: html.ElementNode, Data: "li"}
		li.AppendChild(&html.Node{Type: html.TextNode, Data: t})
		elems[i] = li
	}
	return elems
}

// childText is the extractor used throughout the tests.
func childText(n *html.Node) string {
	if n.FirstChild == nil {
		return ""
	}
	return n.FirstChild.Data
}

func texts(elems Elements) []string {
	out := make([]string, len(elems))
	for i, n := range elems {
		out[i] = childText(n)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
