package dom

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/elemq/query"
)

// ParseFile parses an HTML file.
func ParseFile(filename string) (*html.Node, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse parses HTML from an io.Reader. Malformed markup is repaired by the
// parser rather than rejected.
func Parse(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc, nil
}

// ElementsByTag returns every element under root (root included) with the
// given tag name, in document order. Tag names are matched case-insensitively.
// An empty tag matches every element.
func ElementsByTag(root *html.Node, tag string) query.Elements {
	tag = strings.ToLower(tag)
	elems := make(query.Elements, 0)
	collectByTag(root, tag, &elems)
	return elems
}

func collectByTag(n *html.Node, tag string, elems *query.Elements) {
	if n.Type == html.ElementNode && (tag == "" || n.Data == tag) {
		*elems = append(*elems, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectByTag(c, tag, elems)
	}
}

// FindElement returns the first element under root (root included) with the
// given tag name in document order, or nil. Tag names are matched
// case-insensitively.
func FindElement(root *html.Node, tag string) *html.Node {
	return findElement(root, strings.ToLower(tag))
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tag); result != nil {
			return result
		}
	}
	return nil
}
