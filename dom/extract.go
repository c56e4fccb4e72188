package dom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/elemq/query"
)

// Text returns the combined text of n and its descendants with runs of
// whitespace collapsed to single spaces. Script and style content is skipped.
func Text(n *html.Node) string {
	var b strings.Builder
	textRecursive(n, &b)
	return strings.Join(strings.Fields(b.String()), " ")
}

func textRecursive(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
	case html.ElementNode:
		if shouldSkipElement(n.Data) {
			return
		}
		if n.Data == "br" {
			b.WriteString(" ")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		textRecursive(c, b)
	}
	// Block elements separate words from what follows
	if n.Type == html.ElementNode {
		switch n.Data {
		case "p", "div", "li", "h1", "h2", "h3", "h4", "h5", "h6", "tr", "td", "th":
			b.WriteString(" ")
		}
	}
}

// OwnText returns the text of n's direct text children only, trimmed.
func OwnText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return strings.TrimSpace(b.String())
}

// Attr returns an extractor yielding the value of the named attribute, or ""
// when the element does not carry it.
func Attr(key string) query.TextExtractor {
	return func(n *html.Node) string {
		return getAttr(n, key)
	}
}

// Resolver resolves the extractor names accepted in plan files:
// "text", "owntext", and "attr:<name>".
func Resolver(name string) (query.TextExtractor, error) {
	switch {
	case name == "text":
		return Text, nil
	case name == "owntext":
		return OwnText, nil
	case strings.HasPrefix(name, "attr:") && len(name) > len("attr:"):
		return Attr(strings.TrimPrefix(name, "attr:")), nil
	}
	return nil, fmt.Errorf("unknown extractor %q", name)
}

// getAttr returns the value of an attribute, or "" if absent.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// shouldSkipElement reports whether an element's content is never text.
func shouldSkipElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed":
		return true
	}
	return false
}
