package scrape

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// strippedElements are dropped with their whole subtree before text
// extraction. The set is fixed; no other elements are stripped.
var strippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"iframe":   true,
	"noscript": true,
	"link":     true,
	"meta":     true,
	"head":     true,
}

// ExtractText parses an HTML document and returns the concatenated content
// of its text nodes. Stripped elements and comment nodes contribute nothing;
// the remaining text is joined without trimming, so whatever whitespace the
// parser produced survives.
func ExtractText(body []byte) (string, error) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.CommentNode:
			return
		case html.ElementNode:
			if strippedElements[n.Data] {
				return
			}
		case html.TextNode:
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return sb.String(), nil
}
