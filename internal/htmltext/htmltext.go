// Package htmltext extracts plain text from HTML, for narratives pasted or
// imported from rich-text sources before annotation and highlighting.
package htmltext

import (
	"strings"

	"golang.org/x/net/html"
)

// Extract returns the visible text content of an HTML document or fragment.
// Script and style bodies are skipped, block boundaries become single
// spaces, and runs of whitespace collapse. If parsing fails, the input is
// returned as-is.
func Extract(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fallback to string if parsing fails
		return s
	}

	var parts []string
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			if trimmed := strings.TrimSpace(n.Data); trimmed != "" {
				parts = append(parts, strings.Join(strings.Fields(trimmed), " "))
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.Join(parts, " ")
}
