package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// BodyText returns the human-visible text of an HTML document: every text
// node under <body>, trimmed per node, joined with single line breaks.
// A document without body text yields "". Malformed markup is handled
// best-effort by the parser and never reported as an error.
func BodyText(htmlText string) string {
	node, err := html.Parse(strings.NewReader(htmlText))
	if err != nil || node == nil {
		return ""
	}
	body := findFirst(node, "body")
	if body == nil {
		return ""
	}
	parts := make([]string, 0, 64)
	collectText(&parts, body)
	return strings.Join(parts, "\n")
}

func findFirst(n *html.Node, tag string) *html.Node {
	var res *html.Node
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if res != nil {
			return
		}
		if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, tag) {
			res = cur
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
			if res != nil {
				return
			}
		}
	}
	dfs(n)
	return res
}

// collectText walks n appending trimmed, non-empty text fragments. Subtrees
// whose text is never rendered are skipped entirely.
func collectText(parts *[]string, n *html.Node) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style", "noscript", "template":
			return
		}
	}
	if n.Type == html.TextNode {
		if trimmed := strings.TrimSpace(n.Data); trimmed != "" {
			*parts = append(*parts, trimmed)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(parts, c)
	}
}
