package engine

import (
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/anatolykoptev/go-kit/strutil"
	"golang.org/x/net/html"
)

var (
	htmlTagRe = regexp.MustCompile(`<[^>]+>`)
	spaceRe   = regexp.MustCompile(`\s+`)
)

// CleanHTML strips markup from a fragment and collapses whitespace, using a
// real HTML tokenizer so entities and malformed tags don't leak through.
// Falls back to regex stripping if tokenizing fails outright.
func CleanHTML(s string) string {
	if !strings.ContainsRune(s, '<') && !strings.ContainsRune(s, '&') {
		return CollapseSpace(s)
	}

	node, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return CollapseSpace(htmlTagRe.ReplaceAllString(s, " "))
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(node)
	return CollapseSpace(sb.String())
}

// CollapseSpace folds whitespace runs into single spaces and trims the ends.
func CollapseSpace(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// HTMLToMarkdown renders an HTML fragment as markdown for display in tool
// output. Returns plain stripped text when conversion fails.
func HTMLToMarkdown(s string) string {
	md, err := htmltomarkdown.ConvertString(s)
	if err != nil {
		return CleanHTML(s)
	}
	return strings.TrimSpace(md)
}

// Truncate returns the first n bytes of s.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// TruncateRunes caps s at limit runes, appending suffix if truncated.
// Pass suffix="" for no suffix. Safe for UTF-8 (Cyrillic, CJK, emoji).
func TruncateRunes(s string, limit int, suffix string) string {
	return strutil.TruncateWith(s, limit, suffix)
}
