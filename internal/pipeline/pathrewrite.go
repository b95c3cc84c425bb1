package pipeline

import (
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-outline/internal/dom"
)

// RewriteMarkdownLinks points relative links to Markdown sources at the HTML
// pages generated from them: "guide.md#setup" becomes "guide.html#setup".
//
// Left alone:
//   - absolute URLs, protocol-relative and root-relative links
//   - same-page anchors
//   - links to anything other than .md or .markdown files
func RewriteMarkdownLinks(nodes []*html.Node) {
	for _, n := range nodes {
		rewriteNode(n)
	}
}

func rewriteNode(n *html.Node) {
	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		if href := dom.Attr(n, "href"); href != "" {
			if rewritten, ok := rewriteHref(href); ok {
				dom.SetAttr(n, "href", rewritten)
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c)
	}
}

// rewriteHref returns the HTML target for a relative Markdown link.
func rewriteHref(href string) (string, bool) {
	if !isRelativePath(href) {
		return "", false
	}

	u, err := url.Parse(href)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "", false
	}

	ext := path.Ext(u.Path)
	if ext != ".md" && ext != ".markdown" {
		return "", false
	}

	u.Path = strings.TrimSuffix(u.Path, ext) + ".html"
	return u.String(), true
}

// isRelativePath returns true if href is a relative document path.
func isRelativePath(href string) bool {
	switch {
	case href == "",
		strings.HasPrefix(href, "#"),
		strings.HasPrefix(href, "/"),
		strings.Contains(href, "://"),
		strings.HasPrefix(href, "mailto:"),
		strings.HasPrefix(href, "data:"):
		return false
	}
	return true
}
