package pipeline

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-outline/internal/dom"
)

// InjectStyle appends a <style> block holding css to the document head.
// Documents without a head get the block as the first child of the html
// element. Empty css leaves the document unchanged.
func InjectStyle(doc *html.Node, css string) {
	if css == "" || doc == nil {
		return
	}

	style := dom.NewElement(atom.Style)
	style.AppendChild(&html.Node{Type: html.TextNode, Data: sanitizeCSS(css)})

	if head := findElement(doc, atom.Head); head != nil {
		head.AppendChild(style)
		return
	}
	if root := findElement(doc, atom.Html); root != nil {
		dom.Prepend(root, style)
		return
	}
	dom.Prepend(doc, style)
}

// sanitizeCSS escapes sequences that could close the <style> element early.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}
