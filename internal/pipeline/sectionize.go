package pipeline

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-outline/internal/dom"
	"github.com/alnah/go-outline/internal/outline"
)

// Sectionize nests a flat run of block nodes into section elements.
//
// Every h2-h6 heading opens a section that runs until the next heading of
// the same or a higher rank. The heading moves into the section's header and
// its id moves onto the section, so the result has exactly the structure the
// outline builder reads. Nodes before the first heading, and h1 headings,
// stay at the top level. Whitespace-only text between blocks is dropped.
func Sectionize(nodes []*html.Node) []*html.Node {
	root := dom.NewElement(atom.Div)

	type frame struct {
		el    *html.Node
		level int
	}
	stack := []frame{{el: root, level: 1}}

	for _, n := range nodes {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
		if n.Type == html.TextNode && strings.TrimSpace(n.Data) == "" {
			continue
		}

		level, ok := outline.HeadingLevel(n)
		if !ok || level == 1 {
			stack[len(stack)-1].el.AppendChild(n)
			continue
		}

		for len(stack) > 1 && stack[len(stack)-1].level >= level {
			stack = stack[:len(stack)-1]
		}

		section := dom.NewElement(atom.Section)
		if id := dom.Attr(n, "id"); id != "" {
			dom.SetAttr(section, "id", id)
			dom.RemoveAttr(n, "id")
		}
		header := dom.NewElement(atom.Header)
		header.AppendChild(n)
		section.AppendChild(header)

		stack[len(stack)-1].el.AppendChild(section)
		stack = append(stack, frame{el: section, level: level})
	}

	var out []*html.Node
	for c := root.FirstChild; c != nil; {
		next := c.NextSibling
		root.RemoveChild(c)
		out = append(out, c)
		c = next
	}
	return out
}

// ExtractTitle removes the first top-level h1 from nodes and returns its
// inner markup and text. ok is false when there is no top-level h1.
func ExtractTitle(nodes []*html.Node) (rest []*html.Node, markup, text string, ok bool) {
	for i, n := range nodes {
		if n.Type == html.ElementNode && n.DataAtom == atom.H1 {
			rest = append(append(rest, nodes[:i]...), nodes[i+1:]...)
			return rest, dom.InnerHTML(n), dom.InnerText(n), true
		}
	}
	return nodes, "", "", false
}
