package outline

import (
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-outline/internal/dom"
)

// headingSelector finds a section's heading among the direct children of its header.
var headingSelector = dom.MustCompile(
	"header/*[self::h1 or self::h2 or self::h3 or self::h4 or self::h5 or self::h6]",
)

// headingLevels maps the six heading tags to their outline level.
var headingLevels = map[atom.Atom]int{
	atom.H1: 1,
	atom.H2: 2,
	atom.H3: 3,
	atom.H4: 4,
	atom.H5: 5,
	atom.H6: 6,
}

// HeadingLevel returns the level of a heading element, or false if n is not
// one of h1-h6.
func HeadingLevel(n *html.Node) (int, bool) {
	if n == nil || n.Type != html.ElementNode {
		return 0, false
	}
	level, ok := headingLevels[n.DataAtom]
	return level, ok
}

// Build populates parent with one node per section found among the direct
// children of container, recursing into each section.
//
// Only section elements are examined. Any other child, along with everything
// nested inside it, is ignored, so sub-trees such as sections quoted inside a
// blockquote never reach the outline.
func Build(container *html.Node, parent *Node) error {
	for c := container.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.DataAtom != atom.Section {
			continue
		}

		child, err := sectionNode(c)
		if err != nil {
			return err
		}
		parent.Children = append(parent.Children, child)

		if err := Build(c, child); err != nil {
			return err
		}
	}
	return nil
}

// sectionNode derives the outline node of a single section element.
func sectionNode(section *html.Node) (*Node, error) {
	id := dom.Attr(section, "id")

	heading := headingSelector.First(section)
	if heading == nil {
		return nil, fmt.Errorf("%w: section %q", ErrMissingHeading, id)
	}

	level, ok := HeadingLevel(heading)
	if !ok {
		return nil, fmt.Errorf("%w: section %q has <%s>", ErrMissingHeading, id, heading.Data)
	}

	return &Node{
		Content: dom.InnerHTML(heading),
		Level:   level,
		Href:    "#" + id,
	}, nil
}
