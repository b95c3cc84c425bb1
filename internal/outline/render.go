package outline

import (
	"fmt"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-outline/internal/dom"
)

// Class names emitted by the renderer. Page stylesheets and scripts key off these.
const (
	ScrollTrackClass = "outline-scrollable-track"
	levelClassPrefix = "level-"
)

// maxNestedLevel is the deepest level whose children still get a nested list.
// Headings below h3 are captured in the tree but never shown in the navigation.
const maxNestedLevel = 3

// ContentFilter rewrites heading markup before it is placed into the outline.
type ContentFilter func(markup string) string

// Renderer turns an outline tree into navigation markup.
// The zero value renders heading markup as-is.
type Renderer struct {
	Filter ContentFilter
}

// LevelClass returns the class name of a list holding level-n items.
func LevelClass(level int) string {
	return levelClassPrefix + strconv.Itoa(level)
}

// RenderTitle renders the root as the navigation heading: a self-link
// wrapping the root content.
func (r *Renderer) RenderTitle(root *Node) (*html.Node, error) {
	a := dom.NewElement(atom.A, "href", RootHref, "class", LevelClass(1))
	span, err := r.span(root.Content)
	if err != nil {
		return nil, fmt.Errorf("rendering outline title: %w", err)
	}
	a.AppendChild(span)
	return a, nil
}

// RenderList renders the root's descendants as nested lists. The outermost
// list always carries the level-2 class since the root itself is rendered by
// RenderTitle.
func (r *Renderer) RenderList(root *Node) (*html.Node, error) {
	ul := dom.NewElement(atom.Ul, "class", LevelClass(2))
	if err := r.renderChildren(ul, root, true); err != nil {
		return nil, err
	}
	return ul, nil
}

// renderChildren appends one list item per child of current to ul. top is
// set only for the outermost list.
func (r *Renderer) renderChildren(ul *html.Node, current *Node, top bool) error {
	for _, child := range current.Children {
		li := dom.NewElement(atom.Li)
		a := dom.NewElement(atom.A, "href", child.Href)
		span, err := r.span(child.Content)
		if err != nil {
			return fmt.Errorf("rendering outline item %q: %w", child.Href, err)
		}
		a.AppendChild(span)
		li.AppendChild(a)
		ul.AppendChild(li)

		// Only items of the top-level list get a scroll indicator track.
		if top {
			li.AppendChild(dom.NewElement(atom.Div, "class", ScrollTrackClass))
		}

		if len(child.Children) > 0 && child.Level < maxNestedLevel {
			nested := dom.NewElement(atom.Ul, "class", LevelClass(child.Level+1))
			li.AppendChild(nested)
			if err := r.renderChildren(nested, child, false); err != nil {
				return err
			}
		}
	}
	return nil
}

// span wraps heading markup in a span element.
func (r *Renderer) span(content string) (*html.Node, error) {
	if r.Filter != nil {
		content = r.Filter(content)
	}
	span := dom.NewElement(atom.Span)
	if err := dom.SetInnerHTML(span, content); err != nil {
		return nil, err
	}
	return span, nil
}
