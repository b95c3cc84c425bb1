// Package dom wraps golang.org/x/net/html with the handful of document
// operations the outline pipeline needs: parsing, serializing, XPath lookup,
// inner-markup access and element construction.
package dom

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Sentinel errors for document operations.
var (
	ErrInvalidSelector = errors.New("invalid selector")
	ErrParse           = errors.New("parsing HTML failed")
	ErrRender          = errors.New("rendering HTML failed")
)

// Selector is a compiled XPath expression.
// A Selector is immutable and safe for concurrent use.
type Selector struct {
	raw  string
	expr *xpath.Expr
}

// Compile compiles an XPath expression into a Selector.
func Compile(expr string) (*Selector, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrInvalidSelector)
	}
	compiled, err := xpath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSelector, expr, err)
	}
	return &Selector{raw: expr, expr: compiled}, nil
}

// MustCompile is like Compile but panics on error.
// Only use it for package-level expressions known at compile time.
func MustCompile(expr string) *Selector {
	s, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return s
}

// String returns the source expression.
func (s *Selector) String() string {
	return s.raw
}

// First returns the first node matching the selector, evaluated with n as
// the context node, or nil if nothing matches.
func (s *Selector) First(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	return htmlquery.QuerySelector(n, s.expr)
}

// All returns every node matching the selector in document order.
func (s *Selector) All(n *html.Node) []*html.Node {
	if n == nil {
		return nil
	}
	return htmlquery.QuerySelectorAll(n, s.expr)
}

// Parse parses a complete HTML document.
func Parse(r io.Reader) (*html.Node, error) {
	doc, err := htmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return doc, nil
}

// ParseString parses a complete HTML document held in a string.
func ParseString(s string) (*html.Node, error) {
	return Parse(strings.NewReader(s))
}

// Render serializes n and its descendants to w.
func Render(w io.Writer, n *html.Node) error {
	if err := html.Render(w, n); err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}
	return nil
}

// RenderString serializes n and its descendants to a string.
func RenderString(n *html.Node) (string, error) {
	var buf strings.Builder
	if err := Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// InnerHTML returns the serialized markup of n's children.
func InnerHTML(n *html.Node) string {
	return htmlquery.OutputHTML(n, false)
}

// InnerText returns the concatenated text of n's descendants.
func InnerText(n *html.Node) string {
	return htmlquery.InnerText(n)
}

// SetInnerHTML replaces n's children with the nodes parsed from markup.
// The markup is parsed in n's context, so "<code>x</code>" inside a span
// stays an inline element.
func SetInnerHTML(n *html.Node, markup string) error {
	nodes, err := html.ParseFragment(strings.NewReader(markup), n)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	for _, c := range nodes {
		n.AppendChild(c)
	}
	return nil
}

// ParseFragment parses markup as children of a body element.
// The returned nodes are detached and can be appended anywhere.
func ParseFragment(markup string) ([]*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return nodes, nil
}

// NewElement creates a detached element. attrs are key/value pairs.
func NewElement(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

// Attr returns the value of the attribute key, or "" if absent.
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// HasAttr reports whether n carries the attribute key.
func HasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

// SetAttr sets the attribute key on n, replacing any existing value.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr deletes the attribute key from n if present.
func RemoveAttr(n *html.Node, key string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// ElementChildren returns the direct element children of n in document order.
// Text, comment and doctype nodes are skipped.
func ElementChildren(n *html.Node) []*html.Node {
	var children []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, c)
		}
	}
	return children
}

// Prepend inserts child as the first child of parent.
func Prepend(parent, child *html.Node) {
	parent.InsertBefore(child, parent.FirstChild)
}
