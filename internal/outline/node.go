package outline

// RootHref is the self-link target of the outline root.
const RootHref = "#"

// Node is one heading-bearing section in the outline.
// A tree of Nodes is built once per document and never mutated after Build returns.
type Node struct {
	Content  string  // heading inner markup, not escaped
	Level    int     // 1-6, from the section's own heading tag
	Href     string  // "#" for the root, "#"+sectionID otherwise
	Children []*Node // document order
}

// NewRoot creates the outline root for a document whose top-level heading
// has the given inner markup.
func NewRoot(content string) *Node {
	return &Node{
		Content: content,
		Level:   1,
		Href:    RootHref,
	}
}

// Count returns the number of nodes below n, n itself excluded.
func (n *Node) Count() int {
	total := 0
	for _, c := range n.Children {
		total += 1 + c.Count()
	}
	return total
}

// Walk visits n and its descendants in pre-order. Returning false from fn
// stops descent into that node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}
