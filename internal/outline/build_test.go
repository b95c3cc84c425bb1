package outline

import (
	"errors"
	"reflect"
	"testing"

	"golang.org/x/net/html"

	"github.com/alnah/go-outline/internal/dom"
)

var contentSelector = dom.MustCompile("//div[@class='content']")

// parseContent parses body markup wrapped in a content div and returns the div.
func parseContent(t *testing.T, body string) *html.Node {
	t.Helper()

	doc, err := dom.ParseString(`<!DOCTYPE html><html><body><div class="content">` + body + `</div></body></html>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	content := contentSelector.First(doc)
	if content == nil {
		t.Fatal("content container not found")
	}
	return content
}

// flatNode is a comparable projection of Node used by assertions.
type flatNode struct {
	Depth   int
	Level   int
	Href    string
	Content string
}

func flatten(root *Node) []flatNode {
	var out []flatNode
	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		for _, c := range n.Children {
			out = append(out, flatNode{Depth: depth, Level: c.Level, Href: c.Href, Content: c.Content})
			walk(c, depth+1)
		}
	}
	walk(root, 1)
	return out
}

const guideBody = `<section id="setup"><header><h2>Setup</h2></header><p>Intro</p>` +
	`<section id="install"><header><h3>Install</h3></header><p>Run it.</p></section>` +
	`</section>` +
	`<section id="usage"><header><h2>Usage</h2></header><p>Use it.</p></section>`

func TestBuild(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want []flatNode
	}{
		{
			name: "guide example",
			body: guideBody,
			want: []flatNode{
				{Depth: 1, Level: 2, Href: "#setup", Content: "Setup"},
				{Depth: 2, Level: 3, Href: "#install", Content: "Install"},
				{Depth: 1, Level: 2, Href: "#usage", Content: "Usage"},
			},
		},
		{
			name: "no sections",
			body: `<p>Just text.</p><ul><li>item</li></ul>`,
			want: nil,
		},
		{
			name: "blockquote sub-tree is ignored",
			body: `<section id="a"><header><h2>A</h2></header>` +
				`<blockquote><section id="quoted"><header><h3>Quoted</h3></header></section></blockquote>` +
				`</section>` +
				`<div><section id="wrapped"><header><h2>Wrapped</h2></header></section></div>`,
			want: []flatNode{
				{Depth: 1, Level: 2, Href: "#a", Content: "A"},
			},
		},
		{
			name: "level comes from heading tag not nesting",
			body: `<section id="a"><header><h2>A</h2></header>` +
				`<section id="deep"><header><h4>Deep</h4></header></section>` +
				`</section>`,
			want: []flatNode{
				{Depth: 1, Level: 2, Href: "#a", Content: "A"},
				{Depth: 2, Level: 4, Href: "#deep", Content: "Deep"},
			},
		},
		{
			name: "inline markup preserved",
			body: `<section id="api"><header><h2>The <code>Run</code> method</h2></header></section>`,
			want: []flatNode{
				{Depth: 1, Level: 2, Href: "#api", Content: "The <code>Run</code> method"},
			},
		},
		{
			name: "first heading in header wins",
			body: `<section id="a"><header><p>kicker</p><h3>Real</h3><h2>Ignored</h2></header></section>`,
			want: []flatNode{
				{Depth: 1, Level: 3, Href: "#a", Content: "Real"},
			},
		},
		{
			name: "section without id",
			body: `<section><header><h2>Anonymous</h2></header></section>`,
			want: []flatNode{
				{Depth: 1, Level: 2, Href: "#", Content: "Anonymous"},
			},
		},
		{
			name: "all six levels captured",
			body: `<section id="l2"><header><h2>2</h2></header>` +
				`<section id="l3"><header><h3>3</h3></header>` +
				`<section id="l4"><header><h4>4</h4></header>` +
				`<section id="l5"><header><h5>5</h5></header>` +
				`<section id="l6"><header><h6>6</h6></header></section>` +
				`</section></section></section></section>`,
			want: []flatNode{
				{Depth: 1, Level: 2, Href: "#l2", Content: "2"},
				{Depth: 2, Level: 3, Href: "#l3", Content: "3"},
				{Depth: 3, Level: 4, Href: "#l4", Content: "4"},
				{Depth: 4, Level: 5, Href: "#l5", Content: "5"},
				{Depth: 5, Level: 6, Href: "#l6", Content: "6"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := NewRoot("Guide")
			if err := Build(parseContent(t, tt.body), root); err != nil {
				t.Fatalf("Build() error = %v", err)
			}

			got := flatten(root)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Build() tree = %+v, want %+v", got, tt.want)
			}
			if root.Count() != len(tt.want) {
				t.Errorf("Count() = %d, want %d", root.Count(), len(tt.want))
			}
		})
	}
}

func TestBuild_RootUntouched(t *testing.T) {
	t.Parallel()

	root := NewRoot("Guide <em>v2</em>")
	if err := Build(parseContent(t, guideBody), root); err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if root.Level != 1 || root.Href != "#" || root.Content != "Guide <em>v2</em>" {
		t.Errorf("root = {%d %q %q}, want {1 \"#\" \"Guide <em>v2</em>\"}", root.Level, root.Href, root.Content)
	}
}

func TestBuild_MissingHeading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{
			name: "no header",
			body: `<section id="bare"><h2>Outside header</h2></section>`,
		},
		{
			name: "empty header",
			body: `<section id="bare"><header></header></section>`,
		},
		{
			name: "header without heading",
			body: `<section id="bare"><header><p>Not a heading</p></header></section>`,
		},
		{
			name: "heading nested too deep in header",
			body: `<section id="bare"><header><div><h2>Wrapped</h2></div></header></section>`,
		},
		{
			name: "nested section missing heading",
			body: `<section id="ok"><header><h2>OK</h2></header><section id="bare"></section></section>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Build(parseContent(t, tt.body), NewRoot("Doc"))
			if !errors.Is(err, ErrMissingHeading) {
				t.Fatalf("Build() error = %v, want ErrMissingHeading", err)
			}
		})
	}
}

func TestHeadingLevel(t *testing.T) {
	t.Parallel()

	doc := parseContent(t, `<h1>1</h1><h2>2</h2><h3>3</h3><h4>4</h4><h5>5</h5><h6>6</h6><p>p</p>`)
	children := dom.ElementChildren(doc)

	for i, n := range children[:6] {
		level, ok := HeadingLevel(n)
		if !ok || level != i+1 {
			t.Errorf("HeadingLevel(<%s>) = %d, %v; want %d, true", n.Data, level, ok, i+1)
		}
	}
	if _, ok := HeadingLevel(children[6]); ok {
		t.Error("HeadingLevel(<p>) reported a heading")
	}
	if _, ok := HeadingLevel(nil); ok {
		t.Error("HeadingLevel(nil) reported a heading")
	}
}
