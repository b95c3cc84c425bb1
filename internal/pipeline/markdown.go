package pipeline

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/alnah/go-outline/internal/dom"
)

// Page is a rendered HTML page ready for outline generation.
type Page struct {
	HTML  string
	Title string
	Meta  FrontMatter
}

// PageBuilder renders Markdown sources into complete pages.
// It is safe for concurrent use.
type PageBuilder struct {
	converter HTMLConverter
	renderer  *PageRenderer
	style     string
}

// NewPageBuilder creates a PageBuilder. style is inlined into every page and
// may be empty.
func NewPageBuilder(converter HTMLConverter, renderer *PageRenderer, style string) *PageBuilder {
	return &PageBuilder{
		converter: converter,
		renderer:  renderer,
		style:     style,
	}
}

// Build renders a Markdown source into a page. The title comes from front
// matter, then from the first h1, then from fallbackTitle.
func (b *PageBuilder) Build(ctx context.Context, source []byte, fallbackTitle string) (*Page, error) {
	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}

	fragment, err := b.converter.ToHTML(ctx, PreprocessMarkdown(string(body)))
	if err != nil {
		return nil, err
	}
	fragment = FinishHighlights(fragment)

	nodes, err := dom.ParseFragment(fragment)
	if err != nil {
		return nil, fmt.Errorf("parsing converted markdown: %w", err)
	}

	nodes, headingHTML, headingText, found := ExtractTitle(nodes)

	data := &PageData{
		Lang:  meta.Lang,
		Style: template.CSS(b.style), // #nosec G203 -- stylesheet comes from trusted assets
	}
	switch {
	case meta.Title != "":
		data.Title = meta.Title
		data.TitleHTML = template.HTML(template.HTMLEscapeString(meta.Title)) // #nosec G203 -- escaped
	case found:
		data.Title = strings.TrimSpace(headingText)
		data.TitleHTML = template.HTML(headingHTML) // #nosec G203 -- produced by goldmark without raw HTML
	default:
		data.Title = fallbackTitle
		data.TitleHTML = template.HTML(template.HTMLEscapeString(fallbackTitle)) // #nosec G203 -- escaped
	}

	nodes = Sectionize(nodes)
	RewriteMarkdownLinks(nodes)

	var content strings.Builder
	for _, n := range nodes {
		if err := dom.Render(&content, n); err != nil {
			return nil, err
		}
	}
	data.Body = template.HTML(content.String()) // #nosec G203 -- produced by goldmark without raw HTML

	pageHTML, err := b.renderer.Render(data)
	if err != nil {
		return nil, err
	}

	return &Page{
		HTML:  pageHTML,
		Title: data.Title,
		Meta:  meta,
	}, nil
}
