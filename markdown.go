package outline

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-outline/internal/dom"
)

// RenderMarkdown renders a Markdown source into a page and inserts its
// outline. name is the page title used when neither front matter nor a
// top-level heading provides one.
//
// Every h2-h6 heading opens a section, so the rendered page satisfies the
// structure Process expects when the default template is used. A page whose
// front matter sets the disable key is rendered without an outline and
// reported as skipped.
func (g *Generator) RenderMarkdown(ctx context.Context, source []byte, name string) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if len(strings.TrimSpace(string(source))) == 0 {
		return nil, ErrEmptyDocument
	}

	page, err := g.pages.Build(ctx, source, name)
	if err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}

	if page.Meta.Flag(g.cfg.disableKey) {
		g.logger.Debug("outline disabled by front matter", "name", name)
		return &Result{HTML: []byte(page.HTML), Skipped: true}, nil
	}

	doc, err := dom.ParseString(page.HTML)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseDocument, err)
	}

	sections, err := g.insertOutline(doc)
	if err != nil {
		return nil, err
	}

	out, err := renderDocument(doc)
	if err != nil {
		return nil, err
	}

	g.logger.Debug("markdown page rendered", "name", name, "title", page.Title, "sections", sections)
	return &Result{HTML: out, Sections: sections}, nil
}
