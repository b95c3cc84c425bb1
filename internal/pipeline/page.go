package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
)

// Sentinel errors for page rendering.
var (
	ErrPageTemplate = errors.New("page template is invalid")
	ErrPageRender   = errors.New("page template rendering failed")
)

// PageData is the input of a page template.
type PageData struct {
	Lang      string
	Title     string        // plain text, for <title>
	TitleHTML template.HTML // top-level heading markup
	Body      template.HTML // sectioned content
	Style     template.CSS
}

// PageRenderer wraps sectioned content into a complete HTML page.
// It is safe for concurrent use.
type PageRenderer struct {
	tmpl *template.Template
}

// NewPageRenderer parses a page template.
func NewPageRenderer(tmplContent string) (*PageRenderer, error) {
	tmpl, err := template.New("page").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageTemplate, err)
	}
	return &PageRenderer{tmpl: tmpl}, nil
}

// Render executes the page template.
func (p *PageRenderer) Render(data *PageData) (string, error) {
	if data.Lang == "" {
		data.Lang = "en"
	}

	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return buf.String(), nil
}
