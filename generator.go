package outline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/net/html"

	"github.com/alnah/go-outline/internal/assets"
	"github.com/alnah/go-outline/internal/dom"
	"github.com/alnah/go-outline/internal/fileutil"
	"github.com/alnah/go-outline/internal/logging"
	"github.com/alnah/go-outline/internal/manifest"
	tree "github.com/alnah/go-outline/internal/outline"
	"github.com/alnah/go-outline/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)
	_ assets.AssetLoader     = (*assets.AssetResolver)(nil)
	_ AssetLoader            = (*assetLoaderAdapter)(nil)
)

// metaSelector finds named meta tags, which carry page metadata in
// rendered HTML.
var metaSelector = dom.MustCompile("//meta[@name]")

// compiledSelectors holds the structural selectors, compiled once.
type compiledSelectors struct {
	article    *dom.Selector
	title      *dom.Selector
	content    *dom.Selector
	outline    *dom.Selector
	scrollable *dom.Selector
}

// Generator inserts outlines into HTML documents.
// Create with New. A Generator is immutable and safe for concurrent use.
type Generator struct {
	cfg      generatorConfig
	sel      compiledSelectors
	renderer tree.Renderer
	loader   assets.AssetLoader
	pages    *pipeline.PageBuilder
	style    string // resolved stylesheet, empty when none was requested
	logger   *slog.Logger
}

// publicToInternalAdapter wraps a public AssetLoader as an internal one.
type publicToInternalAdapter struct {
	pub AssetLoader
}

func (a *publicToInternalAdapter) LoadStyle(name string) (string, error) {
	return a.pub.LoadStyle(name)
}

func (a *publicToInternalAdapter) LoadTemplate(name string) (string, error) {
	return a.pub.LoadTemplate(name)
}

// New creates a Generator. Use options to customize selectors, sanitizing,
// assets and logging.
// Returns error if a selector does not compile or an asset cannot be loaded.
func New(opts ...Option) (*Generator, error) {
	cfg := generatorConfig{
		selectors:  DefaultSelectors(),
		disableKey: DefaultDisableKey,
		highlight:  true,
		logger:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Generator{
		cfg:    cfg,
		loader: assets.NewEmbeddedLoader(),
		logger: cfg.logger,
	}

	if err := g.compileSelectors(); err != nil {
		return nil, err
	}

	if cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(cfg.assetPath)
		if err != nil {
			return nil, convertAssetError(err)
		}
		g.loader = resolver
	}
	if cfg.publicAssetLoader != nil {
		g.loader = &publicToInternalAdapter{pub: cfg.publicAssetLoader}
	}

	g.renderer = tree.Renderer{Filter: g.contentFilter()}

	if err := g.resolveStyle(); err != nil {
		return nil, err
	}
	if err := g.initPages(); err != nil {
		return nil, err
	}

	return g, nil
}

func (g *Generator) compileSelectors() error {
	s := g.cfg.selectors
	targets := []struct {
		name string
		expr string
		dst  **dom.Selector
	}{
		{"article", s.Article, &g.sel.article},
		{"title", s.Title, &g.sel.title},
		{"content", s.Content, &g.sel.content},
		{"outline", s.Outline, &g.sel.outline},
		{"scrollable", s.Scrollable, &g.sel.scrollable},
	}
	for _, t := range targets {
		compiled, err := dom.Compile(t.expr)
		if err != nil {
			return fmt.Errorf("%s selector: %w", t.name, err)
		}
		*t.dst = compiled
	}
	return nil
}

// contentFilter chains the custom filter and the sanitizer.
func (g *Generator) contentFilter() tree.ContentFilter {
	custom := g.cfg.filter
	var sanitizer *pipeline.HeadingSanitizer
	if g.cfg.sanitize {
		sanitizer = pipeline.NewHeadingSanitizer()
	}

	switch {
	case custom == nil && sanitizer == nil:
		return nil
	case sanitizer == nil:
		return tree.ContentFilter(custom)
	case custom == nil:
		return sanitizer.Sanitize
	default:
		return func(markup string) string {
			return sanitizer.Sanitize(custom(markup))
		}
	}
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS.
func (g *Generator) resolveStyle() error {
	input := g.cfg.styleInput
	if input == "" {
		return nil
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		g.style = string(content)
		return nil
	}

	// CSS content? (contains {)
	if fileutil.IsCSS(input) {
		g.style = input
		return nil
	}

	css, err := g.loader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, convertAssetError(err))
	}
	g.style = css
	return nil
}

// initPages prepares the Markdown page builder.
func (g *Generator) initPages() error {
	tmpl, err := g.loadTemplate()
	if err != nil {
		return err
	}
	renderer, err := pipeline.NewPageRenderer(tmpl)
	if err != nil {
		return err
	}

	// Markdown pages carry the default stylesheet unless one was requested.
	style := g.style
	if style == "" {
		style, err = g.loader.LoadStyle(DefaultStyle)
		if err != nil {
			return fmt.Errorf("loading default style: %w", convertAssetError(err))
		}
	}

	g.pages = pipeline.NewPageBuilder(pipeline.NewGoldmarkConverter(g.cfg.highlight), renderer, style)
	return nil
}

func (g *Generator) loadTemplate() (string, error) {
	input := g.cfg.templateInput
	if input == "" {
		input = DefaultTemplate
	}

	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("loading template file %q: %w", input, err)
		}
		return string(content), nil
	}

	tmpl, err := g.loader.LoadTemplate(input)
	if err != nil {
		return "", fmt.Errorf("loading template %q: %w", input, convertAssetError(err))
	}
	return tmpl, nil
}

// Process inserts the outline into one HTML document.
// Documents flagged as disabled, by input or by a <meta> tag named after
// the disable key, are returned unchanged with Result.Skipped set.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (g *Generator) Process(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(input.HTML)) == 0 {
		return nil, ErrEmptyDocument
	}
	if input.Disabled {
		g.logger.Debug("outline disabled", "name", input.Name)
		return &Result{HTML: input.HTML, Skipped: true}, nil
	}

	doc, err := dom.Parse(bytes.NewReader(input.HTML))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseDocument, err)
	}
	if g.disabledByMeta(doc) {
		g.logger.Debug("outline disabled by meta tag", "name", input.Name, "key", g.cfg.disableKey)
		return &Result{HTML: input.HTML, Skipped: true}, nil
	}

	sections, err := g.insertOutline(doc)
	if err != nil {
		return nil, err
	}
	pipeline.InjectStyle(doc, g.style)

	out, err := renderDocument(doc)
	if err != nil {
		return nil, err
	}

	g.logger.Debug("outline inserted", "name", input.Name, "sections", sections)
	return &Result{HTML: out, Sections: sections}, nil
}

// disabledByMeta reports whether the document carries
// <meta name="{disableKey}" content="true">.
func (g *Generator) disabledByMeta(doc *html.Node) bool {
	for _, m := range metaSelector.All(doc) {
		if dom.Attr(m, "name") == g.cfg.disableKey {
			return manifest.Truthy(dom.Attr(m, "content"))
		}
	}
	return false
}

// insertOutline builds, renders and inserts the outline of doc.
// Every container is resolved before the document is mutated, so a failure
// leaves doc untouched.
func (g *Generator) insertOutline(doc *html.Node) (int, error) {
	article := g.sel.article.First(doc)
	if article == nil {
		return 0, fmt.Errorf("%w: article %s", ErrMissingContainer, g.sel.article)
	}
	title := g.sel.title.First(article)
	if title == nil {
		return 0, fmt.Errorf("%w: title %s", ErrMissingContainer, g.sel.title)
	}
	content := g.sel.content.First(article)
	if content == nil {
		return 0, fmt.Errorf("%w: content %s", ErrMissingContainer, g.sel.content)
	}
	outlineEl := g.sel.outline.First(doc)
	if outlineEl == nil {
		return 0, fmt.Errorf("%w: outline %s", ErrMissingContainer, g.sel.outline)
	}

	root := tree.NewRoot(dom.InnerHTML(title))
	if err := tree.Build(content, root); err != nil {
		return 0, err
	}

	titleLink, err := g.renderer.RenderTitle(root)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRenderDocument, err)
	}
	list, err := g.renderer.RenderList(root)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRenderDocument, err)
	}

	if err := tree.Insert(outlineEl, g.sel.scrollable, titleLink, list); err != nil {
		return 0, err
	}
	return root.Count(), nil
}

func renderDocument(doc *html.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := dom.Render(&buf, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderDocument, err)
	}
	return buf.Bytes(), nil
}
