package outline

import (
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-outline/internal/config"
)

// Selectors holds the XPath expressions locating the page structure.
// Title and Content are evaluated relative to the article element,
// Scrollable relative to the outline container.
type Selectors struct {
	Article    string
	Title      string
	Content    string
	Outline    string
	Scrollable string
}

// DefaultSelectors returns the selectors matching the bundled page template.
func DefaultSelectors() Selectors {
	return Selectors{
		Article:    config.DefaultArticleSelector,
		Title:      config.DefaultTitleSelector,
		Content:    config.DefaultContentSelector,
		Outline:    config.DefaultOutlineSelector,
		Scrollable: config.DefaultScrollableSelector,
	}
}

// DefaultDisableKey is the metadata key that opts a page out of the outline.
const DefaultDisableKey = config.DefaultDisableKey

// Input is one HTML document to outline.
type Input struct {
	HTML     []byte
	Name     string // used in log records only
	Disabled bool   // skip outline generation and return HTML unchanged
}

// Result is the outcome of processing one document.
type Result struct {
	HTML     []byte
	Skipped  bool // the document opted out; HTML is the input unchanged
	Sections int  // outline nodes below the root
}

// Kind selects how a file is read.
type Kind int

const (
	// KindHTML files are rendered pages outlined in place.
	KindHTML Kind = iota
	// KindMarkdown files are rendered to a page first.
	KindMarkdown
)

// String returns the kind name.
func (k Kind) String() string {
	if k == KindMarkdown {
		return "markdown"
	}
	return "html"
}

// KindFromPath infers the kind of a file from its extension.
func KindFromPath(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return KindMarkdown
	default:
		return KindHTML
	}
}

// Job is one file to process. OutputPath may equal InputPath.
type Job struct {
	InputPath  string
	OutputPath string
	Kind       Kind
	Disabled   bool // opted out by external metadata, such as a build manifest
}

// FileResult holds the outcome of a single file.
type FileResult struct {
	InputPath  string
	OutputPath string
	Skipped    bool
	Written    bool
	Sections   int
	Err        error
	Duration   time.Duration
}

// ContentFilter rewrites heading markup before it is placed into the outline.
type ContentFilter func(markup string) string

// Option configures a Generator.
type Option func(*generatorConfig)

// generatorConfig holds the settings applied by options.
type generatorConfig struct {
	selectors         Selectors
	disableKey        string
	sanitize          bool
	filter            ContentFilter
	highlight         bool
	assetPath         string
	publicAssetLoader AssetLoader
	templateInput     string // name or file path
	styleInput        string // name, file path or CSS content
	logger            *slog.Logger
}

// WithSelectors replaces the structural selectors. Empty fields keep their
// defaults.
func WithSelectors(s Selectors) Option {
	return func(c *generatorConfig) {
		if s.Article != "" {
			c.selectors.Article = s.Article
		}
		if s.Title != "" {
			c.selectors.Title = s.Title
		}
		if s.Content != "" {
			c.selectors.Content = s.Content
		}
		if s.Outline != "" {
			c.selectors.Outline = s.Outline
		}
		if s.Scrollable != "" {
			c.selectors.Scrollable = s.Scrollable
		}
	}
}

// WithDisableKey sets the metadata key that opts a page out of the outline.
// It is read from Markdown front matter, build manifest metadata and
// <meta name="..."> tags of HTML documents.
func WithDisableKey(key string) Option {
	return func(c *generatorConfig) {
		if key != "" {
			c.disableKey = key
		}
	}
}

// WithSanitizer restricts heading markup copied into the outline to inline
// formatting. Links, images and scripts are dropped.
func WithSanitizer(enabled bool) Option {
	return func(c *generatorConfig) {
		c.sanitize = enabled
	}
}

// WithContentFilter sets a function applied to heading markup before it is
// placed into the outline. It runs before the sanitizer.
func WithContentFilter(f ContentFilter) Option {
	return func(c *generatorConfig) {
		c.filter = f
	}
}

// WithHighlighting toggles syntax highlighting of Markdown code blocks.
func WithHighlighting(enabled bool) Option {
	return func(c *generatorConfig) {
		c.highlight = enabled
	}
}

// WithAssetPath looks up styles and templates under basePath before
// falling back to the embedded assets.
func WithAssetPath(basePath string) Option {
	return func(c *generatorConfig) {
		c.assetPath = basePath
	}
}

// WithAssetLoader sets a custom asset loader. It takes precedence over
// WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *generatorConfig) {
		c.publicAssetLoader = loader
	}
}

// WithTemplate sets the Markdown page template by name or file path.
func WithTemplate(nameOrPath string) Option {
	return func(c *generatorConfig) {
		c.templateInput = nameOrPath
	}
}

// WithStyle sets the stylesheet by name, file path or CSS content.
// Markdown pages inline it in their template; HTML documents get it
// appended to their head.
func WithStyle(input string) Option {
	return func(c *generatorConfig) {
		c.styleInput = input
	}
}

// WithLogger sets the logger. The default discards all records.
func WithLogger(logger *slog.Logger) Option {
	return func(c *generatorConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}
