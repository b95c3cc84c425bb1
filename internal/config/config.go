package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/alnah/go-outline/internal/dom"
	"github.com/alnah/go-outline/internal/fileutil"
	"github.com/alnah/go-outline/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidConfig   = errors.New("invalid config")
)

// AppDir is the directory name under the user config directory.
const AppDir = "go-outline"

// Field length limits.
const (
	MaxPathLength     = 4096
	MaxSelectorLength = 512
	MaxKeyLength      = 128
)

// Default values, matching the structure emitted by the page templates.
const (
	DefaultArticleSelector    = "//article[@class='main-article']"
	DefaultTitleSelector      = "h1"
	DefaultContentSelector    = "div[@class='content']"
	DefaultOutlineSelector    = "//*[@id='outline']"
	DefaultScrollableSelector = "*[@id='outline-scrollable']"
	DefaultDisableKey         = "mimo_disableArticleMenu"
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "text"
)

// Config holds all configuration for outline generation.
type Config struct {
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	Selectors SelectorsConfig `yaml:"selectors"`
	Outline   OutlineConfig   `yaml:"outline"`
	Markdown  MarkdownConfig  `yaml:"markdown"`
	Log       LogConfig       `yaml:"log"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // empty = must specify
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // empty = rewrite in place
}

// SelectorsConfig holds the XPath expressions locating the page structure.
// Title and content are relative to the article, scrollable to the outline.
type SelectorsConfig struct {
	Article    string `yaml:"article"`
	Title      string `yaml:"title"`
	Content    string `yaml:"content"`
	Outline    string `yaml:"outline"`
	Scrollable string `yaml:"scrollable"`
}

// OutlineConfig defines outline generation options.
type OutlineConfig struct {
	DisableKey string `yaml:"disableKey"` // metadata key that opts a page out
	Sanitize   bool   `yaml:"sanitize"`   // restrict heading markup to inline formatting
}

// MarkdownConfig defines Markdown page rendering options.
type MarkdownConfig struct {
	Template  string `yaml:"template"` // page template file, empty = embedded default
	Style     string `yaml:"style"`    // stylesheet name or path, empty = embedded default
	Highlight bool   `yaml:"highlight"`
}

// LogConfig defines logging options.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Selectors: SelectorsConfig{
			Article:    DefaultArticleSelector,
			Title:      DefaultTitleSelector,
			Content:    DefaultContentSelector,
			Outline:    DefaultOutlineSelector,
			Scrollable: DefaultScrollableSelector,
		},
		Outline:  OutlineConfig{DisableKey: DefaultDisableKey},
		Markdown: MarkdownConfig{Highlight: true},
		Log:      LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}

// Validate checks field lengths, selector syntax and enumerated values.
// Called automatically by LoadConfig, but available for callers that build
// a Config by hand.
func (c *Config) Validate() error {
	lengths := []struct {
		name  string
		value string
		max   int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"selectors.article", c.Selectors.Article, MaxSelectorLength},
		{"selectors.title", c.Selectors.Title, MaxSelectorLength},
		{"selectors.content", c.Selectors.Content, MaxSelectorLength},
		{"selectors.outline", c.Selectors.Outline, MaxSelectorLength},
		{"selectors.scrollable", c.Selectors.Scrollable, MaxSelectorLength},
		{"outline.disableKey", c.Outline.DisableKey, MaxKeyLength},
		{"markdown.template", c.Markdown.Template, MaxPathLength},
		{"markdown.style", c.Markdown.Style, MaxPathLength},
	}
	for _, f := range lengths {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	rules := []struct {
		name  string
		value string
		rules []validation.Rule
	}{
		{"selectors.article", c.Selectors.Article, []validation.Rule{validation.Required, validation.By(validSelector)}},
		{"selectors.title", c.Selectors.Title, []validation.Rule{validation.Required, validation.By(validSelector)}},
		{"selectors.content", c.Selectors.Content, []validation.Rule{validation.Required, validation.By(validSelector)}},
		{"selectors.outline", c.Selectors.Outline, []validation.Rule{validation.Required, validation.By(validSelector)}},
		{"selectors.scrollable", c.Selectors.Scrollable, []validation.Rule{validation.Required, validation.By(validSelector)}},
		{"outline.disableKey", c.Outline.DisableKey, []validation.Rule{validation.Required}},
		{"log.level", strings.ToLower(c.Log.Level), []validation.Rule{validation.In("debug", "info", "warn", "error")}},
		{"log.format", strings.ToLower(c.Log.Format), []validation.Rule{validation.In("text", "json")}},
	}
	for _, f := range rules {
		if err := validation.Validate(f.value, f.rules...); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, f.name, err)
		}
	}

	return nil
}

// validSelector is a validation rule accepting compilable XPath expressions.
func validSelector(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := dom.Compile(s); err != nil {
		return validation.NewError("validation_xpath_invalid", err.Error())
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys missing from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Marshal returns the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yamlutil.Marshal(c)
}

// SearchPaths lists the files LoadConfig tries for a config name, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name: current directory
// first, then the user config directory.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
