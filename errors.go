package outline

import (
	"errors"

	"github.com/alnah/go-outline/internal/dom"
	"github.com/alnah/go-outline/internal/manifest"
	tree "github.com/alnah/go-outline/internal/outline"
	"github.com/alnah/go-outline/internal/pipeline"
)

// Structural errors. Both abort the document being processed.
var (
	// ErrMissingContainer means the article, its title heading, its content
	// container, the outline container or its scrollable region is absent.
	ErrMissingContainer = tree.ErrMissingContainer

	// ErrMissingHeading means a section has no h1-h6 heading in its header.
	ErrMissingHeading = tree.ErrMissingHeading
)

// Sentinel errors for library operations.
var (
	ErrNullOutputPath  = errors.New("output folder cannot be empty")
	ErrEmptyDocument   = errors.New("document cannot be empty")
	ErrParseDocument   = errors.New("failed to parse document")
	ErrRenderDocument  = errors.New("failed to render document")
	ErrInvalidSelector = dom.ErrInvalidSelector
	ErrReadInput       = errors.New("failed to read input file")
	ErrWriteOutput     = errors.New("failed to write output file")

	// Manifest errors.
	ErrManifestRead  = manifest.ErrRead
	ErrManifestParse = manifest.ErrParse

	// Markdown errors.
	ErrMarkdownConversion = pipeline.ErrMarkdownConversion
	ErrFrontMatter        = pipeline.ErrFrontMatter
	ErrPageTemplate       = pipeline.ErrPageTemplate
	ErrPageRender         = pipeline.ErrPageRender

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
