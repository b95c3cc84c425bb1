package main

import (
	"errors"
	"os"

	outline "github.com/alnah/go-outline"
	"github.com/alnah/go-outline/internal/config"
)

// Exit codes for the docoutline CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess   = 0 // All pages processed or skipped
	ExitGeneral   = 1 // General/unexpected error
	ExitUsage     = 2 // Invalid flags, config, selectors or assets
	ExitIO        = 3 // File not found, permission denied
	ExitStructure = 4 // Page or manifest does not have the expected structure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Structure errors (exit 4)
	if errors.Is(err, outline.ErrMissingContainer) ||
		errors.Is(err, outline.ErrMissingHeading) ||
		errors.Is(err, outline.ErrManifestParse) ||
		errors.Is(err, outline.ErrParseDocument) ||
		errors.Is(err, outline.ErrEmptyDocument) ||
		errors.Is(err, outline.ErrFrontMatter) ||
		errors.Is(err, outline.ErrMarkdownConversion) {
		return ExitStructure
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, outline.ErrReadInput) ||
		errors.Is(err, outline.ErrWriteOutput) ||
		errors.Is(err, outline.ErrManifestRead) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrConfigExists) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, outline.ErrNullOutputPath) ||
		errors.Is(err, outline.ErrInvalidSelector) ||
		errors.Is(err, outline.ErrStyleNotFound) ||
		errors.Is(err, outline.ErrTemplateNotFound) ||
		errors.Is(err, outline.ErrInvalidAssetPath) ||
		errors.Is(err, outline.ErrPageTemplate) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) {
		return ExitUsage
	}

	return ExitGeneral
}
