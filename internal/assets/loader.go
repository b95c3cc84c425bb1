package assets

import (
	"fmt"
	"strings"
)

// AssetLoader supplies the two assets a generated page depends on: the
// stylesheet inlined into the page head and the page template that wraps
// sectioned Markdown content around the outline containers.
type AssetLoader interface {
	// LoadStyle returns the stylesheet stored as name + ".css".
	LoadStyle(name string) (string, error)

	// LoadTemplate returns the page template stored as name + ".html". The
	// template must provide the outline and scrollable containers.
	LoadTemplate(name string) (string, error)
}

// ValidateAssetName rejects names that could escape the asset directory or
// pick a different extension: blank names, path separators, dots and NUL.
func ValidateAssetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if i := strings.IndexAny(name, "/\\.\x00"); i >= 0 {
		return fmt.Errorf("%w: %q has %q at offset %d", ErrInvalidAssetName, name, name[i], i)
	}
	return nil
}
