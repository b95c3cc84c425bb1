// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// configDirMarker identifies the user config directory among searched paths.
var configDirMarker = string(filepath.Separator) + "go-outline" + string(filepath.Separator)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, configDirMarker) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForMissingContainer returns hints for pages lacking the outline structure.
func ForMissingContainer() string {
	return formatHints([]string{
		`pages need <article class="main-article"> with an h1 and <div class="content">, plus #outline holding #outline-scrollable`,
		"set selectors in the config file to match another layout",
	})
}

// ForMissingHeading returns hints for sections without a heading.
func ForMissingHeading() string {
	return format("every <section> needs a <header> whose first heading is h1-h6")
}

// ForManifestNotFound returns hints for a missing build manifest.
func ForManifestNotFound(outputFolder string) string {
	return format("run after the site build; expected " + filepath.Join(outputFolder, "manifest.json"))
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
