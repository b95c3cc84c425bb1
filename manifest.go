package outline

import (
	"context"
	"path/filepath"

	"github.com/alnah/go-outline/internal/manifest"
)

// ProcessManifest outlines every article page listed in the build manifest
// of outputFolder, rewriting the pages in place.
//
// Only items of type Conceptual are considered. Items whose metadata sets
// the disable key are reported as skipped without being read. Items without
// an HTML output are ignored.
//
// Returns ErrNullOutputPath before touching the filesystem when outputFolder
// is empty, and ErrManifestRead or ErrManifestParse when the manifest cannot
// be loaded. Per-page failures are reported in the results.
func (g *Generator) ProcessManifest(ctx context.Context, outputFolder string, workers int) ([]FileResult, error) {
	if outputFolder == "" {
		return nil, ErrNullOutputPath
	}

	m, err := manifest.Load(filepath.Join(outputFolder, manifest.FileName))
	if err != nil {
		return nil, err
	}

	items := m.Conceptual()
	jobs := make([]Job, 0, len(items))
	for _, it := range items {
		rel, ok := it.HTMLRelPath()
		if !ok {
			g.logger.Debug("manifest item has no html output", "source", it.SourceRelativePath)
			continue
		}
		path := filepath.Join(outputFolder, filepath.FromSlash(rel))
		jobs = append(jobs, Job{
			InputPath:  path,
			OutputPath: path,
			Kind:       KindHTML,
			Disabled:   it.Flag(g.cfg.disableKey),
		})
	}

	g.logger.Info("manifest loaded", "folder", outputFolder, "files", len(m.Files), "pages", len(jobs))
	return g.ProcessBatch(ctx, jobs, workers), nil
}
