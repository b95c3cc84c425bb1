package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	outline "github.com/alnah/go-outline"
	"github.com/alnah/go-outline/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrInvalidExtension   = errors.New("unexpected file extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// extensions lists the file extensions accepted for each kind.
var extensions = map[outline.Kind][]string{
	outline.KindHTML:     {".html", ".htm"},
	outline.KindMarkdown: {".md", ".markdown"},
}

// discoverJobs finds the files of the given kind under inputPath.
//
// HTML pages are rewritten in place unless outputDir is set. Markdown
// sources produce a .html page next to the source unless outputDir is set.
// With outputDir, the layout below inputPath is preserved.
func discoverJobs(inputPath, outputDir string, kind outline.Kind) ([]outline.Job, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateExtension(inputPath, kind); err != nil {
			return nil, err
		}
		return []outline.Job{{
			InputPath:  inputPath,
			OutputPath: resolveOutputPath(inputPath, outputDir, "", kind),
			Kind:       kind,
		}}, nil
	}

	var jobs []outline.Job
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !hasExtension(path, kind) {
			return nil
		}
		jobs = append(jobs, outline.Job{
			InputPath:  path,
			OutputPath: resolveOutputPath(path, outputDir, inputPath, kind),
			Kind:       kind,
		})
		return nil
	})

	return jobs, err
}

// resolveOutputPath determines where the page for inputPath is written.
func resolveOutputPath(inputPath, outputDir, baseInputDir string, kind outline.Kind) string {
	name := filepath.Base(inputPath)
	if kind == outline.KindMarkdown {
		name = fileutil.ReplaceExt(name, ".html")
	}

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), name)
	}

	// A single file may be given an explicit output file.
	if baseInputDir == "" && hasExtension(outputDir, outline.KindHTML) {
		return outputDir
	}

	if baseInputDir != "" {
		if relPath, err := filepath.Rel(baseInputDir, inputPath); err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), name)
		}
	}

	return filepath.Join(outputDir, name)
}

func hasExtension(path string, kind outline.Kind) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions[kind] {
		if ext == e {
			return true
		}
	}
	return false
}

// validateExtension checks that path has an extension accepted for kind.
func validateExtension(path string, kind outline.Kind) error {
	if !hasExtension(path, kind) {
		return fmt.Errorf("%w: %s files need %s, got %q",
			ErrInvalidExtension, kind, strings.Join(extensions[kind], " or "), filepath.Ext(path))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > outline.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, outline.MaxWorkers)
	}
	return nil
}
