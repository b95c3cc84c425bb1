package outline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/alnah/go-outline/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// ProcessFile processes one file and writes the result atomically.
//
// A document processed in place is not rewritten when it opts out of the
// outline. When OutputPath differs from InputPath the page is always
// written, outlined or not. Failures never leave a partial output file.
func (g *Generator) ProcessFile(ctx context.Context, job Job) FileResult {
	start := time.Now()
	result := FileResult{
		InputPath:  job.InputPath,
		OutputPath: job.OutputPath,
	}
	if result.OutputPath == "" {
		result.OutputPath = job.InputPath
	}
	inPlace := filepath.Clean(result.OutputPath) == filepath.Clean(job.InputPath)

	finish := func(err error) FileResult {
		result.Err = err
		result.Duration = time.Since(start)
		if err != nil {
			g.logger.Warn("file failed", "path", job.InputPath, "err", err)
		}
		return result
	}

	if err := ctx.Err(); err != nil {
		return finish(err)
	}

	if job.Disabled && inPlace {
		result.Skipped = true
		g.logger.Debug("outline disabled", "path", job.InputPath)
		return finish(nil)
	}

	data, err := os.ReadFile(job.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return finish(fmt.Errorf("%w: %v", ErrReadInput, err))
	}

	var res *Result
	switch job.Kind {
	case KindMarkdown:
		res, err = g.RenderMarkdown(ctx, data, pageName(job.InputPath))
	default:
		res, err = g.Process(ctx, Input{HTML: data, Name: job.InputPath, Disabled: job.Disabled})
	}
	if err != nil {
		return finish(fmt.Errorf("%s: %w", job.InputPath, err))
	}

	result.Skipped = res.Skipped
	result.Sections = res.Sections

	if res.Skipped && inPlace {
		return finish(nil)
	}

	if err := os.MkdirAll(filepath.Dir(result.OutputPath), dirPermissions); err != nil {
		return finish(fmt.Errorf("%w: creating output directory: %v", ErrWriteOutput, err))
	}
	if err := fileutil.WriteFileAtomic(result.OutputPath, res.HTML, filePermissions); err != nil {
		return finish(fmt.Errorf("%w: %v", ErrWriteOutput, err))
	}
	result.Written = true

	g.logger.Debug("outline written", "path", result.OutputPath, "sections", res.Sections, "skipped", res.Skipped)
	return finish(nil)
}

// ProcessBatch processes jobs concurrently with a fixed number of workers
// and returns one result per job, in job order. Failures are recorded per
// file; processing continues with the next job. After cancellation the
// remaining jobs are reported with the context error.
func (g *Generator) ProcessBatch(ctx context.Context, jobs []Job, workers int) []FileResult {
	if len(jobs) == 0 {
		return nil
	}

	concurrency := ResolveWorkers(workers)
	if concurrency > len(jobs) {
		concurrency = len(jobs)
	}

	results := make([]FileResult, len(jobs))
	var wg sync.WaitGroup
	queue := make(chan int, len(jobs))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range queue {
				if err := ctx.Err(); err != nil {
					results[idx] = FileResult{
						InputPath:  jobs[idx].InputPath,
						OutputPath: jobs[idx].OutputPath,
						Err:        err,
					}
					continue
				}
				results[idx] = g.ProcessFile(ctx, jobs[idx])
			}
		}()
	}

	for i := range jobs {
		queue <- i
	}
	close(queue)

	wg.Wait()
	return results
}

// pageName derives a fallback page title from a file name.
func pageName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
