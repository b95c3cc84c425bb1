package main

import (
	"fmt"
	"time"

	outline "github.com/alnah/go-outline"
)

// ResultSummary holds the count of outcomes of a run.
type ResultSummary struct {
	Succeeded int
	Skipped   int
	Failed    int
}

// countResults tallies the outcome of each file.
func countResults(results []outline.FileResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		switch {
		case r.Err != nil:
			summary.Failed++
		case r.Skipped:
			summary.Skipped++
		default:
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs per-file results and returns the failure count.
func printResults(results []outline.FileResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, hintFor(r.Err))
			continue
		}

		if quiet {
			continue
		}

		switch {
		case r.Skipped && !r.Written:
			fmt.Fprintf(env.Stdout, "Skipped %s (outline disabled)\n", r.InputPath)
		case verbose:
			fmt.Fprintf(env.Stdout, "%s -> %s (%d sections, %v)\n",
				r.InputPath, r.OutputPath, r.Sections, r.Duration.Round(time.Millisecond))
		default:
			fmt.Fprintf(env.Stdout, "Wrote %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d skipped, %d failed\n",
			summary.Succeeded, summary.Skipped, summary.Failed)
	}

	return summary.Failed
}

// firstError returns the first per-file error, in job order.
func firstError(results []outline.FileResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}
