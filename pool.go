package outline

import "runtime"

// Worker count bounds for batch processing.
const (
	// MinWorkers ensures at least one worker is available.
	MinWorkers = 1

	// MaxWorkers caps concurrent documents to bound memory held by parsed trees.
	MaxWorkers = 8

	// cpuDivisor leaves headroom for the caller and the garbage collector.
	cpuDivisor = 2
)

// ResolveWorkers determines the worker count for batch processing.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by servers and CLIs.
func ResolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers.
	n := runtime.GOMAXPROCS(0) / cpuDivisor

	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}
