// Package engine orchestrates the convergence analysis of a study.
//
// The implementation is split across multiple files:
//   - analyzer.go: grid resolution and the per-quantity pipeline
//   - factory.go: dependency wiring for the CLI
//   - safegroup.go: panic-safe concurrency utilities
package engine

import "errors"

// DefaultAsymptoticTolerance is the accepted distance of the asymptotic
// ratio from one.
const DefaultAsymptoticTolerance = 0.1

var (
	// ErrNilStudy is returned when no study is given
	ErrNilStudy = errors.New("study is nil")
	// ErrNoQuantities is returned by Analyze for studies without quantities
	ErrNoQuantities = errors.New("study has no quantities to analyse")
)

// Options configures an Analyzer
type Options struct {
	// Parallelism bounds the number of quantities analysed concurrently.
	// Zero or negative means one goroutine per quantity.
	Parallelism int
	// FailFast aborts the whole analysis on the first quantity error
	FailFast bool
	// AsymptoticTolerance defaults to DefaultAsymptoticTolerance when zero
	AsymptoticTolerance float64
}

// DefaultOptions returns the analyzer defaults
func DefaultOptions() Options {
	return Options{
		AsymptoticTolerance: DefaultAsymptoticTolerance,
	}
}
